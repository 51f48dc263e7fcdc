// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tca9534

// PinMode returns Input (true) or Output (false) for pin.
func (d *Dev) PinMode(pin int) (bool, error) {
	return d.ReadBit(Configuration, pin)
}

// SetPinMode sets the direction of pin; use Input or Output.
func (d *Dev) SetPinMode(pin int, input bool) error {
	return d.WriteBit(Configuration, pin, input)
}

// PortModes returns the direction of the 8 pins, true being Input.
func (d *Dev) PortModes() ([]bool, error) {
	return d.readPort(Configuration)
}

// SetPortModes sets the direction of all pins in one write. Pins past the end
// of modes become outputs.
func (d *Dev) SetPortModes(modes []bool) error {
	return d.writePort(Configuration, modes)
}

// PinInvert returns true if the input polarity of pin is inverted.
func (d *Dev) PinInvert(pin int) (bool, error) {
	return d.ReadBit(Inversion, pin)
}

// SetPinInvert sets the input polarity inversion of pin.
func (d *Dev) SetPinInvert(pin int, inverted bool) error {
	return d.WriteBit(Inversion, pin, inverted)
}

// PortInvert returns the input polarity inversion flags of the 8 pins.
func (d *Dev) PortInvert() ([]bool, error) {
	return d.readPort(Inversion)
}

// SetPortInvert sets the input polarity inversion of all pins in one write.
func (d *Dev) SetPortInvert(inverted []bool) error {
	return d.writePort(Inversion, inverted)
}

// PinLevel returns the level at pin as seen through the Input Port register,
// whatever its direction. Polarity inversion applies.
func (d *Dev) PinLevel(pin int) (bool, error) {
	return d.ReadBit(InputPort, pin)
}

// SetPinLevel sets the output latch of pin.
//
// It only drives the pin when configured as output. The latch keeps the value
// otherwise and applies it when the pin is later switched to output.
func (d *Dev) SetPinLevel(pin int, high bool) error {
	return d.WriteBit(OutputPort, pin, high)
}

// PortInputs returns the level at the 8 pins.
func (d *Dev) PortInputs() ([]bool, error) {
	return d.readPort(InputPort)
}

// PortOutputs returns the output latch of the 8 pins.
func (d *Dev) PortOutputs() ([]bool, error) {
	return d.readPort(OutputPort)
}

// SetPortOutputs sets the output latch of all pins in one write.
func (d *Dev) SetPortOutputs(levels []bool) error {
	return d.writePort(OutputPort, levels)
}

func (d *Dev) readPort(reg Register) ([]bool, error) {
	v, err := d.readRegister(reg)
	if err != nil {
		return nil, err
	}
	return unpackPort(v), nil
}

func (d *Dev) writePort(reg Register, port []bool) error {
	v, err := packPort(port)
	if err != nil {
		return err
	}
	return d.writeRegister(reg, v)
}
