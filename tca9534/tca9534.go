// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tca9534 provides register level control of the Texas Instruments
// TCA9534 8-bit I²C I/O expander and its register compatible siblings.
//
// The chip has four 8-bit registers, one bit per pin:
//
//	0x00 Input Port     R    1 = high level present at the pin
//	0x01 Output Port    R/W  1 = drive the pin high when configured as output
//	0x02 Inversion      R/W  1 = invert the input polarity of the pin
//	0x03 Configuration  R/W  1 = input, 0 = output
//
// Nothing is cached: every call reads the hardware. Single pin setters are
// read-modify-write cycles that are not atomic on the chip, so callers must
// serialize mutating calls that target the same register, including across
// processes or multiple Dev sharing one chip.
//
// The following variants are supported:
//
//   - PCA9554 - addresses: 0x20 - 0x27
//   - PCA9554A - addresses: 0x38 - 0x3f
//   - TCA9534 - addresses: 0x20 - 0x27
//   - TCA9534A - addresses: 0x38 - 0x3f
//   - TCA9554 - addresses: 0x20 - 0x27
//
// Besides the register API, gpio.PinIO, gpio.Group and conn.Conn interfaces
// are supported.
//
// # Datasheet
//
// https://www.ti.com/lit/gpn/tca9534
package tca9534

import (
	"errors"
	"fmt"
	"strconv"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
)

// DefaultAddress is the address with A0, A1 and A2 pulled high, as found on
// most breakout boards.
const DefaultAddress uint16 = 0x27

// Pin directions as stored in the Configuration register.
const (
	Output = false
	Input  = true
)

var (
	// ErrInvalidArgument is returned, wrapped, for an out of range pin,
	// register, address or port vector. No bus traffic happens in that case.
	ErrInvalidArgument = errors.New("tca9534: invalid argument")
	// ErrNotImplemented is returned for features the chip doesn't have.
	ErrNotImplemented = errors.New("tca9534: not implemented")
)

// TransportError is returned when the I²C transaction itself failed (no
// acknowledge, arbitration loss, timeout). It is never retried.
//
// When the write half of a read-modify-write fails, the register content is
// unknown; retry the whole operation.
type TransportError struct {
	Op       string // "read" or "write"
	Register Register
	Err      error
}

func (e *TransportError) Error() string {
	return "tca9534: " + e.Op + " " + e.Register.String() + ": " + e.Err.Error()
}

// Unwrap returns the bus error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Variant: TCA9534,
	Addr:    DefaultAddress,
}

// Opts defines the options for the device.
type Opts struct {
	// Variant selects the valid address range. Defaults to TCA9534.
	Variant Variant
	// The I²C address of the chip. Defaults to DefaultAddress.
	Addr uint16
}

// Dev is a handle to a TCA9534 compatible I/O expander.
//
// The only state it holds is the bus and the address; it is cheap to create.
type Dev struct {
	// Pins are the 8 pins of the port, indexed by pin number.
	Pins []Pin
	// Conn reads and writes the whole port as bytes.
	Conn conn.Conn

	c       i2c.Dev
	variant Variant
	name    string
	// registered lists the pin names this Dev added to gpioreg.
	registered []string
}

// New returns a handle to the device at opts.Addr on bus. It does not talk to
// the device.
//
// The pins are registered in gpioreg; call Close to unregister them. When
// another Dev already registered the same names, this one keeps its Pins but
// leaves the registry alone.
func New(bus i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	o := *opts
	if o.Variant == "" {
		o.Variant = DefaultOpts.Variant
	}
	if o.Addr == 0 {
		o.Addr = DefaultOpts.Addr
	}
	v, found := variants[o.Variant]
	if !found {
		return nil, fmt.Errorf("%w: unsupported variant %q", ErrInvalidArgument, string(o.Variant))
	}
	if v.isAddrInvalid(o.Addr) {
		return nil, fmt.Errorf("%w: address 0x%02x not supported by %s", ErrInvalidArgument, o.Addr, string(o.Variant))
	}
	d := &Dev{
		c:       i2c.Dev{Bus: bus, Addr: o.Addr},
		variant: o.Variant,
		name:    string(o.Variant) + "_" + strconv.FormatUint(uint64(o.Addr), 16),
	}
	d.Pins = make([]Pin, NumPins)
	for i := range d.Pins {
		p := &portpin{dev: d, number: i}
		d.Pins[i] = p
		if err := gpioreg.Register(p); err == nil {
			d.registered = append(d.registered, p.Name())
		}
	}
	d.Conn = &portConn{dev: d}
	return d, nil
}

// String returns the variant and the address, e.g. "TCA9534_27".
func (d *Dev) String() string {
	return d.name
}

// Halt sets every pin to input, the power-on state of the chip.
func (d *Dev) Halt() error {
	return d.WriteRegister(Configuration, 0xFF)
}

// Close removes the pin registrations done by New. It is safe to call more
// than once.
func (d *Dev) Close() error {
	for len(d.registered) != 0 {
		if err := gpioreg.Unregister(d.registered[0]); err != nil {
			return err
		}
		d.registered = d.registered[1:]
	}
	return nil
}

// Snapshot is the content of the four registers at one point in time.
type Snapshot struct {
	Input         uint8
	Output        uint8
	Inversion     uint8
	Configuration uint8
}

// Bit returns the flag of pin in register reg. It returns false for an out of
// range pin or unknown register.
func (s Snapshot) Bit(reg Register, pin int) bool {
	if checkPin(pin) != nil {
		return false
	}
	var v uint8
	switch reg {
	case InputPort:
		v = s.Input
	case OutputPort:
		v = s.Output
	case Inversion:
		v = s.Inversion
	case Configuration:
		v = s.Configuration
	default:
		return false
	}
	return getBit(v, pin)
}

func (s Snapshot) String() string {
	return fmt.Sprintf("in=0x%02x out=0x%02x inv=0x%02x cfg=0x%02x", s.Input, s.Output, s.Inversion, s.Configuration)
}

// Snapshot reads the four registers in address order. Each read is a separate
// transaction, so the result is not atomic.
func (d *Dev) Snapshot() (Snapshot, error) {
	var s Snapshot
	var err error
	if s.Input, err = d.ReadRegister(InputPort); err != nil {
		return Snapshot{}, err
	}
	if s.Output, err = d.ReadRegister(OutputPort); err != nil {
		return Snapshot{}, err
	}
	if s.Inversion, err = d.ReadRegister(Inversion); err != nil {
		return Snapshot{}, err
	}
	if s.Configuration, err = d.ReadRegister(Configuration); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

var _ conn.Resource = &Dev{}
