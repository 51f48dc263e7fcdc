// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tca9534

import (
	"fmt"
	"strconv"
)

// NumPins is the number of pins of the port, and of bits in each register.
const NumPins = 8

// Register is the address of one of the four registers of the chip.
type Register uint8

const (
	InputPort     Register = 0x00 // Level present at the pins; writes are ignored by the chip.
	OutputPort    Register = 0x01 // Output latch.
	Inversion     Register = 0x02 // Input polarity inversion.
	Configuration Register = 0x03 // Direction; 1 is input.
)

func (r Register) String() string {
	switch r {
	case InputPort:
		return "InputPort"
	case OutputPort:
		return "OutputPort"
	case Inversion:
		return "Inversion"
	case Configuration:
		return "Configuration"
	default:
		return "Register(0x" + strconv.FormatUint(uint64(r), 16) + ")"
	}
}

func checkRegister(reg Register) error {
	if reg > Configuration {
		return fmt.Errorf("%w: unknown register 0x%02x", ErrInvalidArgument, uint8(reg))
	}
	return nil
}

func checkPin(pin int) error {
	if pin < 0 || pin >= NumPins {
		return fmt.Errorf("%w: pin %d not in [0, %d]", ErrInvalidArgument, pin, NumPins-1)
	}
	return nil
}

// ReadRegister returns the current value of reg. It writes the register
// address and reads one byte back in a single transaction.
func (d *Dev) ReadRegister(reg Register) (uint8, error) {
	if err := checkRegister(reg); err != nil {
		return 0, err
	}
	return d.readRegister(reg)
}

// WriteRegister writes value to reg. The value is not read back.
func (d *Dev) WriteRegister(reg Register, value uint8) error {
	if err := checkRegister(reg); err != nil {
		return err
	}
	return d.writeRegister(reg, value)
}

// ReadBit returns the flag of pin in reg.
func (d *Dev) ReadBit(reg Register, pin int) (bool, error) {
	if err := checkRegister(reg); err != nil {
		return false, err
	}
	if err := checkPin(pin); err != nil {
		return false, err
	}
	v, err := d.readRegister(reg)
	if err != nil {
		return false, err
	}
	return getBit(v, pin), nil
}

// WriteBit sets the flag of pin in reg to value, leaving the other bits as
// they are on the chip.
//
// The register is read immediately before being written back. Another agent
// modifying reg in between has its change reverted.
func (d *Dev) WriteBit(reg Register, pin int, value bool) error {
	if err := checkRegister(reg); err != nil {
		return err
	}
	if err := checkPin(pin); err != nil {
		return err
	}
	return d.updateRegister(reg, uint8(1)<<uint(pin), boolToBits(value, pin))
}

// updateRegister replaces the bits of reg selected by mask with bits.
//
// A failed read aborts before anything is written.
func (d *Dev) updateRegister(reg Register, mask, bits uint8) error {
	v, err := d.readRegister(reg)
	if err != nil {
		return err
	}
	return d.writeRegister(reg, (v&^mask)|(bits&mask))
}

func (d *Dev) readRegister(reg Register) (uint8, error) {
	var rx [1]byte
	if err := d.c.Tx([]byte{byte(reg)}, rx[:]); err != nil {
		return 0, &TransportError{Op: "read", Register: reg, Err: err}
	}
	return rx[0], nil
}

func (d *Dev) writeRegister(reg Register, value uint8) error {
	if err := d.c.Tx([]byte{byte(reg), value}, nil); err != nil {
		return &TransportError{Op: "write", Register: reg, Err: err}
	}
	return nil
}

func getBit(v uint8, pin int) bool {
	return v&(1<<uint(pin)) != 0
}

func boolToBits(value bool, pin int) uint8 {
	if value {
		return 1 << uint(pin)
	}
	return 0
}

// packPort converts a port vector to a register value. Missing high pins are
// 0.
func packPort(port []bool) (uint8, error) {
	if len(port) > NumPins {
		return 0, fmt.Errorf("%w: port vector has %d values, a register holds %d", ErrInvalidArgument, len(port), NumPins)
	}
	var v uint8
	for i, b := range port {
		v |= boolToBits(b, i)
	}
	return v, nil
}

func unpackPort(v uint8) []bool {
	port := make([]bool, NumPins)
	for i := range port {
		port[i] = getBit(v, i)
	}
	return port
}
