// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tca9534

import (
	"fmt"
	"strings"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/pin"
)

type pinGroup struct {
	dev         *Dev
	pins        []*portpin
	defaultMask gpio.GPIOValue
}

// Group returns a gpio.Group made up of the specified pin numbers. Bit n of
// the values passed to the group maps to pins[n].
func (d *Dev) Group(pins ...int) (gpio.Group, error) {
	if len(pins) == 0 || len(pins) > NumPins {
		return nil, fmt.Errorf("%w: group of %d pins", ErrInvalidArgument, len(pins))
	}
	g := &pinGroup{dev: d, pins: make([]*portpin, len(pins))}
	for ix, number := range pins {
		if err := checkPin(number); err != nil {
			return nil, err
		}
		pp, ok := d.Pins[number].(*portpin)
		if !ok {
			return nil, fmt.Errorf("%w: pin %d", ErrInvalidArgument, number)
		}
		g.pins[ix] = pp
	}
	g.defaultMask = gpio.GPIOValue((1 << len(pins)) - 1)
	return g, nil
}

// Pins returns the set of pin.Pin that make up that group.
func (g *pinGroup) Pins() []pin.Pin {
	pins := make([]pin.Pin, len(g.pins))
	for ix, p := range g.pins {
		pins[ix] = p
	}
	return pins
}

// Given the offset within the group, return the corresponding GPIO pin.
func (g *pinGroup) ByOffset(offset int) pin.Pin {
	if offset < 0 || offset >= len(g.pins) {
		return nil
	}
	return g.pins[offset]
}

// Given the specific name of a pin, return it. If it can't be found, nil is
// returned.
func (g *pinGroup) ByName(name string) pin.Pin {
	for _, p := range g.pins {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// Given the GPIO pin number, return that pin from the set.
func (g *pinGroup) ByNumber(number int) pin.Pin {
	for _, p := range g.pins {
		if p.Number() == number {
			return p
		}
	}
	return nil
}

// toDev converts a group relative value to the register layout.
func (g *pinGroup) toDev(value gpio.GPIOValue) uint8 {
	var v uint8
	for bit, p := range g.pins {
		if value&(1<<bit) != 0 {
			v |= 1 << uint(p.number)
		}
	}
	return v
}

func (g *pinGroup) mask(mask gpio.GPIOValue) gpio.GPIOValue {
	if mask == 0 {
		return g.defaultMask
	}
	return mask & g.defaultMask
}

// Out writes value to the pins selected by mask and makes them outputs. If
// mask is 0, all pins of the group are written.
//
// The Output Port and the Configuration registers are each read-modify-written
// once; pins outside mask are untouched.
func (g *pinGroup) Out(value, mask gpio.GPIOValue) error {
	mask = g.mask(mask)
	wrMask := g.toDev(mask)
	wr := g.toDev(value & mask)
	if err := g.dev.updateRegister(OutputPort, wrMask, wr); err != nil {
		return err
	}
	return g.dev.updateRegister(Configuration, wrMask, 0)
}

// Read returns the levels of the pins selected by mask, read in a single
// transaction.
func (g *pinGroup) Read(mask gpio.GPIOValue) (gpio.GPIOValue, error) {
	mask = g.mask(mask)
	v, err := g.dev.readRegister(InputPort)
	if err != nil {
		return 0, err
	}
	var result gpio.GPIOValue
	for bit, p := range g.pins {
		if mask&(1<<bit) != 0 && getBit(v, p.number) {
			result |= 1 << bit
		}
	}
	return result, nil
}

// WaitForEdge is not supported; it requires the INT line which is not on the
// I²C bus.
func (g *pinGroup) WaitForEdge(timeout time.Duration) (number int, edge gpio.Edge, err error) {
	return 0, gpio.NoEdge, ErrNotImplemented
}

// Halt sets the pins of the group to input.
func (g *pinGroup) Halt() error {
	return g.dev.updateRegister(Configuration, g.toDev(g.defaultMask), 0xFF)
}

func (g *pinGroup) String() string {
	var sb strings.Builder
	sb.WriteString(g.dev.String())
	sb.WriteString("[ ")
	for _, p := range g.pins {
		fmt.Fprintf(&sb, "%d ", p.Number())
	}
	sb.WriteString("]")
	return sb.String()
}

var _ gpio.Group = &pinGroup{}
