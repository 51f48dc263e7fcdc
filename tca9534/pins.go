// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tca9534

import (
	"errors"
	"strconv"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/pin"
)

// Pin extends gpio.PinIO interface with features supported by tca9534 devices.
type Pin interface {
	gpio.PinIO
	pin.PinFunc
	// SetPolarityInverted if set to true, the Input Port bit reflects the
	// inverted logic state of the pin.
	SetPolarityInverted(p bool) error
	// IsPolarityInverted returns true if the value of the input pin reflects
	// inverted logic state.
	IsPolarityInverted() (bool, error)
}

type portpin struct {
	dev    *Dev
	number int
}

func (p *portpin) String() string {
	return p.Name()
}

func (p *portpin) Halt() error {
	// To halt all drive, set to high-impedance input
	return p.In(gpio.Float, gpio.NoEdge)
}

func (p *portpin) Name() string {
	return p.dev.name + "_P" + strconv.Itoa(p.number)
}

func (p *portpin) Number() int {
	return p.number
}

func (p *portpin) Function() string {
	return string(p.Func())
}

func (p *portpin) In(pull gpio.Pull, edge gpio.Edge) error {
	switch pull {
	case gpio.PullDown:
		return errors.New("tca9534: PullDown is not supported")
	case gpio.PullUp:
		// Pull resistors are not configurable on this chip.
		return errors.New("tca9534: PullUp is not supported")
	case gpio.Float, gpio.PullNoChange:
	}
	// The interrupt line is not on the I²C bus.
	if edge != gpio.NoEdge {
		return errors.New("tca9534: edge detection not supported")
	}
	return p.dev.SetPinMode(p.number, Input)
}

// Read returns Low if the bus transaction failed.
func (p *portpin) Read() gpio.Level {
	v, err := p.dev.PinLevel(p.number)
	if err != nil {
		return gpio.Low
	}
	return gpio.Level(v)
}

func (p *portpin) WaitForEdge(timeout time.Duration) bool {
	return false
}

func (p *portpin) Pull() gpio.Pull {
	return gpio.Float
}

func (p *portpin) DefaultPull() gpio.Pull {
	return gpio.Float
}

// Out latches the level first so the pin doesn't glitch when it switches
// from input to output.
func (p *portpin) Out(l gpio.Level) error {
	if err := p.dev.SetPinLevel(p.number, bool(l)); err != nil {
		return err
	}
	return p.dev.SetPinMode(p.number, Output)
}

func (p *portpin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return ErrNotImplemented
}

func (p *portpin) Func() pin.Func {
	in, err := p.dev.PinMode(p.number)
	if err != nil {
		return pin.FuncNone
	}
	if in {
		return gpio.IN
	}
	return gpio.OUT
}

func (p *portpin) SupportedFuncs() []pin.Func {
	return supportedFuncs[:]
}

func (p *portpin) SetFunc(f pin.Func) error {
	var v bool
	switch f {
	case gpio.IN:
		v = Input
	case gpio.OUT:
		v = Output
	default:
		return errors.New("tca9534: Function not supported: " + string(f))
	}
	return p.dev.SetPinMode(p.number, v)
}

func (p *portpin) SetPolarityInverted(pol bool) error {
	return p.dev.SetPinInvert(p.number, pol)
}

func (p *portpin) IsPolarityInverted() (bool, error) {
	return p.dev.PinInvert(p.number)
}

var supportedFuncs = [...]pin.Func{gpio.IN, gpio.OUT}

// portConn exposes the port as a half duplex conn.Conn.
type portConn struct {
	dev *Dev
}

// Tx takes bytes to either read or write. Only half duplex is supported so it
// is an error to pass 2 buffers at once. Each written byte is one Output Port
// write, each read byte one Input Port read.
func (c *portConn) Tx(w, r []byte) error {
	switch {
	case len(w) > 0 && len(r) > 0:
		return errors.New("tca9534: only conn.Half duplex is supported")
	case len(w) > 0:
		for _, b := range w {
			if err := c.dev.writeRegister(OutputPort, b); err != nil {
				return err
			}
		}
	case len(r) > 0:
		for i := range r {
			v, err := c.dev.readRegister(InputPort)
			if err != nil {
				return err
			}
			r[i] = v
		}
	}
	return nil
}

// Duplex returns that this is a half duplex connection.
func (c *portConn) Duplex() conn.Duplex {
	return conn.Half
}

// String provides the name of this connection.
func (c *portConn) String() string {
	return c.dev.name
}

var _ Pin = &portpin{}
var _ conn.Conn = &portConn{}
