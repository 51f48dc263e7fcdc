// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tca9534

import (
	"errors"
	"fmt"
	"testing"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

var errBus = errors.New("nack")

// regFile is an i2c.Bus backed by the four registers of a simulated chip.
type regFile struct {
	addr uint16
	regs [4]uint8

	failRead  bool
	failWrite bool
	reads     int
	writes    int
}

func (f *regFile) String() string {
	return "regFile"
}

func (f *regFile) SetSpeed(physic.Frequency) error {
	return nil
}

func (f *regFile) Tx(addr uint16, w, r []byte) error {
	if addr != f.addr {
		return fmt.Errorf("no device at 0x%02x", addr)
	}
	switch {
	case len(w) == 1 && len(r) == 1:
		f.reads++
		if f.failRead {
			return errBus
		}
		if w[0] > 3 {
			return fmt.Errorf("bad register 0x%02x", w[0])
		}
		r[0] = f.regs[w[0]]
	case len(w) == 2 && len(r) == 0:
		f.writes++
		if f.failWrite {
			return errBus
		}
		if w[0] > 3 {
			return fmt.Errorf("bad register 0x%02x", w[0])
		}
		f.regs[w[0]] = w[1]
	default:
		return fmt.Errorf("unexpected transaction w=%v r=%d", w, len(r))
	}
	return nil
}

var _ i2c.Bus = &regFile{}

// newSim returns a Dev on a simulated chip at the default address.
func newSim(t *testing.T) (*Dev, *regFile) {
	t.Helper()
	f := &regFile{addr: DefaultAddress}
	d := newDev(t, f)
	return d, f
}

func newDev(t *testing.T, bus i2c.Bus) *Dev {
	t.Helper()
	d, err := New(bus, &DefaultOpts)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = d.Close()
	})
	return d
}

var allRegisters = []Register{InputPort, OutputPort, Inversion, Configuration}
