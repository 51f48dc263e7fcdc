// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tca9534

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"
)

func TestNew(t *testing.T) {
	tests := []struct {
		opts    *Opts
		name    string
		wantErr bool
	}{
		{opts: nil, name: "TCA9534_27"},
		{opts: &Opts{}, name: "TCA9534_27"},
		{opts: &Opts{Addr: 0x20}, name: "TCA9534_20"},
		{opts: &Opts{Variant: TCA9534A, Addr: 0x3f}, name: "TCA9534A_3f"},
		{opts: &Opts{Variant: PCA9554A, Addr: 0x38}, name: "PCA9554A_38"},
		{opts: &Opts{Variant: TCA9534A}, wantErr: true},
		{opts: &Opts{Addr: 0x28}, wantErr: true},
		{opts: &Opts{Variant: "TCA9555"}, wantErr: true},
	}
	for _, tc := range tests {
		record := &i2ctest.Record{}
		dev, err := New(record, tc.opts)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("New(%#v) = %v, want ErrInvalidArgument", tc.opts, err)
			}
			continue
		}
		if err != nil {
			t.Fatal(err)
		}
		if s := dev.String(); s != tc.name {
			t.Errorf("String() = %q, want %q", s, tc.name)
		}
		if len(record.Ops) != 0 {
			t.Errorf("New() talked to the device: %#v", record.Ops)
		}
		if err := dev.Close(); err != nil {
			t.Error(err)
		}
	}
}

func TestPin_out(t *testing.T) {
	scenario := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			// output latch is set low first
			{Addr: DefaultAddress, W: []byte{0x01}, R: []byte{0xFF}},
			{Addr: DefaultAddress, W: []byte{0x01, 0xFE}},
			// then the pin becomes an output
			{Addr: DefaultAddress, W: []byte{0x03}, R: []byte{0xFF}},
			{Addr: DefaultAddress, W: []byte{0x03, 0xFE}},
			// writing high output
			{Addr: DefaultAddress, W: []byte{0x01}, R: []byte{0xFE}},
			{Addr: DefaultAddress, W: []byte{0x01, 0xFF}},
			{Addr: DefaultAddress, W: []byte{0x03}, R: []byte{0xFE}},
			{Addr: DefaultAddress, W: []byte{0x03, 0xFE}},
		},
	}
	d := newDev(t, scenario)

	p0 := gpioreg.ByName("TCA9534_27_P0")
	if p0 == nil {
		t.Fatal("p0 is nil")
	}
	if err := p0.Out(gpio.Low); err != nil {
		t.Fatal(err)
	}
	if err := p0.Out(gpio.High); err != nil {
		t.Fatal(err)
	}
	if err := scenario.Close(); err != nil {
		t.Fatal(err)
	}
	_ = d
}

func TestPin_in(t *testing.T) {
	scenario := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			// pin is set to input
			{Addr: DefaultAddress, W: []byte{0x03}, R: []byte{0x00}},
			{Addr: DefaultAddress, W: []byte{0x03, 0x01}},
			// input is read
			{Addr: DefaultAddress, W: []byte{0x00}, R: []byte{0x01}},
		},
	}
	_ = newDev(t, scenario)

	p0 := gpioreg.ByName("TCA9534_27_P0")
	if err := p0.In(gpio.Float, gpio.NoEdge); err != nil {
		t.Fatal(err)
	}
	if l := p0.Read(); l != gpio.High {
		t.Errorf("Input should be High")
	}
	if err := scenario.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestPin_inInverted(t *testing.T) {
	scenario := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			// polarity is set
			{Addr: DefaultAddress, W: []byte{0x02}, R: []byte{0x00}},
			{Addr: DefaultAddress, W: []byte{0x02, 0x20}},
			// gpio is read high
			{Addr: DefaultAddress, W: []byte{0x00}, R: []byte{0x20}},
			// gpio is read low
			{Addr: DefaultAddress, W: []byte{0x00}, R: []byte{0x00}},
			// polarity is read back
			{Addr: DefaultAddress, W: []byte{0x02}, R: []byte{0x20}},
		},
	}
	d := newDev(t, scenario)

	p5 := d.Pins[5]
	if err := p5.SetPolarityInverted(true); err != nil {
		t.Fatal(err)
	}
	if l := p5.Read(); l != gpio.High {
		t.Errorf("Input should be High")
	}
	if l := p5.Read(); l != gpio.Low {
		t.Errorf("Input should be Low")
	}
	inverted, err := p5.IsPolarityInverted()
	if !inverted || err != nil {
		t.Errorf("polarity should return as inverted")
	}
	if err := scenario.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestPin_errors(t *testing.T) {
	d, f := newSim(t)
	p := d.Pins[2]
	if err := p.In(gpio.PullUp, gpio.NoEdge); err == nil {
		t.Error("PullUp should fail")
	}
	if err := p.In(gpio.PullDown, gpio.NoEdge); err == nil {
		t.Error("PullDown should fail")
	}
	if err := p.In(gpio.Float, gpio.RisingEdge); err == nil {
		t.Error("edge detection should fail")
	}
	if f.reads != 0 || f.writes != 0 {
		t.Errorf("reads=%d writes=%d, want none", f.reads, f.writes)
	}
	f.failRead = true
	f.regs[InputPort] = 0xFF
	if l := p.Read(); l != gpio.Low {
		t.Error("a failed read should be Low")
	}
	if fn := p.Func(); fn != "" {
		t.Errorf("Func() = %q on a failed read", fn)
	}
}

func TestPin_func(t *testing.T) {
	d, f := newSim(t)
	p := d.Pins[6]
	f.regs[Configuration] = 0xFF
	if fn := p.Func(); fn != gpio.IN {
		t.Errorf("Func() = %s, want IN", fn)
	}
	if err := p.SetFunc(gpio.OUT); err != nil {
		t.Fatal(err)
	}
	if f.regs[Configuration] != 0xBF {
		t.Errorf("Configuration = 0x%02x, want 0xbf", f.regs[Configuration])
	}
	if fn := p.Func(); fn != gpio.OUT {
		t.Errorf("Func() = %s, want OUT", fn)
	}
	if err := p.SetFunc("I2C_SDA"); err == nil {
		t.Error("SetFunc() should reject unknown functions")
	}
	if err := p.Halt(); err != nil {
		t.Fatal(err)
	}
	if f.regs[Configuration] != 0xFF {
		t.Errorf("Halt() left Configuration = 0x%02x", f.regs[Configuration])
	}
	if !reflect.DeepEqual(p.SupportedFuncs(), supportedFuncs[:]) {
		t.Errorf("SupportedFuncs() = %v", p.SupportedFuncs())
	}
}

func TestConn_Tx(t *testing.T) {
	tests := []struct {
		description string
		scenario    *i2ctest.Playback
		w           []byte
		r           []byte
		expectErr   bool
	}{
		{
			description: "working write 2 characters",
			w:           []byte{0xa5, 0x5a},
			scenario: &i2ctest.Playback{
				Ops: []i2ctest.IO{
					{Addr: DefaultAddress, W: []byte{0x01, 0xa5}},
					{Addr: DefaultAddress, W: []byte{0x01, 0x5a}},
				},
			},
		}, {
			description: "working read 2 characters",
			r:           []byte{0xa5, 0x5a},
			scenario: &i2ctest.Playback{
				Ops: []i2ctest.IO{
					{Addr: DefaultAddress, W: []byte{0x00}, R: []byte{0xa5}},
					{Addr: DefaultAddress, W: []byte{0x00}, R: []byte{0x5a}},
				},
			},
		}, {
			description: "Invalid, only r or w may be set.",
			r:           []byte{0xa5, 0x5a},
			w:           []byte{0xa5, 0x5a},
			scenario:    &i2ctest.Playback{},
			expectErr:   true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			d := newDev(t, tc.scenario)
			r := make([]byte, len(tc.r))
			err := d.Conn.Tx(tc.w, r)
			if tc.expectErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(tc.r, r) {
				t.Fatalf("r = %#v, want %#v", r, tc.r)
			}
			if err := tc.scenario.Close(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestFixedValues(t *testing.T) {
	d, _ := newSim(t)

	if d.Conn.Duplex() != conn.Half {
		t.Errorf("Duplex() should return conn.Half")
	}
	if d.Conn.String() != "TCA9534_27" {
		t.Errorf("String() should return 'TCA9534_27'")
	}
	if d.Pins[1].String() != "TCA9534_27_P1" {
		t.Errorf("String() should return 'TCA9534_27_P1'")
	}
	if d.Pins[6].Number() != 6 {
		t.Errorf("Number() should return '6'")
	}
	if d.Pins[6].WaitForEdge(10*time.Second) != false {
		t.Errorf("WaitForEdge() should return 'false'")
	}
	if d.Pins[5].Pull() != gpio.Float {
		t.Errorf("Pull() should return 'gpio.Float'")
	}
	if d.Pins[5].DefaultPull() != gpio.Float {
		t.Errorf("DefaultPull() should return 'gpio.Float'")
	}
	if err := d.Pins[0].PWM(gpio.DutyHalf, physic.Hertz); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("PWM should return ErrNotImplemented, got %v", err)
	}
}

func TestHalt(t *testing.T) {
	scenario := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: DefaultAddress, W: []byte{0x03, 0xFF}},
		},
	}
	d := newDev(t, scenario)
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	if err := scenario.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestClose(t *testing.T) {
	d, err := New(&i2ctest.Record{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if gpioreg.ByName("TCA9534_27_P7") == nil {
		t.Fatal("pins should be registered")
	}
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	if gpioreg.ByName("TCA9534_27_P7") != nil {
		t.Fatal("pins should be unregistered")
	}
}

func TestClose_sharedChip(t *testing.T) {
	f := &regFile{addr: DefaultAddress}
	d1, err := New(f, nil)
	if err != nil {
		t.Fatal(err)
	}
	d2, err := New(f, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := d2.Close(); err != nil {
		t.Fatal(err)
	}
	p := gpioreg.ByName("TCA9534_27_P0")
	if p == nil {
		t.Fatal("closing the second handle unregistered the pins of the first")
	}
	if p != gpio.PinIO(d1.Pins[0]) {
		t.Errorf("TCA9534_27_P0 = %v, want the pin of the first handle", p)
	}
	if err := d1.Close(); err != nil {
		t.Fatal(err)
	}
	if gpioreg.ByName("TCA9534_27_P0") != nil {
		t.Fatal("pins should be unregistered")
	}
	if err := d1.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
}
