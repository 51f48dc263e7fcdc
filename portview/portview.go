// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package portview renders the registers of a tca9534 I/O expander, one cell
// per pin with pin 0 on the left.
//
// Input pins are green, output pins amber; a bright cell is a high level. For
// inputs the level is the Input Port bit, so polarity inversion is already
// applied. For outputs it is the Output Port latch.
//
// Terminal writes to the console using ANSI color codes; Render draws an
// image that can be saved as PNG.
package portview

import (
	"bytes"
	"image/color"
	"io"

	"github.com/GermanBionicSystems/ioexpander/tca9534"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// Cell colors.
var (
	InputHigh  = color.NRGBA{0x30, 0xe0, 0x30, 0xff}
	InputLow   = color.NRGBA{0x10, 0x40, 0x10, 0xff}
	OutputHigh = color.NRGBA{0xff, 0xb0, 0x00, 0xff}
	OutputLow  = color.NRGBA{0x50, 0x30, 0x00, 0xff}
)

// PinColor returns the color of pin in s.
func PinColor(s tca9534.Snapshot, pin int) color.NRGBA {
	if s.Bit(tca9534.Configuration, pin) {
		if s.Bit(tca9534.InputPort, pin) {
			return InputHigh
		}
		return InputLow
	}
	if s.Bit(tca9534.OutputPort, pin) {
		return OutputHigh
	}
	return OutputLow
}

// Opts represents the options available for the terminal view.
type Opts struct {
	// W defaults to a colorable stdout.
	W       io.Writer
	Palette *ansi256.Palette

	_ struct{}
}

// Terminal shows a Snapshot on the console, overwriting the current line.
type Terminal struct {
	w       io.Writer
	palette ansi256.Palette

	buf bytes.Buffer
}

// NewTerminal returns a Terminal writing to opts.W.
func NewTerminal(opts *Opts) *Terminal {
	if opts == nil {
		opts = &Opts{}
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &Terminal{w: w, palette: *p}
}

func (t *Terminal) String() string {
	return "portview.Terminal"
}

// Halt implements conn.Resource.
//
// It resets the terminal colors and ends the line.
func (t *Terminal) Halt() error {
	_, err := t.w.Write([]byte("\n\033[0m"))
	return err
}

// Show draws s followed by label.
func (t *Terminal) Show(s tca9534.Snapshot, label string) error {
	t.buf.Reset()
	_, _ = t.buf.WriteString("\r\033[0m")
	for pin := 0; pin < tca9534.NumPins; pin++ {
		_, _ = io.WriteString(&t.buf, t.palette.Block(PinColor(s, pin)))
	}
	_, _ = t.buf.WriteString("\033[0m ")
	_, _ = t.buf.WriteString(label)
	_, err := t.buf.WriteTo(t.w)
	return err
}
