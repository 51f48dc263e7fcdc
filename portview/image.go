// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package portview

import (
	"fmt"
	"image"
	"strconv"

	"github.com/GermanBionicSystems/ioexpander/tca9534"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultImageOpts is the recommended default options.
var DefaultImageOpts = ImageOpts{
	Cell:     48,
	Padding:  8,
	FontSize: 12,
}

// ImageOpts defines the layout of the image.
type ImageOpts struct {
	// Cell is the side of the square of each pin, in pixels.
	Cell int
	// Padding is the space around and between cells.
	Padding int
	// FontSize is the size of the labels in points.
	FontSize float64
	// Title is drawn above the cells when not empty.
	Title string
}

// Bounds returns the size of the image Render creates.
func (o *ImageOpts) Bounds() image.Rectangle {
	w := tca9534.NumPins*(o.Cell+o.Padding) + o.Padding
	h := o.Padding + o.Cell + o.Padding + 3*int(o.FontSize) + o.Padding
	if o.Title != "" {
		h += 2 * int(o.FontSize)
	}
	return image.Rect(0, 0, w, h)
}

// CellCenter returns the center of the cell of pin.
func (o *ImageOpts) CellCenter(pin int) image.Point {
	top := o.Padding
	if o.Title != "" {
		top += 2 * int(o.FontSize)
	}
	return image.Point{
		X: o.Padding + pin*(o.Cell+o.Padding) + o.Cell/2,
		Y: top + o.Cell/2,
	}
}

// Render draws s. Under each cell it writes the pin number and its direction,
// prefixed with "~" when the input polarity is inverted.
func Render(s tca9534.Snapshot, opts *ImageOpts) (image.Image, error) {
	if opts == nil {
		opts = &DefaultImageOpts
	}
	if opts.Cell <= 0 || opts.Padding < 0 || opts.FontSize <= 0 {
		return nil, fmt.Errorf("portview: invalid image options %+v", *opts)
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("portview: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{Size: opts.FontSize})
	defer face.Close()

	b := opts.Bounds()
	dc := gg.NewContext(b.Dx(), b.Dy())
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(face)

	if opts.Title != "" {
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(opts.Title, float64(b.Dx())/2, float64(opts.Padding)+opts.FontSize/2, 0.5, 0.5)
	}

	cell := float64(opts.Cell)
	for pin := 0; pin < tca9534.NumPins; pin++ {
		c := opts.CellCenter(pin)
		x := float64(c.X) - cell/2
		y := float64(c.Y) - cell/2
		dc.SetColor(PinColor(s, pin))
		dc.DrawRectangle(x, y, cell, cell)
		dc.Fill()
		dc.SetRGB(0, 0, 0)
		dc.SetLineWidth(1)
		dc.DrawRectangle(x, y, cell, cell)
		dc.Stroke()

		dir := "OUT"
		if s.Bit(tca9534.Configuration, pin) {
			dir = "IN"
		}
		if s.Bit(tca9534.Inversion, pin) {
			dir = "~" + dir
		}
		ly := y + cell + float64(opts.Padding) + opts.FontSize/2
		dc.DrawStringAnchored(strconv.Itoa(pin), float64(c.X), ly, 0.5, 0.5)
		dc.DrawStringAnchored(dir, float64(c.X), ly+1.5*opts.FontSize, 0.5, 0.5)
	}
	return dc.Image(), nil
}

// SavePNG renders s and writes it to path.
func SavePNG(path string, s tca9534.Snapshot, opts *ImageOpts) error {
	img, err := Render(s, opts)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}
