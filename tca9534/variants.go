// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tca9534

// Variant is the type denoting a specific chip sharing the TCA9534 register
// map.
type Variant string

const (
	PCA9554  Variant = "PCA9554"  // PCA9554  8-bit I²C extender. Datasheet: https://www.ti.com/lit/gpn/pca9554
	PCA9554A Variant = "PCA9554A" // PCA9554A 8-bit I²C extender. Datasheet: https://www.ti.com/lit/gpn/pca9554a
	TCA9534  Variant = "TCA9534"  // TCA9534  8-bit I²C extender. Datasheet: https://www.ti.com/lit/gpn/tca9534
	TCA9534A Variant = "TCA9534A" // TCA9534A 8-bit I²C extender. Datasheet: https://www.ti.com/lit/gpn/tca9534a
	TCA9554  Variant = "TCA9554"  // TCA9554  8-bit I²C extender. Datasheet: https://www.ti.com/lit/gpn/tca9554
)

type variant struct {
	addStart uint16
	addEnd   uint16
}

var variants = map[Variant]variant{
	PCA9554:  {addStart: 0x20, addEnd: 0x27},
	PCA9554A: {addStart: 0x38, addEnd: 0x3f},
	TCA9534:  {addStart: 0x20, addEnd: 0x27},
	TCA9534A: {addStart: 0x38, addEnd: 0x3f},
	TCA9554:  {addStart: 0x20, addEnd: 0x27},
}

// isAddrInvalid checks to see if the address is used by the chip.
func (v variant) isAddrInvalid(addr uint16) bool {
	return addr < v.addStart || v.addEnd < addr
}
