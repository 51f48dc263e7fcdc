// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ioexpander is a container for the TCA9534 I/O expander driver and
// its tooling.
//
// The driver lives in tca9534, portview renders its registers and
// cmd/tca9534 drives a chip from the command line.
package ioexpander
