// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/GermanBionicSystems/ioexpander/tca9534"
	"github.com/spf13/cobra"
)

// pinAccessor is a get/set pair on one pin.
type pinAccessor struct {
	get func(d *tca9534.Dev, pin int) (bool, error)
	set func(d *tca9534.Dev, pin int, v bool) error
	// parse reads the value passed to set.
	parse func(s string) (bool, error)
	// format prints the value read.
	format func(v bool) string
}

func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func direction(input bool) string {
	if input {
		return "in"
	}
	return "out"
}

// newPinCmd returns a command reading the pin, or setting it when a value is
// passed.
func newPinCmd(use, short string, a pinAccessor) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pin, err := parsePin(args[0])
			if err != nil {
				return err
			}
			if len(args) == 2 {
				if a.set == nil {
					return fmt.Errorf("%s is read only", cmd.Name())
				}
				v, err := a.parse(args[1])
				if err != nil {
					return err
				}
				return withDev(func(d *tca9534.Dev) error {
					return a.set(d, pin, v)
				})
			}
			return withDev(func(d *tca9534.Dev) error {
				v, err := a.get(d, pin)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), a.format(v))
				return nil
			})
		},
	}
}

// portAccessor is a get/set pair on the whole port.
type portAccessor struct {
	get   func(d *tca9534.Dev) ([]bool, error)
	set   func(d *tca9534.Dev, v []bool) error
	parse func(s string) (bool, error)
}

// newPortCmd returns a command reading the 8 flags of a register, or setting
// them all at once when values are passed.
func newPortCmd(use, short string, a portAccessor) *cobra.Command {
	nargs := cobra.MaximumNArgs(tca9534.NumPins)
	if a.set == nil {
		nargs = cobra.NoArgs
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  nargs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				v, err := parseBools(args, a.parse)
				if err != nil {
					return err
				}
				return withDev(func(d *tca9534.Dev) error {
					return a.set(d, v)
				})
			}
			return withDev(func(d *tca9534.Dev) error {
				v, err := a.get(d)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatBools(v))
				return nil
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(
		newPinCmd("get <pin>", "Print the input level of a pin", pinAccessor{
			get:    (*tca9534.Dev).PinLevel,
			format: bit,
		}),
		newPinCmd("set <pin> [0|1|low|high]", "Set the output latch of a pin, or print it", pinAccessor{
			get: func(d *tca9534.Dev, pin int) (bool, error) {
				return d.ReadBit(tca9534.OutputPort, pin)
			},
			set:    (*tca9534.Dev).SetPinLevel,
			parse:  parseLevel,
			format: bit,
		}),
		newPinCmd("mode <pin> [in|out]", "Print or set the direction of a pin", pinAccessor{
			get:    (*tca9534.Dev).PinMode,
			set:    (*tca9534.Dev).SetPinMode,
			parse:  parseDirection,
			format: direction,
		}),
		newPinCmd("invert <pin> [0|1|off|on]", "Print or set the input polarity inversion of a pin", pinAccessor{
			get:    (*tca9534.Dev).PinInvert,
			set:    (*tca9534.Dev).SetPinInvert,
			parse:  parseFlag,
			format: bit,
		}),
		newPortCmd("modes [pin0 .. pin7]", "Print or set the direction of all pins, 1 is input", portAccessor{
			get:   (*tca9534.Dev).PortModes,
			set:   (*tca9534.Dev).SetPortModes,
			parse: parseDirection,
		}),
		newPortCmd("inverts [pin0 .. pin7]", "Print or set the input polarity inversion of all pins", portAccessor{
			get:   (*tca9534.Dev).PortInvert,
			set:   (*tca9534.Dev).SetPortInvert,
			parse: parseFlag,
		}),
		newPortCmd("outputs [pin0 .. pin7]", "Print or set the output latch of all pins", portAccessor{
			get:   (*tca9534.Dev).PortOutputs,
			set:   (*tca9534.Dev).SetPortOutputs,
			parse: parseLevel,
		}),
		newPortCmd("inputs", "Print the input level of all pins", portAccessor{
			get: (*tca9534.Dev).PortInputs,
		}),
	)
}
