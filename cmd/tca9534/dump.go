// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/GermanBionicSystems/ioexpander/portview"
	"github.com/GermanBionicSystems/ioexpander/tca9534"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the four registers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		color, _ := cmd.Flags().GetBool("color")
		return withDev(func(d *tca9534.Dev) error {
			s, err := d.Snapshot()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", d)
			for _, r := range []struct {
				reg tca9534.Register
				v   uint8
			}{
				{tca9534.InputPort, s.Input},
				{tca9534.OutputPort, s.Output},
				{tca9534.Inversion, s.Inversion},
				{tca9534.Configuration, s.Configuration},
			} {
				fmt.Fprintf(out, "0x%02x %-13s 0x%02x %08b\n", uint8(r.reg), r.reg, r.v, r.v)
			}
			if !color {
				return nil
			}
			term := portview.NewTerminal(&portview.Opts{W: terminalOutput(cmd)})
			if err := term.Show(s, ""); err != nil {
				return err
			}
			return term.Halt()
		})
	},
}

func init() {
	dumpCmd.Flags().Bool("color", false, "also show the pins as colored cells")
	rootCmd.AddCommand(dumpCmd)
}
