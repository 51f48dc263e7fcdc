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

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw the pins into a PNG file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")
		cell, _ := cmd.Flags().GetInt("cell")
		return withDev(func(d *tca9534.Dev) error {
			s, err := d.Snapshot()
			if err != nil {
				return err
			}
			opts := portview.DefaultImageOpts
			opts.Title = d.String()
			opts.Cell = cell
			if err := portview.SavePNG(out, s, &opts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		})
	},
}

func init() {
	renderCmd.Flags().StringP("output", "o", "tca9534.png", "PNG file to write")
	renderCmd.Flags().Int("cell", portview.DefaultImageOpts.Cell, "size of a pin cell in pixels")
	rootCmd.AddCommand(renderCmd)
}
