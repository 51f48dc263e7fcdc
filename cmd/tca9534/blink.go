// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/GermanBionicSystems/ioexpander/tca9534"
	"github.com/spf13/cobra"
)

var blinkCmd = &cobra.Command{
	Use:   "blink <pin>",
	Short: "Configure a pin as output and toggle it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pin, err := parsePin(args[0])
		if err != nil {
			return err
		}
		interval, _ := cmd.Flags().GetDuration("interval")
		count, _ := cmd.Flags().GetInt("count")
		if interval <= 0 {
			return fmt.Errorf("invalid interval %s", interval)
		}
		return withDev(func(d *tca9534.Dev) error {
			return blink(d, pin, interval, count, func(high bool) {
				if high {
					fmt.Fprintf(cmd.OutOrStdout(), "pin %d: HIGH\n", pin)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "pin %d: LOW\n", pin)
				}
			})
		})
	},
}

// blink toggles pin count times, or until interrupted if count is 0. The pin
// is left low.
func blink(d *tca9534.Dev, pin int, interval time.Duration, count int, report func(high bool)) error {
	if err := d.SetPinLevel(pin, false); err != nil {
		return err
	}
	if err := d.SetPinMode(pin, tca9534.Output); err != nil {
		return err
	}
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)
	t := time.NewTicker(interval)
	defer t.Stop()
	high := false
	for i := 0; count == 0 || i < count; i++ {
		select {
		case <-sig:
			return d.SetPinLevel(pin, false)
		case <-t.C:
		}
		high = !high
		if err := d.SetPinLevel(pin, high); err != nil {
			return err
		}
		report(high)
	}
	if high {
		return d.SetPinLevel(pin, false)
	}
	return nil
}

func init() {
	blinkCmd.Flags().Duration("interval", time.Second, "time between toggles")
	blinkCmd.Flags().Int("count", 0, "number of toggles, 0 runs until interrupted")
	rootCmd.AddCommand(blinkCmd)
}
