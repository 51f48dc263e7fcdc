// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/GermanBionicSystems/ioexpander/portview"
	"github.com/GermanBionicSystems/ioexpander/tca9534"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Show the pins as colored cells until interrupted",
	Long: `Show the pins as colored cells until interrupted. ` +
		`Inputs are green, outputs amber; bright is high.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		interval, _ := cmd.Flags().GetDuration("interval")
		count, _ := cmd.Flags().GetInt("count")
		return withDev(func(d *tca9534.Dev) error {
			term := portview.NewTerminal(&portview.Opts{W: terminalOutput(cmd)})
			defer term.Halt()
			return watch(d, term, interval, count)
		})
	},
}

// terminalOutput returns nil, meaning the colorable stdout, unless the command
// output was redirected.
func terminalOutput(cmd *cobra.Command) io.Writer {
	if w := cmd.OutOrStdout(); w != os.Stdout {
		return w
	}
	return nil
}

// watch refreshes term every interval, count times or forever if count is 0.
func watch(d *tca9534.Dev, term *portview.Terminal, interval time.Duration, count int) error {
	if interval <= 0 {
		return fmt.Errorf("invalid interval %s", interval)
	}
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)
	t := time.NewTicker(interval)
	defer t.Stop()
	for i := 0; count == 0 || i < count; i++ {
		s, err := d.Snapshot()
		if err != nil {
			return err
		}
		if err := term.Show(s, s.String()); err != nil {
			return err
		}
		if count != 0 && i == count-1 {
			break
		}
		select {
		case <-sig:
			return nil
		case <-t.C:
		}
	}
	return nil
}

func init() {
	watchCmd.Flags().Duration("interval", 500*time.Millisecond, "refresh interval")
	watchCmd.Flags().Int("count", 0, "number of refreshes, 0 runs until interrupted")
	rootCmd.AddCommand(watchCmd)
}
