// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/GermanBionicSystems/ioexpander/tca9534"
	"github.com/spf13/cobra"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

var (
	busName string
	addr    uint16
	variant string
)

// openBus is replaced in tests.
var openBus = func(name string) (i2c.BusCloser, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	return i2creg.Open(name)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tca9534",
	Short: "Read and write the registers of a TCA9534 I²C I/O expander.",
	Long: `Read and write the registers of a TCA9534 compatible I²C I/O expander. ` +
		`Pins are numbered 0 to 7. Every command reads the chip; nothing is cached between runs.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&busName, "bus", "", "I²C bus to use, as known to i2creg; the first bus by default")
	rootCmd.PersistentFlags().Uint16Var(&addr, "addr", tca9534.DefaultAddress, "I²C address of the chip")
	rootCmd.PersistentFlags().StringVar(&variant, "variant", string(tca9534.TCA9534), "chip variant, one of PCA9554, PCA9554A, TCA9534, TCA9534A, TCA9554")
}

// withDev opens the bus and the device, calls fn and closes both.
func withDev(fn func(d *tca9534.Dev) error) error {
	bus, err := openBus(busName)
	if err != nil {
		return fmt.Errorf("failed to open I²C: %w", err)
	}
	defer bus.Close()
	d, err := tca9534.New(bus, &tca9534.Opts{Variant: tca9534.Variant(strings.ToUpper(variant)), Addr: addr})
	if err != nil {
		return err
	}
	defer d.Close()
	return fn(d)
}

func parsePin(s string) (int, error) {
	pin, err := strconv.Atoi(s)
	if err != nil || pin < 0 || pin >= tca9534.NumPins {
		return 0, fmt.Errorf("invalid pin %q, want 0 to %d", s, tca9534.NumPins-1)
	}
	return pin, nil
}

// Each setter accepts 0/1 plus the words matching what its bit means, so a
// level word can't be mistaken for a direction and vice versa.
var (
	parseLevel     = wordParser("low", "high")
	parseDirection = wordParser("out", "in")
	parseFlag      = wordParser("off", "on")
)

// wordParser returns a parser accepting 0, 1, f or t.
func wordParser(f, t string) func(s string) (bool, error) {
	return func(s string) (bool, error) {
		switch strings.ToLower(s) {
		case "1", t:
			return true, nil
		case "0", f:
			return false, nil
		}
		return false, fmt.Errorf("invalid value %q, want 0, 1, %s or %s", s, f, t)
	}
}

func parseBools(args []string, parse func(string) (bool, error)) ([]bool, error) {
	v := make([]bool, len(args))
	for i, a := range args {
		b, err := parse(a)
		if err != nil {
			return nil, err
		}
		v[i] = b
	}
	return v, nil
}

func formatBools(v []bool) string {
	var sb strings.Builder
	for i, b := range v {
		if i != 0 {
			sb.WriteByte(' ')
		}
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
