// Copyright 2026 The Mainlining Tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsim

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mainlining/tools/porttool/internal/input"
	"github.com/mainlining/tools/porttool/internal/regdump"
	"github.com/mainlining/tools/porttool/internal/util"
)

var (
	dumpFile string
	dumpAddr string
	raw      bool
)

var Cmd = &cobra.Command{
	Use:   "dsim [VALUE]",
	Short: "convert a DSIM config register value to MIPI DSI mode flags",
	Long: `Convert the Exynos 4 DSIM main config register to MIPI DSI mode flags
for the dsi_0 panel node.

In the downstream kernel, run:
   cat /sys/devices/platform/s5p-dsim.0/dsim_dump
and pass the value of the "[DSIM]0x11C8_0010" line, either as an argument
or pasted at the prompt. With --dump the value is read out of an Intel HEX
image of the register block instead.`,
	Args: cobra.MaximumNArgs(1),
	Run:  run,
}

func init() {
	Cmd.Flags().StringVar(&dumpFile, "dump", "", "Intel HEX register dump to read the value from")
	Cmd.Flags().StringVar(&dumpAddr, "addr", fmt.Sprintf("%#08x", uint32(ConfigAddr)), "register address in the dump")
	Cmd.Flags().BoolVar(&raw, "raw", false, "also print the raw config bits")
}

func run(cmd *cobra.Command, args []string) {
	cfg := configValue(args)
	if raw {
		for _, f := range ConfigBits {
			fmt.Printf("%-21s %t\n", f.Name, f.Set(cfg))
		}
	}
	fmt.Println(strings.Join(ModeFlags(cfg), " | "))
}

func configValue(args []string) uint32 {
	switch {
	case len(args) == 1:
		v, err := input.ParseHex(args[0])
		util.FatalErr("", err)
		return v
	case dumpFile != "":
		addr, err := input.ParseHex(dumpAddr)
		util.FatalErr("addr", err)
		v, err := regdump.Word(dumpFile, addr)
		util.FatalErr("", err)
		return v
	default:
		v, err := input.PromptHex("DSIM config register ([DSIM]0x11C8_0010): ")
		util.FatalErr("", err)
		return v
	}
}
