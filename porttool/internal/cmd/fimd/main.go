// Copyright 2026 The Mainlining Tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fimd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mainlining/tools/porttool/internal/input"
	"github.com/mainlining/tools/porttool/internal/regdump"
	"github.com/mainlining/tools/porttool/internal/util"
)

var (
	dumpFile string
	dumpAddr string
)

var Cmd = &cobra.Command{
	Use:   "fimd [VIDCON0 [VIDCON1]]",
	Short: "decode the FIMD VIDCON0/VIDCON1 registers",
	Long: `Decode the Exynos 4 FIMD video control registers into the signal
polarity properties of the mainline fimd node.

In the downstream kernel, run:
   cat /sys/class/graphics/fb0/device/fimd_dump
and pass the first two 8-digit values of the 11C00000 line (VIDCON0 and
VIDCON1). Missing values are prompted for. With --dump both registers are
read out of an Intel HEX image of the register block instead.`,
	Args: checkArgs,
	Run:  run,
}

// checkArgs rejects mixing --dump with register values on the command line;
// it would not be obvious which source wins.
func checkArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.MaximumNArgs(2)(cmd, args); err != nil {
		return err
	}
	if dumpFile != "" && len(args) > 0 {
		return errors.New("--dump cannot be combined with register values")
	}
	return nil
}

func init() {
	Cmd.Flags().StringVar(&dumpFile, "dump", "", "Intel HEX register dump to read the registers from")
	Cmd.Flags().StringVar(&dumpAddr, "addr", fmt.Sprintf("%#08x", uint32(Vidcon0Addr)), "VIDCON0 address in the dump")
}

func run(cmd *cobra.Command, args []string) {
	vidcon0, vidcon1 := registerValues(args)
	for _, s := range Decode(vidcon0, vidcon1) {
		fmt.Printf("%s %t\n", s.Name, s.On)
	}
}

func registerValues(args []string) (vidcon0, vidcon1 uint32) {
	if dumpFile != "" {
		base, err := input.ParseHex(dumpAddr)
		util.FatalErr("addr", err)
		vidcon0, err = regdump.Word(dumpFile, base)
		util.FatalErr("", err)
		vidcon1, err = regdump.Word(dumpFile, base+4)
		util.FatalErr("", err)
		return
	}
	var err error
	if len(args) > 0 {
		vidcon0, err = input.ParseHex(args[0])
	} else {
		vidcon0, err = input.PromptHex("VIDCON0 (the first 8-digit value): ")
	}
	util.FatalErr("", err)
	if len(args) > 1 {
		vidcon1, err = input.ParseHex(args[1])
	} else {
		vidcon1, err = input.PromptHex("VIDCON1 (the second 8-digit value): ")
	}
	util.FatalErr("", err)
	return
}
