// Copyright 2026 The Mainlining Tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package konaclk is the command wrapper around the kona extractor.
package konaclk

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mainlining/tools/porttool/internal/kona"
	"github.com/mainlining/tools/porttool/internal/util"
)

var Cmd = &cobra.Command{
	Use:   "konaclk KERNEL_PATH MACH NAME",
	Short: "translate a downstream Kona clock entry to a mainline clk_data struct",
	Long: `Extract the named clock from the downstream Broadcom Kona clock table
(arch/arm/mach-MACH/clock.c under KERNEL_PATH), resolve its register macros
against the rdb headers and print the matching mainline clk_data struct.

The scraper expects the vendor's exact coding style and stops at the first
structural surprise; review the output before pasting it.`,
	Args: cobra.ExactArgs(3),
	Run:  run,
}

func run(cmd *cobra.Command, args []string) {
	clk, err := kona.Extract(args[0], args[1], args[2])
	util.FatalErr("", err)
	fmt.Println(clk.Mainline())
}
