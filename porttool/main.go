// Copyright 2026 The Mainlining Tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Porttool is a bag of helpers for porting downstream ARM kernels to
// mainline: decode register dumps into device-tree properties and translate
// vendor clock tables into mainline driver data.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mainlining/tools/porttool/internal/cmd/dsim"
	"github.com/mainlining/tools/porttool/internal/cmd/fimd"
	"github.com/mainlining/tools/porttool/internal/cmd/konaclk"
	"github.com/mainlining/tools/porttool/internal/cmd/max77693"
)

var root = &cobra.Command{
	Use:   "porttool",
	Short: "helpers for porting downstream ARM kernels to mainline",
}

func main() {
	root.AddCommand(dsim.Cmd, fimd.Cmd, max77693.Cmd, konaclk.Cmd)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
