// Copyright 2026 The Mainlining Tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package max77693

import (
	"os"

	"github.com/spf13/cobra"
)

var regs = Regs{
	CNFG01: 0x34,
	CNFG02: 0xb6,
	CNFG03: 0x00,
	CNFG04: 0x04,
	CNFG07: 0x9e,
	CNFG09: 0x2d,
	CNFG12: 0x07,
}

var Cmd = &cobra.Command{
	Use:   "max77693",
	Short: "decode MAX77693 charger config registers to DT properties",
	Long: `Decode the MAX77693 CHG_CNFG_* register values into device-tree
properties for the charger and battery nodes.

Read the registers from the downstream kernel (i2cdump of the PMIC, or the
vendor's sysfs debug files) and pass them with the --cnfg* flags. Unset
registers keep their example defaults, so always pass the full set for real
boards. The output is meant to be reviewed by eye before pasting.`,
	Args: cobra.NoArgs,
	Run:  run,
}

func init() {
	f := Cmd.Flags()
	f.Uint8Var(&regs.CNFG01, "cnfg01", regs.CNFG01, "CHG_CNFG_01 (0xB8)")
	f.Uint8Var(&regs.CNFG02, "cnfg02", regs.CNFG02, "CHG_CNFG_02 (0xB9)")
	f.Uint8Var(&regs.CNFG03, "cnfg03", regs.CNFG03, "CHG_CNFG_03 (0xBA)")
	f.Uint8Var(&regs.CNFG04, "cnfg04", regs.CNFG04, "CHG_CNFG_04 (0xBB)")
	f.Uint8Var(&regs.CNFG07, "cnfg07", regs.CNFG07, "CHG_CNFG_07 (0xBE)")
	f.Uint8Var(&regs.CNFG09, "cnfg09", regs.CNFG09, "CHG_CNFG_09 (0xC0)")
	f.Uint8Var(&regs.CNFG12, "cnfg12", regs.CNFG12, "CHG_CNFG_12 (0xC3)")
}

func run(cmd *cobra.Command, args []string) {
	Render(os.Stdout, Decode(regs))
}
