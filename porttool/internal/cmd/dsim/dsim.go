// Copyright 2026 The Mainlining Tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dsim decodes the Exynos 4 DSIM main config register into the
// MIPI DSI mode flags the mainline panel bindings want.
package dsim

import "github.com/mainlining/tools/porttool/internal/bitfield"

// ConfigAddr is the physical address of the DSIM config register, printed
// as [DSIM]0x11C8_0010 by the downstream dsim_dump file.
const ConfigAddr = 0x11c80010

// ConfigBits names the mode bits of the config register, after the
// downstream s5p-dsim driver.
var ConfigBits = []bitfield.Field{
	{Name: "DSIM_HSA_DISABLE_MODE", Bit: 20},
	{Name: "DSIM_HBP_DISABLE_MODE", Bit: 21},
	{Name: "DSIM_HFP_DISABLE_MODE", Bit: 22},
	{Name: "DSIM_HSE_DISABLE_MODE", Bit: 23},
	{Name: "DSIM_AUTO_MODE", Bit: 24},
	{Name: "DSIM_VIDEO_MODE", Bit: 25},
	{Name: "DSIM_BURST_MODE", Bit: 26},
	{Name: "DSIM_SYNC_INFORM", Bit: 27},
	{Name: "DSIM_EOT_DISABLE", Bit: 28},
	{Name: "DSIM_MFLUSH_VS", Bit: 29},
	{Name: "DSIM_CLKLANE_STOP", Bit: 30},
}

// ModeFlags converts a config register value to the matching MIPI_DSI_MODE_*
// flag names, in the order the mainline samsung-dsim driver checks them.
// The video-only flags are reported only when DSIM_VIDEO_MODE is set.
func ModeFlags(cfg uint32) []string {
	b := bitfield.Decode(cfg, ConfigBits)
	var flags []string
	if b["DSIM_VIDEO_MODE"] {
		flags = append(flags, "MIPI_DSI_MODE_VIDEO")
		if !b["DSIM_MFLUSH_VS"] {
			flags = append(flags, "MIPI_DSI_MODE_VSYNC_FLUSH")
		}
		if b["DSIM_SYNC_INFORM"] {
			flags = append(flags, "MIPI_DSI_MODE_VIDEO_SYNC_PULSE")
		}
		if b["DSIM_BURST_MODE"] {
			flags = append(flags, "MIPI_DSI_MODE_VIDEO_BURST")
		}
		if b["DSIM_AUTO_MODE"] {
			flags = append(flags, "MIPI_DSI_MODE_VIDEO_AUTO_VERT")
		}
		if b["DSIM_HSE_DISABLE_MODE"] {
			flags = append(flags, "MIPI_DSI_MODE_VIDEO_HSE")
		}
		if b["DSIM_HFP_DISABLE_MODE"] {
			flags = append(flags, "MIPI_DSI_MODE_VIDEO_NO_HFP")
		}
		if b["DSIM_HBP_DISABLE_MODE"] {
			flags = append(flags, "MIPI_DSI_MODE_VIDEO_NO_HBP")
		}
		if b["DSIM_HSA_DISABLE_MODE"] {
			flags = append(flags, "MIPI_DSI_MODE_VIDEO_NO_HSA")
		}
	}
	if b["DSIM_EOT_DISABLE"] {
		flags = append(flags, "MIPI_DSI_MODE_NO_EOT_PACKET")
	}
	// DSIM_CLKLANE_STOP would map to MIPI_DSI_CLOCK_NON_CONTINUOUS, but
	// Exynos 4 does not support it.
	return flags
}
