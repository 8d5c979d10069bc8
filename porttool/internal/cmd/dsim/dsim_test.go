// Copyright 2026 The Mainlining Tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsim

import (
	"strings"
	"testing"
)

const (
	hsaDisable  = 1 << 20
	hbpDisable  = 1 << 21
	hfpDisable  = 1 << 22
	hseDisable  = 1 << 23
	autoMode    = 1 << 24
	videoMode   = 1 << 25
	burstMode   = 1 << 26
	syncInform  = 1 << 27
	eotDisable  = 1 << 28
	mflushVS    = 1 << 29
	clklaneStop = 1 << 30
)

func TestModeFlags(t *testing.T) {
	cases := []struct {
		name string
		cfg  uint32
		want string
	}{
		{"zero", 0, ""},
		{
			"video only",
			videoMode | mflushVS,
			"MIPI_DSI_MODE_VIDEO",
		},
		{
			// MFLUSH_VS clear means the driver flushes on vsync.
			"vsync flush",
			videoMode,
			"MIPI_DSI_MODE_VIDEO | MIPI_DSI_MODE_VSYNC_FLUSH",
		},
		{
			"burst with eot disable",
			videoMode | mflushVS | burstMode | eotDisable,
			"MIPI_DSI_MODE_VIDEO | MIPI_DSI_MODE_VIDEO_BURST | MIPI_DSI_MODE_NO_EOT_PACKET",
		},
		{
			"all video sub-flags",
			videoMode | mflushVS | syncInform | burstMode | autoMode |
				hseDisable | hfpDisable | hbpDisable | hsaDisable,
			"MIPI_DSI_MODE_VIDEO | MIPI_DSI_MODE_VIDEO_SYNC_PULSE | " +
				"MIPI_DSI_MODE_VIDEO_BURST | MIPI_DSI_MODE_VIDEO_AUTO_VERT | " +
				"MIPI_DSI_MODE_VIDEO_HSE | MIPI_DSI_MODE_VIDEO_NO_HFP | " +
				"MIPI_DSI_MODE_VIDEO_NO_HBP | MIPI_DSI_MODE_VIDEO_NO_HSA",
		},
		{
			// Command mode: video sub-flags must not leak into the output.
			"video mode clear gates sub-flags",
			mflushVS | syncInform | burstMode | autoMode |
				hseDisable | hfpDisable | hbpDisable | hsaDisable,
			"",
		},
		{
			"eot disable alone",
			eotDisable,
			"MIPI_DSI_MODE_NO_EOT_PACKET",
		},
		{
			// Unsupported on Exynos 4, must never be reported.
			"clklane stop ignored",
			clklaneStop,
			"",
		},
		{
			// Bits outside the table are silently ignored.
			"stray low bits",
			0xfffff | eotDisable,
			"MIPI_DSI_MODE_NO_EOT_PACKET",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := strings.Join(ModeFlags(c.cfg), " | ")
			if got != c.want {
				t.Errorf("ModeFlags(%#08x):\n got %q\nwant %q", c.cfg, got, c.want)
			}
		})
	}
}
