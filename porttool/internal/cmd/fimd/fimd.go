// Copyright 2026 The Mainlining Tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fimd decodes the Exynos 4 FIMD video control registers.
package fimd

import "github.com/mainlining/tools/porttool/internal/bitfield"

// Vidcon0Addr is the physical address of VIDCON0; VIDCON1 follows at +4.
const Vidcon0Addr = 0x11c00000

// Bit names per include/video/samsung_fimd.h.
var (
	vidcon1Bits = []bitfield.Field{
		{Name: "VIDCON1_INV_VCLK", Bit: 7},
		{Name: "VIDCON1_INV_HSYNC", Bit: 6},
		{Name: "VIDCON1_INV_VSYNC", Bit: 5},
		{Name: "VIDCON1_INV_VDEN", Bit: 4},
	}
	vidcon0Bits = []bitfield.Field{
		{Name: "VIDCON0_DSI_EN", Bit: 30},
	}
)

// Setting is one named control bit and its state.
type Setting struct {
	Name string
	On   bool
}

// Decode returns the display timing settings encoded in the VIDCON0 and
// VIDCON1 registers, in the order the downstream dump prints them.
func Decode(vidcon0, vidcon1 uint32) []Setting {
	out := make([]Setting, 0, len(vidcon1Bits)+len(vidcon0Bits))
	for _, f := range vidcon1Bits {
		out = append(out, Setting{f.Name, f.Set(vidcon1)})
	}
	for _, f := range vidcon0Bits {
		out = append(out, Setting{f.Name, f.Set(vidcon0)})
	}
	return out
}
