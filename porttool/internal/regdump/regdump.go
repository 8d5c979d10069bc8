// Copyright 2026 The Mainlining Tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package regdump reads register words out of Intel HEX memory images, the
// format debuggers commonly save register block dumps in.
package regdump

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/marcinbor85/gohex"
)

// Word returns the 32-bit little-endian word at addr in the Intel HEX file.
func Word(file string, addr uint32) (uint32, error) {
	f, err := os.Open(file)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(f); err != nil {
		return 0, fmt.Errorf("%s: %w", file, err)
	}
	for _, seg := range mem.GetDataSegments() {
		if addr < seg.Address {
			continue
		}
		// Widen before adding so an addr near the top of the 32-bit space
		// cannot wrap the bounds check.
		off := uint64(addr - seg.Address)
		if off+4 <= uint64(len(seg.Data)) {
			return binary.LittleEndian.Uint32(seg.Data[off:]), nil
		}
	}
	return 0, fmt.Errorf("%s: no data at address %#x", file, addr)
}
