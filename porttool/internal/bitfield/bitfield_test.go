// Copyright 2026 The Mainlining Tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitfield

import "testing"

func TestFieldSet(t *testing.T) {
	for bit := uint(0); bit < 32; bit++ {
		f := Field{"BIT", bit}
		for _, v := range []uint32{0, 1, 0x5555aaaa, 0xaaaa5555, 1 << bit, ^uint32(1 << bit)} {
			want := v&(1<<bit) != 0
			if got := f.Set(v); got != want {
				t.Errorf("bit %d of %#08x: got %t, want %t", bit, v, got, want)
			}
		}
	}
}

func TestDecode(t *testing.T) {
	table := []Field{{"A", 0}, {"B", 7}, {"C", 31}}
	m := Decode(1<<7|1<<31, table)
	if len(m) != 3 {
		t.Fatalf("got %d entries, want 3", len(m))
	}
	if m["A"] || !m["B"] || !m["C"] {
		t.Errorf("got %v, want A=false B=true C=true", m)
	}
}
