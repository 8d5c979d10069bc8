// Copyright 2026 The Mainlining Tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitfield maps single register bits to the names the downstream
// kernel gives them.
package bitfield

// Field names one bit of a register.
type Field struct {
	Name string
	Bit  uint
}

// Set reports whether the field's bit is set in v.
func (f Field) Set(v uint32) bool {
	return v>>f.Bit&1 == 1
}

// Decode returns the state of every field of the table in v. Bits outside
// the table are ignored.
func Decode(v uint32, fields []Field) map[string]bool {
	m := make(map[string]bool, len(fields))
	for _, f := range fields {
		m[f.Name] = f.Set(v)
	}
	return m
}
