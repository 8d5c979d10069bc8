// Copyright 2026 The Mainlining Tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package input reads register values pasted from downstream kernel dumps.
package input

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

// ParseHex parses a register value written as hex text. The 0x prefix is
// optional because downstream dumps print values both ways.
func ParseHex(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	t := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("bad register value %q", s)
	}
	return uint32(v), nil
}

var stdin = bufio.NewReader(os.Stdin)

// PromptHex reads one register value from stdin. The prompt is printed only
// when stdin is a terminal so the decoders stay quiet when input is piped.
func PromptHex(prompt string) (uint32, error) {
	if isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Print(prompt)
	}
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return 0, err
	}
	return ParseHex(line)
}
