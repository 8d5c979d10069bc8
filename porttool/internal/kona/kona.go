// Copyright 2026 The Mainlining Tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kona translates clock entries of a downstream Broadcom Kona
// kernel's clock table into mainline clk_data struct literals.
//
// This is a scraper over one vendor's coding style, not a C parser. It
// understands exactly the struct-literal shape mach-*/clock.c uses and
// fails loudly on anything else.
package kona

import (
	"fmt"
	"strings"
)

// Kind is the downstream clock table shape a clock is declared with.
type Kind string

const (
	Bus  Kind = "bus"
	Peri Kind = "peri"
	Ref  Kind = "ref"
)

// Find locates the struct literal defining the named clock in the clock.c
// source and returns its kind and raw text, header and footer lines
// included. The defining line looks like
//
//	static struct peri_clk CLK_NAME(sdio2) = {
func Find(src, name string) (Kind, string, error) {
	marker := "CLK_NAME(" + name + ")"
	var (
		kind Kind
		out  []string
	)
	for _, line := range strings.Split(src, "\n") {
		if kind == "" {
			if !strings.Contains(line, marker) {
				continue
			}
			switch {
			case strings.Contains(line, "bus_clk"):
				kind = Bus
			case strings.Contains(line, "peri_clk"):
				kind = Peri
			case strings.Contains(line, "ref_clk"):
				kind = Ref
			default:
				return "", "", fmt.Errorf("unknown clock type: %s", strings.TrimSpace(line))
			}
		}
		out = append(out, line)
		if strings.Contains(line, "};") {
			break
		}
	}
	if kind == "" {
		return "", "", fmt.Errorf("clock %s not found", name)
	}
	return kind, strings.Join(out, "\n"), nil
}

// Fields is a flattened struct literal: a value is either the literal token
// text or, one level down, a nested Fields.
type Fields map[string]any

var stripWS = strings.NewReplacer(" ", "", "\t", "", "\r", "")

// Flatten converts a designated-initializer struct literal into a Fields
// map. Only one level of nesting is supported; anything deeper is outside
// the vendor style this tool scrapes and is an error.
func Flatten(structText string) (Fields, error) {
	lines := strings.Split(structText, "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("struct literal too short: %q", structText)
	}
	// Drop the header and footer lines, then squash all whitespace so the
	// body becomes one .key=value sequence.
	body := stripWS.Replace(strings.Join(lines[1:len(lines)-1], ""))

	out := Fields{}
	var nest []string
	for _, item := range strings.Split(body, ".") {
		if item == "" {
			continue
		}
		key, value, ok := strings.Cut(item, "=")
		if !ok {
			return nil, fmt.Errorf("malformed field %q", item)
		}
		switch {
		case value == "{":
			if len(nest) > 0 {
				return nil, fmt.Errorf("struct %q nested inside %q: only one level is supported", key, nest[len(nest)-1])
			}
			nest = append(nest, key)
			out[key] = Fields{}
		case strings.Contains(value, "}"):
			// The closing brace rides on the last field of the nested
			// block, e.g. "ops=&gen_peri_clk_ops,},".
			if len(nest) == 0 {
				return nil, fmt.Errorf("unbalanced } in %q", item)
			}
			if lit := literal(value); lit != "" {
				out[nest[len(nest)-1]].(Fields)[key] = lit
			}
			nest = nest[:len(nest)-1]
		default:
			lit := literal(value)
			if len(nest) > 0 {
				out[nest[len(nest)-1]].(Fields)[key] = lit
			} else {
				out[key] = lit
			}
		}
	}
	if len(nest) > 0 {
		return nil, fmt.Errorf("unterminated struct %q", nest[len(nest)-1])
	}
	return out, nil
}

// literal truncates a field value at the comma or brace trailing it.
func literal(value string) string {
	if i := strings.IndexAny(value, ",}"); i >= 0 {
		return value[:i]
	}
	return value
}
