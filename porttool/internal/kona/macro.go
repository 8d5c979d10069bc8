// Copyright 2026 The Mainlining Tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kona

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Value is a struct field after macro expansion: an integer when the macro
// body (or the literal itself) is a plain number, otherwise the raw text.
type Value struct {
	Raw string
	Int int64
	Num bool
}

// Resolver expands CLK_MGR_REG register macros against the rdb headers of a
// downstream kernel tree. The header a macro lives in follows the vendor
// naming convention: the part of the macro name before the first underscore
// selects arch/arm/mach-MACH/include/mach/rdb/brcm_rdb_<prefix>_clk_mgr_reg.h.
type Resolver struct {
	KernelPath string
	Mach       string

	headers map[string]string
}

// Expand resolves one field token. Tokens that do not reference a
// CLK_MGR_REG macro are parsed as numeric literals where possible and kept
// as raw text otherwise.
func (r *Resolver) Expand(token string) (Value, error) {
	if !strings.Contains(token, "CLK_MGR_REG") {
		if n, err := strconv.ParseInt(token, 0, 64); err == nil {
			return Value{Raw: token, Int: n, Num: true}, nil
		}
		return Value{Raw: token}, nil
	}
	prefix, _, _ := strings.Cut(token, "_")
	header := "brcm_rdb_" + strings.ToLower(prefix) + "_clk_mgr_reg.h"
	text, err := r.header(header)
	if err != nil {
		return Value{}, err
	}
	def, err := findDefine(text, token)
	if err != nil {
		return Value{}, fmt.Errorf("%s: %w", header, err)
	}
	if def == "" {
		return Value{}, fmt.Errorf("%s: no #define for %s", header, token)
	}
	return evalDefine(header, token, def)
}

func (r *Resolver) header(name string) (string, error) {
	path := filepath.Join(r.KernelPath, "arch", "arm", "mach-"+r.Mach,
		"include", "mach", "rdb", name)
	if text, ok := r.headers[path]; ok {
		return text, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if r.headers == nil {
		r.headers = make(map[string]string)
	}
	r.headers[path] = string(data)
	return string(data), nil
}

// findDefine returns the #define line for the macro, with backslash line
// continuations joined. An empty string means the macro is not defined in
// the header; a header that ends in the middle of a continuation is an
// error rather than a silently truncated body.
func findDefine(header, macro string) (string, error) {
	var out string
	for _, line := range strings.Split(header, "\n") {
		line = strings.ReplaceAll(strings.TrimSpace(line), "\t", " ")
		if out == "" {
			if !strings.Contains(line, "#define") || !strings.Contains(line, macro) {
				continue
			}
		}
		cont := strings.HasSuffix(line, `\`)
		out += strings.TrimSuffix(line, `\`)
		if !cont {
			return out, nil
		}
	}
	if out != "" {
		return "", fmt.Errorf("#define %s: unterminated line continuation", macro)
	}
	return "", nil
}

var nonWord = regexp.MustCompile(`\W+`)

// evalDefine evaluates a joined #define line. The macro body is reduced to
// word tokens; hex if it contains 0x, decimal if purely numeric, raw text
// otherwise. This is single-macro textual substitution, not a preprocessor:
// no nested expansion, no arithmetic.
func evalDefine(header, macro, def string) (Value, error) {
	f := strings.Fields(nonWord.ReplaceAllString(def, " "))
	// f[0] is "define", f[1] the macro name, the rest the body.
	if len(f) < 3 {
		return Value{}, fmt.Errorf("%s: empty #define for %s", header, macro)
	}
	body := strings.Join(f[2:], " ")
	if strings.Contains(body, "0x") {
		n, err := strconv.ParseInt(body, 0, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%s: %s: bad hex value %q", header, macro, body)
		}
		return Value{Raw: body, Int: n, Num: true}, nil
	}
	if n, err := strconv.ParseInt(body, 10, 64); err == nil {
		return Value{Raw: body, Int: n, Num: true}, nil
	}
	return Value{Raw: body}, nil
}
