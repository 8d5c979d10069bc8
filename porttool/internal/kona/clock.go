// Copyright 2026 The Mainlining Tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kona

import (
	"fmt"
	"math/bits"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ClockDiv mirrors the downstream clk_div sub-struct.
type ClockDiv struct {
	DivOffset        *Value
	DivMask          *Value
	DivShift         *Value
	PreDivOffset     *Value
	PreDivMask       *Value
	PreDivShift      *Value
	DivTrigOffset    *Value
	DivTrigMask      *Value
	DivTrigShift     *Value
	PredivTrigOffset *Value
	PredivTrigMask   *Value
	PredivTrigShift  *Value
	DietherBits      *Value
	PllSelectOffset  *Value
	PllSelectMask    *Value
	PllSelectShift   *Value
}

// Clock is a downstream clock table entry after flattening and macro
// expansion. One shape covers all three kinds; bus clocks carry an extra
// frequency table index.
type Clock struct {
	Kind Kind
	Name string

	ClkGateOffset *Value
	ClkEnMask     *Value
	GatingSelMask *Value
	HystValMask   *Value
	HystEnMask    *Value
	StprstsMask   *Value
	VoltLvlMask   *Value
	PolicyBitMask *Value
	PolicyBitInit *Value
	MaskSet       *Value
	FreqTblIndex  *Value

	// The downstream table only stores masks; mainline wants the shifts
	// too, so they are derived by naming convention (see deriveShifts).
	ClkEnShift     *Value
	GatingSelShift *Value
	HystValShift   *Value
	HystEnShift    *Value
	StprstsShift   *Value
	VoltLvlShift   *Value
	PolicyBitShift *Value

	Src   string
	Flags string // flags field of the nested clk sub-struct
	Div   *ClockDiv
}

// Extract reads the downstream clock table of the kernel tree and returns
// the named clock, macros resolved.
func Extract(kernelPath, mach, name string) (*Clock, error) {
	path := filepath.Join(kernelPath, "arch", "arm", "mach-"+mach, "clock.c")
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	kind, text, err := Find(string(src), name)
	if err != nil {
		return nil, err
	}
	f, err := Flatten(text)
	if err != nil {
		return nil, err
	}
	r := &Resolver{KernelPath: kernelPath, Mach: mach}
	return FromFields(kind, name, f, r)
}

// FromFields builds a typed clock from a flattened struct literal,
// expanding register macros through r.
func FromFields(kind Kind, name string, f Fields, r *Resolver) (*Clock, error) {
	c := &Clock{Kind: kind, Name: name}
	raw := stringFields(f)
	deriveShifts(raw)
	dst := map[string]**Value{
		"clk_gate_offset":  &c.ClkGateOffset,
		"clk_en_mask":      &c.ClkEnMask,
		"clk_en_shift":     &c.ClkEnShift,
		"gating_sel_mask":  &c.GatingSelMask,
		"gating_sel_shift": &c.GatingSelShift,
		"hyst_val_mask":    &c.HystValMask,
		"hyst_val_shift":   &c.HystValShift,
		"hyst_en_mask":     &c.HystEnMask,
		"hyst_en_shift":    &c.HystEnShift,
		"stprsts_mask":     &c.StprstsMask,
		"stprsts_shift":    &c.StprstsShift,
		"volt_lvl_mask":    &c.VoltLvlMask,
		"volt_lvl_shift":   &c.VoltLvlShift,
		"policy_bit_mask":  &c.PolicyBitMask,
		"policy_bit_shift": &c.PolicyBitShift,
		"policy_bit_init":  &c.PolicyBitInit,
		"mask_set":         &c.MaskSet,
		"freq_tbl_index":   &c.FreqTblIndex,
	}
	if err := expandInto(raw, dst, r); err != nil {
		return nil, err
	}
	c.Src = raw["src"]
	if clk, ok := f["clk"].(Fields); ok {
		if flags, ok := clk["flags"].(string); ok {
			c.Flags = flags
		}
	}
	if div, ok := f["clk_div"].(Fields); ok {
		d, err := divFromFields(div, r)
		if err != nil {
			return nil, err
		}
		c.Div = d
	}
	return c, nil
}

func divFromFields(f Fields, r *Resolver) (*ClockDiv, error) {
	d := new(ClockDiv)
	raw := stringFields(f)
	deriveShifts(raw)
	dst := map[string]**Value{
		"div_offset":         &d.DivOffset,
		"div_mask":           &d.DivMask,
		"div_shift":          &d.DivShift,
		"pre_div_offset":     &d.PreDivOffset,
		"pre_div_mask":       &d.PreDivMask,
		"pre_div_shift":      &d.PreDivShift,
		"div_trig_offset":    &d.DivTrigOffset,
		"div_trig_mask":      &d.DivTrigMask,
		"div_trig_shift":     &d.DivTrigShift,
		"prediv_trig_offset": &d.PredivTrigOffset,
		"prediv_trig_mask":   &d.PredivTrigMask,
		"prediv_trig_shift":  &d.PredivTrigShift,
		"diether_bits":       &d.DietherBits,
		"pll_select_offset":  &d.PllSelectOffset,
		"pll_select_mask":    &d.PllSelectMask,
		"pll_select_shift":   &d.PllSelectShift,
	}
	if err := expandInto(raw, dst, r); err != nil {
		return nil, err
	}
	return d, nil
}

func stringFields(f Fields) map[string]string {
	raw := make(map[string]string, len(f))
	for k, v := range f {
		if s, ok := v.(string); ok {
			raw[k] = s
		}
	}
	return raw
}

// deriveShifts adds a *shift entry for every *mask entry that lacks one,
// rewriting the mask macro name by the vendor's _MASK/_SHIFT convention.
func deriveShifts(raw map[string]string) {
	for _, k := range keys(raw) {
		if !strings.HasSuffix(k, "mask") {
			continue
		}
		sk := strings.TrimSuffix(k, "mask") + "shift"
		if _, ok := raw[sk]; ok {
			continue
		}
		if v := raw[k]; strings.HasSuffix(v, "MASK") {
			raw[sk] = strings.TrimSuffix(v, "MASK") + "SHIFT"
		}
	}
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func expandInto(raw map[string]string, dst map[string]**Value, r *Resolver) error {
	for k, p := range dst {
		token, ok := raw[k]
		if !ok {
			continue
		}
		v, err := r.Expand(token)
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		*p = &v
	}
	return nil
}

// Mainline renders the clock as a mainline drivers/clk/bcm style struct
// literal. Lines are included only when the downstream entry carries the
// matching fields, the way the mainline tables are written by hand.
func (c *Clock) Mainline() string {
	var b strings.Builder
	fmt.Fprintf(&b, "static struct %s_clk_data %s_data = {\n", c.Kind, c.Name)
	if c.Src != "" {
		// The CLOCKS() source list cannot be derived from the register
		// macros; it has to be filled in from the source clock names.
		fmt.Fprintf(&b, "\t/* TODO: .clocks = CLOCKS(...) from .src = %s */\n", c.Src)
	}
	if c.PolicyBitMask != nil {
		fmt.Fprintf(&b, "\t.policy\t\t= POLICY(0xFIXME_%s, %s),\n", dec(c.MaskSet), dec(c.PolicyBitShift))
	}
	auto := strings.Contains(c.Flags, "AUTO_GATE")
	if c.GatingSelShift != nil {
		suffix := ""
		if auto {
			suffix = "_AUTO"
		}
		fmt.Fprintf(&b, "\t.gate\t\t= HW_SW_GATE%s(%s, %s, %s, %s),\n", suffix,
			hex4(c.ClkGateOffset), dec(c.StprstsShift), dec(c.GatingSelShift), dec(c.ClkEnShift))
	} else {
		hwsw := "SW"
		if auto {
			hwsw = "HW"
		}
		fmt.Fprintf(&b, "\t.gate\t\t= %s_ONLY_GATE(%s, %s, %s),\n", hwsw,
			hex4(c.ClkGateOffset), dec(c.StprstsShift), dec(c.ClkEnShift))
	}
	if c.HystValMask != nil && c.HystEnMask != nil && c.HystEnMask.Num && c.HystEnMask.Int != 0 {
		fmt.Fprintf(&b, "\t.hyst\t\t= HYST(%s, %s, %s),\n",
			hex4(c.ClkGateOffset), dec(c.HystValShift), dec(c.HystEnShift))
	}
	if d := c.Div; d != nil {
		if d.PllSelectOffset != nil {
			fmt.Fprintf(&b, "\t.sel\t\t= SELECTOR(%s, %s, %s),\n",
				hex4(d.PllSelectOffset), dec(d.PllSelectShift), width(d.PllSelectMask))
		}
		if d.DivOffset != nil {
			if d.DietherBits != nil {
				fmt.Fprintf(&b, "\t.div\t\t= FRAC_DIVIDER(%s, %s, %s, %s), /* TODO: verify dither bits */\n",
					hex4(d.DivOffset), dec(d.DivShift), width(d.DivMask), dec(d.DietherBits))
			} else {
				fmt.Fprintf(&b, "\t.div\t\t= DIVIDER(%s, %s, %s),\n",
					hex4(d.DivOffset), dec(d.DivShift), width(d.DivMask))
			}
		}
		if d.DivTrigOffset != nil {
			fmt.Fprintf(&b, "\t.trig\t\t= TRIGGER(%s, %s),\n",
				hex4(d.DivTrigOffset), dec(d.DivTrigShift))
		}
	}
	b.WriteString("};")
	return b.String()
}

// dec formats a value as a plain number, falling back to the raw macro text
// so an unresolved field stays visible in the output.
func dec(v *Value) string {
	switch {
	case v == nil:
		return "FIXME"
	case v.Num:
		return strconv.FormatInt(v.Int, 10)
	default:
		return v.Raw
	}
}

func hex4(v *Value) string {
	if v != nil && v.Num {
		return fmt.Sprintf("0x%04x", v.Int)
	}
	return "0xFIXME"
}

// width returns the number of set bits of a mask, the field width the
// mainline DIVIDER/SELECTOR macros take.
func width(v *Value) string {
	if v != nil && v.Num {
		return strconv.Itoa(bits.OnesCount64(uint64(v.Int)))
	}
	return "FIXME"
}
