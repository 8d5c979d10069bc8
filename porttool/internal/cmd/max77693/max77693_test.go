// Copyright 2026 The Mainlining Tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package max77693

import (
	"strings"
	"testing"
)

func TestConstantVoltage(t *testing.T) {
	cases := []struct {
		cnfg04 uint8
		want   uint32
	}{
		{0x00, 3650000},
		{0x04, 3750000}, // Midas tab value
		{0x1b, 4325000},
		{0x1c, 4340000}, // the odd 4.34 V step
		{0x1d, 4350000},
		{0x1f, 4400000},
		{0xe4, 3750000}, // minvsys bits must not affect the voltage
	}
	for _, c := range cases {
		if got := ConstantVoltage(c.cnfg04); got != c.want {
			t.Errorf("ConstantVoltage(%#02x) = %d, want %d", c.cnfg04, got, c.want)
		}
	}
}

func TestMinSystemVoltage(t *testing.T) {
	cases := []struct {
		cnfg04 uint8
		want   uint32
	}{
		{0x00, 3000000},
		{0x04, 3000000},
		{0x20, 3100000},
		{0xe0, 3700000},
	}
	for _, c := range cases {
		if got := MinSystemVoltage(c.cnfg04); got != c.want {
			t.Errorf("MinSystemVoltage(%#02x) = %d, want %d", c.cnfg04, got, c.want)
		}
	}
}

func TestFastChargeCurrent(t *testing.T) {
	if got := FastChargeCurrent(0xb6); got != 1798200 {
		t.Errorf("FastChargeCurrent(0xb6) = %d, want 1798200", got)
	}
	if got := FastChargeCurrent(0x00); got != 0 {
		t.Errorf("FastChargeCurrent(0x00) = %d, want 0", got)
	}
}

func TestInputCurrentLimit(t *testing.T) {
	cases := []struct {
		cnfg09 uint8
		want   uint32
	}{
		{0x00, 60000},
		{0x02, 60000}, // below 3 clamps to the minimum
		{0x03, 60000},
		{0x2d, 900000},
		{0xad, 900000}, // bit 7 ignored
		{0x7f, 2540000},
	}
	for _, c := range cases {
		if got := InputCurrentLimit(c.cnfg09); got != c.want {
			t.Errorf("InputCurrentLimit(%#02x) = %d, want %d", c.cnfg09, got, c.want)
		}
	}
}

func TestThermalRegulationTemp(t *testing.T) {
	cases := []struct {
		cnfg07 uint8
		want   uint32
	}{
		{0x00, 70},
		{0x9e, 70}, // raw field is 0
		{0x20, 85},
		{0x60, 115},
	}
	for _, c := range cases {
		if got := ThermalRegulationTemp(c.cnfg07); got != c.want {
			t.Errorf("ThermalRegulationTemp(%#02x) = %d, want %d", c.cnfg07, got, c.want)
		}
	}
}

func TestBatteryOvercurrent(t *testing.T) {
	cases := []struct {
		cnfg12 uint8
		want   uint32
	}{
		{0x00, 0}, // disabled
		{0x01, 2000000},
		{0x07, 3500000},
	}
	for _, c := range cases {
		if got := BatteryOvercurrent(c.cnfg12); got != c.want {
			t.Errorf("BatteryOvercurrent(%#02x) = %d, want %d", c.cnfg12, got, c.want)
		}
	}
}

func TestChargeInputThreshold(t *testing.T) {
	cases := []struct {
		cnfg12 uint8
		want   uint32
	}{
		{0x00, 4300000},
		{0x08, 4700000},
		{0x18, 4900000},
	}
	for _, c := range cases {
		if got := ChargeInputThreshold(c.cnfg12); got != c.want {
			t.Errorf("ChargeInputThreshold(%#02x) = %d, want %d", c.cnfg12, got, c.want)
		}
	}
}

func TestFastChargeTimer(t *testing.T) {
	cases := []struct {
		cnfg01 uint8
		want   uint32
	}{
		{0x00, 0}, // disabled
		{0x01, 4},
		{0x34, 10},
		{0x07, 16},
	}
	for _, c := range cases {
		if got := FastChargeTimer(c.cnfg01); got != c.want {
			t.Errorf("FastChargeTimer(%#02x) = %d, want %d", c.cnfg01, got, c.want)
		}
	}
}

func TestTopOff(t *testing.T) {
	currents := []struct {
		cnfg03 uint8
		want   uint32
	}{
		{0x00, 100000},
		{0x04, 200000},
		{0x05, 250000}, // 50 mA steps above 200 mA
		{0x07, 350000},
	}
	for _, c := range currents {
		if got := TopOffCurrent(c.cnfg03); got != c.want {
			t.Errorf("TopOffCurrent(%#02x) = %d, want %d", c.cnfg03, got, c.want)
		}
	}
	if got := TopOffTimer(0x00); got != 0 {
		t.Errorf("TopOffTimer(0x00) = %d, want 0", got)
	}
	if got := TopOffTimer(0x38); got != 70 {
		t.Errorf("TopOffTimer(0x38) = %d, want 70", got)
	}
}

func TestRenderMidasDefaults(t *testing.T) {
	p := Decode(Regs{
		CNFG01: 0x34,
		CNFG02: 0xb6,
		CNFG03: 0x00,
		CNFG04: 0x04,
		CNFG07: 0x9e,
		CNFG09: 0x2d,
		CNFG12: 0x07,
	})
	var b strings.Builder
	Render(&b, p)
	want := `Charger parameters:
maxim,constant-microvolt: <3750000>;
maxim,min-system-microvolt: <3000000>;
maxim,thermal-regulation-celsius: <70>;
maxim,battery-overcurrent-microamp: <3500000>;
maxim,charge-input-threshold-microvolt: <4300000>;

Battery node parameters:
constant-charge-current-max-microamp: <1798200>;

Runtime parameters (sysfs, not device tree):
input current limit: 900000 uA
fast_charge_timer: 10 h
top_off_threshold_current: 100000 uA
top_off_timer: 0 min
`
	if b.String() != want {
		t.Errorf("Render output:\n%s\nwant:\n%s", b.String(), want)
	}
}
