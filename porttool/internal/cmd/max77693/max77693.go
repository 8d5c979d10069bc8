// Copyright 2026 The Mainlining Tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package max77693 converts MAX77693 charger config register values to the
// physical quantities used by the mainline maxim,max77693 bindings.
//
// The conversion formulas mirror drivers/power/supply/max77693_charger.c.
package max77693

import (
	"fmt"
	"io"
)

// Regs holds the CHG_CNFG_* register bytes read from the downstream kernel
// (I2C register addresses in the comments).
type Regs struct {
	CNFG01 uint8 // 0xB8
	CNFG02 uint8 // 0xB9
	CNFG03 uint8 // 0xBA
	CNFG04 uint8 // 0xBB
	CNFG07 uint8 // 0xBE
	CNFG09 uint8 // 0xC0
	CNFG12 uint8 // 0xC3
}

// Params are the decoded charger parameters in micro-units, degrees Celsius,
// hours and minutes.
type Params struct {
	ConstantVoltageMicrovolt      uint32
	MinSystemMicrovolt            uint32
	ThermalRegulationCelsius      uint32
	BatteryOvercurrentMicroamp    uint32
	ChargeInputThresholdMicrovolt uint32
	FastChargeCurrentMicroamp     uint32

	// Runtime parameters, set through sysfs rather than the device tree.
	InputCurrentLimitMicroamp uint32
	FastChargeTimerHours      uint32
	TopOffCurrentMicroamp     uint32
	TopOffTimerMinutes        uint32
}

// Decode converts the register bytes. There is no error path: any byte value
// yields a number, the output is meant to be reviewed by eye.
func Decode(r Regs) Params {
	return Params{
		ConstantVoltageMicrovolt:      ConstantVoltage(r.CNFG04),
		MinSystemMicrovolt:            MinSystemVoltage(r.CNFG04),
		ThermalRegulationCelsius:      ThermalRegulationTemp(r.CNFG07),
		BatteryOvercurrentMicroamp:    BatteryOvercurrent(r.CNFG12),
		ChargeInputThresholdMicrovolt: ChargeInputThreshold(r.CNFG12),
		FastChargeCurrentMicroamp:     FastChargeCurrent(r.CNFG02),
		InputCurrentLimitMicroamp:     InputCurrentLimit(r.CNFG09),
		FastChargeTimerHours:          FastChargeTimer(r.CNFG01),
		TopOffCurrentMicroamp:         TopOffCurrent(r.CNFG03),
		TopOffTimerMinutes:            TopOffTimer(r.CNFG03),
	}
}

// InputCurrentLimit decodes CHG_CNFG_09[6:0], in µA. Raw values below 3 all
// mean the 60 mA minimum.
func InputCurrentLimit(cnfg09 uint8) uint32 {
	raw := uint32(cnfg09 & 0x7f)
	if raw < 3 {
		return 60000
	}
	return raw * 20000
}

// FastChargeCurrent decodes CHG_CNFG_02[5:0], in µA.
func FastChargeCurrent(cnfg02 uint8) uint32 {
	return uint32(cnfg02&0x3f) * 33300
}

// ConstantVoltage decodes CHG_CNFG_04[4:0], in µV. The 25 mV ladder has a
// 4.34 V step wedged in at raw value 0x1c.
func ConstantVoltage(cnfg04 uint8) uint32 {
	raw := uint32(cnfg04 & 0x1f)
	switch {
	case raw < 0x1c:
		return 3650000 + raw*25000
	case raw == 0x1c:
		return 4340000
	default:
		return 4350000 + (raw-0x1d)*25000
	}
}

// MinSystemVoltage decodes CHG_CNFG_04[7:5], in µV.
func MinSystemVoltage(cnfg04 uint8) uint32 {
	raw := uint32(cnfg04>>5) & 0x7
	return 3000000 + raw*100000
}

// ThermalRegulationTemp decodes CHG_CNFG_07[6:5], in °C.
func ThermalRegulationTemp(cnfg07 uint8) uint32 {
	raw := uint32(cnfg07>>5) & 0x3
	return 70 + raw*15
}

// BatteryOvercurrent decodes CHG_CNFG_12[2:0], in µA. Zero means the
// overcurrent check is disabled.
func BatteryOvercurrent(cnfg12 uint8) uint32 {
	raw := uint32(cnfg12 & 0x7)
	if raw == 0 {
		return 0
	}
	return 2000000 + (raw-1)*250000
}

// ChargeInputThreshold decodes CHG_CNFG_12[4:3], in µV.
func ChargeInputThreshold(cnfg12 uint8) uint32 {
	raw := uint32(cnfg12>>3) & 0x3
	if raw == 0 {
		return 4300000
	}
	return 4700000 + (raw-1)*100000
}

// FastChargeTimer decodes CHG_CNFG_01[2:0], in hours. Zero means the timer
// is disabled.
func FastChargeTimer(cnfg01 uint8) uint32 {
	raw := uint32(cnfg01 & 0x7)
	if raw == 0 {
		return 0
	}
	return 4 + (raw-1)*2
}

// TopOffCurrent decodes CHG_CNFG_03[2:0], in µA. The ladder switches from
// 25 mA to 50 mA steps above 200 mA.
func TopOffCurrent(cnfg03 uint8) uint32 {
	raw := uint32(cnfg03 & 0x7)
	if raw <= 4 {
		return 100000 + raw*25000
	}
	return raw * 50000
}

// TopOffTimer decodes CHG_CNFG_03[5:3], in minutes.
func TopOffTimer(cnfg03 uint8) uint32 {
	return uint32(cnfg03>>3&0x7) * 10
}

// Render writes p as device-tree fragment lines ready to paste into the
// charger and battery nodes, followed by the sysfs-only values.
func Render(w io.Writer, p Params) {
	fmt.Fprintln(w, "Charger parameters:")
	fmt.Fprintf(w, "maxim,constant-microvolt: <%d>;\n", p.ConstantVoltageMicrovolt)
	fmt.Fprintf(w, "maxim,min-system-microvolt: <%d>;\n", p.MinSystemMicrovolt)
	fmt.Fprintf(w, "maxim,thermal-regulation-celsius: <%d>;\n", p.ThermalRegulationCelsius)
	fmt.Fprintf(w, "maxim,battery-overcurrent-microamp: <%d>;\n", p.BatteryOvercurrentMicroamp)
	fmt.Fprintf(w, "maxim,charge-input-threshold-microvolt: <%d>;\n", p.ChargeInputThresholdMicrovolt)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Battery node parameters:")
	fmt.Fprintf(w, "constant-charge-current-max-microamp: <%d>;\n", p.FastChargeCurrentMicroamp)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Runtime parameters (sysfs, not device tree):")
	fmt.Fprintf(w, "input current limit: %d uA\n", p.InputCurrentLimitMicroamp)
	fmt.Fprintf(w, "fast_charge_timer: %d h\n", p.FastChargeTimerHours)
	fmt.Fprintf(w, "top_off_threshold_current: %d uA\n", p.TopOffCurrentMicroamp)
	fmt.Fprintf(w, "top_off_timer: %d min\n", p.TopOffTimerMinutes)
}
