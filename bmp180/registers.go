// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bmp180

import (
	"time"
)

// Oversampling selects the trade-off between pressure conversion latency
// and noise. It is written into the control register together with the
// conversion command and determines how the raw result is scaled.
type Oversampling uint8

const (
	UltraLowPower Oversampling = iota
	Standard
	HighRes
	UltraHighRes
)

const (
	// Calibration EEPROM, eleven big-endian 16-bit pairs at 0xAA..0xBF.
	regCalAC1 byte = 0xAA
	regCalAC2 byte = 0xAC
	regCalAC3 byte = 0xAE
	regCalAC4 byte = 0xB0
	regCalAC5 byte = 0xB2
	regCalAC6 byte = 0xB4
	regCalB1  byte = 0xB6
	regCalB2  byte = 0xB8
	regCalMB  byte = 0xBA
	regCalMC  byte = 0xBC
	regCalMD  byte = 0xBE

	regControl byte = 0xF4
	// Conversion result MSB; LSB at 0xF7, XLSB at 0xF8 for pressure.
	regData byte = 0xF6

	cmdConvertTemp     byte = 0x2E
	cmdConvertPressure byte = 0x34 // oversampling setting is added as mode<<6
)

// tempConversionDelay is how long a temperature conversion takes. Reading
// the result registers earlier returns undefined data.
const tempConversionDelay = 5 * time.Millisecond

// pressureConversionDelay is the per-oversampling conversion time, from
// table 8 of the datasheet.
var pressureConversionDelay = [4]time.Duration{
	UltraLowPower: 5 * time.Millisecond,
	Standard:      8 * time.Millisecond,
	HighRes:       14 * time.Millisecond,
	UltraHighRes:  26 * time.Millisecond,
}

func (o Oversampling) valid() bool {
	return o <= UltraHighRes
}

func (o Oversampling) String() string {
	switch o {
	case UltraLowPower:
		return "ultra low power"
	case Standard:
		return "standard"
	case HighRes:
		return "high resolution"
	case UltraHighRes:
		return "ultra high resolution"
	default:
		return "invalid"
	}
}

// signed8 reinterprets a register byte as two's complement.
func signed8(b byte) int8 {
	return int8(b)
}

// signed16 assembles a big-endian register pair into a signed value.
func signed16(hi, lo byte) int16 {
	return int16(signed8(hi))<<8 | int16(lo)
}

// unsigned16 assembles a big-endian register pair into an unsigned value.
func unsigned16(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// readReg fetches a single register in its own transaction. The device has
// no atomic multi-byte read; wider values are fetched one register at a
// time, high byte first.
func (d *Dev) readReg(reg byte) (byte, error) {
	var buf [1]byte
	if err := d.d.Tx([]byte{reg}, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// readS16 reads the signed pair at reg (high byte) then reg+1 (low byte).
func (d *Dev) readS16(reg byte) (int16, error) {
	hi, err := d.readReg(reg)
	if err != nil {
		return 0, err
	}
	lo, err := d.readReg(reg + 1)
	if err != nil {
		return 0, err
	}
	return signed16(hi, lo), nil
}

// readU16 reads the unsigned pair at reg (high byte) then reg+1 (low byte).
func (d *Dev) readU16(reg byte) (uint16, error) {
	hi, err := d.readReg(reg)
	if err != nil {
		return 0, err
	}
	lo, err := d.readReg(reg + 1)
	if err != nil {
		return 0, err
	}
	return unsigned16(hi, lo), nil
}

// writeReg writes a single register.
func (d *Dev) writeReg(reg, val byte) error {
	return d.d.Tx([]byte{reg, val}, nil)
}
