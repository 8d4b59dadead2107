// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bmp180

// calibration holds the eleven factory coefficients from the device EEPROM.
// AC4, AC5 and AC6 are unsigned, the rest are signed 16-bit values. They
// are read once at startup and never change.
type calibration struct {
	ac1, ac2, ac3 int16
	ac4, ac5, ac6 uint16
	b1, b2        int16
	mb, mc, md    int16
}

// readCalibration fetches the coefficient EEPROM. Each pair is read high
// byte first; the first bus error aborts the load.
func (d *Dev) readCalibration() (calibration, error) {
	var c calibration
	for _, f := range []struct {
		reg byte
		dst *int16
	}{
		{regCalAC1, &c.ac1},
		{regCalAC2, &c.ac2},
		{regCalAC3, &c.ac3},
		{regCalB1, &c.b1},
		{regCalB2, &c.b2},
		{regCalMB, &c.mb},
		{regCalMC, &c.mc},
		{regCalMD, &c.md},
	} {
		v, err := d.readS16(f.reg)
		if err != nil {
			return calibration{}, err
		}
		*f.dst = v
	}
	for _, f := range []struct {
		reg byte
		dst *uint16
	}{
		{regCalAC4, &c.ac4},
		{regCalAC5, &c.ac5},
		{regCalAC6, &c.ac6},
	} {
		v, err := d.readU16(f.reg)
		if err != nil {
			return calibration{}, err
		}
		*f.dst = v
	}
	return c, nil
}

// compensateTemp converts a raw temperature count into tenths of °C.
// Output value of 150 equals 15.0°C. It also returns B5, the intermediate
// the pressure chain reuses.
//
// This function has been ported from section 3.5 of the BMP180 datasheet.
// All divisions truncate toward zero and all right shifts are arithmetic.
func (c *calibration) compensateTemp(raw uint16) (int32, int64) {
	x1 := ((int64(raw) - int64(c.ac6)) * int64(c.ac5)) >> 15
	x2 := (int64(c.mc) << 11) / (x1 + int64(c.md))
	b5 := x1 + x2
	return int32((b5 + 8) >> 4), b5
}

// compensatePressure converts a raw pressure count into Pa. b5 must come
// from a temperature conversion taken right before the pressure one.
//
// This function has been ported from section 3.5 of the BMP180 datasheet.
// Intermediates are 64-bit: B7 exceeds 31 bits at normal pressures.
func (c *calibration) compensatePressure(raw int32, b5 int64, os Oversampling) int32 {
	b6 := b5 - 4000
	x1 := (int64(c.b2) * ((b6 * b6) >> 12)) >> 11
	x2 := (int64(c.ac2) * b6) >> 11
	x3 := x1 + x2
	b3 := (((int64(c.ac1)*4 + x3) << os) + 2) / 4
	x1 = (int64(c.ac3) * b6) >> 13
	x2 = (int64(c.b1) * ((b6 * b6) >> 12)) >> 16
	x3 = (x1 + x2 + 2) >> 2
	b4 := (int64(c.ac4) * (x3 + 32768)) >> 15
	b7 := (int64(raw) - b3) * (int64(50000) >> os)
	p := pressureScale(b7, b4)
	x1 = (p >> 8) * (p >> 8)
	x1 = (x1 * 3038) >> 16
	x2 = (-7357 * p) >> 16
	return int32(p + ((x1 + x2 + 3791) >> 4))
}

// pressureScale divides B7 by B4 at double scale. The datasheet computes B7
// as an unsigned 32-bit value and branches on its top bit so the doubled
// dividend cannot overflow; the test must see B7 reinterpreted as unsigned
// 32-bit, not compare the wide value directly.
func pressureScale(b7, b4 int64) int64 {
	if uint32(b7) < 0x80000000 {
		return (b7 * 2) / b4
	}
	return (b7 / b4) * 2
}
