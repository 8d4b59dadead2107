// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package bmp180 controls a Bosch BMP180 (or BMP085) barometric pressure
// and temperature sensor over I²C.
//
// The sensor returns uncompensated ADC counts. Eleven factory calibration
// coefficients, read once from the device EEPROM, feed the integer
// compensation chain documented in the datasheet to produce temperature
// with 0.1°C resolution and pressure in Pascal. The bmp180.Dev type
// implements the physic.SenseEnv interface.
//
// **Datasheet:** https://cdn-shop.adafruit.com/datasheets/BST-BMP180-DS000-09.pdf
package bmp180
