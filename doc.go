// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package bmp180driver is a container for the BMP180 barometer driver.
//
// The driver itself lives in the bmp180 package.
package bmp180driver
