// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bmp180

import "fmt"

// InvalidOversamplingError is returned when the requested oversampling
// setting is outside the four values the device defines. It is reported
// before any bus traffic happens.
type InvalidOversamplingError struct {
	Setting Oversampling
}

func (e *InvalidOversamplingError) Error() string {
	return fmt.Sprintf("bmp180: invalid oversampling setting %d, want 0..3", uint8(e.Setting))
}
