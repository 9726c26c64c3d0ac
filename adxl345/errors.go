// Copyright 2023 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl345

import (
	"errors"
	"fmt"
)

// ErrInvalidBuffer is returned by ReadRegisters when the destination is nil
// or empty. No bus transfer happens in that case.
var ErrInvalidBuffer = errors.New("adxl345: destination buffer is nil or empty")

// BusError reports a failure of the underlying bus or chip select line while
// accessing a register.
type BusError struct {
	Op  string // "write", "read" or "burst read"
	Reg Register
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("adxl345: %s %s: %v", e.Op, e.Reg, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}

// DeviceIDError is returned when the DeviceID register does not hold the
// expected value, usually because another part answers on the bus.
type DeviceIDError struct {
	Want byte
	Got  byte
}

func (e *DeviceIDError) Error() string {
	return fmt.Sprintf("adxl345: wrong device connected, expected device ID %#x, got %#x", e.Want, e.Got)
}
