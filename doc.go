// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package adxl345 is the root of the ADXL345 accelerometer module.
//
// The driver lives in the adxl345/adxl345 package; cmd/adxl345 is a small
// tool to poke at a sensor from the command line.
package adxl345
