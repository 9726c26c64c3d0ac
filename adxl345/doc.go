// Copyright 2023 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package adxl345 controls an ADXL345 3-axis accelerometer over I²C or SPI.
//
// The package is a thin register access layer. Transport is implemented by
// I2CTransport and SPITransport, which frame register reads and writes the
// way the part expects on each bus. Dev adds a few conveniences on top of a
// Transport (identity check, measurement mode, range, data rate, a burst
// read of the three axes) but never scales or filters the raw counts.
//
// # Bus ownership
//
// The i2c.Bus or spi.Port handed to a constructor stays owned by the caller,
// who closes it once every Dev on it is done. On SPI the chip select bracket
// of a transaction is only serialized within one SPITransport; when several
// devices share a port with software chip selects, wrap their calls in a
// common lock.
//
// # Datasheet
//
// http://www.analog.com/media/en/technical-documentation/data-sheets/ADXL345.pdf
package adxl345
