// Copyright 2023 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl345

import "fmt"

// Register is the address of one of the ADXL345 8-bit registers.
//
// The register space ends at 0x3F. On SPI bits 7 and 6 of the address byte
// are the read and multi-byte flags, so a Register above 0x3F overlaps them
// and does not address anything.
type Register byte

const (
	DeviceID Register = 0x00 // Device ID, reads DeviceIDValue on an ADXL345

	// 0x01 to 0x1C are reserved.

	ThreshTap    Register = 0x1D // Tap threshold
	OfsX         Register = 0x1E // X-axis offset
	OfsY         Register = 0x1F // Y-axis offset
	OfsZ         Register = 0x20 // Z-axis offset
	Dur          Register = 0x21 // Tap duration
	Latent       Register = 0x22 // Tap latency
	Window       Register = 0x23 // Tap window
	ThreshAct    Register = 0x24 // Activity threshold
	ThreshInact  Register = 0x25 // Inactivity threshold
	TimeInact    Register = 0x26 // Inactivity time
	ActInactCtl  Register = 0x27 // Axis enable control for activity/inactivity detection
	ThreshFF     Register = 0x28 // Free-fall threshold
	TimeFF       Register = 0x29 // Free-fall time
	TapAxes      Register = 0x2A // Axis control for single tap/double tap
	ActTapStatus Register = 0x2B // Source of single tap/double tap

	// Control registers

	BwRate     Register = 0x2C // Data rate and power mode control
	PowerCtl   Register = 0x2D // Power saving features control
	IntEnable  Register = 0x2E // Interrupt enable control
	IntMap     Register = 0x2F // Interrupt mapping control
	IntSource  Register = 0x30 // Source of interrupts
	DataFormat Register = 0x31 // Data format control

	// Data registers, little endian pairs.

	DataX0 Register = 0x32 // X-Axis Data 0
	DataX1 Register = 0x33 // X-Axis Data 1
	DataY0 Register = 0x34 // Y-Axis Data 0
	DataY1 Register = 0x35 // Y-Axis Data 1
	DataZ0 Register = 0x36 // Z-Axis Data 0
	DataZ1 Register = 0x37 // Z-Axis Data 1

	// FIFO

	FifoCtl    Register = 0x38 // FIFO control
	FifoStatus Register = 0x39 // FIFO status
)

const (
	// DeviceIDValue is the fixed content of the DeviceID register.
	DeviceIDValue byte = 0xE5
	// MeasureBit in PowerCtl switches the part from standby to measurement.
	MeasureBit byte = 1 << 3

	// I2CAddr is the 7-bit bus address with ALT ADDRESS tied low.
	I2CAddr uint16 = 0x53
	// I2CAltAddr is the 7-bit bus address with ALT ADDRESS tied high.
	I2CAltAddr uint16 = 0x1D

	// SPI address byte framing: bit 7 selects a read, bit 6 a multi-byte
	// transfer. Writes send the register address as is.
	spiRead      byte = 0x80
	spiMultiByte byte = 0x40

	sensitivityMask byte = 0x03
	rateMask        byte = 0x0F
)

// Registers lists every named register in address order.
var Registers = []Register{
	DeviceID, ThreshTap, OfsX, OfsY, OfsZ, Dur, Latent, Window, ThreshAct,
	ThreshInact, TimeInact, ActInactCtl, ThreshFF, TimeFF, TapAxes,
	ActTapStatus, BwRate, PowerCtl, IntEnable, IntMap, IntSource, DataFormat,
	DataX0, DataX1, DataY0, DataY1, DataZ0, DataZ1, FifoCtl, FifoStatus,
}

var registerNames = map[Register]string{
	DeviceID:     "DEVID",
	ThreshTap:    "THRESH_TAP",
	OfsX:         "OFSX",
	OfsY:         "OFSY",
	OfsZ:         "OFSZ",
	Dur:          "DUR",
	Latent:       "Latent",
	Window:       "Window",
	ThreshAct:    "THRESH_ACT",
	ThreshInact:  "THRESH_INACT",
	TimeInact:    "TIME_INACT",
	ActInactCtl:  "ACT_INACT_CTL",
	ThreshFF:     "THRESH_FF",
	TimeFF:       "TIME_FF",
	TapAxes:      "TAP_AXES",
	ActTapStatus: "ACT_TAP_STATUS",
	BwRate:       "BW_RATE",
	PowerCtl:     "POWER_CTL",
	IntEnable:    "INT_ENABLE",
	IntMap:       "INT_MAP",
	IntSource:    "INT_SOURCE",
	DataFormat:   "DATA_FORMAT",
	DataX0:       "DATAX0",
	DataX1:       "DATAX1",
	DataY0:       "DATAY0",
	DataY1:       "DATAY1",
	DataZ0:       "DATAZ0",
	DataZ1:       "DATAZ1",
	FifoCtl:      "FIFO_CTL",
	FifoStatus:   "FIFO_STATUS",
}

// String returns the datasheet name of the register, or its address when
// it has no name.
func (r Register) String() string {
	if n, ok := registerNames[r]; ok {
		return n
	}
	return fmt.Sprintf("0x%02X", byte(r))
}
