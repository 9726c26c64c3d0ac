// Copyright 2023 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl345

import (
	"encoding/binary"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Sensitivity is the measurement range, bits 1:0 of DataFormat.
type Sensitivity byte

const (
	S2G  Sensitivity = 0x00 // Sensitivity at 2g
	S4G  Sensitivity = 0x01 // Sensitivity at 4g
	S8G  Sensitivity = 0x02 // Sensitivity at 8g
	S16G Sensitivity = 0x03 // Sensitivity at 16g
)

func (s Sensitivity) String() string {
	if s > S16G {
		return fmt.Sprintf("Sensitivity(%d)", byte(s))
	}
	return fmt.Sprintf("±%dg", 2<<s)
}

// Set sets the Sensitivity from "2g", "4g", "8g" or "16g". Set implements the flag.Value interface.
func (s *Sensitivity) Set(v string) error {
	switch v {
	case "2g":
		*s = S2G
	case "4g":
		*s = S4G
	case "8g":
		*s = S8G
	case "16g":
		*s = S16G
	default:
		return fmt.Errorf("unknown sensitivity %q: expected 2g, 4g, 8g or 16g", v)
	}
	return nil
}

// Rate is the output data rate code, bits 3:0 of BwRate.
type Rate byte

const (
	Rate6_25Hz Rate = 0x06
	Rate12_5Hz Rate = 0x07
	Rate25Hz   Rate = 0x08
	Rate50Hz   Rate = 0x09
	Rate100Hz  Rate = 0x0A // Power-on default
	Rate200Hz  Rate = 0x0B
	Rate400Hz  Rate = 0x0C
	Rate800Hz  Rate = 0x0D
	Rate1600Hz Rate = 0x0E
	Rate3200Hz Rate = 0x0F
)

// Frequency returns the output data rate. Each code halves the rate of the
// one above it, down to ≈0.1 Hz (3200 Hz >> 15) for code 0.
func (r Rate) Frequency() physic.Frequency {
	if byte(r) > rateMask {
		return 0
	}
	return 3200 * physic.Hertz >> (rateMask - byte(r))
}

func (r Rate) String() string {
	return r.Frequency().String()
}

var DefaultOpts = Opts{
	TurnOnOnStart:    true,
	ExpectedDeviceID: DeviceIDValue,
	Sensitivity:      S2G,
	Rate:             Rate100Hz,
}

type Opts struct {
	TurnOnOnStart    bool        // Turn on the device in measurement mode on start.
	ExpectedDeviceID byte        // Expected device ID used to verify that the device is an ADXL345.
	Sensitivity      Sensitivity // Sensitivity of the device (2G, 4G, 8G, 16G)
	Rate             Rate        // Output data rate, 0 leaves BwRate untouched.
}

// Dev is a driver for the ADXL345 accelerometer.
//
// It only shuffles raw register content; values are not scaled.
type Dev struct {
	t Transport
}

// NewI2C returns a Dev for the sensor at addr on bus.
func NewI2C(bus i2c.Bus, addr uint16, o *Opts) (*Dev, error) {
	t, err := NewI2CTransport(bus, addr)
	if err != nil {
		return nil, err
	}
	return New(t, o)
}

// NewSpi returns a Dev for the sensor on port. cs is the chip select pin
// driven by the driver, nil to use the port's hardware chip select.
func NewSpi(port spi.Port, cs gpio.PinOut, o *Opts) (*Dev, error) {
	t, err := NewSPITransport(port, cs)
	if err != nil {
		return nil, err
	}
	return New(t, o)
}

// New verifies that an ADXL345 answers on t, applies o and returns the Dev.
// A nil o is the same as DefaultOpts.
func New(t Transport, o *Opts) (*Dev, error) {
	if o == nil {
		o = &DefaultOpts
	}
	d := &Dev{t: t}
	id, err := d.DeviceID()
	if err != nil {
		return nil, err
	}
	if id != o.ExpectedDeviceID {
		return nil, &DeviceIDError{Want: o.ExpectedDeviceID, Got: id}
	}
	// The part keeps its registers across runs, so always write the range.
	if err := d.SetSensitivity(o.Sensitivity); err != nil {
		return nil, err
	}
	if o.Rate != 0 {
		if err := d.SetRate(o.Rate); err != nil {
			return nil, err
		}
	}
	if o.TurnOnOnStart {
		if err := d.TurnOn(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("ADXL345{%s}", d.t)
}

// Mode returns the bus the device is reached through.
func (d *Dev) Mode() Mode {
	return d.t.Mode()
}

// DeviceID returns the content of the DeviceID register.
func (d *Dev) DeviceID() (byte, error) {
	return d.t.ReadRegister(DeviceID)
}

// TurnOn turns on the measurement mode of the ADXL345.
// This is required before reading data from the device.
func (d *Dev) TurnOn() error {
	return d.updateRegister(PowerCtl, MeasureBit, MeasureBit)
}

// TurnOff puts the device back in standby.
func (d *Dev) TurnOff() error {
	return d.updateRegister(PowerCtl, MeasureBit, 0)
}

// Halt implements conn.Resource. It puts the device in standby.
func (d *Dev) Halt() error {
	return d.TurnOff()
}

// Sensitivity returns the configured measurement range.
func (d *Dev) Sensitivity() (Sensitivity, error) {
	v, err := d.t.ReadRegister(DataFormat)
	return Sensitivity(v & sensitivityMask), err
}

// SetSensitivity changes the measurement range, leaving the other
// DataFormat bits untouched.
func (d *Dev) SetSensitivity(s Sensitivity) error {
	switch s {
	case S2G, S4G, S8G, S16G:
		return d.updateRegister(DataFormat, sensitivityMask, byte(s))
	default:
		return fmt.Errorf("adxl345: invalid sensitivity: %d. Valid values are S2G, S4G, S8G, S16G", s)
	}
}

// Rate returns the configured output data rate.
func (d *Dev) Rate() (Rate, error) {
	v, err := d.t.ReadRegister(BwRate)
	return Rate(v & rateMask), err
}

// SetRate changes the output data rate, leaving LOW_POWER untouched.
func (d *Dev) SetRate(r Rate) error {
	if byte(r) > rateMask {
		return fmt.Errorf("adxl345: invalid rate code %#x", byte(r))
	}
	return d.updateRegister(BwRate, rateMask, byte(r))
}

// Sense reads the three axes in a single burst so that they belong to the
// same sample.
func (d *Dev) Sense() (Acceleration, error) {
	var b [6]byte
	if err := d.t.ReadRegisters(DataX0, b[:]); err != nil {
		return Acceleration{}, err
	}
	return Acceleration{
		X: int16(binary.LittleEndian.Uint16(b[0:])),
		Y: int16(binary.LittleEndian.Uint16(b[2:])),
		Z: int16(binary.LittleEndian.Uint16(b[4:])),
	}, nil
}

// ReadRegister reads a single register.
func (d *Dev) ReadRegister(reg Register) (byte, error) {
	return d.t.ReadRegister(reg)
}

// ReadRegisters reads len(b) consecutive registers starting at reg.
func (d *Dev) ReadRegisters(reg Register, b []byte) error {
	return d.t.ReadRegisters(reg, b)
}

// WriteRegister writes a 1 byte value to the specified register address.
func (d *Dev) WriteRegister(reg Register, v byte) error {
	return d.t.WriteRegister(reg, v)
}

// updateRegister replaces the bits of reg selected by mask with value.
func (d *Dev) updateRegister(reg Register, mask, value byte) error {
	cur, err := d.t.ReadRegister(reg)
	if err != nil {
		return err
	}
	return d.t.WriteRegister(reg, cur&^mask|value&mask)
}

// Acceleration is one raw sample of the three axes, in LSB.
type Acceleration struct {
	X int16
	Y int16
	Z int16
}

// String returns a string representation of the Acceleration
func (a Acceleration) String() string {
	return fmt.Sprintf("X:%d Y:%d Z:%d", a.X, a.Y, a.Z)
}

var _ conn.Resource = &Dev{}
