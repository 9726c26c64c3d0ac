// Copyright 2023 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl345

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// SPI settings used by NewSPITransport. The ADXL345 accepts up to 5 MHz and
// only works in mode 3.
var (
	SpiFrequency = physic.MegaHertz * 5
	SpiMode      = spi.Mode3 // Clock idles high, data is sampled on the trailing edge.
	SpiBits      = 8
)

// Mode is the serial bus used to reach the sensor.
type Mode int

const (
	ModeI2C Mode = iota
	ModeSPI
)

func (m Mode) String() string {
	switch m {
	case ModeI2C:
		return "I²C"
	case ModeSPI:
		return "SPI"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// DebugF the debug function type.
type DebugF func(string, ...interface{})

// Transport is register level access to an ADXL345.
//
// ReadRegisters relies on the part auto-incrementing its address pointer, so
// len(b) consecutive registers starting at reg are read in one transaction.
type Transport interface {
	fmt.Stringer
	Mode() Mode
	WriteRegister(reg Register, v byte) error
	ReadRegister(reg Register) (byte, error)
	ReadRegisters(reg Register, b []byte) error
}

// I2CTransport talks to the sensor on an I²C bus.
//
// The bus is owned by the caller; several transports may share it since
// i2c.Bus implementations serialize transactions.
type I2CTransport struct {
	d     *i2c.Dev
	debug DebugF
}

// NewI2CTransport returns a transport for the sensor at addr on bus. Use
// I2CAddr or I2CAltAddr depending on how the ALT ADDRESS pin is wired.
func NewI2CTransport(bus i2c.Bus, addr uint16) (*I2CTransport, error) {
	if bus == nil {
		return nil, fmt.Errorf("adxl345: nil I²C bus")
	}
	if addr > 0x7F {
		return nil, fmt.Errorf("adxl345: invalid I²C address %#x", addr)
	}
	return &I2CTransport{d: &i2c.Dev{Bus: bus, Addr: addr}, debug: noop}, nil
}

// EnableDebug Sets the debugging output using the local print function.
func (t *I2CTransport) EnableDebug(f DebugF) {
	t.debug = f
}

func (t *I2CTransport) String() string {
	return fmt.Sprintf("I²C %s", t.d)
}

// Mode returns ModeI2C.
func (t *I2CTransport) Mode() Mode {
	return ModeI2C
}

// WriteRegister sends the register address followed by the value in a single
// write transaction.
func (t *I2CTransport) WriteRegister(reg Register, v byte) error {
	t.debug("write register %s value %#x", reg, v)
	if err := t.d.Tx([]byte{byte(reg), v}, nil); err != nil {
		return &BusError{Op: "write", Reg: reg, Err: err}
	}
	return nil
}

// ReadRegister writes the register address then reads one byte with a
// repeated start.
func (t *I2CTransport) ReadRegister(reg Register) (byte, error) {
	var r [1]byte
	if err := t.d.Tx([]byte{byte(reg)}, r[:]); err != nil {
		return 0, &BusError{Op: "read", Reg: reg, Err: err}
	}
	t.debug("read register %s: %#x", reg, r[0])
	return r[0], nil
}

// ReadRegisters reads len(b) registers starting at reg into b.
func (t *I2CTransport) ReadRegisters(reg Register, b []byte) error {
	if len(b) == 0 {
		return ErrInvalidBuffer
	}
	if err := t.d.Tx([]byte{byte(reg)}, b); err != nil {
		return &BusError{Op: "burst read", Reg: reg, Err: err}
	}
	t.debug("read %d registers from %s: % x", len(b), reg, b)
	return nil
}

// SPITransport talks to the sensor on a 4-wire SPI port.
//
// When a chip select pin is given it is driven low around each register
// transaction, otherwise the port's own chip select is relied upon. The
// transactions of one SPITransport never interleave. Transports sharing a
// port with software chip selects must be serialized by the caller.
type SPITransport struct {
	mu    sync.Mutex
	conn  spi.Conn
	cs    gpio.PinOut
	debug DebugF
}

// NewSPITransport connects port in mode 3 and parks cs high. cs may be nil.
func NewSPITransport(port spi.Port, cs gpio.PinOut) (*SPITransport, error) {
	if port == nil {
		return nil, fmt.Errorf("adxl345: nil SPI port")
	}
	conn, err := port.Connect(SpiFrequency, SpiMode, SpiBits)
	if err != nil {
		return nil, fmt.Errorf("adxl345: can't initialize SPI: %w", err)
	}
	if cs != nil {
		if err := cs.Out(gpio.High); err != nil {
			return nil, fmt.Errorf("adxl345: can't set chip select %s: %w", cs, err)
		}
	}
	return &SPITransport{conn: conn, cs: cs, debug: noop}, nil
}

// EnableDebug Sets the debugging output using the local print function.
func (t *SPITransport) EnableDebug(f DebugF) {
	t.debug = f
}

func (t *SPITransport) String() string {
	if t.cs == nil {
		return fmt.Sprintf("SPI %s", t.conn)
	}
	return fmt.Sprintf("SPI %s CS %s", t.conn, t.cs)
}

// Mode returns ModeSPI.
func (t *SPITransport) Mode() Mode {
	return ModeSPI
}

// WriteRegister sends the plain register address followed by the value.
func (t *SPITransport) WriteRegister(reg Register, v byte) error {
	t.debug("write register %s value %#x", reg, v)
	var (
		w = [...]byte{byte(reg), v}
		r [2]byte
	)
	if err := t.tx(w[:], r[:]); err != nil {
		return &BusError{Op: "write", Reg: reg, Err: err}
	}
	return nil
}

// ReadRegister sends the address with the read bit set and clocks out the
// content with a dummy byte.
func (t *SPITransport) ReadRegister(reg Register) (byte, error) {
	var (
		w = [...]byte{spiRead | byte(reg), 0}
		r [2]byte
	)
	if err := t.tx(w[:], r[:]); err != nil {
		return 0, &BusError{Op: "read", Reg: reg, Err: err}
	}
	t.debug("read register %s: %#x", reg, r[1])
	return r[1], nil
}

// ReadRegisters reads len(b) registers starting at reg into b under a single
// chip select assertion. The multi-byte bit is only set when len(b) > 1.
func (t *SPITransport) ReadRegisters(reg Register, b []byte) error {
	if len(b) == 0 {
		return ErrInvalidBuffer
	}
	w := make([]byte, len(b)+1)
	r := make([]byte, len(w))
	w[0] = spiRead | byte(reg)
	if len(b) > 1 {
		w[0] |= spiMultiByte
	}
	if err := t.tx(w, r); err != nil {
		return &BusError{Op: "burst read", Reg: reg, Err: err}
	}
	copy(b, r[1:])
	t.debug("read %d registers from %s: % x", len(b), reg, b)
	return nil
}

// tx runs one full duplex transfer bracketed by the chip select. The chip
// select is released even when the transfer fails.
func (t *SPITransport) tx(w, r []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cs == nil {
		return t.conn.Tx(w, r)
	}
	if err := t.cs.Out(gpio.Low); err != nil {
		return err
	}
	err := t.conn.Tx(w, r)
	if err2 := t.cs.Out(gpio.High); err == nil {
		err = err2
	}
	return err
}

func noop(string, ...interface{}) {}

var (
	_ Transport = &I2CTransport{}
	_ Transport = &SPITransport{}
)
