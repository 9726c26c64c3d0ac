// Copyright 2023 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl345

import (
	"errors"
	"sync"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

var errBus = errors.New("bus fault")

// regFile models the chip as 64 plain registers with an auto-incrementing
// address pointer.
type regFile struct {
	regs [0x40]byte
}

func newRegFile() *regFile {
	r := &regFile{}
	r.regs[DeviceID] = DeviceIDValue
	r.regs[BwRate] = byte(Rate100Hz)
	return r
}

func (f *regFile) write(addr byte, b []byte) {
	for i, v := range b {
		f.regs[(int(addr)+i)%len(f.regs)] = v
	}
}

func (f *regFile) read(addr byte, b []byte) {
	for i := range b {
		b[i] = f.regs[(int(addr)+i)%len(f.regs)]
	}
}

// fakeI2C is an i2c.Bus in front of a regFile. The first written byte sets
// the address pointer.
type fakeI2C struct {
	mu   sync.Mutex
	f    *regFile
	addr uint16
	ops  []conntest.IO
	err  error
}

func (b *fakeI2C) String() string { return "fakeI2C" }

func (b *fakeI2C) SetSpeed(physic.Frequency) error { return nil }

func (b *fakeI2C) Tx(addr uint16, w, r []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ops = append(b.ops, conntest.IO{W: append([]byte(nil), w...), R: append([]byte(nil), r...)})
	if b.err != nil {
		return b.err
	}
	if addr != b.addr {
		return errors.New("nack")
	}
	if len(w) == 0 {
		return errors.New("no register address")
	}
	b.f.write(w[0], w[1:])
	b.f.read(w[0], r)
	b.ops[len(b.ops)-1].R = append([]byte(nil), r...)
	return nil
}

// fakeSPI is an spi.Port in front of a regFile. It records every transfer
// and the chip select level seen during it.
type fakeSPI struct {
	mu   sync.Mutex
	f    *regFile
	cs   *gpiotest.Pin
	err  error
	ops  []conntest.IO
	csAt []gpio.Level

	freq physic.Frequency
	mode spi.Mode
	bits int
}

func (p *fakeSPI) String() string { return "fakeSPI" }

func (p *fakeSPI) LimitSpeed(physic.Frequency) error { return nil }

func (p *fakeSPI) Connect(f physic.Frequency, mode spi.Mode, bits int) (spi.Conn, error) {
	p.freq, p.mode, p.bits = f, mode, bits
	return &fakeSPIConn{p: p}, nil
}

type fakeSPIConn struct {
	p *fakeSPI
}

func (c *fakeSPIConn) String() string { return "fakeSPI" }

func (c *fakeSPIConn) Duplex() conn.Duplex { return conn.Full }

func (c *fakeSPIConn) TxPackets([]spi.Packet) error { return errors.New("not implemented") }

func (c *fakeSPIConn) Tx(w, r []byte) error {
	p := c.p
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ops = append(p.ops, conntest.IO{W: append([]byte(nil), w...)})
	if p.cs != nil {
		p.csAt = append(p.csAt, p.cs.Read())
	}
	if p.err != nil {
		return p.err
	}
	if len(w) == 0 || len(r) != len(w) {
		return errors.New("bad transfer")
	}
	addr := w[0] &^ (spiRead | spiMultiByte)
	multi := w[0]&spiMultiByte != 0
	n := len(w) - 1
	if !multi && n > 1 {
		n = 1
	}
	if w[0]&spiRead == 0 {
		p.f.write(addr, w[1:1+n])
	} else {
		p.f.read(addr, r[1:1+n])
	}
	p.ops[len(p.ops)-1].R = append([]byte(nil), r...)
	return nil
}

func newFakeSPI() (*fakeSPI, *gpiotest.Pin) {
	cs := &gpiotest.Pin{N: "CS", Num: 8, L: gpio.Low}
	return &fakeSPI{f: newRegFile(), cs: cs}, cs
}

func newFakeI2C() *fakeI2C {
	return &fakeI2C{f: newRegFile(), addr: I2CAddr}
}
