// Copyright 2023 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// adxl345 reads raw acceleration or dumps the registers of an ADXL345
// connected over I²C or SPI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/GermanBionicSystems/adxl345/adxl345"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

func dump(d *adxl345.Dev) error {
	for _, r := range adxl345.Registers {
		v, err := d.ReadRegister(r)
		if err != nil {
			return err
		}
		fmt.Printf("0x%02X %-14s 0x%02X\n", byte(r), r, v)
	}
	return nil
}

func run(d *adxl345.Dev, interval, duration time.Duration) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	stop := time.After(duration)
	for {
		select {
		case <-stop:
			return nil
		case <-t.C:
			a, err := d.Sense()
			if err != nil {
				return err
			}
			fmt.Println(a)
		}
	}
}

func mainImpl() error {
	i2cID := flag.String("i2c", "", "I²C bus to use")
	i2cAddr := flag.Uint("ia", uint(adxl345.I2CAddr), "I²C bus address to use, 0x1D when ALT ADDRESS is high")
	spiID := flag.String("spi", "", "SPI port to use, selects SPI instead of I²C")
	csName := flag.String("cs", "", "GPIO used as chip select, empty to use the port's own")
	sens := adxl345.S2G
	flag.Var(&sens, "range", "measurement range: 2g, 4g, 8g or 16g")
	interval := flag.Duration("i", 100*time.Millisecond, "interval between samples")
	duration := flag.Duration("d", 3*time.Second, "how long to sample")
	doDump := flag.Bool("dump", false, "print every named register and exit")
	verbose := flag.Bool("v", false, "verbose mode")
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}
	log.SetFlags(log.Lmicroseconds)
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}

	if _, err := host.Init(); err != nil {
		return err
	}

	opts := adxl345.DefaultOpts
	opts.Sensitivity = sens
	opts.TurnOnOnStart = !*doDump

	var t adxl345.Transport
	if *spiID != "" || *csName != "" {
		p, err := spireg.Open(*spiID)
		if err != nil {
			return err
		}
		defer p.Close()
		var cs gpio.PinOut
		if *csName != "" {
			pin := gpioreg.ByName(*csName)
			if pin == nil {
				return fmt.Errorf("invalid chip select pin %q", *csName)
			}
			cs = pin
		}
		s, err := adxl345.NewSPITransport(p, cs)
		if err != nil {
			return err
		}
		s.EnableDebug(log.Printf)
		t = s
	} else {
		b, err := i2creg.Open(*i2cID)
		if err != nil {
			return err
		}
		defer b.Close()
		i, err := adxl345.NewI2CTransport(b, uint16(*i2cAddr))
		if err != nil {
			return err
		}
		i.EnableDebug(log.Printf)
		t = i
	}

	d, err := adxl345.New(t, &opts)
	if err != nil {
		return err
	}
	log.Printf("%s", d)
	if *doDump {
		return dump(d)
	}
	err = run(d, *interval, *duration)
	if err2 := d.Halt(); err == nil {
		err = err2
	}
	return err
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "adxl345: %s.\n", err)
		os.Exit(1)
	}
}
