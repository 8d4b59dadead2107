// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bmp180

import (
	"fmt"
	"math"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// DefaultAddr is the fixed I²C address of the BMP180.
const DefaultAddr uint16 = 0x77

// Opts holds the configuration options for the device.
type Opts struct {
	// Oversampling selects the pressure conversion mode. Higher settings
	// reduce noise at the cost of a longer conversion.
	Oversampling Oversampling
	// Debugf, when set, receives the raw and compensated values of every
	// reading. It is called from the reading path only, never from inside
	// the compensation math.
	Debugf func(format string, v ...interface{})
}

// DefaultOpts holds the default configuration options for the device.
var DefaultOpts = Opts{Oversampling: Standard}

// Dev represents a BMP180 sensor.
type Dev struct {
	d     *i2c.Dev
	opts  Opts
	cal   calibration
	sleep func(time.Duration)

	mu   sync.Mutex
	stop chan struct{}
	wg   sync.WaitGroup
}

// NewI2C returns an object that communicates over I²C to a BMP180 barometer.
// The oversampling setting is validated and the calibration EEPROM is read
// once; the coefficients never change afterward. The Opts can be nil.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if !opts.Oversampling.valid() {
		return nil, &InvalidOversamplingError{Setting: opts.Oversampling}
	}
	d := &Dev{
		d:     &i2c.Dev{Bus: b, Addr: DefaultAddr},
		opts:  *opts,
		sleep: time.Sleep,
	}
	var err error
	if d.cal, err = d.readCalibration(); err != nil {
		return nil, fmt.Errorf("bmp180: reading calibration eeprom: %w", err)
	}
	return d, nil
}

// readRawTemperature starts a temperature conversion and fetches the 16-bit
// result. The wait must fully elapse before the result registers are valid.
func (d *Dev) readRawTemperature() (uint16, error) {
	if err := d.writeReg(regControl, cmdConvertTemp); err != nil {
		return 0, err
	}
	d.sleep(tempConversionDelay)
	return d.readU16(regData)
}

// readRawPressure starts a pressure conversion at the configured
// oversampling and assembles the result, up to 19 bits at UltraHighRes.
func (d *Dev) readRawPressure() (int32, error) {
	os := d.opts.Oversampling
	if err := d.writeReg(regControl, cmdConvertPressure|byte(os)<<6); err != nil {
		return 0, err
	}
	d.sleep(pressureConversionDelay[os])
	msb, err := d.readReg(regData)
	if err != nil {
		return 0, err
	}
	lsb, err := d.readReg(regData + 1)
	if err != nil {
		return 0, err
	}
	xlsb, err := d.readReg(regData + 2)
	if err != nil {
		return 0, err
	}
	return (int32(msb)<<16 | int32(lsb)<<8 | int32(xlsb)) >> (8 - os), nil
}

func (d *Dev) temperature() (physic.Temperature, error) {
	raw, err := d.readRawTemperature()
	if err != nil {
		return 0, err
	}
	tenths, _ := d.cal.compensateTemp(raw)
	d.debugf("bmp180: raw temperature %d -> %d (0.1 °C)", raw, tenths)
	return physic.ZeroCelsius + physic.Temperature(tenths)*100*physic.MilliKelvin, nil
}

func (d *Dev) pressure() (physic.Pressure, error) {
	// The pressure chain needs a fresh B5, so a temperature conversion is
	// run first even when the caller just measured temperature.
	rawT, err := d.readRawTemperature()
	if err != nil {
		return 0, err
	}
	_, b5 := d.cal.compensateTemp(rawT)
	rawP, err := d.readRawPressure()
	if err != nil {
		return 0, err
	}
	pa := d.cal.compensatePressure(rawP, b5, d.opts.Oversampling)
	d.debugf("bmp180: raw pressure %d (b5 %d) -> %d Pa", rawP, b5, pa)
	return physic.Pressure(pa) * physic.Pascal, nil
}

// Temperature takes a single temperature reading.
func (d *Dev) Temperature() (physic.Temperature, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.temperature()
}

// Pressure takes a single pressure reading.
func (d *Dev) Pressure() (physic.Pressure, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pressure()
}

// Sense reads temperature and pressure from the device. On any bus error
// env is left untouched. Implements physic.SenseEnv.
func (d *Dev) Sense(env *physic.Env) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	t, err := d.temperature()
	if err != nil {
		return err
	}
	p, err := d.pressure()
	if err != nil {
		return err
	}
	env.Temperature = t
	env.Pressure = p
	return nil
}

// SenseContinuous continuously reads from the device and writes the values
// to the returned channel. Implements physic.SenseEnv. To terminate the
// continuous read, call Halt().
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	d.mu.Lock()
	if d.stop != nil {
		d.mu.Unlock()
		return nil, fmt.Errorf("bmp180: already sensing continuously")
	}
	d.stop = make(chan struct{})
	d.wg.Add(1)
	d.mu.Unlock()

	sensing := make(chan physic.Env, 16)
	go func(stop <-chan struct{}) {
		defer d.wg.Done()
		defer close(sensing)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				e := physic.Env{}
				if err := d.Sense(&e); err == nil {
					select {
					case sensing <- e:
					default:
					}
				}
			}
		}
	}(d.stop)
	return sensing, nil
}

// Precision returns the sensor's resolution: 0.1°C and 1Pa. Implements
// physic.SenseEnv.
func (d *Dev) Precision(env *physic.Env) {
	env.Temperature = 100 * physic.MilliKelvin
	env.Pressure = physic.Pascal
	env.Humidity = 0
}

// Halt stops a SenseContinuous operation if one is in progress. Implements
// conn.Resource.
func (d *Dev) Halt() error {
	d.mu.Lock()
	if d.stop == nil {
		d.mu.Unlock()
		return nil
	}
	stop := d.stop
	d.stop = nil
	// Release the lock before waiting: the sensing goroutine may be inside
	// Sense and needs it to finish.
	d.mu.Unlock()
	close(stop)
	d.wg.Wait()
	return nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("bmp180: %s", d.d.String())
}

func (d *Dev) debugf(format string, v ...interface{}) {
	if d.opts.Debugf != nil {
		d.opts.Debugf(format, v...)
	}
}

// Altitude estimates the altitude at a measured pressure p, given the
// current sea level pressure qnh, using the international barometric
// formula from section 3.6 of the datasheet.
func Altitude(p, qnh physic.Pressure) physic.Distance {
	m := 44330.0 * (1.0 - math.Pow(float64(p)/float64(qnh), 1.0/5.255))
	return physic.Distance(m * float64(physic.Metre))
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
