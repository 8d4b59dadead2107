// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package example

import (
	"fmt"
	"log"
	"time"

	"github.com/eddienigma/rpi-go-bmp180/bmp180"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

// Example reads the barometer once a second for ten seconds and prints the
// temperature in °C and °F, the pressure in hPa and the pressure altitude.
func Example() {

	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use i2creg I²C bus registry to find the first available I²C bus.
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	d, err := bmp180.NewI2C(b, &bmp180.Opts{Oversampling: bmp180.UltraHighRes})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(d.String())

	// Standard sea level pressure; substitute the local QNH for a real
	// altitude.
	const qnh = 101325 * physic.Pascal

	for i := 0; i < 10; i++ {
		e := physic.Env{}
		if err := d.Sense(&e); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%.1f °C / %.1f °F  %.2f hPa  altitude %s\n",
			e.Temperature.Celsius(),
			e.Temperature.Fahrenheit(),
			float64(e.Pressure)/float64(100*physic.Pascal),
			bmp180.Altitude(e.Pressure, qnh))
		time.Sleep(time.Second)
	}
}
