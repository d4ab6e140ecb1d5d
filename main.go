//go:build tinygo

// Drives a WS2812 RGB LED strip with 144 LEDS as a rainbow "worm":
// a 12 LED gradient window crawling along the strip.
//
// Two potentiometers steer it, one for the worm's motion and one for
// the gradient sliding inside it. Both pots self-calibrate: sweep a
// pot once end to end and its full mechanical range maps onto full
// speed both ways, with a dead zone in the middle to park it. A
// serial console ("status", "cal", "bright") is available for
// poking at the running animation.
package main

import (
	"errors"
	"fmt"
	"io"
	"machine"
	"strconv"

	"tinygo.org/x/drivers/ws2812"

	"github.com/conejoninja/ledworm/console"
	"github.com/conejoninja/ledworm/pot"
	"github.com/conejoninja/ledworm/worm"
)

var (
	neo machine.Pin

	neopixelsPin = machine.A2
	motionPin    = machine.A1
	chromaPin    = machine.A3
	btnAPin      = machine.BUTTONA

	btnAPressed = false

	brightLevels = []uint8{0x40, 0x80, 0xff}
)

// adc10 narrows machine's 16 bit ADC readings to the 10 bit range
// the calibration works in.
type adc10 struct {
	machine.ADC
}

func (a adc10) Get() uint16 {
	return a.ADC.Get() >> 6
}

func main() {
	machine.InitADC()

	neo = neopixelsPin
	neo.Configure(machine.PinConfig{Mode: machine.PinOutput})
	ws := ws2812.NewWS2812(neo)

	btnAPin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	motionADC := machine.ADC{Pin: motionPin}
	motionADC.Configure(machine.ADCConfig{})
	chromaADC := machine.ADC{Pin: chromaPin}
	chromaADC.Configure(machine.ADCConfig{})

	motion := pot.NewNormalizer(adc10{motionADC})
	chroma := pot.NewNormalizer(adc10{chromaADC})

	ctrl := worm.NewController(motion, chroma, ws)

	sh := console.New(machine.Serial)
	registerCommands(sh, ctrl, motion, chroma)

	brightIdx := len(brightLevels) - 1
	for {
		if !btnAPin.Get() {
			if !btnAPressed {
				brightIdx++
				if brightIdx >= len(brightLevels) {
					brightIdx = 0
				}
				ctrl.Engine().SetBrightness(brightLevels[brightIdx])
			}
			btnAPressed = true
		} else {
			btnAPressed = false
		}

		sh.Poll()
		ctrl.Step()
	}
}

func registerCommands(sh *console.Console, ctrl *worm.Controller, motion, chroma *pot.Normalizer) {
	sh.Register("status", func(w io.Writer, args []string) error {
		e := ctrl.Engine()
		_, err := fmt.Fprintf(w, "head=%d phase=%d bright=%d\r\n", e.Head(), e.Phase(), e.Brightness())
		return err
	})

	sh.Register("cal", func(w io.Writer, args []string) error {
		min, max := motion.Bounds()
		if _, err := fmt.Fprintf(w, "motion %d..%d\r\n", min, max); err != nil {
			return err
		}
		min, max = chroma.Bounds()
		_, err := fmt.Fprintf(w, "chroma %d..%d\r\n", min, max)
		return err
	})

	sh.Register("bright", func(w io.Writer, args []string) error {
		if len(args) != 1 {
			return errors.New("usage: bright <0-255>")
		}
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 0 || v > 255 {
			return errors.New("usage: bright <0-255>")
		}
		ctrl.Engine().SetBrightness(uint8(v))
		return nil
	})
}
