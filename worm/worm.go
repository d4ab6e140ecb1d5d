// Package worm animates a rainbow-gradient segment crawling along a
// WS2812 strip. The worm's position and the gradient's phase are two
// independent modular counters, each paced by its own counting
// trigger, all advanced from a single non-blocking loop iteration.
package worm

import (
	"image/color"

	"github.com/aykevl/ledsgo"

	"github.com/conejoninja/ledworm/pot"
)

// StripLength is the number of LEDs on the strip.
const StripLength = 144

// Settings is one loop iteration's worth of decoded pot readings.
type Settings struct {
	WormDir    int
	WormSpeed  int
	ColorDir   int
	ColorSpeed int
}

// Strip renders a full buffer of colors to the physical LEDs.
type Strip interface {
	WriteColors(buf []color.RGBA) error
}

// Engine holds the animation state: the worm's leading LED, the
// phase of the gradient inside it, and the two triggers pacing them.
type Engine struct {
	head       int
	phase      int
	wormTrig   Trigger
	colorTrig  Trigger
	brightness uint8
	leds       [StripLength]color.RGBA
}

func NewEngine() *Engine {
	return &Engine{brightness: 0xff}
}

// Head returns the worm's leading LED index.
func (e *Engine) Head() int { return e.head }

// Phase returns the gradient's phase offset into the window table.
func (e *Engine) Phase() int { return e.phase }

func (e *Engine) Brightness() uint8 { return e.brightness }

func (e *Engine) SetBrightness(b uint8) { e.brightness = b }

// Frame advances the animation by one loop iteration and renders the
// worm into the internal buffer, returning it for the strip write.
// Both triggers tick every iteration, so a centered pot keeps
// consuming iterations without producing motion. The old window is
// cleared at the pre-step position and the new one drawn at the
// post-step position; swapping that order leaves a stale trail on
// the strip whenever the worm moves.
func (e *Engine) Frame(s Settings) []color.RGBA {
	e.wormTrig.SetLevel(SpeedToLevel(s.WormSpeed))
	e.colorTrig.SetLevel(SpeedToLevel(s.ColorSpeed))

	prev := e.head
	if e.wormTrig.Tick() {
		e.head = step(e.head, s.WormDir, StripLength)
	}
	if e.colorTrig.Tick() {
		e.phase = step(e.phase, s.ColorDir, WindowLength)
	}

	for i := 0; i < WindowLength; i++ {
		e.leds[(prev+i)%StripLength] = color.RGBA{}
	}
	for i := 0; i < WindowLength; i++ {
		c := window[(e.phase+i)%WindowLength]
		e.leds[(e.head+i)%StripLength] = ledsgo.ApplyAlpha(c, e.brightness)
	}
	return e.leds[:]
}

// step advances a modular counter one position in dir, which must be
// -1, 0 or +1.
func step(i, dir, mod int) int {
	switch dir {
	case 1:
		return (i + 1) % mod
	case -1:
		return (i - 1 + mod) % mod
	}
	return i
}

// Controller wires the two pots to the engine and the strip. One
// Step is one iteration of the main loop: sample both pots, decode
// them, advance and render the animation, write the strip.
type Controller struct {
	motion *pot.Normalizer
	chroma *pot.Normalizer
	engine *Engine
	strip  Strip
}

// NewController builds a controller reading worm motion from motion,
// gradient motion from chroma, and writing frames to strip.
func NewController(motion, chroma *pot.Normalizer, strip Strip) *Controller {
	return &Controller{
		motion: motion,
		chroma: chroma,
		engine: NewEngine(),
		strip:  strip,
	}
}

func (c *Controller) Engine() *Engine { return c.engine }

func (c *Controller) Step() error {
	wd, ws := pot.Decode(c.motion.Read())
	cd, cs := pot.Decode(c.chroma.Read())
	buf := c.engine.Frame(Settings{
		WormDir:    wd,
		WormSpeed:  ws,
		ColorDir:   cd,
		ColorSpeed: cs,
	})
	return c.strip.WriteColors(buf)
}
