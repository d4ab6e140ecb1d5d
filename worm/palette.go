package worm

import "image/color"

// WindowLength is the number of LEDs the worm occupies, and the
// period of the gradient sliding along it.
const WindowLength = 12

// bandCurve is one channel's intensity over the window: five slots
// at full brightness with a softer slot at each edge, dark elsewhere.
// Hand-authored; the soft edges are what blends neighboring bands
// into a gradient instead of hard color blocks.
var bandCurve = [WindowLength]uint8{100, 255, 255, 255, 255, 255, 100, 0, 0, 0, 0, 0}

// window is the worm's rainbow gradient. All three channels use the
// same band curve shifted four slots apart, so the bands overlap at
// their soft edges: green peaks at slots 1-5, red at 5-9, blue at
// 9-1 (wrapping).
var window [WindowLength]color.RGBA

func init() {
	for i := 0; i < WindowLength; i++ {
		window[i] = color.RGBA{
			R: bandCurve[(i+WindowLength-4)%WindowLength],
			G: bandCurve[i],
			B: bandCurve[(i+WindowLength-8)%WindowLength],
			A: 255,
		}
	}
}
