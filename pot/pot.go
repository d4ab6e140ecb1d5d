// Package pot turns raw potentiometer readings into direction/speed
// commands. Each pot goes through an auto-calibrating normalizer, so
// the knob's real mechanical range maps onto the full scale without
// per-unit tuning, and a centered dead zone so an imprecise middle
// position reliably means "stop".
package pot

const (
	// RawMax is the full-scale raw sample (10 bit ADC).
	RawMax = 1023
	// Ceiling is the upper bound of the normalized output range.
	Ceiling = 1023
	// HalfRange is the distance from the recentered zero to full
	// deflection.
	HalfRange = Ceiling / 2
	// Deadband is the half-width of the dead zone around center. A
	// centered value at exactly Deadband is already outside it.
	Deadband = 32
)

// Source is one raw analog channel returning samples in [0, RawMax].
type Source interface {
	Get() uint16
}

// Normalizer maps raw samples into [0, Ceiling] by interpolating over
// the min/max actually observed on its source. The bounds start at
// the saturated extremes and only ever widen, so a pot that swings
// 200..800 reaches both ends of the normalized scale once those
// extremes have been seen, and never needs recalibration afterwards.
type Normalizer struct {
	src Source
	min int
	max int
}

func NewNormalizer(src Source) *Normalizer {
	return &Normalizer{src: src, min: RawMax, max: 0}
}

// Read samples the source, widens the calibration bounds to include
// the sample, and interpolates it into [0, Ceiling]. While only one
// distinct raw value has been seen the observed range is zero-width
// and Read returns Ceiling; that maxed-out reading is the intended
// warm-up behavior, not an error.
func (n *Normalizer) Read() int {
	s := int(n.src.Get())
	if s < n.min {
		n.min = s
	}
	if s > n.max {
		n.max = s
	}
	if n.min == n.max {
		return Ceiling
	}
	return Ceiling * (s - n.min) / (n.max - n.min)
}

// Bounds reports the observed raw range.
func (n *Normalizer) Bounds() (min, max int) {
	return n.min, n.max
}

// Decode maps a normalized reading to a signed direction and a speed
// magnitude. Values within Deadband of center give (0, 0). The sign
// is inverted relative to the centered value: the pots are wired so
// that turning below center moves forward.
func Decode(v int) (dir, speed int) {
	c := v - HalfRange
	if c > -Deadband && c < Deadband {
		c = 0
	}
	switch {
	case c < 0:
		dir = 1
		speed = -c
	case c > 0:
		dir = -1
		speed = c
	}
	return dir, speed
}
