package worm

import (
	"math"

	"github.com/conejoninja/ledworm/pot"
)

// curveDivisor shapes the speed-to-rate curve. Tuned by hand against
// real pots; changing it changes how the knobs feel.
const curveDivisor = 64

// SpeedToLevel converts a pot speed magnitude into a trigger level,
// the number of loop iterations between animation steps. The speed
// is folded (zero deflection becomes the largest value) and fed
// through an exponential, so motion near the dead zone is very slow
// and fine-grained while full deflection converges on a bounded fast
// rate. The level is never below 2: a trigger that fired on every
// tick would have no usable period left to control.
func SpeedToLevel(speed int) int {
	folded := pot.HalfRange - speed
	if folded < 1 {
		folded = 1
	}
	return 1 + int(math.Pow(2, float64(folded)/curveDivisor))
}

// Trigger is a counting timer driven by loop iterations instead of
// wall-clock time. Every Tick increments a counter; when it reaches
// the level the trigger fires once and the counter starts over.
type Trigger struct {
	count int
	level int
}

// SetLevel replaces the firing level. It takes effect on the next
// Tick comparison; the running count is not rescaled.
func (t *Trigger) SetLevel(level int) {
	t.level = level
}

// Tick consumes one loop iteration and reports whether the trigger
// fired on this call.
func (t *Trigger) Tick() bool {
	t.count++
	if t.count >= t.level {
		t.count = 0
		return true
	}
	return false
}
