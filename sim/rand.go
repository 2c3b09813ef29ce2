package sim

// lcg is a tiny linear congruential generator. Each companion carries its
// own stream so behavior is reproducible per seed while differing between
// instances.
type lcg struct {
	state uint32
}

func newLCG(seed uint32) lcg {
	if seed == 0 {
		seed = 1
	}
	return lcg{state: seed}
}

func (r *lcg) next() uint32 {
	// Numerical Recipes constants
	r.state = r.state*1664525 + 1013904223
	return r.state
}

// Float returns a value in [0, 1).
func (r *lcg) Float() float64 {
	return float64(r.next()>>8) / float64(1<<24)
}

// Range returns a value in [lo, hi).
func (r *lcg) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float()
}
