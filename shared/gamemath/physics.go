package gamemath

import "math"

// ClampMax caps speed at max. There is no lower bound.
func ClampMax(speed, max float64) float64 {
	if speed > max {
		return max
	}
	return speed
}

// SplitRemainder adds velocity to the carried remainder and splits the sum into a
// whole-pixel step and the fraction left over. The step is the nearest integer
// (halves round away from zero) so |rest| <= 0.5 and the long-run sum of steps
// tracks the sum of velocities.
func SplitRemainder(remainder, velocity float64) (step int, rest float64) {
	sum := remainder + velocity
	step = int(math.Round(sum))
	return step, sum - float64(step)
}

// Sign returns -1, 0 or 1.
func Sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
