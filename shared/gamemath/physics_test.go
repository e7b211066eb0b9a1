package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitRemainderHalfSpeedHasNoDrift(t *testing.T) {
	var rest float64
	steps := make([]int, 0, 40)
	for i := 0; i < 40; i++ {
		var step int
		step, rest = SplitRemainder(rest, 0.5)
		steps = append(steps, step)
		assert.Less(t, math.Abs(rest), 1.0)
	}

	for i := 0; i+4 <= len(steps); i++ {
		sum := steps[i] + steps[i+1] + steps[i+2] + steps[i+3]
		assert.Equal(t, 2, sum, "window starting at tick %d", i)
	}
}

func TestSplitRemainderTracksVelocity(t *testing.T) {
	tests := []struct {
		name     string
		velocity float64
		ticks    int
	}{
		{"slow positive", 0.3, 100},
		{"slow negative", -0.7, 100},
		{"fast", 12.25, 64},
		{"whole", 4, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var rest float64
			total := 0
			for i := 0; i < tc.ticks; i++ {
				var step int
				step, rest = SplitRemainder(rest, tc.velocity)
				total += step
				assert.Less(t, math.Abs(rest), 1.0)
			}
			expected := tc.velocity * float64(tc.ticks)
			assert.InDelta(t, expected, float64(total), 1.0)
		})
	}
}

func TestSplitRemainderRoundsHalfAwayFromZero(t *testing.T) {
	step, rest := SplitRemainder(0, 0.5)
	assert.Equal(t, 1, step)
	assert.InDelta(t, -0.5, rest, 1e-9)

	step, rest = SplitRemainder(0, -0.5)
	assert.Equal(t, -1, step)
	assert.InDelta(t, 0.5, rest, 1e-9)
}

func TestClampMaxHasNoLowerBound(t *testing.T) {
	assert.Equal(t, 16.0, ClampMax(20, 16))
	assert.Equal(t, -40.0, ClampMax(-40, 16))
	assert.Equal(t, 3.0, ClampMax(3, 16))
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1, Sign(7))
	assert.Equal(t, -1, Sign(-2))
	assert.Equal(t, 0, Sign(0))
}
