package animation

import "github.com/charmbracelet/harmonica"

// springSamples is the resolution of the precomputed spring table.
const springSamples = 120

// SpringCurve returns an easing curve that follows a damped spring released
// from 0 toward 1 over one second of simulated time. Damping ratios below 1
// overshoot before settling. The curve is pinned to 1 at t = 1 so the
// animation always ends on its target.
func SpringCurve(angularFrequency, dampingRatio float64) func(float64) float64 {
	spring := harmonica.NewSpring(harmonica.FPS(springSamples), angularFrequency, dampingRatio)

	table := make([]float64, springSamples+1)
	pos, vel := 0.0, 0.0
	for i := 1; i <= springSamples; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		table[i] = pos
	}
	table[springSamples] = 1

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		x := t * springSamples
		i := int(x)
		frac := x - float64(i)
		return table[i] + (table[i+1]-table[i])*frac
	}
}
