package palette

import "math"

const goldenRatio = 0.618033988749895

// GoldenRatio: steps the hue by the golden ratio conjugate each index.
// The step is irrational, so hues spread over the wheel without ever
// landing on the same angle twice.
type GoldenRatio struct{}

func (GoldenRatio) Name() string { return "golden_ratio" }

func (GoldenRatio) ColorAt(i, n int, saturation, lightness float64) (float64, float64, float64) {
	step := float64(i) * goldenRatio
	hue := (step - math.Floor(step)) * 360
	return hue, saturation, lightness
}
