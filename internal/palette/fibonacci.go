package palette

import "math"

// fibonacciRatio is 1 - goldenRatio, the limit of ratios of
// consecutive Fibonacci numbers taken the other way around.
const fibonacciRatio = 0.381966011250105

// Fibonacci: same structure as GoldenRatio with the complementary
// irrational step, producing a different but equally non-repeating
// walk around the wheel.
type Fibonacci struct{}

func (Fibonacci) Name() string { return "fibonacci" }

func (Fibonacci) ColorAt(i, n int, saturation, lightness float64) (float64, float64, float64) {
	step := float64(i) * fibonacciRatio
	hue := (step - math.Floor(step)) * 360
	return hue, saturation, lightness
}
