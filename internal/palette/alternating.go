package palette

import "math"

// Cool hue range walked by even indices.
const (
	coolStart = 200.0
	coolEnd   = 300.0
)

// Alternating: even indices walk the cool range in floor(n/2) steps,
// odd indices take the warm complement (+180 degrees) of their cool
// partner. Saturation and lightness also drift a little per index on
// larger palettes so neighboring entries stay distinguishable; those
// adjustments are clamped to [0.3,1.0] and [0.3,0.8] respectively.
type Alternating struct{}

func (Alternating) Name() string { return "alternating" }

func (Alternating) ColorAt(i, n int, saturation, lightness float64) (float64, float64, float64) {
	hueStep := (coolEnd - coolStart) / math.Max(1, float64(n/2-1))
	hue := coolStart + float64(i/2)*hueStep
	if i%2 == 1 {
		hue += 180 // warm complement of the paired cool hue
	}

	variation := math.Min(0.1, float64(n)/100)
	sat := clamp(saturation+(float64(i)*0.02-0.01*float64(n))*variation, 0.3, 1.0)
	light := clamp(lightness+(float64(i)*0.015-0.0075*float64(n))*variation, 0.3, 0.8)
	return hue, sat, light
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
