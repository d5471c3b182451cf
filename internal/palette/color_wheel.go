package palette

import "math"

// The six base hues: red, yellow, green, cyan, blue, magenta.
var baseHues = [6]float64{0, 60, 120, 180, 240, 300}

// ColorWheel: anchors palettes on the six classic wheel hues. Up to
// six colors the base hues are used directly; beyond that, entries are
// interpolated linearly between consecutive base hues.
type ColorWheel struct{}

func (ColorWheel) Name() string { return "color_wheel" }

func (ColorWheel) ColorAt(i, n int, saturation, lightness float64) (float64, float64, float64) {
	if n <= 6 {
		return baseHues[i%6], saturation, lightness
	}

	segment := float64(n) / 6
	// Float rounding at segment edges can push the index to 6, one
	// past the table, so reduce it modulo 6 before the lookup.
	base := int(float64(i)/segment) % 6
	next := (base + 1) % 6
	ratio := math.Mod(float64(i), segment) / segment
	hue := baseHues[base] + (baseHues[next]-baseHues[base])*ratio
	return hue, saturation, lightness
}
