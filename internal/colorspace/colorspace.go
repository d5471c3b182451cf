package colorspace

import (
	"fmt"
	"math"
)

// HSLToRGB: converts an HSL triple to integer RGB channels.
// Hue is in degrees and may be any value, including negative; it is
// wrapped into [0,360) before conversion. Saturation and lightness are
// expected in [0,1] but are not clamped here - out-of-range values flow
// through the arithmetic and produce out-of-range channels.
func HSLToRGB(hue, saturation, lightness float64) (int, int, int) {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}

	c := (1 - math.Abs(2*lightness-1)) * saturation
	x := c * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	m := lightness - c/2

	var r, g, b float64
	switch {
	case hue < 60:
		r, g, b = c, x, 0
	case hue < 120:
		r, g, b = x, c, 0
	case hue < 180:
		r, g, b = 0, c, x
	case hue < 240:
		r, g, b = 0, x, c
	case hue < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	// math.Round rounds half away from zero, which keeps the primary
	// hues (0, 120, 240) on exact 255/0 channel values.
	return int(math.Round((r + m) * 255)),
		int(math.Round((g + m) * 255)),
		int(math.Round((b + m) * 255))
}

// RGBToHex: formats RGB channels as a lowercase #rrggbb string.
// No range check - channels outside [0,255] produce garbage digits, so
// inputs must come from HSLToRGB with in-range saturation/lightness.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
