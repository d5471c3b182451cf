package palette

// Strategy: maps one palette index to its HSL coordinates.
//
// ColorAt returns the base hue in degrees for entry i of an n-color
// palette, plus the saturation and lightness that entry should use.
// Most strategies pass saturation and lightness through untouched;
// Alternating perturbs them per index. The generate loop applies the
// hue offset and wrapping, so implementations work in raw wheel
// coordinates. Strategies hold no mutable state and are safe to share.
type Strategy interface {
	Name() string
	ColorAt(i, n int, saturation, lightness float64) (hue, sat, light float64)
}
