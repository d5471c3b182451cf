package palette

// Equidistant: splits the wheel into n equal arcs. The simplest
// distribution, and the one with the widest minimum hue gap for a
// given count.
type Equidistant struct{}

func (Equidistant) Name() string { return "equidistant" }

func (Equidistant) ColorAt(i, n int, saturation, lightness float64) (float64, float64, float64) {
	hue := float64(i) / float64(n) * 360
	return hue, saturation, lightness
}
