package palette

import (
	"main/internal/colorspace"
)

// Default appearance applied by NewRequest.
const (
	DefaultSaturation = 0.8
	DefaultLightness  = 0.6
)

// Request: parameters for one palette generation call.
type Request struct {
	Count      int
	Saturation float64
	Lightness  float64
	Offset     float64
}

// NewRequest: a request for n colors with the default appearance.
func NewRequest(n int) Request {
	return Request{
		Count:      n,
		Saturation: DefaultSaturation,
		Lightness:  DefaultLightness,
	}
}

// Generate: runs a strategy over every index and converts the results
// to hex. Accepts any Strategy, registered or caller-supplied. Output
// is fully determined by the strategy and request; two identical calls
// return identical palettes.
func Generate(s Strategy, req Request) ([]string, error) {
	if req.Count <= 0 {
		return nil, ErrInvalidCount
	}

	colors := make([]string, req.Count)
	for i := 0; i < req.Count; i++ {
		hue, sat, light := s.ColorAt(i, req.Count, req.Saturation, req.Lightness)
		r, g, b := colorspace.HSLToRGB(hue+req.Offset, sat, light)
		colors[i] = colorspace.RGBToHex(r, g, b)
	}
	return colors, nil
}

// GenerateByName: registry-dispatched form of Generate.
func GenerateByName(name string, req Request) ([]string, error) {
	s, ok := Lookup(name)
	if !ok {
		return nil, &UnknownAlgorithmError{Name: name, Valid: Names()}
	}
	return Generate(s, req)
}
