package palette

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Analysis: distinctness metrics for a generated palette.
type Analysis struct {
	// MinDistance is the smallest pairwise CIE-Lab distance in the
	// palette. Values near zero mean two entries are hard to tell
	// apart. Zero when the palette has fewer than two colors.
	MinDistance float64  `json:"minDistance"`
	Swatches    []Swatch `json:"swatches"`
}

// Swatch: per-color display metadata.
type Swatch struct {
	Hex       string  `json:"hex"`
	Luminance float64 `json:"luminance"`
	TextColor string  `json:"textColor"`
}

// Analyze: parses a generated palette and reports how visually
// distinct its entries are, plus a readable overlay text color for
// each swatch.
func Analyze(colors []string) (*Analysis, error) {
	parsed := make([]colorful.Color, len(colors))
	for i, hex := range colors {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("parse color %q: %w", hex, err)
		}
		parsed[i] = c
	}

	analysis := &Analysis{
		Swatches: make([]Swatch, len(parsed)),
	}
	for i, c := range parsed {
		_, y, _ := c.Xyz() // Y is relative luminance
		text := "#000000"
		if y < 0.4 {
			text = "#ffffff"
		}
		analysis.Swatches[i] = Swatch{
			Hex:       colors[i],
			Luminance: y,
			TextColor: text,
		}
	}

	if len(parsed) < 2 {
		return analysis, nil
	}

	min := math.Inf(1)
	for i := 0; i < len(parsed); i++ {
		for j := i + 1; j < len(parsed); j++ {
			if d := parsed[i].DistanceLab(parsed[j]); d < min {
				min = d
			}
		}
	}
	analysis.MinDistance = min
	return analysis, nil
}
