package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_ReportsDistance(t *testing.T) {
	analysis, err := Analyze([]string{"#ff0000", "#00ff00", "#0000ff"})
	require.NoError(t, err)
	assert.Greater(t, analysis.MinDistance, 0.0)
	require.Len(t, analysis.Swatches, 3)
}

func TestAnalyze_NearDuplicatesScoreLow(t *testing.T) {
	far, err := Analyze([]string{"#ff0000", "#0000ff"})
	require.NoError(t, err)
	near, err := Analyze([]string{"#ff0000", "#fe0000"})
	require.NoError(t, err)
	assert.Less(t, near.MinDistance, far.MinDistance)
}

func TestAnalyze_SingleColor(t *testing.T) {
	analysis, err := Analyze([]string{"#336699"})
	require.NoError(t, err)
	assert.Zero(t, analysis.MinDistance)
	require.Len(t, analysis.Swatches, 1)
}

func TestAnalyze_TextColorByLuminance(t *testing.T) {
	analysis, err := Analyze([]string{"#000000", "#ffffff", "#ff0000"})
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", analysis.Swatches[0].TextColor, "black swatch gets white text")
	assert.Equal(t, "#000000", analysis.Swatches[1].TextColor, "white swatch gets black text")
	assert.Equal(t, "#ffffff", analysis.Swatches[2].TextColor, "red swatch gets white text")
}

func TestAnalyze_InvalidHex(t *testing.T) {
	_, err := Analyze([]string{"#ff0000", "not-a-color"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-color")
}

func TestAnalyze_GeneratedPalettesParse(t *testing.T) {
	for _, name := range Names() {
		colors, err := GenerateByName(name, NewRequest(12))
		require.NoError(t, err)
		analysis, err := Analyze(colors)
		require.NoError(t, err, "generated output for %s should always parse", name)
		assert.Len(t, analysis.Swatches, 12)
	}
}
