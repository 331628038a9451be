package visualizer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumetric/deviate/dist"
	"github.com/lumetric/deviate/rng"
)

func TestRenderHTML_WritesBothCharts(t *testing.T) {
	s, err := dist.New(rng.NewWithSeed(1), dist.FromArrays([]float64{0, 1, 2}, []float64{1, 3, 1}), dist.Config{})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dist.html")
	require.NoError(t, RenderHTML(s, "triangle", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "triangle")
	assert.Contains(t, html, "CDF")
	assert.Contains(t, html, "Density")
}

func TestRenderHTML_CompressedSamplerHasNoDensityChart(t *testing.T) {
	s, err := dist.New(nil, dist.FromArrays([]float64{0, 1, 2}, []float64{1, 3, 1}), dist.Config{MaxPoints: 16})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dist.html")
	require.NoError(t, RenderHTML(s, "compressed", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Density")
	assert.Contains(t, string(data), "CDF")
}

func TestRenderHTML_BadPathFails(t *testing.T) {
	s, err := dist.New(nil, dist.FromArrays([]float64{0, 1}, []float64{1, 1}), dist.Config{})
	require.NoError(t, err)

	err = RenderHTML(s, "x", filepath.Join(t.TempDir(), "missing", "dist.html"))
	assert.Error(t, err)
}

func TestConvertPoints(t *testing.T) {
	items := convertPoints([]float64{1, 2}, []float64{10, 20})
	require.Len(t, items, 2)
	assert.Equal(t, [2]float64{1, 10}, items[0].Value)
	assert.Equal(t, [2]float64{2, 20}, items[1].Value)
}

func TestRenderHTML_OutputIsSelfContained(t *testing.T) {
	s, err := dist.New(nil, dist.FromArrays([]float64{0, 1}, []float64{1, 1}), dist.Config{})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dist.html")
	require.NoError(t, RenderHTML(s, "uniform", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "<html"))
}
