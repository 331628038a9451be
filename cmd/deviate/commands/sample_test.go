package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func testApp(w *bytes.Buffer) *cli.App {
	return &cli.App{
		Name:     "deviate-test",
		Writer:   w,
		Commands: []*cli.Command{&SampleCommand, &PlotCommand},
	}
}

func writeDensityFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "density.txt")
	content := "# triangular density\n1.0 0.0\n2.0 1.0\n3.0 0.0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSampleCommand_PrintsRequestedSamples(t *testing.T) {
	path := writeDensityFile(t)
	var out bytes.Buffer
	app := testApp(&out)

	err := app.Run([]string{"deviate-test", "sample", "--file", path, "--seed", "42", "--n", "5"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		v, err := strconv.ParseFloat(line, 64)
		require.NoError(t, err, "line %q is not a number", line)
		assert.GreaterOrEqual(t, v, 1.0)
		assert.LessOrEqual(t, v, 3.0)
	}
}

func TestSampleCommand_IsDeterministicForFixedSeed(t *testing.T) {
	path := writeDensityFile(t)
	run := func() string {
		var out bytes.Buffer
		app := testApp(&out)
		require.NoError(t, app.Run([]string{"deviate-test", "sample", "--file", path, "--seed", "7", "--n", "20"}))
		return out.String()
	}
	assert.Equal(t, run(), run())
}

func TestSampleCommand_MissingFileFlagFails(t *testing.T) {
	var out bytes.Buffer
	app := testApp(&out)

	err := app.Run([]string{"deviate-test", "sample"})
	assert.ErrorContains(t, err, "missing required flag --file")
}

func TestSampleCommand_UnreadableFileFails(t *testing.T) {
	var out bytes.Buffer
	app := testApp(&out)

	err := app.Run([]string{"deviate-test", "sample", "--file", filepath.Join(t.TempDir(), "nope.txt")})
	assert.Error(t, err)
}

func TestSampleCommand_BoundsNarrowTheDomain(t *testing.T) {
	path := writeDensityFile(t)
	var out bytes.Buffer
	app := testApp(&out)

	err := app.Run([]string{"deviate-test", "sample", "--file", path, "--seed", "1", "--n", "200",
		"--xmin", "1.5", "--xmax", "2.5"})
	require.NoError(t, err)

	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		v, err := strconv.ParseFloat(line, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 1.5)
		assert.LessOrEqual(t, v, 2.5)
	}
}

func TestSampleCommand_BadBoundsFail(t *testing.T) {
	path := writeDensityFile(t)
	var out bytes.Buffer
	app := testApp(&out)

	err := app.Run([]string{"deviate-test", "sample", "--file", path, "--xmin", "0.0"})
	assert.ErrorContains(t, err, "below the lower bound")
}

func TestPlotCommand_WritesHTMLPage(t *testing.T) {
	path := writeDensityFile(t)
	output := filepath.Join(t.TempDir(), "dist.html")
	var out bytes.Buffer
	app := testApp(&out)

	err := app.Run([]string{"deviate-test", "plot", "--file", path, "--output", output})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "CDF")
}
