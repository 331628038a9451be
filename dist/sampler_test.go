package dist

import (
	"math"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumetric/deviate/rng"
	"github.com/lumetric/deviate/table"
)

func ptr(v float64) *float64 { return &v }

func TestSampler_ArrayDrawsStayInDomain(t *testing.T) {
	s, err := New(rng.NewWithSeed(1062533), FromArrays([]float64{1, 2, 3}, []float64{1, 2, 3}), Config{})
	require.NoError(t, err)

	for i := 0; i < 10000; i++ {
		x := s.Draw()
		require.GreaterOrEqual(t, x, s.XMin())
		require.LessOrEqual(t, x, s.XMax())
		require.GreaterOrEqual(t, x, 1.0)
		require.LessOrEqual(t, x, 3.0)
	}
}

func TestSampler_DeterministicForFixedSeed(t *testing.T) {
	build := func(seed uint64) *Sampler {
		s, err := New(rng.NewWithSeed(seed), FromArrays([]float64{0, 1, 2}, []float64{1, 3, 1}), Config{})
		require.NoError(t, err)
		return s
	}
	a, b := build(999), build(999)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Draw(), b.Draw(), "draw %d differs", i)
	}

	c := build(1000)
	d := build(999)
	same := 0
	for i := 0; i < 1000; i++ {
		if c.Draw() == d.Draw() {
			same++
		}
	}
	assert.Less(t, same, 10, "different seeds must give different sequences")
}

func TestSampler_ConfigurationErrors(t *testing.T) {
	t.Run("nil spec", func(t *testing.T) {
		_, err := New(nil, nil, Config{})
		assert.ErrorContains(t, err, "no density specification")
	})

	t.Run("nil function", func(t *testing.T) {
		_, err := New(nil, FromFunc(nil), Config{})
		assert.ErrorContains(t, err, "nil density function")
	})

	t.Run("x without p", func(t *testing.T) {
		_, err := New(nil, FromArrays([]float64{1, 2, 3}, nil), Config{})
		assert.ErrorContains(t, err, "different lengths")
	})

	t.Run("empty arrays", func(t *testing.T) {
		_, err := New(nil, FromArrays(nil, nil), Config{})
		assert.ErrorContains(t, err, "no x values")
	})

	t.Run("xmin below array domain", func(t *testing.T) {
		_, err := New(nil, FromArrays([]float64{1, 2, 3}, []float64{1, 1, 1}), Config{XMin: ptr(0.5)})
		assert.ErrorContains(t, err, "below the lower bound")
	})

	t.Run("xmax above array domain", func(t *testing.T) {
		_, err := New(nil, FromArrays([]float64{1, 2, 3}, []float64{1, 1, 1}), Config{XMax: ptr(3.5)})
		assert.ErrorContains(t, err, "above the upper bound")
	})

	t.Run("bounds in wrong order", func(t *testing.T) {
		_, err := New(nil, FromFunc(func(x float64) float64 { return 1 }), Config{XMin: ptr(2), XMax: ptr(1)})
		assert.ErrorContains(t, err, "does not exceed")
	})

	t.Run("bad npoints", func(t *testing.T) {
		_, err := New(nil, FromFunc(func(x float64) float64 { return 1 }), Config{XMin: ptr(0), XMax: ptr(1), NPoints: 1})
		assert.ErrorContains(t, err, "npoints")
	})
}

func TestSampler_UniformMeanAndKS(t *testing.T) {
	s, err := New(rng.NewWithSeed(215324), FromFunc(func(x float64) float64 { return 1 }),
		Config{XMin: ptr(0), XMax: ptr(1)})
	require.NoError(t, err)

	n := 100000
	draws := make([]float64, n)
	sum := 0.0
	for i := range draws {
		draws[i] = s.Draw()
		sum += draws[i]
	}
	assert.InDelta(t, 0.5, sum/float64(n), 0.005)

	// Kolmogorov-Smirnov statistic against Uniform(0,1) with the
	// critical value for alpha = 0.01.
	sort.Float64s(draws)
	d := 0.0
	for i, x := range draws {
		lo := math.Abs(x - float64(i)/float64(n))
		hi := math.Abs(float64(i+1)/float64(n) - x)
		d = math.Max(d, math.Max(lo, hi))
	}
	critical := 1.63 / math.Sqrt(float64(n))
	assert.Less(t, d, critical, "draws fail the uniformity check")
}

func TestSampler_SupportDiscoveryForDistantBump(t *testing.T) {
	s, err := New(rng.NewWithSeed(1), FromFunc(bump(40.5, 0.5)), Config{})
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		x := s.Draw()
		require.Greater(t, x, 35.0)
		require.Less(t, x, 46.0)
	}
}

func TestSampler_SupportDiscoveryOutOfBudgetFails(t *testing.T) {
	_, err := New(nil, FromFunc(bump(950.5, 0.5)), Config{})
	assert.ErrorContains(t, err, "positive density")
}

func TestSampler_CumulativeTableProperties(t *testing.T) {
	s, err := New(nil, FromArrays([]float64{0, 0.5, 1}, []float64{2e8, 1e8, 3e8}), Config{})
	require.NoError(t, err)

	_, cdf := s.Points()
	require.NotEmpty(t, cdf)
	assert.Equal(t, 1.0, cdf[len(cdf)-1], "cdf must end at exactly 1 regardless of input scale")
	for i := 1; i < len(cdf); i++ {
		assert.Greater(t, cdf[i], cdf[i-1])
	}
}

func TestSampler_SharedSourceDrawsOneStream(t *testing.T) {
	spec := FromArrays([]float64{0, 1}, []float64{1, 1})

	a, err := New(rng.NewWithSeed(42), spec, Config{})
	require.NoError(t, err)
	b, err := New(rng.Shared(a.Source()), spec, Config{})
	require.NoError(t, err)

	reference, err := New(rng.NewWithSeed(42), spec, Config{})
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		assert.Equal(t, reference.Draw(), a.Draw())
		assert.Equal(t, reference.Draw(), b.Draw())
	}
}

func TestSampler_SeedDetachesAndResetReattaches(t *testing.T) {
	spec := FromArrays([]float64{0, 1}, []float64{1, 1})

	a, err := New(rng.NewWithSeed(42), spec, Config{})
	require.NoError(t, err)
	b, err := New(rng.Shared(a.Source()), spec, Config{})
	require.NoError(t, err)

	b.Seed(7)
	refA, err := New(rng.NewWithSeed(42), spec, Config{})
	require.NoError(t, err)
	refB, err := New(rng.NewWithSeed(7), spec, Config{})
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		assert.Equal(t, refA.Draw(), a.Draw(), "detaching b must not disturb a")
		assert.Equal(t, refB.Draw(), b.Draw())
	}

	a.Seed(11)
	b.Reset(a.Source())
	joint, err := New(rng.NewWithSeed(11), spec, Config{})
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		assert.Equal(t, joint.Draw(), a.Draw())
		assert.Equal(t, joint.Draw(), b.Draw(), "b must interleave on a's stream after Reset")
	}
}

func TestSampler_PerturbConsumesOneDraw(t *testing.T) {
	spec := FromArrays([]float64{0, 1}, []float64{1, 1})

	a, err := New(rng.NewWithSeed(5), spec, Config{})
	require.NoError(t, err)
	b, err := New(rng.NewWithSeed(5), spec, Config{})
	require.NoError(t, err)

	_ = a.Draw()
	b.Perturb()
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Draw(), b.Draw())
	}
}

func TestSampler_AddToMatchesSequentialDraws(t *testing.T) {
	spec := FromArrays([]float64{0, 1, 2}, []float64{1, 2, 1})

	s, err := New(rng.NewWithSeed(77), spec, Config{})
	require.NoError(t, err)
	buf := make([][]float64, 3)
	for i := range buf {
		buf[i] = make([]float64, 4)
	}
	s.AddTo(buf)

	reference, err := New(rng.NewWithSeed(77), spec, Config{})
	require.NoError(t, err)
	for i := range buf {
		for j := range buf[i] {
			require.Equal(t, reference.Draw(), buf[i][j], "cell (%d,%d) out of row-major order", i, j)
		}
	}
}

func TestSampler_MaxPointsCompressesInverseTable(t *testing.T) {
	full, err := New(nil, FromFunc(func(x float64) float64 { return 1 + x*x }),
		Config{XMin: ptr(0), XMax: ptr(1)})
	require.NoError(t, err)
	compressed, err := New(rng.NewWithSeed(3), FromFunc(func(x float64) float64 { return 1 + x*x }),
		Config{XMin: ptr(0), XMax: ptr(1), MaxPoints: 32})
	require.NoError(t, err)

	assert.Greater(t, full.InverseTable().Len(), compressed.InverseTable().Len())
	assert.LessOrEqual(t, compressed.InverseTable().Len(), 32)

	_, cdf := compressed.Points()
	assert.Equal(t, 1.0, cdf[len(cdf)-1], "compression must keep the end points")
	for i := 0; i < 1000; i++ {
		x := compressed.Draw()
		require.GreaterOrEqual(t, x, 0.0)
		require.LessOrEqual(t, x, 1.0)
	}
}

func TestSampler_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "density.txt")
	content := "# triangular density\n1.0 0.0\n2.0 1.0\n3.0 0.0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := New(rng.NewWithSeed(9), FromFile(path), Config{})
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		x := s.Draw()
		require.GreaterOrEqual(t, x, 1.0)
		require.LessOrEqual(t, x, 3.0)
	}
}

func TestSampler_FromTableHonorsNarrowedBounds(t *testing.T) {
	tbl, err := table.New([]float64{0, 1, 2, 3, 4}, []float64{1, 1, 1, 1, 1}, table.Linear)
	require.NoError(t, err)

	s, err := New(rng.NewWithSeed(13), FromTable(tbl), Config{XMin: ptr(1), XMax: ptr(3)})
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		x := s.Draw()
		require.GreaterOrEqual(t, x, 1.0)
		require.LessOrEqual(t, x, 3.0)
	}
}

func TestSampler_TriangularShape(t *testing.T) {
	// P(X <= 2) of the triangular density on [1,3] peaked at 2 is 0.5;
	// check the halves are balanced.
	s, err := New(rng.NewWithSeed(31), FromArrays([]float64{1, 2, 3}, []float64{0, 1, 0}), Config{})
	require.NoError(t, err)

	n := 50000
	below := 0
	for i := 0; i < n; i++ {
		if s.Draw() <= 2 {
			below++
		}
	}
	assert.InDelta(t, 0.5, float64(below)/float64(n), 0.01)
}
