// Copyright 2026 Lumetric
// This file is part of Deviate, the random-sampling library of the
// Lumetric image simulation toolkit.
//
// Deviate is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Deviate is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Deviate. If not, see <http://www.gnu.org/licenses/>.

package dist

import (
	"fmt"
	"math"
)

// cdfTable is a cleaned, strictly increasing, normalized cumulative
// distribution table paired with its x positions and the density values
// at those positions.
type cdfTable struct {
	xs, cdf, ps []float64
}

func removeAt(s []float64, i int) []float64 {
	return append(s[:i], s[i+1:]...)
}

// buildCDF tabulates the cumulative distribution of the density f over
// [xmin, xmax] at npoints evenly spaced positions, prunes numerically
// negligible entries, validates monotonicity and normalizes the result
// to end at exactly 1. The source string names the density input in
// error messages.
//
// All tolerances scale with 1/npoints so that finer tables are pruned
// proportionally tighter.
func buildCDF(f func(float64) float64, xmin, xmax float64, npoints int, source string) (cdfTable, error) {
	tol := 1e-4 / float64(npoints)

	xs := make([]float64, npoints)
	cdf := make([]float64, npoints)
	ps := make([]float64, npoints)
	step := (xmax - xmin) / float64(npoints-1)
	for i := range xs {
		x := xmin + step*float64(i)
		xs[i] = x
		cdf[i] = integrate(f, xmin, x, tol)
		ps[i] = f(x)
	}

	maxP := 0.0
	for i, p := range ps {
		if p < 0 {
			return cdfTable{}, fmt.Errorf("dist: negative density value %v at x=%v in %s", p, xs[i], source)
		}
		if p > maxP {
			maxP = p
		}
	}
	if maxP == 0 {
		return cdfTable{}, fmt.Errorf("dist: all density values are zero in %s", source)
	}

	// Drop points whose density is negligible relative to the peak.
	// Scanning backward keeps not-yet-visited indices stable.
	for i := len(ps) - 1; i >= 0; i-- {
		if ps[i]/maxP < tol {
			xs = removeAt(xs, i)
			cdf = removeAt(cdf, i)
			ps = removeAt(ps, i)
		}
	}

	// Drop points whose cumulative step is indistinguishable from
	// integrator noise. This is a looser, step-based criterion than the
	// density filter above: the step magnitude reflects the precision
	// of the integrator rather than the density itself.
	dcdf := make([]float64, 0, len(cdf))
	for i := 1; i < len(cdf); i++ {
		dcdf = append(dcdf, cdf[i]-cdf[i-1])
	}
	for i := len(dcdf) - 1; i >= 0; i-- {
		if math.Abs(dcdf[i]) < 10*tol {
			xs = removeAt(xs, i)
			cdf = removeAt(cdf, i)
			ps = removeAt(ps, i)
			dcdf = removeAt(dcdf, i)
		}
	}

	if len(cdf) < 2 {
		return cdfTable{}, fmt.Errorf("dist: no usable probability mass remains after pruning in %s", source)
	}
	// Monotonicity must hold between adjacent survivors; differences
	// computed before pruning can span removed points and would mask a
	// decrease introduced by the removal.
	for i := 1; i < len(cdf); i++ {
		if cdf[i] <= cdf[i-1] {
			return cdfTable{}, fmt.Errorf("dist: cumulative distribution of %s is not monotonic despite non-negative density, probably a result of precision loss in interpolation or integration; try lowering npoints", source)
		}
	}

	last := cdf[len(cdf)-1]
	for i := range cdf {
		cdf[i] /= last
	}
	return cdfTable{xs: xs, cdf: cdf, ps: ps}, nil
}
