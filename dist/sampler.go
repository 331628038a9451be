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

	"github.com/lumetric/deviate/rng"
	"github.com/lumetric/deviate/table"
)

// DefaultNPoints is the default resolution of the internal cumulative
// table.
const DefaultNPoints = 256

// Config carries the optional construction parameters of a Sampler.
// The zero value is a usable default.
type Config struct {
	// XMin and XMax bound the sampled values. Ends left nil are
	// discovered from the density: tabulated inputs use their own
	// domain, callable inputs trigger an adaptive support search.
	XMin, XMax *float64

	// Interpolant selects the interpolation scheme used both for
	// tabulated density inputs and for the internal inverse table.
	// Default: table.Linear.
	Interpolant table.Kind

	// NPoints is the resolution of the internal cumulative table.
	// Default: DefaultNPoints.
	NPoints int

	// MaxPoints, if positive, compresses the cleaned cumulative table
	// down to at most this many entries before the inverse table is
	// built. Zero keeps all surviving points.
	MaxPoints int
}

// Sampler draws pseudo-random samples from a user-defined probability
// distribution using inverse-transform sampling. The inverse table is
// immutable after construction; the only mutable state is inside the
// uniform stream, which may be shared with other generators.
type Sampler struct {
	src *rng.Source
	inv *table.Table
	tbl cdfTable
}

// New constructs a Sampler for the density described by spec. A nil
// src creates a fresh time-seeded uniform stream; pass rng.Shared(s) to
// draw from an existing stream. All validation and table building
// happens here: a non-nil error means no sampler was constructed, and
// Draw on a constructed sampler never fails.
func New(src *rng.Source, spec Spec, cfg Config) (*Sampler, error) {
	if spec == nil {
		return nil, fmt.Errorf("dist: no density specification given")
	}
	if src == nil {
		src = rng.New()
	}
	if cfg.NPoints == 0 {
		cfg.NPoints = DefaultNPoints
	}
	if cfg.NPoints < 2 {
		return nil, fmt.Errorf("dist: npoints must be at least 2, got %d", cfg.NPoints)
	}
	if cfg.Interpolant == "" {
		cfg.Interpolant = table.Linear
	}

	f, tbl, err := spec.resolve(cfg.Interpolant)
	if err != nil {
		return nil, err
	}

	var lo, hi float64
	switch {
	case tbl != nil:
		// Tabulated density: default to the table's own domain and
		// reject bounds outside of it.
		lo, hi = tbl.XMin(), tbl.XMax()
		if cfg.XMin != nil {
			if *cfg.XMin < tbl.XMin() {
				return nil, fmt.Errorf("dist: xmin %v is below the lower bound %v of %s", *cfg.XMin, tbl.XMin(), spec.label())
			}
			lo = *cfg.XMin
		}
		if cfg.XMax != nil {
			if *cfg.XMax > tbl.XMax() {
				return nil, fmt.Errorf("dist: xmax %v is above the upper bound %v of %s", *cfg.XMax, tbl.XMax(), spec.label())
			}
			hi = *cfg.XMax
		}
		if hi <= lo {
			return nil, fmt.Errorf("dist: xmax %v does not exceed xmin %v", hi, lo)
		}
	case cfg.XMin != nil && cfg.XMax != nil:
		lo, hi = *cfg.XMin, *cfg.XMax
		if hi <= lo {
			return nil, fmt.Errorf("dist: xmax %v does not exceed xmin %v", hi, lo)
		}
	default:
		lo, hi, err = findRange(f, cfg.XMin, cfg.XMax)
		if err != nil {
			return nil, err
		}
	}

	ct, err := buildCDF(f, lo, hi, cfg.NPoints, spec.label())
	if err != nil {
		return nil, err
	}
	if cfg.MaxPoints > 0 && len(ct.cdf) > cfg.MaxPoints {
		ct, err = compressCDF(ct, cfg.MaxPoints)
		if err != nil {
			return nil, err
		}
	}

	inv, err := table.New(ct.cdf, ct.xs, cfg.Interpolant)
	if err != nil {
		return nil, fmt.Errorf("dist: building the inverse table for %s: %v", spec.label(), err)
	}
	return &Sampler{src: src, inv: inv, tbl: ct}, nil
}

// Draw returns the next sample of the distribution. It draws one
// uniform variate from the stream and inverts the cumulative table.
func (s *Sampler) Draw() float64 {
	return s.inv.Eval(s.src.Float64())
}

// Rand is an alias for Draw, letting a Sampler be used wherever an
// rng.Deviate is expected.
func (s *Sampler) Rand() float64 {
	return s.Draw()
}

// AddTo adds one independent sample to every cell of buf in row-major
// order. Under a fixed seed the cell values equal the sequence of
// Draw calls.
func (s *Sampler) AddTo(buf [][]float64) {
	rng.AddNoise(buf, s)
}

// Seed reseeds the sampler's uniform stream, detaching it from any
// stream it was sharing with other generators. The inverse table is
// unaffected.
func (s *Sampler) Seed(seed uint64) {
	s.src.Seed(seed)
}

// Reset re-attaches the sampler's stream to share state with src, so
// that both draw from the same deterministic sequence.
func (s *Sampler) Reset(src *rng.Source) {
	s.src.Reset(src)
}

// Perturb advances the shared uniform stream by one draw without
// reseeding. Historically this was the behavior of reseeding without a
// seed; it is kept as an explicit operation.
func (s *Sampler) Perturb() {
	s.src.Float64()
}

// Source returns the sampler's uniform stream handle. It can be used
// to attach further generators to the same stream.
func (s *Sampler) Source() *rng.Source {
	return s.src
}

// XMin returns the smallest value Draw can return.
func (s *Sampler) XMin() float64 {
	return s.tbl.xs[0]
}

// XMax returns the largest value Draw can return.
func (s *Sampler) XMax() float64 {
	return s.tbl.xs[len(s.tbl.xs)-1]
}

// Points returns copies of the cleaned cumulative table: the retained
// x positions and the normalized cumulative probability at each.
func (s *Sampler) Points() (xs, cdf []float64) {
	xs = make([]float64, len(s.tbl.xs))
	cdf = make([]float64, len(s.tbl.cdf))
	copy(xs, s.tbl.xs)
	copy(cdf, s.tbl.cdf)
	return xs, cdf
}

// DensityPoints returns copies of the retained x positions and the raw
// density values at each. The density values are not kept when the
// table has been compressed with Config.MaxPoints; ok is false then.
func (s *Sampler) DensityPoints() (xs, ps []float64, ok bool) {
	if len(s.tbl.ps) != len(s.tbl.xs) {
		return nil, nil, false
	}
	xs = make([]float64, len(s.tbl.xs))
	ps = make([]float64, len(s.tbl.ps))
	copy(xs, s.tbl.xs)
	copy(ps, s.tbl.ps)
	return xs, ps, true
}

// InverseTable returns the immutable inverse-CDF lookup table of the
// sampler (cumulative probability to x).
func (s *Sampler) InverseTable() *table.Table {
	return s.inv
}
