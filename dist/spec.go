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

// Package dist draws pseudo-random samples from an arbitrary
// one-dimensional probability distribution by inverse-transform
// sampling. The distribution may be given as a callable density, as
// discrete (x, p) samples, as a pre-built lookup table, or as a
// two-column ASCII file.
package dist

import (
	"fmt"

	"github.com/lumetric/deviate/table"
)

// Spec describes one way of specifying a density. Exactly one variant
// is used per sampler; the variants are mutually exclusive by
// construction.
type Spec interface {
	// label names the input source in diagnostics.
	label() string
	// resolve turns the specification into an evaluable density. For
	// tabulated inputs the backing table is returned as well, so that
	// user-supplied bounds can be checked against its domain.
	resolve(kind table.Kind) (func(float64) float64, *table.Table, error)
}

type funcSpec struct {
	f func(float64) float64
}

// FromFunc specifies the density as an arbitrary callable. The function
// may be evaluated many times during construction and must be pure.
func FromFunc(f func(float64) float64) Spec {
	return funcSpec{f: f}
}

func (s funcSpec) label() string { return "density function" }

func (s funcSpec) resolve(table.Kind) (func(float64) float64, *table.Table, error) {
	if s.f == nil {
		return nil, nil, fmt.Errorf("dist: nil density function given")
	}
	return s.f, nil, nil
}

type arraySpec struct {
	xs, ps []float64
}

// FromArrays specifies the density as discrete (x, p) samples. The
// samples are interpolated with the sampler's configured interpolant.
func FromArrays(xs, ps []float64) Spec {
	return arraySpec{xs: xs, ps: ps}
}

func (s arraySpec) label() string { return "(x,p) arrays" }

func (s arraySpec) resolve(kind table.Kind) (func(float64) float64, *table.Table, error) {
	if len(s.xs) == 0 {
		return nil, nil, fmt.Errorf("dist: no x values given with %s", s.label())
	}
	if len(s.xs) != len(s.ps) {
		return nil, nil, fmt.Errorf("dist: x and p arrays have different lengths (%d vs %d)", len(s.xs), len(s.ps))
	}
	t, err := table.New(s.xs, s.ps, kind)
	if err != nil {
		return nil, nil, fmt.Errorf("dist: %v", err)
	}
	return t.Eval, t, nil
}

type fileSpec struct {
	path string
}

// FromFile specifies the density as a whitespace-delimited two-column
// ASCII file (column 1 = x, column 2 = p).
func FromFile(path string) Spec {
	return fileSpec{path: path}
}

func (s fileSpec) label() string { return s.path }

func (s fileSpec) resolve(kind table.Kind) (func(float64) float64, *table.Table, error) {
	t, err := table.NewFromFile(s.path, kind)
	if err != nil {
		return nil, nil, fmt.Errorf("dist: %v", err)
	}
	return t.Eval, t, nil
}

type tableSpec struct {
	t *table.Table
}

// FromTable specifies the density as an existing lookup table. Samples
// are confined to the table's domain.
func FromTable(t *table.Table) Spec {
	return tableSpec{t: t}
}

func (s tableSpec) label() string { return "lookup table" }

func (s tableSpec) resolve(table.Kind) (func(float64) float64, *table.Table, error) {
	if s.t == nil {
		return nil, nil, fmt.Errorf("dist: nil lookup table given")
	}
	return s.t.Eval, s.t, nil
}
