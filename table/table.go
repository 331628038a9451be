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

// Package table provides a one-dimensional interpolation table with a
// bounded domain. It is used both for representing tabulated densities
// and for storing inverse-CDF mappings.
package table

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/interp"
)

// Kind selects the interpolation scheme of a Table.
type Kind string

const (
	// Linear interpolates piecewise linearly between table points.
	Linear Kind = "linear"
	// Spline interpolates with an Akima cubic spline.
	Spline Kind = "spline"
	// Ceil returns the tabulated value at the next point at or above x.
	Ceil Kind = "ceil"
)

// Table is an immutable interpolation table over [XMin, XMax].
type Table struct {
	xs, fs    []float64
	kind      Kind
	predictor interp.Predictor
}

// New builds a table from (x, f) value pairs. The x values must be
// strictly increasing and at least two points are required.
func New(xs, fs []float64, kind Kind) (*Table, error) {
	if len(xs) != len(fs) {
		return nil, fmt.Errorf("table: x and f lengths differ (%d vs %d)", len(xs), len(fs))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("table: need at least two points, got %d", len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("table: x values are not strictly increasing at index %d (%v >= %v)", i, xs[i-1], xs[i])
		}
	}

	var p interp.FittablePredictor
	switch kind {
	case Linear, "":
		p = &interp.PiecewiseLinear{}
	case Spline:
		p = &interp.AkimaSpline{}
	case Ceil:
		p = &interp.PiecewiseConstant{}
	default:
		return nil, fmt.Errorf("table: unknown interpolant %q", kind)
	}
	if err := p.Fit(xs, fs); err != nil {
		return nil, fmt.Errorf("table: fitting %q interpolant: %v", kind, err)
	}

	cx := make([]float64, len(xs))
	cf := make([]float64, len(fs))
	copy(cx, xs)
	copy(cf, fs)
	return &Table{xs: cx, fs: cf, kind: kind, predictor: p}, nil
}

// NewFromFile builds a table from a whitespace-delimited two-column
// ASCII file (column 1 = x, column 2 = f). Blank lines and lines
// starting with '#' are skipped.
func NewFromFile(path string, kind Kind) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("table: %v", err)
	}
	defer file.Close()

	var xs, fs []float64
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, fmt.Errorf("table: %v:%d: expected two columns, got %d", path, line, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("table: %v:%d: bad x value %q", path, line, fields[0])
		}
		f, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("table: %v:%d: bad f value %q", path, line, fields[1])
		}
		xs = append(xs, x)
		fs = append(fs, f)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("table: reading %v: %v", path, err)
	}
	return New(xs, fs, kind)
}

// Eval returns the interpolated value at x. Arguments outside the
// domain are clamped to the nearest bound.
func (t *Table) Eval(x float64) float64 {
	if x < t.xs[0] {
		x = t.xs[0]
	} else if x > t.xs[len(t.xs)-1] {
		x = t.xs[len(t.xs)-1]
	}
	return t.predictor.Predict(x)
}

// XMin returns the lower bound of the table's domain.
func (t *Table) XMin() float64 {
	return t.xs[0]
}

// XMax returns the upper bound of the table's domain.
func (t *Table) XMax() float64 {
	return t.xs[len(t.xs)-1]
}

// Len returns the number of table points.
func (t *Table) Len() int {
	return len(t.xs)
}

// Kind returns the interpolation scheme of the table.
func (t *Table) Kind() Kind {
	return t.kind
}
