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

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// compressCDF reduces the cleaned cumulative table to at most maxPoints
// entries using the Visvalingam-Whyatt algorithm, keeping the points
// that contribute most to the shape of the curve. End points are always
// retained, so the compressed table still spans the full [cdf0, 1]
// range.
func compressCDF(t cdfTable, maxPoints int) (cdfTable, error) {
	ls := make(orb.LineString, 0, len(t.cdf))
	for i := range t.cdf {
		ls = append(ls, orb.Point{t.cdf[i], t.xs[i]})
	}
	simplifier := simplify.VisvalingamKeep(maxPoints)
	compressed := simplifier.Simplify(ls).(orb.LineString)
	if len(compressed) < 2 {
		return cdfTable{}, fmt.Errorf("dist: compressing the cumulative table to %d points left too few entries", maxPoints)
	}
	out := cdfTable{
		xs:  make([]float64, len(compressed)),
		cdf: make([]float64, len(compressed)),
	}
	for i, pt := range compressed {
		out.cdf[i] = pt[0]
		out.xs[i] = pt[1]
	}
	return out, nil
}
