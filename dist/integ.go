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
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

const (
	integMinNodes = 16
	integMaxNodes = 4096
)

// integrate computes the definite integral of f over [a, b] with
// Gauss-Legendre quadrature, doubling the node count until successive
// estimates agree to within the relative tolerance tol.
func integrate(f func(float64) float64, a, b, tol float64) float64 {
	if a == b {
		return 0
	}
	prev := quad.Fixed(f, a, b, integMinNodes, nil, 0)
	for n := 2 * integMinNodes; n <= integMaxNodes; n *= 2 {
		cur := quad.Fixed(f, a, b, n, nil, 0)
		if math.Abs(cur-prev) <= tol*math.Abs(cur) {
			return cur
		}
		prev = cur
	}
	return prev
}
