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

const (
	// maxBlankTries bounds the adaptive search for a region of positive
	// density: half of the attempts grow the trial interval by x10, the
	// other half restart small and shrink it by x10.
	maxBlankTries = 6
	// probesPerTry is the number of evenly spaced density evaluations
	// per trial interval.
	probesPerTry = 10
	// edgeTolerance is the absolute density magnitude below which an
	// interval end counts as the edge of the support.
	edgeTolerance = 1e-8
	// maxEdgeSteps caps the linear edge walk so that a density that
	// never decays to zero produces an error instead of a hang.
	maxEdgeSteps = 100000
)

// probeRange samples the density at probesPerTry evenly spaced points
// across [lo, lo+frange). It reports the sub-interval spanned by the
// positive samples, if any.
func probeRange(f func(float64) float64, lo, frange float64) (float64, float64, bool) {
	pmin, pmax := 0.0, 0.0
	found := false
	for k := 0; k < probesPerTry; k++ {
		x := lo + frange*float64(k)/float64(probesPerTry)
		if f(x) > 0 {
			if !found || x < pmin {
				pmin = x
			}
			if !found || x > pmax {
				pmax = x
			}
			found = true
		}
	}
	return pmin, pmax, found
}

// findRange discovers a finite interval on which the density is
// positive somewhere. Supplied bounds are never moved; unsupplied ends
// are first located by an adaptive grow/shrink search and then refined
// by a linear edge walk. The walk is intentionally unsophisticated;
// callers with complicated density shapes should supply explicit
// bounds.
func findRange(f func(float64) float64, xmin, xmax *float64) (float64, float64, error) {
	findMin := xmin == nil
	findMax := xmax == nil

	anchor := func(frange float64) (float64, float64) {
		switch {
		case !findMin:
			return *xmin, *xmin + frange
		case !findMax:
			return *xmax - frange, *xmax
		default:
			return 0, frange
		}
	}
	reanchor := func(lo, hi, frange float64) (float64, float64) {
		switch {
		case !findMin:
			return lo, lo + frange
		case !findMax:
			return hi - frange, hi
		default:
			// Neither end given: re-center the wider interval on the
			// midpoint of the previous one.
			nlo := 0.5*(lo+hi) - 0.5*frange
			return nlo, nlo + frange
		}
	}

	frange := 1.0
	lo, hi := anchor(frange)
	ntries := 0
	found := false
	for ntries < (maxBlankTries+1)/2 && !found {
		ntries++
		plo, phi, ok := probeRange(f, lo, frange)
		if ok {
			found = true
			if findMin {
				lo = plo
			}
			if findMax {
				hi = phi
			}
		} else {
			frange *= 10
			lo, hi = reanchor(lo, hi, frange)
		}
	}
	if !found {
		// Growing did not help; restart with a small interval and
		// shrink, in case the support is very narrow.
		frange = 0.1
		lo, hi = anchor(frange)
		for ntries < maxBlankTries && !found {
			ntries++
			plo, phi, ok := probeRange(f, lo, frange)
			if ok {
				found = true
				if findMin {
					lo = plo
				}
				if findMax {
					hi = phi
				}
			} else {
				frange *= 0.1
				lo, hi = reanchor(lo, hi, frange)
			}
		}
	}
	if !found {
		return 0, 0, fmt.Errorf("dist: cannot find any region of positive density; supply explicit bounds")
	}

	// Walk each unsupplied end outward until the density magnitude
	// drops to the edge tolerance.
	step := frange * 0.05
	if findMin {
		steps := 0
		for math.Abs(f(lo)) > edgeTolerance {
			if steps >= maxEdgeSteps {
				return 0, 0, fmt.Errorf("dist: cannot locate the lower edge of the support; supply an explicit xmin")
			}
			lo -= step
			steps++
		}
	}
	if findMax {
		steps := 0
		for math.Abs(f(hi)) > edgeTolerance {
			if steps >= maxEdgeSteps {
				return 0, 0, fmt.Errorf("dist: cannot locate the upper edge of the support; supply an explicit xmax")
			}
			hi += step
			steps++
		}
	}
	return lo, hi, nil
}
