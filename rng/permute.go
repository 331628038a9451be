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

package rng

// Swapper is a sequence whose elements can be exchanged in place.
type Swapper interface {
	Len() int
	Swap(i, j int)
}

type sliceSwapper[T any] []T

func (s sliceSwapper[T]) Len() int      { return len(s) }
func (s sliceSwapper[T]) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// Slice adapts a slice to the Swapper interface for use with Permute.
func Slice[T any](s []T) Swapper {
	return sliceSwapper[T](s)
}

// Permute applies one Fisher-Yates permutation, drawn from src, to all
// given sequences in lockstep: every swap is performed at the same index
// pair in every sequence, so the relative alignment between sequences is
// preserved. With no sequences it is a no-op.
//
// All sequences must have equal length; this is the caller's
// responsibility and is not validated here.
//
// The walk stops at index 2, so positions 0 and 1 are never chosen as
// the element being placed. This matches the historical behavior of the
// pipeline and keeps shuffles reproducible across ports.
func Permute(src *Source, seqs ...Swapper) {
	if len(seqs) == 0 {
		return
	}
	n := seqs[0].Len()
	for i := n - 1; i >= 2; i-- {
		j := int(float64(i+1) * src.Float64())
		if j == i+1 {
			// Float64 is in [0,1), but guard the boundary anyway.
			j = i
		}
		for _, s := range seqs {
			s.Swap(i, j)
		}
	}
}
