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

import (
	"time"

	"golang.org/x/exp/rand"
)

// Source is a seedable stream of uniform variates in [0,1).
//
// Several generators may hold handles to the same underlying stream so
// that they all draw from a single deterministic sequence. A handle is
// detached from its shared stream by reseeding it (Seed) and re-attached
// with Reset. Source implements rand.Source of golang.org/x/exp/rand and
// can therefore be plugged directly into gonum's distuv generators.
//
// A Source is not safe for concurrent use; callers sharing a stream
// across goroutines must serialize access externally.
type Source struct {
	rng *rand.Rand
}

// New creates a time-seeded uniform stream.
func New() *Source {
	return NewWithSeed(uint64(time.Now().UnixNano()))
}

// NewWithSeed creates a deterministic uniform stream for the given seed.
func NewWithSeed(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Shared returns a new handle drawing from the same underlying stream as
// other. Every draw through either handle advances the shared stream.
func Shared(other *Source) *Source {
	return &Source{rng: other.rng}
}

// Float64 returns the next uniform variate in [0,1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Uint64 returns the next raw variate of the stream.
func (s *Source) Uint64() uint64 {
	return s.rng.Uint64()
}

// Seed reseeds the stream with the given seed. Reseeding detaches this
// handle from any stream it was sharing with other generators.
func (s *Source) Seed(seed uint64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Reset re-attaches this handle to other's stream, so that both draw
// from the same deterministic sequence from now on.
func (s *Source) Reset(other *Source) {
	s.rng = other.rng
}
