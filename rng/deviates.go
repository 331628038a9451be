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
	"gonum.org/v1/gonum/stat/distuv"
)

// Deviate is a generator of pseudo-random numbers following one
// particular distribution. All deviates of this package draw through a
// shared *Source, so that mixing deviate types still consumes a single
// deterministic uniform stream.
type Deviate interface {
	Rand() float64
}

// Uniform draws variates uniformly distributed in [0,1).
type Uniform struct {
	src *Source
}

// NewUniform creates a uniform deviate drawing from src.
func NewUniform(src *Source) *Uniform {
	return &Uniform{src: src}
}

func (u *Uniform) Rand() float64 {
	return u.src.Float64()
}

// NewGaussian creates a normal deviate with the given mean and sigma.
func NewGaussian(src *Source, mean, sigma float64) Deviate {
	return distuv.Normal{Mu: mean, Sigma: sigma, Src: src}
}

// NewPoisson creates a Poisson deviate with the given mean.
func NewPoisson(src *Source, mean float64) Deviate {
	return distuv.Poisson{Lambda: mean, Src: src}
}

// NewBinomial creates a binomial deviate counting successes in n trials
// of probability p each.
func NewBinomial(src *Source, n int, p float64) Deviate {
	return distuv.Binomial{N: float64(n), P: p, Src: src}
}

// NewWeibull creates a Weibull deviate with shape a and scale b.
func NewWeibull(src *Source, a, b float64) Deviate {
	return distuv.Weibull{K: a, Lambda: b, Src: src}
}

// NewGamma creates a gamma deviate with shape alpha and scale beta.
// Note that distuv parameterizes gamma by rate, which is 1/scale.
func NewGamma(src *Source, alpha, beta float64) Deviate {
	return distuv.Gamma{Alpha: alpha, Beta: 1 / beta, Src: src}
}

// NewChi2 creates a chi-squared deviate with n degrees of freedom.
func NewChi2(src *Source, n float64) Deviate {
	return distuv.ChiSquared{K: n, Src: src}
}

// AddNoise adds one independent variate of d to every cell of buf, in
// row-major order. The enumeration order is part of the contract: under
// a fixed seed the cell values equal the sequence of d.Rand() calls.
func AddNoise(buf [][]float64, d Deviate) {
	for i := range buf {
		for j := range buf[i] {
			buf[i][j] += d.Rand()
		}
	}
}
