// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infotheory

import (
	"math"

	"github.com/Xuefeng-Zhu/math-php/internal/stats"
)

// A DiscreteDist is a discrete statistical distribution with finite
// support, defined at the points l, l+Step(), ..., h where l, h =
// Bounds().
type DiscreteDist interface {
	// PMF returns the value of the probability mass function
	// Pr[X = x'], where x' is x rounded down to the nearest
	// defined point on the distribution.
	PMF(x float64) float64

	// Step returns s, where the distribution is defined for sℕ.
	Step() float64

	// Bounds returns exact bounds l, h such that PMF(l') = 0 for
	// all l' < l and PMF(h') = 0 for all h' >= h+Step(). Both
	// bounds must be integer multiples of Step().
	Bounds() (float64, float64)
}

// Tabulate returns the probability vector of d, one entry for each
// defined point from the low bound to the high bound. The bounds must
// be finite. Two
// distributions tabulated over the same bounds and step are
// index-aligned.
func Tabulate(d DiscreteDist) []float64 {
	lo, hi := d.Bounds()
	n := int(math.Round((hi-lo)/d.Step())) + 1
	return stats.AtEach(d.PMF, stats.Linspace(lo, hi, n))
}

// PointMass is the discrete distribution that puts all of its mass
// on T. Its entropy is 0.
type PointMass struct {
	T float64
}

func (d PointMass) PMF(x float64) float64 {
	if math.Floor(x-d.T) == 0 {
		return 1
	}
	return 0
}

func (d PointMass) Step() float64 {
	return 1
}

func (d PointMass) Bounds() (float64, float64) {
	return d.T, d.T
}

// Binomial is the distribution of the number of successes in N
// independent trials that each succeed with probability P.
type Binomial struct {
	N int
	P float64
}

func (d Binomial) PMF(x float64) float64 {
	return stats.BinomialPMF(d.N, int(math.Floor(x)), d.P)
}

func (d Binomial) Step() float64 {
	return 1
}

func (d Binomial) Bounds() (float64, float64) {
	return 0, float64(d.N)
}
