// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infotheory

import (
	"math"

	"github.com/Xuefeng-Zhu/math-php/internal/stats"
)

// BhattacharyyaCoefficient returns the overlap Σ √(p[i] q[i]) of p
// and q, divided by √(Σp Σq) so that sums drifting from 1 within the
// tolerance still give a coefficient in [0, 1]. It is 1 for identical
// distributions and 0 for distributions with disjoint support.
func BhattacharyyaCoefficient(p, q []float64) (float64, error) {
	return std.BhattacharyyaCoefficient(p, q)
}

// BhattacharyyaDistance returns -ln BC(p, q), where BC is the
// Bhattacharyya coefficient. It is symmetric and 0 if and only if p
// and q are equal once scaled to sum to 1. Distributions with disjoint
// support are at distance +Inf.
func BhattacharyyaDistance(p, q []float64) (float64, error) {
	return std.BhattacharyyaDistance(p, q)
}

// HellingerDistance returns the Hellinger distance
//
//	H(p, q) = ‖√p - √q‖₂ / √2
//
// which lies in [0, 1]: 0 if and only if p and q are equal, 1 if and
// only if they have disjoint support.
func HellingerDistance(p, q []float64) (float64, error) {
	return std.HellingerDistance(p, q)
}

func (m Measure) BhattacharyyaCoefficient(p, q []float64) (float64, error) {
	if err := m.checkPair("BhattacharyyaCoefficient", p, q); err != nil {
		return 0, err
	}
	return bhattacharyya(p, q), nil
}

func (m Measure) BhattacharyyaDistance(p, q []float64) (float64, error) {
	if err := m.checkPair("BhattacharyyaDistance", p, q); err != nil {
		return 0, err
	}
	// bc may exceed 1 by rounding.
	return math.Max(-math.Log(bhattacharyya(p, q)), 0), nil
}

func (m Measure) HellingerDistance(p, q []float64) (float64, error) {
	if err := m.checkPair("HellingerDistance", p, q); err != nil {
		return 0, err
	}
	h := stats.Distance(stats.Sqrts(p), stats.Sqrts(q)) / math.Sqrt2
	return stats.Clamp(h, 0, 1), nil
}

func bhattacharyya(p, q []float64) float64 {
	bc := stats.SumPairs(p, q, func(pi, qi float64) float64 {
		return math.Sqrt(pi * qi)
	})
	return bc / math.Sqrt(stats.Sum(p)*stats.Sum(q))
}
