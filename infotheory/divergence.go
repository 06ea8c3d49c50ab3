// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infotheory

import (
	"math"

	"github.com/Xuefeng-Zhu/math-php/internal/stats"
)

// CrossEntropy returns the cross-entropy of q relative to p in bits,
//
//	H(p, q) = -Σ p[i] log₂ q[i]
//
// the expected code length of events drawn from p under a code
// optimized for q. p is the true distribution and q the model; the
// measure is not symmetric. If q[i] = 0 for an event with p[i] > 0,
// the result is +Inf.
func CrossEntropy(p, q []float64) (float64, error) {
	return std.CrossEntropy(p, q)
}

// KullbackLeiblerDivergence returns the relative entropy of p with
// respect to q in nats,
//
//	D(p‖q) = Σ p[i] ln(p[i]/q[i])
//
// It is 0 if and only if p and q are equal and is not symmetric. If
// q[i] = 0 for an event with p[i] > 0, the result is +Inf.
func KullbackLeiblerDivergence(p, q []float64) (float64, error) {
	return std.KullbackLeiblerDivergence(p, q)
}

// JensenShannonDivergence returns the Jensen-Shannon divergence of p
// and q in nats,
//
//	JSD(p, q) = ½ D(p‖m) + ½ D(q‖m),  m = (p+q)/2
//
// Unlike the Kullback-Leibler divergence it is symmetric, always
// finite and bounded by ln 2.
func JensenShannonDivergence(p, q []float64) (float64, error) {
	return std.JensenShannonDivergence(p, q)
}

func (m Measure) CrossEntropy(p, q []float64) (float64, error) {
	if err := m.checkPair("CrossEntropy", p, q); err != nil {
		return 0, err
	}
	h := -stats.SumPairs(p, q, func(pi, qi float64) float64 {
		return stats.XLogY(pi, qi, math.Log2)
	})
	return h, nil
}

func (m Measure) KullbackLeiblerDivergence(p, q []float64) (float64, error) {
	if err := m.checkPair("KullbackLeiblerDivergence", p, q); err != nil {
		return 0, err
	}
	return kl(p, q), nil
}

func (m Measure) JensenShannonDivergence(p, q []float64) (float64, error) {
	if err := m.checkPair("JensenShannonDivergence", p, q); err != nil {
		return 0, err
	}
	// mid is a distribution whenever p and q are. Floating-point
	// addition commutes, so swapping p and q gives the same bits.
	mid := stats.Midpoint(p, q)
	jsd := kl(p, mid)/2 + kl(q, mid)/2
	return stats.Clamp(jsd, 0, math.Ln2), nil
}

// kl computes D(p‖q) in nats for validated p and q.
//
// Validation allows the sums to drift from 1, which can push the
// result slightly below 0; it is clamped since D(p‖q) >= 0.
func kl(p, q []float64) float64 {
	d := stats.SumPairs(p, q, func(pi, qi float64) float64 {
		return stats.XLogY(pi, pi/qi, math.Log)
	})
	return math.Max(d, 0)
}
