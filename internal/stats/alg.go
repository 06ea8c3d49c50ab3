// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// Miscellaneous helper algorithms

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sum returns the sum of xs, or 0 if xs is empty.
func Sum(xs []float64) float64 {
	return floats.Sum(xs)
}

// XLogY returns x*log(y) using the convention that 0*log(y) is 0 for
// every y, including 0 and +Inf.
func XLogY(x, y float64, log func(float64) float64) float64 {
	if x == 0 {
		return 0
	}
	return x * log(y)
}

// SumPairs returns the sum of f(xs[i], ys[i]) over i. xs and ys must
// have the same length.
func SumPairs(xs, ys []float64, f func(x, y float64) float64) float64 {
	if len(xs) != len(ys) {
		panic("stats: SumPairs of slices with different lengths")
	}
	sum := 0.0
	for i, x := range xs {
		sum += f(x, ys[i])
	}
	return sum
}

// Clamp clamps x to the range [lo, hi]. NaN is returned unchanged.
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// lchoose returns math.Log(choose(n, k)).
func lchoose(n, k int) float64 {
	a, _ := math.Lgamma(float64(n + 1))
	b, _ := math.Lgamma(float64(k + 1))
	c, _ := math.Lgamma(float64(n - k + 1))
	return a - b - c
}

// BinomialPMF returns the probability of exactly k successes in n
// trials that each succeed with probability p.
func BinomialPMF(n, k int, p float64) float64 {
	if k < 0 || k > n {
		return 0
	}
	// Handle the degenerate p before going through logs, where
	// 0*log(0) would otherwise turn into NaN.
	switch {
	case p == 0:
		if k == 0 {
			return 1
		}
		return 0
	case p == 1:
		if k == n {
			return 1
		}
		return 0
	}
	return math.Exp(lchoose(n, k) + float64(k)*math.Log(p) + float64(n-k)*math.Log1p(-p))
}

// AtEach returns f(x) for each x in xs.
func AtEach(f func(float64) float64, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = f(x)
	}
	return res
}
