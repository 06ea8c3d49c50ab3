// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Linspace returns num values spaced evenly between lo and hi,
// inclusive. If num is 1, it returns just lo.
func Linspace(lo, hi float64, num int) []float64 {
	if num <= 0 {
		return nil
	}
	if num == 1 {
		return []float64{lo}
	}
	res := make([]float64, num)
	for i := 0; i < num; i++ {
		res[i] = lo + float64(i)*(hi-lo)/float64(num-1)
	}
	return res
}

// Midpoint returns the elementwise mean (xs[i]+ys[i])/2. xs and ys
// must have the same length.
func Midpoint(xs, ys []float64) []float64 {
	res := make([]float64, len(xs))
	floats.AddTo(res, xs, ys)
	floats.Scale(0.5, res)
	return res
}

// Sqrts returns the square root of each element in xs.
func Sqrts(xs []float64) []float64 {
	return AtEach(math.Sqrt, xs)
}

// Distance returns the Euclidean distance between xs and ys.
func Distance(xs, ys []float64) float64 {
	return floats.Distance(xs, ys, 2)
}
