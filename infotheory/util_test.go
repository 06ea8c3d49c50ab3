// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infotheory

import "math"

// aeq returns true if expect and got are equal to 8 significant
// figures (1 part in 100 million).
func aeq(expect, got float64) bool {
	if expect < 0 && got < 0 {
		expect, got = -expect, -got
	}
	return expect*0.99999999 <= got && got*0.99999999 <= expect
}

// within returns true if got is within tol of expect.
func within(expect, got, tol float64) bool {
	return math.Abs(expect-got) <= tol
}

// measurePair is the common signature of the two-distribution
// measures.
type measurePair func(p, q []float64) (float64, error)

// pairs holds every two-distribution measure, by name.
var pairs = map[string]measurePair{
	"CrossEntropy":              CrossEntropy,
	"KullbackLeiblerDivergence": KullbackLeiblerDivergence,
	"BhattacharyyaCoefficient":  BhattacharyyaCoefficient,
	"BhattacharyyaDistance":     BhattacharyyaDistance,
	"HellingerDistance":         HellingerDistance,
	"JensenShannonDivergence":   JensenShannonDivergence,
}

// singles holds every one-distribution measure, by name.
var singles = map[string]func(p []float64) (float64, error){
	"ShannonEntropy":        ShannonEntropy,
	"ShannonNatEntropy":     ShannonNatEntropy,
	"ShannonHartleyEntropy": ShannonHartleyEntropy,
}
