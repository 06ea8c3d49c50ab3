// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infotheory

import (
	"math"

	"github.com/pkg/errors"

	"github.com/Xuefeng-Zhu/math-php/internal/stats"
)

// ShannonEntropy returns the Shannon entropy of p in bits,
//
//	H(p) = -Σ p[i] log₂ p[i]
//
// where events with p[i] = 0 contribute nothing. It is 0 for a point
// mass and log₂ len(p) for a uniform distribution.
func ShannonEntropy(p []float64) (float64, error) {
	return std.ShannonEntropy(p)
}

// ShannonNatEntropy returns the Shannon entropy of p in nats.
func ShannonNatEntropy(p []float64) (float64, error) {
	return std.ShannonNatEntropy(p)
}

// ShannonHartleyEntropy returns the Shannon entropy of p in hartleys.
func ShannonHartleyEntropy(p []float64) (float64, error) {
	return std.ShannonHartleyEntropy(p)
}

func (m Measure) ShannonEntropy(p []float64) (float64, error) {
	return m.entropy("ShannonEntropy", p, Bits)
}

func (m Measure) ShannonNatEntropy(p []float64) (float64, error) {
	return m.entropy("ShannonNatEntropy", p, Nats)
}

func (m Measure) ShannonHartleyEntropy(p []float64) (float64, error) {
	return m.entropy("ShannonHartleyEntropy", p, Hartleys)
}

// Entropy returns the Shannon entropy of p in the given unit. The
// logarithm is taken in that unit's base rather than rescaled from
// bits.
func (m Measure) Entropy(p []float64, unit Unit) (float64, error) {
	return m.entropy("Entropy", p, unit)
}

func (m Measure) entropy(op string, p []float64, unit Unit) (float64, error) {
	log := unit.log()
	if log == nil {
		return 0, errors.Wrapf(ErrUnknownUnit, "%s: %v", op, unit)
	}
	if err := m.checkOne(op, p); err != nil {
		return 0, err
	}
	h := 0.0
	for _, x := range p {
		h -= stats.XLogY(x, x, log)
	}
	// Tolerated drift above 1, as in [1.005], makes the sum negative.
	return math.Max(h, 0), nil
}
