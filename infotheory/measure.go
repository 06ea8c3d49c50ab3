// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infotheory

import (
	"math"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/Xuefeng-Zhu/math-php/internal/stats"
)

// DefaultTolerance is how far the sum of a distribution may be from 1
// when Measure.Tolerance is not set. It admits sums of exactly 0.99 and
// 1.01 despite rounding in the subtraction.
const DefaultTolerance = 0.010001

// Measure represents options for computing information-theoretic
// measures.
//
// The default (zero) value of Measure is a reasonable default
// configuration. A Measure holds no state between calls and may be
// used from multiple goroutines.
type Measure struct {
	// Tolerance is the largest accepted |sum(p) - 1| for a
	// distribution p. If this is zero or negative,
	// DefaultTolerance is used.
	Tolerance float64

	// Logger, if non-nil, receives a debug event for every
	// rejected argument.
	Logger *zerolog.Logger
}

var std Measure

func (m Measure) tolerance() float64 {
	if m.Tolerance <= 0 {
		return DefaultTolerance
	}
	return m.Tolerance
}

// Validate returns nil if p is a probability distribution under the
// default Measure.
func Validate(p []float64) error {
	return std.Validate(p)
}

// Validate returns nil if p is a probability distribution: non-empty,
// with no negative or NaN entries, summing to 1 within m's tolerance.
func (m Measure) Validate(p []float64) error {
	return m.checkOne("Validate", p)
}

// checkOne validates the argument of a one-distribution measure.
func (m Measure) checkOne(op string, p []float64) error {
	err := m.check(op, "p", p)
	if err != nil && m.Logger != nil {
		m.Logger.Debug().
			Str("op", op).
			Int("len", len(p)).
			Float64("tolerance", m.tolerance()).
			Err(err).
			Msg("rejected input")
	}
	return err
}

// checkPair validates the arguments of a two-distribution measure.
// Lengths are compared first.
func (m Measure) checkPair(op string, p, q []float64) error {
	var err error
	if len(p) != len(q) {
		err = errors.Wrapf(ErrLengthMismatch, "%s: len(p) = %d, len(q) = %d", op, len(p), len(q))
	} else if err = m.check(op, "p", p); err == nil {
		err = m.check(op, "q", q)
	}
	if err != nil && m.Logger != nil {
		m.Logger.Debug().
			Str("op", op).
			Int("len_p", len(p)).
			Int("len_q", len(q)).
			Float64("tolerance", m.tolerance()).
			Err(err).
			Msg("rejected input")
	}
	return err
}

func (m Measure) check(op, name string, p []float64) error {
	if len(p) == 0 {
		return errors.Wrapf(ErrInvalidDistribution, "%s: %s is empty", op, name)
	}
	for i, x := range p {
		if x < 0 || math.IsNaN(x) {
			return errors.Wrapf(ErrInvalidDistribution, "%s: %s[%d] is %g", op, name, i, x)
		}
	}
	tol := m.tolerance()
	if sum := stats.Sum(p); !(math.Abs(sum-1) <= tol) {
		return errors.Wrapf(ErrInvalidDistribution, "%s: sum of %s is %g, want 1±%g", op, name, sum, tol)
	}
	return nil
}
