// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package infotheory computes information-theoretic measures over
// discrete probability distributions.
//
// A distribution is a []float64 of non-negative probabilities that sum
// to 1. Every measure validates its arguments before computing
// anything: a sequence that is not a distribution yields an error
// wrapping ErrInvalidDistribution, and two distributions of different
// lengths yield an error wrapping ErrLengthMismatch. Distributions
// passed together must be index-aligned, so that p[i] and q[i] are
// probabilities of the same event.
//
// The package-level functions use the default Measure. Use a Measure
// value to change the validation tolerance or to log rejected input.
package infotheory

import "github.com/pkg/errors"

var (
	// ErrInvalidDistribution indicates a sequence that is empty,
	// has a negative or NaN entry, or does not sum to 1 within the
	// tolerance.
	ErrInvalidDistribution = errors.New("not a probability distribution")

	// ErrLengthMismatch indicates two distributions over a
	// different number of events.
	ErrLengthMismatch = errors.New("distributions have different lengths")

	// ErrUnknownUnit indicates a Unit other than Bits, Nats and
	// Hartleys.
	ErrUnknownUnit = errors.New("unknown unit of information")
)
