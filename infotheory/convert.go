// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infotheory

import (
	"math"
	"reflect"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
)

// FromCounts normalizes event counts into a probability distribution.
// Counts may be integers or fractional weights but must be
// non-negative with a positive, finite total.
func FromCounts[T constraints.Integer | constraints.Float](counts []T) ([]float64, error) {
	p := make([]float64, len(counts))
	total := 0.0
	for i, c := range counts {
		x := float64(c)
		if x < 0 || math.IsNaN(x) {
			return nil, errors.Wrapf(ErrInvalidDistribution, "FromCounts: count[%d] = %v", i, c)
		}
		p[i] = x
		total += x
	}
	if total == 0 || math.IsInf(total, 0) {
		return nil, errors.Wrapf(ErrInvalidDistribution, "FromCounts: total count is %g", total)
	}
	floats.Scale(1/total, p)
	return p, nil
}

// FromBytes returns the distribution of byte values in b, with one
// entry for each of the 256 possible values. The Shannon entropy of
// the result is the per-byte entropy of b, between 0 and 8 bits.
func FromBytes(b []byte) ([]float64, error) {
	var counts [256]int
	for _, c := range b {
		counts[c]++
	}
	p, err := FromCounts(counts[:])
	if err != nil {
		return nil, errors.Wrap(err, "FromBytes: empty input")
	}
	return p, nil
}

// Parse converts a sequence of loosely typed numbers into a []float64.
// v may be a slice or array of any element type cast can convert to a
// float64, including numeric strings. A []float64 is returned as is.
// The result is not validated.
func Parse(v interface{}) ([]float64, error) {
	if p, ok := v.([]float64); ok {
		return p, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, errors.Wrapf(ErrInvalidDistribution, "Parse: %T is not a sequence", v)
	}
	p := make([]float64, rv.Len())
	for i := range p {
		x, err := cast.ToFloat64E(rv.Index(i).Interface())
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidDistribution, "Parse: element %d: %v", i, err)
		}
		p[i] = x
	}
	return p, nil
}
