// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infotheory

import (
	"fmt"
	"math"
)

// A Unit is a unit of information, named after the base of the
// logarithm that produces it.
type Unit int

const (
	Bits     Unit = iota // base 2
	Nats                 // base e
	Hartleys             // base 10
)

func (u Unit) String() string {
	switch u {
	case Bits:
		return "bits"
	case Nats:
		return "nats"
	case Hartleys:
		return "hartleys"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// log returns the logarithm function for u, or nil if u is not a
// known unit.
func (u Unit) log() func(float64) float64 {
	switch u {
	case Bits:
		return math.Log2
	case Nats:
		return math.Log
	case Hartleys:
		return math.Log10
	}
	return nil
}

// nats returns the size of one u in nats, which is ln(base), or NaN if
// u is not a known unit.
func (u Unit) nats() float64 {
	switch u {
	case Bits:
		return math.Ln2
	case Nats:
		return 1
	case Hartleys:
		return math.Ln10
	}
	return math.NaN()
}

// Convert returns x, an amount of information in u, expressed in
// unit to. For example, Bits.Convert(1, Nats) is ln 2. Converting from
// or to an unknown unit gives NaN.
func (u Unit) Convert(x float64, to Unit) float64 {
	if u == to && u.log() != nil {
		return x
	}
	return x * u.nats() / to.nats()
}
