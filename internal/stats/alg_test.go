// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestXLogY(t *testing.T) {
	if g := XLogY(0, 0, math.Log2); g != 0 {
		t.Errorf("0*log(0): expected 0, got %g", g)
	}
	if g := XLogY(0, math.Inf(1), math.Log); g != 0 {
		t.Errorf("0*log(+Inf): expected 0, got %g", g)
	}
	if g := XLogY(0.5, 0, math.Log); !math.IsInf(g, -1) {
		t.Errorf("0.5*log(0): expected -Inf, got %g", g)
	}
	if e, g := 2*3.0, XLogY(2, 8, math.Log2); !aeq(e, g) {
		t.Errorf("2*log2(8): expected %g, got %g", e, g)
	}
}

func TestSumPairs(t *testing.T) {
	mul := func(x, y float64) float64 { return x * y }
	if e, g := 32.0, SumPairs([]float64{1, 2, 3}, []float64{4, 5, 6}, mul); !aeq(e, g) {
		t.Errorf("expected %g, got %g", e, g)
	}
	if e, g := 0.0, SumPairs(nil, nil, mul); e != g {
		t.Errorf("empty: expected %g, got %g", e, g)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic on length mismatch")
		}
	}()
	SumPairs([]float64{1}, []float64{1, 2}, mul)
}

func TestClamp(t *testing.T) {
	testFunc(t, "Clamp", func(x float64) float64 { return Clamp(x, 0, 1) }, map[float64]float64{
		-1:  0,
		0:   0,
		0.5: 0.5,
		1:   1,
		2:   1,
	})
}

func TestBinomialPMF(t *testing.T) {
	testFunc(t, "BinomialPMF(4, %v, 0.5)", func(k float64) float64 { return BinomialPMF(4, int(k), 0.5) }, map[float64]float64{
		-1: 0,
		0:  1.0 / 16,
		1:  4.0 / 16,
		2:  6.0 / 16,
		3:  4.0 / 16,
		4:  1.0 / 16,
		5:  0,
	})
	testFunc(t, "BinomialPMF(3, %v, 0)", func(k float64) float64 { return BinomialPMF(3, int(k), 0) }, map[float64]float64{
		0: 1,
		1: 0,
		3: 0,
	})
	testFunc(t, "BinomialPMF(3, %v, 1)", func(k float64) float64 { return BinomialPMF(3, int(k), 1) }, map[float64]float64{
		0: 0,
		2: 0,
		3: 1,
	})
}

func TestLinspace(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	if diff := cmp.Diff([]float64{0, 0.25, 0.5, 0.75, 1}, Linspace(0, 1, 5), approx); diff != "" {
		t.Errorf("Linspace(0, 1, 5) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{3}, Linspace(3, 3, 1)); diff != "" {
		t.Errorf("Linspace(3, 3, 1) mismatch (-want +got):\n%s", diff)
	}
	if g := Linspace(0, 1, 0); g != nil {
		t.Errorf("Linspace(0, 1, 0): expected nil, got %v", g)
	}
}

func TestMidpoint(t *testing.T) {
	p := []float64{0.25, 0.5, 0.25}
	q := []float64{0.5, 0.3, 0.2}
	want := []float64{0.375, 0.4, 0.225}
	if diff := cmp.Diff(want, Midpoint(p, q), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Midpoint mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Midpoint(p, q), Midpoint(q, p)); diff != "" {
		t.Errorf("Midpoint not symmetric (-pq +qp):\n%s", diff)
	}
	if p[0] != 0.25 || q[0] != 0.5 {
		t.Error("Midpoint modified its arguments")
	}
}

func TestDistance(t *testing.T) {
	if e, g := 5.0, Distance([]float64{0, 0}, []float64{3, 4}); !aeq(e, g) {
		t.Errorf("expected %g, got %g", e, g)
	}
	if diff := cmp.Diff([]float64{1, 2, 3}, Sqrts([]float64{1, 4, 9})); diff != "" {
		t.Errorf("Sqrts mismatch (-want +got):\n%s", diff)
	}
}
