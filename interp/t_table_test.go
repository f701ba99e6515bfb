// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import (
	"sync"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_table01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("table01. interpolation and linear extrapolation")

	x := []float64{1, 2, 4}
	y0 := []float64{10, 20, 0}
	y1 := []float64{1, 1, 3}
	tab, err := NewTable(Linear, x, y0, y1)
	if err != nil {
		tst.Errorf("NewTable failed: %v\n", err)
		return
	}
	chk.Int(tst, "Len", tab.Len(), 3)
	chk.Int(tst, "NumCols", tab.NumCols(), 2)

	// nodes are exact
	for i, xi := range x {
		chk.Float64(tst, io.Sf("y0(x%d)", i), 1e-17, tab.Eval(0, xi), y0[i])
		chk.Float64(tst, io.Sf("y1(x%d)", i), 1e-17, tab.Eval(1, xi), y1[i])
	}

	// interior
	chk.Float64(tst, "y0(1.5)", 1e-15, tab.Eval(0, 1.5), 15)
	chk.Float64(tst, "y0(3)", 1e-15, tab.Eval(0, 3), 10)
	chk.Float64(tst, "y1(3)", 1e-15, tab.Eval(1, 3), 2)

	// extrapolation
	chk.Float64(tst, "y0(0)", 1e-15, tab.Eval(0, 0), 0)
	chk.Float64(tst, "y0(5)", 1e-15, tab.Eval(0, 5), -10)
	chk.Float64(tst, "y1(6)", 1e-15, tab.Eval(1, 6), 5)

	// one point serves all columns
	pt := tab.Locate(3)
	chk.Int(tst, "anchor", pt.Anchor, 1)
	chk.Int(tst, "other", pt.Other, 2)
	chk.Float64(tst, "w", 1e-15, pt.W, 0.5)
	chk.Float64(tst, "y0(pt)", 1e-15, tab.Value(0, pt), 10)
	chk.Float64(tst, "y1(pt)", 1e-15, tab.Value(1, pt), 2)
}

func Test_table02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("table02. constant extrapolation")

	ext, err := ParseExtrap("constant")
	if err != nil {
		tst.Errorf("ParseExtrap failed: %v\n", err)
		return
	}
	tab, err := NewTable(ext, []float64{1, 2}, []float64{3, 5})
	if err != nil {
		tst.Errorf("NewTable failed: %v\n", err)
		return
	}
	chk.Float64(tst, "y(-10)", 1e-17, tab.Eval(0, -10), 3)
	chk.Float64(tst, "y(10)", 1e-17, tab.Eval(0, 10), 5)
	chk.Float64(tst, "y(1.5)", 1e-15, tab.Eval(0, 1.5), 4)

	_, err = ParseExtrap("spline")
	if err == nil {
		tst.Errorf("ParseExtrap(spline) should have failed\n")
	}
	ext, _ = ParseExtrap("LIN")
	if ext != Linear {
		tst.Errorf("ParseExtrap(LIN) should return Linear\n")
	}
}

func Test_table03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("table03. repeated abscissae")

	// jump at x=2 from 20 to 30
	x := []float64{1, 2, 2, 3}
	y := []float64{10, 20, 30, 40}
	tab, err := NewTable(Linear, x, y)
	if err != nil {
		tst.Errorf("NewTable failed: %v\n", err)
		return
	}
	chk.Float64(tst, "y(2)", 1e-17, tab.Eval(0, 2), 30)
	chk.Float64(tst, "y(1.5)", 1e-15, tab.Eval(0, 1.5), 15)
	chk.Float64(tst, "y(2.5)", 1e-15, tab.Eval(0, 2.5), 35)

	// repeats at both ends
	x = []float64{1, 1, 2, 3, 3}
	y = []float64{0, 10, 20, 30, 50}
	tab, err = NewTable(Linear, x, y)
	if err != nil {
		tst.Errorf("NewTable failed: %v\n", err)
		return
	}
	chk.Float64(tst, "y(1)", 1e-17, tab.Eval(0, 1), 10)
	chk.Float64(tst, "y(3)", 1e-17, tab.Eval(0, 3), 50)
	chk.Float64(tst, "y(0)", 1e-15, tab.Eval(0, 0), 0)  // slope of segment x∈[1,2] from (1,10)
	chk.Float64(tst, "y(4)", 1e-15, tab.Eval(0, 4), 80) // line through (2,20) and (3,50)

	// extension is continuous at both ends
	chk.Float64(tst, "y(1-ε)", 1e-6, tab.Eval(0, 1-1e-9), 10)
	chk.Float64(tst, "y(3+ε)", 1e-6, tab.Eval(0, 3+1e-9), 50)
	pt := tab.Locate(4)
	chk.Int(tst, "anchor", pt.Anchor, 4)
	chk.Int(tst, "other", pt.Other, 2)

	// all nodes repeated: constant everywhere
	tab, err = NewTable(Linear, []float64{5, 5}, []float64{1, 2})
	if err != nil {
		tst.Errorf("NewTable failed: %v\n", err)
		return
	}
	chk.Float64(tst, "y(0)", 1e-17, tab.Eval(0, 0), 2)
	chk.Float64(tst, "y(5)", 1e-17, tab.Eval(0, 5), 2)
	chk.Float64(tst, "y(9)", 1e-17, tab.Eval(0, 9), 2)

	// single node
	tab, err = NewTable(Linear, []float64{5}, []float64{7})
	if err != nil {
		tst.Errorf("NewTable failed: %v\n", err)
		return
	}
	chk.Float64(tst, "y(-1)", 1e-17, tab.Eval(0, -1), 7)
	chk.Float64(tst, "y(8)", 1e-17, tab.Eval(0, 8), 7)
}

func Test_table04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("table04. invalid input and copies")

	_, err := NewTable(Linear, nil, []float64{})
	if err == nil {
		tst.Errorf("empty table should fail\n")
	}
	_, err = NewTable(Linear, []float64{1, 2})
	if err == nil {
		tst.Errorf("table without columns should fail\n")
	}
	_, err = NewTable(Linear, []float64{1, 2}, []float64{1})
	if err == nil {
		tst.Errorf("length mismatch should fail\n")
	}
	_, err = NewTable(Linear, []float64{2, 1}, []float64{1, 2})
	if err == nil {
		tst.Errorf("decreasing abscissae should fail\n")
	}
	io.Pforan("err = %v\n", err)

	x := []float64{1, 2}
	y := []float64{3, 4}
	tab, err := NewTable(Linear, x, y)
	if err != nil {
		tst.Errorf("NewTable failed: %v\n", err)
		return
	}
	x[0], y[0] = -1, -1
	chk.Array(tst, "Indep", 1e-17, tab.Indep(), []float64{1, 2})
	chk.Array(tst, "Column", 1e-17, tab.Column(0), []float64{3, 4})

	xx := tab.Indep()
	xx[1] = 100
	chk.Array(tst, "Indep after change", 1e-17, tab.Indep(), []float64{1, 2})
}

func Test_table05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("table05. concurrent queries")

	tab, err := NewTable(Linear, []float64{0, 1, 2, 3}, []float64{0, 1, 4, 9})
	if err != nil {
		tst.Errorf("NewTable failed: %v\n", err)
		return
	}
	X := utl.LinSpace(-1, 4, 51)
	ref := make([]float64, len(X))
	for i, x := range X {
		ref[i] = tab.Eval(0, x)
	}

	nworkers := 8
	res := make([][]float64, nworkers)
	var wg sync.WaitGroup
	for w := 0; w < nworkers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			res[w] = make([]float64, len(X))
			for i := len(X) - 1; i >= 0; i-- {
				res[w][i] = tab.Eval(0, X[i])
			}
		}(w)
	}
	wg.Wait()
	for w := 0; w < nworkers; w++ {
		chk.Array(tst, io.Sf("worker %d", w), 1e-17, res[w], ref)
	}
}
