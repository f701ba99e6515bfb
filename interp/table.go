// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package interp implements piecewise linear interpolation of tabulated data
//  A Table holds one non-decreasing independent variable and one or more
//  dependent columns sharing it. A Point located once can be used to
//  evaluate all columns at the same abscissa.
//
//  Repeated abscissae mark a discontinuity: at such an x the right-most
//  node is used, i.e. the value after the jump. Linear extrapolation
//  follows the line through the value at the end abscissa and the nearest
//  node with a different abscissa; hence the extension is continuous but,
//  after a jump at the last abscissa, its slope is not that of a tabulated
//  segment.
package interp

import (
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Extrap defines the policy to evaluate outside the tabulated range
type Extrap int

// extrapolation policies
const (
	Linear   Extrap = iota // extend line through end value and nearest node with distinct abscissa
	Constant               // clamp to end values
)

// ParseExtrap returns extrapolation policy by name
func ParseExtrap(name string) (Extrap, error) {
	switch strings.ToLower(name) {
	case "lin", "linear":
		return Linear, nil
	case "cte", "constant":
		return Constant, nil
	}
	return Linear, chk.Err("extrapolation policy %q is not available", name)
}

// Point holds the result of locating an abscissa in a table
//  value = y[Anchor] + W・(y[Other] - y[Anchor])
type Point struct {
	Anchor int     // node nearest to x on the side used for evaluation
	Other  int     // second node of segment; equal to Anchor if unused
	W      float64 // weight of Other; zero at nodes
}

// Table implements a multi-column piecewise linear table
type Table struct {
	ext  Extrap      // extrapolation policy
	x    []float64   // independent variable
	cols [][]float64 // dependent variables [ncol][len(x)]
}

// NewTable returns a new table. Input slices are copied
func NewTable(ext Extrap, x []float64, cols ...[]float64) (o *Table, err error) {
	if len(x) < 1 {
		return nil, chk.Err("table must have at least one node")
	}
	if len(cols) < 1 {
		return nil, chk.Err("table must have at least one dependent column")
	}
	for i := 1; i < len(x); i++ {
		if x[i] < x[i-1] {
			return nil, chk.Err("independent variable must be non-decreasing. x[%d]=%g < x[%d]=%g", i, x[i], i-1, x[i-1])
		}
	}
	o = &Table{ext: ext, x: append([]float64{}, x...)}
	o.cols = make([][]float64, len(cols))
	for j, c := range cols {
		if len(c) != len(x) {
			return nil, chk.Err("column %d has %d values but independent variable has %d", j, len(c), len(x))
		}
		o.cols[j] = append([]float64{}, c...)
	}
	return
}

// Len returns the number of nodes
func (o Table) Len() int { return len(o.x) }

// NumCols returns the number of dependent columns
func (o Table) NumCols() int { return len(o.cols) }

// Indep returns a copy of the independent variable
func (o Table) Indep() []float64 {
	return append([]float64{}, o.x...)
}

// Column returns a copy of dependent column j
func (o Table) Column(j int) []float64 {
	return append([]float64{}, o.cols[j]...)
}

// Locate finds the nodes and weight to evaluate all columns at x
func (o Table) Locate(x float64) (pt Point) {
	n := len(o.x)

	// first node strictly to the right of x
	k := sort.Search(n, func(i int) bool { return o.x[i] > x })

	switch {

	// left of table: anchor at last repeat of x[0]
	case k == 0:
		a := sort.Search(n, func(i int) bool { return o.x[i] > o.x[0] }) - 1
		return o.extrapolate(x, a, a+1)

	// right of table or at its last abscissa: anchor at last node, paired
	// with the node just before the repeats of x[n-1]
	case k == n:
		if x == o.x[n-1] {
			return Point{n - 1, n - 1, 0}
		}
		b := sort.SearchFloat64s(o.x, o.x[n-1])
		return o.extrapolate(x, n-1, b-1)
	}

	// inside: x[k-1] <= x < x[k] with x[k-1] < x[k]
	return Point{k - 1, k, (x - o.x[k-1]) / (o.x[k] - o.x[k-1])}
}

// Value evaluates column j at located point
func (o Table) Value(j int, pt Point) float64 {
	y := o.cols[j]
	if pt.W == 0 {
		return y[pt.Anchor]
	}
	return y[pt.Anchor] + pt.W*(y[pt.Other]-y[pt.Anchor])
}

// Eval evaluates column j at x
func (o Table) Eval(j int, x float64) float64 {
	return o.Value(j, o.Locate(x))
}

// extrapolate returns point outside table anchored at node a using segment (a,b)
func (o Table) extrapolate(x float64, a, b int) Point {
	if o.ext == Constant || b < 0 || b >= len(o.x) {
		return Point{a, a, 0}
	}
	return Point{a, b, (x - o.x[a]) / (o.x[b] - o.x[a])}
}
