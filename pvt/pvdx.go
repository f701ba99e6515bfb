// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gopvt/interp"
)

// RawCurve identifies a tabulated property curve
type RawCurve int

// curves
const (
	FVF            RawCurve = iota // formation volume factor
	Viscosity                      // viscosity
	SaturatedState                 // saturated state curve of tables with composition
)

// String returns the name of curve
func (o RawCurve) String() string {
	switch o {
	case FVF:
		return "FVF"
	case Viscosity:
		return "Viscosity"
	case SaturatedState:
		return "SaturatedState"
	}
	return io.Sf("RawCurve(%d)", int(o))
}

// Graph holds the points of a curve
type Graph struct {
	X []float64 // abscissae
	Y []float64 // ordinates
}

// String returns a table with the points of graph
func (o Graph) String() string {
	var b bytes.Buffer
	io.Ff(&b, "%23s%23s\n", "x", "y")
	for i := range o.X {
		io.Ff(&b, "%23.15e%23.15e\n", o.X[i], o.Y[i])
	}
	return b.String()
}

// PVDx implements PVT properties of a fluid phase without composition (dissolved
// gas or vaporised oil); e.g. dead oil, dry gas and water. Columns hold 1/B and,
// optionally, 1/(B・μ) which vary more linearly with pressure than B and μ.
type PVDx struct {
	tab *interp.Table // pressure [Pa] versus {1/B, 1/(B・μ)} in SI units
}

// NewPVDx returns a new PVDx
//  Input:
//   ext   -- extrapolation policy outside the tabulated pressure range
//   x     -- pressure in native units; non-decreasing; repeated values allowed
//   cols  -- 1/B and, optionally, 1/(B・μ) in native units
//   cvrt  -- converters to SI for x and each column
func NewPVDx(ext interp.Extrap, x []float64, cols [][]float64, cvrt ConvertUnits) (o *PVDx, err error) {
	if len(cols) < 1 || len(cols) > 2 {
		return nil, chk.Err("PVDx requires one or two columns. %d is invalid", len(cols))
	}
	if len(cvrt.Column) < len(cols) {
		return nil, chk.Err("PVDx requires one converter per column. %d < %d", len(cvrt.Column), len(cols))
	}
	ysi := make([][]float64, len(cols))
	for j, c := range cols {
		ysi[j] = cvrt.Column[j].ApplyAll(c)
	}
	tab, err := interp.NewTable(ext, cvrt.Indep.ApplyAll(x), ysi...)
	if err != nil {
		return nil, chk.Err("cannot create PVDx table:\n%v", err)
	}
	return &PVDx{tab}, nil
}

// Len returns the number of tabulated pressures
func (o PVDx) Len() int { return o.tab.Len() }

// HasViscosity tells whether viscosity can be computed
func (o PVDx) HasViscosity() bool { return o.tab.NumCols() > 1 }

// FormationVolumeFactor computes B at each pressure p [Pa]
func (o PVDx) FormationVolumeFactor(p []float64) []float64 {
	return o.compute(p, func(pt interp.Point) float64 {
		return 1.0 / o.fvfRecip(pt)
	})
}

// Viscosity computes μ [Pa・s] at each pressure p [Pa]
func (o PVDx) Viscosity(p []float64) ([]float64, error) {
	if !o.HasViscosity() {
		return nil, chk.Err("PVDx table has no viscosity column")
	}
	return o.compute(p, func(pt interp.Point) float64 {
		return o.fvfRecip(pt) / o.fvfMuRecip(pt) // (1/B) / (1/(B・μ))
	}), nil
}

// GetPvtCurve returns the tabulated points of curve in SI units
func (o PVDx) GetPvtCurve(curve RawCurve) (g Graph, err error) {
	var col int
	switch curve {
	case FVF:
		col = 0
	case Viscosity:
		if !o.HasViscosity() {
			return g, chk.Err("PVDx table has no viscosity column")
		}
		col = 1
	default:
		return g, chk.Err("curve %v is not available in PVDx tables", curve)
	}

	g.X = o.tab.Indep()
	g.Y = o.tab.Column(col)
	if len(g.X) != len(g.Y) {
		chk.Panic("Setup Error: %d abscissae but %d ordinates", len(g.X), len(g.Y))
	}

	// y == 1/B
	if curve == FVF {
		for i, y := range g.Y {
			g.Y[i] = 1.0 / y
		}
		return
	}

	// y == 1/(B・μ); μ = (1/B) / (1/(B・μ))
	b := o.tab.Column(0)
	if len(b) != len(g.Y) {
		chk.Panic("Setup Error: %d values of 1/B but %d values of 1/(B・μ)", len(b), len(g.Y))
	}
	for i, y := range g.Y {
		g.Y[i] = b[i] / y
	}
	return
}

// compute evaluates fcn at each pressure
func (o PVDx) compute(p []float64, fcn func(pt interp.Point) float64) (res []float64) {
	res = make([]float64, len(p))
	for i, pi := range p {
		res[i] = fcn(o.tab.Locate(pi))
	}
	return
}

// fvfRecip returns 1/B at located point
func (o PVDx) fvfRecip(pt interp.Point) float64 { return o.tab.Value(0, pt) }

// fvfMuRecip returns 1/(B・μ) at located point
func (o PVDx) fvfMuRecip(pt interp.Point) float64 { return o.tab.Value(1, pt) }
