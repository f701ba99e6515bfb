// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots the tabulated points of curve
func Plot(o *PVDx, curve RawCurve, args *plt.A) (g Graph, err error) {
	g, err = o.GetPvtCurve(curve)
	if err != nil {
		return
	}
	if args == nil {
		args = &plt.A{C: "k", M: "o", Ls: "none", NoClip: true}
	}
	plt.Plot(g.X, g.Y, args)
	return
}

// PlotQuery plots curve evaluated at npts pressures in [pmin, pmax]
func PlotQuery(o *PVDx, curve RawCurve, pmin, pmax float64, npts int, args *plt.A) (g Graph, err error) {
	if npts < 2 {
		return g, chk.Err("PlotQuery requires at least 2 points. %d is invalid", npts)
	}
	g.X = utl.LinSpace(pmin, pmax, npts)
	switch curve {
	case FVF:
		g.Y = o.FormationVolumeFactor(g.X)
	case Viscosity:
		g.Y, err = o.Viscosity(g.X)
		if err != nil {
			return
		}
	default:
		return g, chk.Err("curve %v is not available in PVDx tables", curve)
	}
	if args == nil {
		args = &plt.A{C: "b", Ls: "-", NoClip: true}
	}
	plt.Plot(g.X, g.Y, args)
	return
}

// PlotEnd labels axes and saves figure
func PlotEnd(curve RawCurve, dirout, fnkey string) {
	ylbl := "$B$"
	if curve == Viscosity {
		ylbl = "$\\mu\\;\\mathrm{[Pa\\cdot s]}$"
	}
	plt.Gll("$p\\;\\mathrm{[Pa]}$", ylbl, nil)
	plt.Save(dirout, fnkey)
}
