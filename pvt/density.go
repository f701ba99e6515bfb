// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gopvt/ecl"
)

// columns of the surface density table in TAB; one block of nreg values per column
const (
	densColOil   = 0
	densColWater = 1
	densColGas   = 2
)

// densityColumn returns the column of phase in the surface density table
func densityColumn(phase ecl.Phase) (int, error) {
	if !phase.Valid() {
		return 0, chk.Err("unsupported phase %v", phase)
	}
	return [...]int{
		ecl.Aqua:   densColWater,
		ecl.Liquid: densColOil,
		ecl.Vapour: densColGas,
	}[phase], nil
}

// SurfaceMassDensity returns the mass densities [kg/m³] at surface conditions of phase
// in each of the nreg density regions. The densities of one phase constitute nreg
// consecutive entries of TAB, starting at the column offset of phase.
func SurfaceMassDensity(init ecl.ResultData, phase ecl.Phase) (rho []float64, err error) {

	// column of phase; checked before reading any data
	col, err := densityColumn(phase)
	if err != nil {
		return
	}

	// keyword data
	tabdims, err := init.Ints(ecl.KwTabdims)
	if err != nil {
		return
	}
	tab, err := init.Doubles(ecl.KwTab)
	if err != nil {
		return
	}
	if len(tabdims) <= ecl.TabdimsNtdensItem {
		return nil, chk.Err("%s has %d items; density table is not described", ecl.KwTabdims, len(tabdims))
	}

	// subtract one to account for 1-based indices
	start := tabdims[ecl.TabdimsIbdensOffsetItem] - 1
	nreg := tabdims[ecl.TabdimsNtdensItem]
	lo := start + nreg*col
	hi := start + nreg*(col+1)
	if start < 0 || nreg < 0 || hi > len(tab) {
		return nil, chk.Err("density table [%d,%d) of phase %v is outside %s with %d items", lo, hi, phase, ecl.KwTab, len(tab))
	}
	rho = append([]float64{}, tab[lo:hi]...)

	// convert to SI
	usys, err := ecl.UnitSystem(init)
	if err != nil {
		return nil, err
	}
	cvrt := NewConverter(Density, usys)
	for i, r := range rho {
		rho[i] = cvrt.Apply(r)
	}
	return
}
