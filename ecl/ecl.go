// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ecl implements access to keyword data of simulation result files
//  The binary reader itself is not part of this package; any type that
//  delivers keyword arrays satisfies ResultData.
package ecl

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gopvt/units"
)

// keywords
const (
	KwTabdims  = "TABDIMS"  // table dimensions
	KwTab      = "TAB"      // flat table array
	KwIntehead = "INTEHEAD" // integer header
)

// items of keyword arrays defined by the file format (0-based)
const (
	TabdimsIbdensOffsetItem = 18 // TABDIMS: 1-based start of density table in TAB
	TabdimsNtdensItem       = 19 // TABDIMS: number of density tables (regions)
	InteheadUnitIndex       = 2  // INTEHEAD: unit system code
)

// ResultData defines the access to keyword arrays
type ResultData interface {
	Ints(kw string) ([]int, error)        // returns integer data of keyword
	Doubles(kw string) ([]float64, error) // returns floating point data of keyword
}

// UnitSystem returns the unit system recorded in the header of result data
func UnitSystem(rd ResultData) (units.System, error) {
	ih, err := rd.Ints(KwIntehead)
	if err != nil {
		return nil, err
	}
	if len(ih) <= InteheadUnitIndex {
		return nil, chk.Err("%s has %d items; cannot read unit system code at item %d", KwIntehead, len(ih), InteheadUnitIndex)
	}
	return units.Create(ih[InteheadUnitIndex])
}
