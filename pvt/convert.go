// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pvt implements pressure-volume-temperature (PVT) properties of reservoir fluids
//  Tabulated data recorded in native units of a result file are converted to SI
//  and evaluated at arbitrary pressures.
//  Notation:
//    B  -- formation volume factor (FVF) = reservoir volume / surface volume
//    μ  -- viscosity
//    Rs -- dissolved gas-oil ratio   = surface gas volume / surface liquid volume
//    Rv -- vaporised oil-gas ratio   = surface liquid volume / surface gas volume
package pvt

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gopvt/units"
	"github.com/ctessum/unit"
)

// Quantity identifies a physical quantity found in PVT tables
type Quantity int

// quantities
const (
	Density                    Quantity = iota // ρ
	Pressure                                   // p
	Compressibility                            // 1/p
	DisGas                                     // Rs
	VapOil                                     // Rv
	RecipFvf                                   // 1/B
	RecipFvfDerivPress                         // d(1/B)/dp
	RecipFvfDerivVapOil                        // d(1/B)/dRv
	RecipFvfVisc                               // 1/(B・μ)
	RecipFvfViscDerivPress                     // d(1/(B・μ))/dp
	RecipFvfViscDerivVapOil                    // d(1/(B・μ))/dRv
	RecipFvfGas                                // 1/Bg
	RecipFvfGasDerivPress                      // d(1/Bg)/dp
	RecipFvfGasDerivVapOil                     // d(1/Bg)/dRv
	RecipFvfGasVisc                            // 1/(Bg・μg)
	RecipFvfGasViscDerivPress                  // d(1/(Bg・μg))/dp
	RecipFvfGasViscDerivVapOil                 // d(1/(Bg・μg))/dRv
	nquantities
)

var quantityNames = [nquantities]string{
	"density",
	"pressure",
	"compressibility",
	"disgas",
	"vapoil",
	"recipfvf",
	"recipfvfderivpress",
	"recipfvfderivvapoil",
	"recipfvfvisc",
	"recipfvfviscderivpress",
	"recipfvfviscderivvapoil",
	"recipfvfgas",
	"recipfvfgasderivpress",
	"recipfvfgasderivvapoil",
	"recipfvfgasvisc",
	"recipfvfgasviscderivpress",
	"recipfvfgasviscderivvapoil",
}

// String returns the name of quantity
func (o Quantity) String() string {
	if o < 0 || o >= nquantities {
		return "unknown"
	}
	return quantityNames[o]
}

// ParseQuantity returns quantity by name (case insensitive)
func ParseQuantity(name string) (Quantity, error) {
	key := strings.ToLower(name)
	for i, n := range quantityNames {
		if n == key {
			return Quantity(i), nil
		}
	}
	return 0, chk.Err("quantity %q is not available", name)
}

// Converter converts values in native units to SI units: SI = native・scale
type Converter struct {
	scale float64
}

// Scale returns the conversion factor
func (o Converter) Scale() float64 { return o.scale }

// Apply converts q to SI
func (o Converter) Apply(q float64) float64 { return q * o.scale }

// ApplyAll returns a new slice with all values of q converted to SI
func (o Converter) ApplyAll(q []float64) (res []float64) {
	res = make([]float64, len(q))
	for i, v := range q {
		res[i] = v * o.scale
	}
	return
}

// NewConverter returns the converter to SI of quantity q given in unit system usys
func NewConverter(q Quantity, usys units.System) Converter {
	return Converter{SIUnit(q, usys).Value()}
}

// SIUnit returns the SI magnitude and dimensions of one native unit of quantity q.
// Derivatives w.r.t p or Rv divide by the unit of p or Rv.
func SIUnit(q Quantity, usys units.System) *unit.Unit {
	switch q {
	case Density:
		return usys.Density()
	case Pressure:
		return usys.Pressure()
	case Compressibility:
		return recip(usys.Pressure())
	case DisGas:
		return rsUnit(usys)
	case VapOil:
		return rvUnit(usys)
	case RecipFvf:
		return recip(fvfUnit(usys))
	case RecipFvfDerivPress:
		return recip(fvfUnit(usys), usys.Pressure())
	case RecipFvfDerivVapOil:
		return recip(fvfUnit(usys), rvUnit(usys))
	case RecipFvfVisc:
		return recip(fvfUnit(usys), usys.Viscosity())
	case RecipFvfViscDerivPress:
		return recip(fvfUnit(usys), usys.Viscosity(), usys.Pressure())
	case RecipFvfViscDerivVapOil:
		return recip(fvfUnit(usys), usys.Viscosity(), rvUnit(usys))
	case RecipFvfGas:
		return recip(fvfGasUnit(usys))
	case RecipFvfGasDerivPress:
		return recip(fvfGasUnit(usys), usys.Pressure())
	case RecipFvfGasDerivVapOil:
		return recip(fvfGasUnit(usys), rvUnit(usys))
	case RecipFvfGasVisc:
		return recip(fvfGasUnit(usys), usys.Viscosity())
	case RecipFvfGasViscDerivPress:
		return recip(fvfGasUnit(usys), usys.Viscosity(), usys.Pressure())
	case RecipFvfGasViscDerivVapOil:
		return recip(fvfGasUnit(usys), usys.Viscosity(), rvUnit(usys))
	}
	chk.Panic("cannot compute SI unit of unknown quantity %d", int(q))
	return nil
}

// ConvertUnits holds the converters of the independent variable and of each column of a table
type ConvertUnits struct {
	Indep  Converter   // independent variable
	Column []Converter // dependent variables
}

// DeadOilUnits returns converters for oil tables without dissolved gas: {p, 1/B, 1/(B・μ)}
func DeadOilUnits(usys units.System) ConvertUnits {
	return ConvertUnits{
		Indep: NewConverter(Pressure, usys),
		Column: []Converter{
			NewConverter(RecipFvf, usys),
			NewConverter(RecipFvfVisc, usys),
		},
	}
}

// WaterUnits returns converters for water tables: {p, 1/B, 1/(B・μ)}
func WaterUnits(usys units.System) ConvertUnits {
	return DeadOilUnits(usys)
}

// DryGasUnits returns converters for gas tables without vaporised oil: {p, 1/Bg, 1/(Bg・μg)}
func DryGasUnits(usys units.System) ConvertUnits {
	return ConvertUnits{
		Indep: NewConverter(Pressure, usys),
		Column: []Converter{
			NewConverter(RecipFvfGas, usys),
			NewConverter(RecipFvfGasVisc, usys),
		},
	}
}

// fvfUnit returns [B] = [rVolume / sVolume(Liquid)]
func fvfUnit(usys units.System) *unit.Unit {
	return unit.Div(usys.ReservoirVolume(), usys.SurfaceVolumeLiquid())
}

// fvfGasUnit returns [Bg] = [rVolume / sVolume(Gas)]
func fvfGasUnit(usys units.System) *unit.Unit {
	return unit.Div(usys.ReservoirVolume(), usys.SurfaceVolumeGas())
}

// rsUnit returns [Rs] = [sVolume(Gas) / sVolume(Liquid)]
func rsUnit(usys units.System) *unit.Unit {
	return unit.Div(usys.SurfaceVolumeGas(), usys.SurfaceVolumeLiquid())
}

// rvUnit returns [Rv] = [sVolume(Liquid) / sVolume(Gas)]
func rvUnit(usys units.System) *unit.Unit {
	return unit.Div(usys.SurfaceVolumeLiquid(), usys.SurfaceVolumeGas())
}

// recip returns 1 / (f[0]・f[1]・...)
func recip(f ...*unit.Unit) *unit.Unit {
	return unit.Div(unit.New(1, unit.Dimless), unit.Mul(f...))
}
