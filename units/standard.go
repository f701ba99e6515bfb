// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import "github.com/ctessum/unit"

// SI magnitudes of native units
const (
	barsa  = 1e5                          // [Pa]
	atm    = 101325.0                     // [Pa]
	psia   = 0.45359237 * 9.80665 / inch2 // [Pa] lbf/in²
	inch2  = 0.0254 * 0.0254              // [m²]
	foot3  = 0.3048 * 0.3048 * 0.3048     // [m³]
	barrel = 0.158987294928               // [m³] 42 US gallons
	cc     = 1e-6                         // [m³]
	pound  = 0.45359237                   // [kg]
	cP     = 1e-3                         // [Pa・s]
)

// Standard holds the scales of one of the fixed unit systems of the file format
type Standard struct {
	name string
	pres float64 // pressure
	rvol float64 // reservoir volume
	lvol float64 // surface volume of liquid
	gvol float64 // surface volume of gas
	dens float64 // density
	visc float64 // viscosity
}

// add systems to factory
func init() {
	allocators["metric"] = func() System {
		return &Standard{"METRIC", barsa, 1, 1, 1, 1, cP}
	}
	allocators["field"] = func() System {
		return &Standard{"FIELD", psia, barrel, barrel, 1000 * foot3, pound / foot3, cP}
	}
	allocators["lab"] = func() System {
		return &Standard{"LAB", atm, cc, cc, cc, 1e-3 / cc, cP}
	}
	allocators["pvt-m"] = func() System {
		return &Standard{"PVT-M", atm, 1, 1, 1, 1, cP}
	}
}

// Name returns the name of unit system
func (o Standard) Name() string { return o.name }

// Pressure returns the SI magnitude of the native pressure unit
func (o Standard) Pressure() *unit.Unit { return unit.New(o.pres, PressureDims) }

// ReservoirVolume returns the SI magnitude of the native reservoir volume unit
func (o Standard) ReservoirVolume() *unit.Unit { return unit.New(o.rvol, VolumeDims) }

// SurfaceVolumeLiquid returns the SI magnitude of the native surface liquid volume unit
func (o Standard) SurfaceVolumeLiquid() *unit.Unit { return unit.New(o.lvol, VolumeDims) }

// SurfaceVolumeGas returns the SI magnitude of the native surface gas volume unit
func (o Standard) SurfaceVolumeGas() *unit.Unit { return unit.New(o.gvol, VolumeDims) }

// Density returns the SI magnitude of the native density unit
func (o Standard) Density() *unit.Unit { return unit.New(o.dens, DensityDims) }

// Viscosity returns the SI magnitude of the native viscosity unit
func (o Standard) Viscosity() *unit.Unit { return unit.New(o.visc, ViscosityDims) }
