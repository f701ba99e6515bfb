// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/ctessum/unit"
)

// Custom implements a user-defined unit system. Scales are SI magnitudes of
// one native unit; scales that are not given default to 1 (already SI).
type Custom struct {
	Pres float64 // pressure                 [Pa]
	Rvol float64 // reservoir volume         [m³]
	Lvol float64 // surface volume of liquid [m³]
	Gvol float64 // surface volume of gas    [m³]
	Dens float64 // density                  [kg/m³]
	Visc float64 // viscosity                [Pa・s]
}

// add system to factory
func init() {
	allocators["custom"] = func() System { return new(Custom) }
}

// Init initialises this structure
func (o *Custom) Init(prms dbf.Params) (err error) {
	o.Pres, o.Rvol, o.Lvol, o.Gvol, o.Dens, o.Visc = 1, 1, 1, 1, 1, 1
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "pressure":
			o.Pres = p.V
		case "rvol":
			o.Rvol = p.V
		case "svolliq":
			o.Lvol = p.V
		case "svolgas":
			o.Gvol = p.V
		case "density":
			o.Dens = p.V
		case "viscosity":
			o.Visc = p.V
		default:
			return chk.Err("custom: parameter named %q is incorrect\n", p.N)
		}
		if p.V <= 0 {
			return chk.Err("custom: scale %q must be positive. %g is invalid\n", p.N, p.V)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
//  Input:
//   example -- returns example of parameters (FIELD units); othewise returs current parameters
func (o Custom) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "pressure", V: psia},
			&dbf.P{N: "rvol", V: barrel},
			&dbf.P{N: "svolliq", V: barrel},
			&dbf.P{N: "svolgas", V: 1000 * foot3},
			&dbf.P{N: "density", V: pound / foot3},
			&dbf.P{N: "viscosity", V: cP},
		}
	}
	return dbf.Params{
		&dbf.P{N: "pressure", V: o.Pres},
		&dbf.P{N: "rvol", V: o.Rvol},
		&dbf.P{N: "svolliq", V: o.Lvol},
		&dbf.P{N: "svolgas", V: o.Gvol},
		&dbf.P{N: "density", V: o.Dens},
		&dbf.P{N: "viscosity", V: o.Visc},
	}
}

// Name returns the name of unit system
func (o Custom) Name() string { return "CUSTOM" }

// Pressure returns the SI magnitude of the native pressure unit
func (o Custom) Pressure() *unit.Unit { return unit.New(o.Pres, PressureDims) }

// ReservoirVolume returns the SI magnitude of the native reservoir volume unit
func (o Custom) ReservoirVolume() *unit.Unit { return unit.New(o.Rvol, VolumeDims) }

// SurfaceVolumeLiquid returns the SI magnitude of the native surface liquid volume unit
func (o Custom) SurfaceVolumeLiquid() *unit.Unit { return unit.New(o.Lvol, VolumeDims) }

// SurfaceVolumeGas returns the SI magnitude of the native surface gas volume unit
func (o Custom) SurfaceVolumeGas() *unit.Unit { return unit.New(o.Gvol, VolumeDims) }

// Density returns the SI magnitude of the native density unit
func (o Custom) Density() *unit.Unit { return unit.New(o.Dens, DensityDims) }

// Viscosity returns the SI magnitude of the native viscosity unit
func (o Custom) Viscosity() *unit.Unit { return unit.New(o.Visc, ViscosityDims) }
