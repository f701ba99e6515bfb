// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package units implements the unit systems recorded in simulation result files
//  Each system reports, for every base quantity, the SI magnitude of one native unit
//  together with the physical dimensions of that quantity.
package units

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/ctessum/unit"
)

// unit system codes as stored in the result file header
const (
	Metric = 1 // METRIC
	Field  = 2 // FIELD
	Lab    = 3 // LAB
	PvtM   = 4 // PVT-M
)

// physical dimensions of base quantities
var (
	PressureDims  = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -1, unit.TimeDim: -2}
	VolumeDims    = unit.Dimensions{unit.LengthDim: 3}
	DensityDims   = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -3}
	ViscosityDims = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -1, unit.TimeDim: -1}
)

// System defines a unit system. Every call returns a new *unit.Unit, thus
// callers may combine the results with Mul/Div without side effects.
type System interface {
	Name() string                    // name of unit system
	Pressure() *unit.Unit            // pressure
	ReservoirVolume() *unit.Unit     // volume at reservoir conditions
	SurfaceVolumeLiquid() *unit.Unit // liquid volume at surface conditions
	SurfaceVolumeGas() *unit.Unit    // gas volume at surface conditions
	Density() *unit.Unit             // mass density
	Viscosity() *unit.Unit           // dynamic viscosity
}

// Create returns the unit system identified by the code found in result file headers
func Create(code int) (System, error) {
	name, ok := codes[code]
	if !ok {
		return nil, chk.Err("unit system code %d is not supported", code)
	}
	return New(name)
}

// New returns a new unit system by name
//  Note: "custom" returns a system that must be initialised with Init
func New(name string) (System, error) {
	allocator, ok := allocators[strings.ToLower(name)]
	if !ok {
		return nil, chk.Err("unit system %q is not available in 'units' database", name)
	}
	return allocator(), nil
}

// codes maps header codes to names in allocators
var codes = map[int]string{
	Metric: "metric",
	Field:  "field",
	Lab:    "lab",
	PvtM:   "pvt-m",
}

// allocators holds all available unit systems
var allocators = map[string]func() System{}
