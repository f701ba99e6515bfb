// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecl

import "github.com/cpmech/gosl/chk"

// Memory holds keyword data in memory
type Memory struct {
	ints map[string][]int
	dbls map[string][]float64
}

// NewMemory returns a new empty keyword store
func NewMemory() (o *Memory) {
	o = new(Memory)
	o.ints = make(map[string][]int)
	o.dbls = make(map[string][]float64)
	return
}

// SetInts sets integer data of keyword. A copy of vals is stored
func (o *Memory) SetInts(kw string, vals []int) {
	o.ints[kw] = append([]int{}, vals...)
}

// SetDoubles sets floating point data of keyword. A copy of vals is stored
func (o *Memory) SetDoubles(kw string, vals []float64) {
	o.dbls[kw] = append([]float64{}, vals...)
}

// Ints returns integer data of keyword
func (o *Memory) Ints(kw string) ([]int, error) {
	vals, ok := o.ints[kw]
	if !ok {
		return nil, chk.Err("integer keyword %q is not available", kw)
	}
	return vals, nil
}

// Doubles returns floating point data of keyword
func (o *Memory) Doubles(kw string) ([]float64, error) {
	vals, ok := o.dbls[kw]
	if !ok {
		return nil, chk.Err("floating point keyword %q is not available", kw)
	}
	return vals, nil
}
