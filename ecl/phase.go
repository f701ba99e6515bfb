// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecl

import "github.com/cpmech/gosl/io"

// Phase identifies a fluid phase
type Phase int

// phases
const (
	Aqua   Phase = iota // water
	Liquid              // oil
	Vapour              // gas
)

// Valid tells whether o is one of the known phases
func (o Phase) Valid() bool {
	return o >= Aqua && o <= Vapour
}

// String returns the name of phase
func (o Phase) String() string {
	switch o {
	case Aqua:
		return "Aqua"
	case Liquid:
		return "Liquid"
	case Vapour:
		return "Vapour"
	}
	return io.Sf("Phase(%d)", int(o))
}
