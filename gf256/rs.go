// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import (
	"errors"
	"fmt"
)

// ErrDegree is returned for a Reed-Solomon divisor degree outside
// [1, 255].
var ErrDegree = errors.New("gf256: invalid divisor degree")

// Divisor returns the Reed-Solomon divisor (generator polynomial) of
// the given degree: the product of (x - α^i) for i in [0, degree).
// The leading coefficient, always 1, is omitted, and coefficients are
// stored from highest to lowest power.
func (f *Field) Divisor(degree int) ([]byte, error) {
	if degree < 1 || degree > 255 {
		return nil, fmt.Errorf("%w: %d", ErrDegree, degree)
	}
	// Start with the monomial x^0.
	d := make([]byte, degree)
	d[degree-1] = 1
	// Multiply by (x - α^i), root starting at α^0 = 1.
	root := byte(1)
	for i := 0; i < degree; i++ {
		for j := range d {
			d[j] = f.Mul(d[j], root)
			if j+1 < len(d) {
				d[j] ^= d[j+1]
			}
		}
		root = f.Mul(root, f.exp[1])
	}
	return d, nil
}

// Remainder returns the remainder of the polynomial data, multiplied
// by x^len(divisor), divided by the monic polynomial whose lower
// coefficients are divisor.  The result has len(divisor) coefficients
// and is the error correction code of data.
func (f *Field) Remainder(data, divisor []byte) []byte {
	rem := make([]byte, len(divisor))
	f.remainder(data, divisor, rem)
	return rem
}

func (f *Field) remainder(data, divisor, rem []byte) {
	clear(rem)
	for _, b := range data {
		factor := b ^ rem[0]
		copy(rem, rem[1:])
		rem[len(rem)-1] = 0
		if factor == 0 {
			continue
		}
		lf := int(f.log[factor])
		for i, c := range divisor {
			if c != 0 {
				rem[i] ^= f.exp[int(f.log[c])+lf]
			}
		}
	}
}

// An RSEncoder implements Reed-Solomon encoding over a given field
// using a given number of error correction bytes.
type RSEncoder struct {
	f   *Field
	c   int
	gen []byte
}

// NewRSEncoder returns a new Reed-Solomon encoder over the given
// field, producing c error correction bytes per block.
func NewRSEncoder(f *Field, c int) (*RSEncoder, error) {
	gen, err := f.Divisor(c)
	if err != nil {
		return nil, err
	}
	return &RSEncoder{f: f, c: c, gen: gen}, nil
}

// Len returns the number of error correction bytes produced by rs.
func (rs *RSEncoder) Len() int { return rs.c }

// ECC writes to check the error correcting code bytes for data.
// check must have length rs.Len().
func (rs *RSEncoder) ECC(data, check []byte) {
	if len(check) != rs.c {
		panic("gf256: invalid check byte length")
	}
	rs.f.remainder(data, rs.gen, check)
}
