// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import "sync"

// An RSEncoder implements Reed-Solomon encoding
// over a given field using a given number of error correction bytes.
type RSEncoder struct {
	f   *Field
	c   int
	gen Poly
}

// Generators for QR codes, by degree.  The largest number of error
// correction codewords per block in a QR code is 30.
var qrgen [31]struct {
	once sync.Once
	g    Poly
}

// generator returns the generator polynomial of degree c,
// cached for QR.
func (f *Field) generator(c int) Poly {
	if f != QR || c >= len(qrgen) {
		return f.Generator(c)
	}
	g := &qrgen[c]
	g.once.Do(func() { g.g = f.Generator(c) })
	return g.g
}

// NewRSEncoder returns a new Reed-Solomon encoder
// over the given field and number of error correction bytes.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	return &RSEncoder{f: f, c: c, gen: f.generator(c)}
}

// Generator returns the generator polynomial used by rs.
func (rs *RSEncoder) Generator() Poly { return rs.gen }

// ECC writes to check the error correcting code bytes
// for data using the given Reed-Solomon parameters.
func (rs *RSEncoder) ECC(data []byte, check []byte) {
	if len(check) < rs.c {
		panic("gf256: invalid check byte length")
	}
	if rs.c == 0 {
		return
	}
	// data·x^c mod gen
	p := rs.f.NewPoly(data).Shift(0, rs.c)
	r := rs.f.Remainder(p, rs.gen)
	copy(check, rs.f.Bytes(r, rs.c))
}
