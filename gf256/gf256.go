// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois Field GF(256)
// and Reed-Solomon encoding on top of it.
package gf256 // import "github.com/unixdj/qrgen/gf256"

import "strconv"

// A Field represents an instance of GF(256) defined by a specific
// polynomial.
type Field struct {
	log [256]byte // log[0] is unused
	exp [510]byte
}

// NewField returns a new field corresponding to the polynomial poly
// and generator α.  The Reed-Solomon encoding in QR codes uses
// polynomial 0x11d with generator 2.
//
// The choice of generator α only affects the Exp and Log operations.
func NewField(poly, α int) *Field {
	if poly < 0x100 || poly >= 0x200 || reducible(poly) {
		panic("gf256: invalid polynomial: " + strconv.Itoa(poly))
	}

	var f Field
	x := 1
	for i := 0; i < 255; i++ {
		if x == 1 && i != 0 {
			panic("gf256: invalid generator " + strconv.Itoa(α) +
				" for polynomial " + strconv.Itoa(poly))
		}
		f.exp[i] = byte(x)
		f.exp[i+255] = byte(x)
		f.log[x] = byte(i)
		x = mul(x, α, poly)
	}
	f.log[0] = 255
	return &f
}

// QR is the field used by QR code error correction,
// x⁸+x⁴+x³+x²+1 with generator 2.
var QR = NewField(0x11d, 2)

// reducible reports whether p is reducible.
func reducible(p int) bool {
	// Multiplying n-degree by m-degree yields n+m-degree,
	// so only need to check up to degree 4.
	np := nbit(p)
	for q := 2; q < 1<<5; q++ {
		if np-nbit(q) < 0 {
			break
		}
		if polyDiv(p, q) == 0 {
			return true
		}
	}
	return false
}

// polyDiv returns the remainder of p / q, polynomials over GF(2).
func polyDiv(p, q int) int {
	np := nbit(p)
	nq := nbit(q)
	for ; np >= nq; np-- {
		if p&(1<<uint(np-1)) != 0 {
			p ^= q << uint(np-nq)
		}
	}
	return p
}

// nbit returns the bit length of p.
func nbit(p int) int {
	n := 0
	for ; p > 0; p >>= 1 {
		n++
	}
	return n
}

// mul returns the product x*y mod poly, a GF(256) multiplication.
func mul(x, y, poly int) int {
	z := 0
	for x > 0 {
		if x&1 != 0 {
			z ^= y
		}
		x >>= 1
		y <<= 1
		if y&0x100 != 0 {
			y ^= poly
		}
	}
	return z
}

// Add returns the sum of x and y in the field.
func (f *Field) Add(x, y byte) byte {
	return x ^ y
}

// Exp returns the base-α exponential of e in the field.
// If e < 0, Exp returns 0.
func (f *Field) Exp(e int) byte {
	if e < 0 {
		return 0
	}
	return f.exp[e%255]
}

// Log returns the base-α logarithm of x in the field.
// If x == 0, Log panics.
func (f *Field) Log(x byte) int {
	if x == 0 {
		panic("gf256: log of zero")
	}
	return int(f.log[x])
}

// Inv returns the multiplicative inverse of x in the field.
// If x == 0, Inv returns 0.
func (f *Field) Inv(x byte) byte {
	if x == 0 {
		return 0
	}
	return f.exp[255-f.log[x]]
}

// Mul returns the product of x and y in the field.
func (f *Field) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[int(f.log[x])+int(f.log[y])]
}
