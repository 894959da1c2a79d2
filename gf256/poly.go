// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

// A Term is a polynomial term with a non-zero coefficient α^Log and
// exponent Exp.
type Term struct {
	Log uint8 // logarithm of the coefficient, 0-254
	Exp int   // exponent of x
}

// A Poly is a polynomial over GF(256) as a list of terms in
// descending order of exponents, with no two terms sharing an
// exponent.  The zero polynomial has no terms.
type Poly []Term

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	if len(p) == 0 {
		return -1
	}
	return p[0].Exp
}

// Coeff returns the coefficient of x^e in p.
func (f *Field) Coeff(p Poly, e int) byte {
	for _, t := range p {
		if t.Exp == e {
			return f.exp[t.Log]
		} else if t.Exp < e {
			break
		}
	}
	return 0
}

// simplify sorts terms of p by descending exponent, merges terms of
// equal exponent by adding their values and drops zero terms.
// p is reused.
func (f *Field) simplify(p Poly) Poly {
	// insertion sort, stable; lists are short and mostly sorted
	for i := 1; i < len(p); i++ {
		for j := i; j > 0 && p[j-1].Exp < p[j].Exp; j-- {
			p[j-1], p[j] = p[j], p[j-1]
		}
	}
	out := p[:0]
	for i := 0; i < len(p); {
		e := p[i].Exp
		var v byte
		for ; i < len(p) && p[i].Exp == e; i++ {
			v ^= f.exp[p[i].Log]
		}
		if v != 0 {
			out = append(out, Term{f.log[v], e})
		}
	}
	return out
}

// NewPoly returns the polynomial with coefficients c, highest
// exponent first: c[0]·x^(n-1) + ... + c[n-1]·x^0.
func (f *Field) NewPoly(c []byte) Poly {
	p := make(Poly, 0, len(c))
	for i, v := range c {
		if v != 0 {
			p = append(p, Term{f.log[v], len(c) - 1 - i})
		}
	}
	return p
}

// Bytes returns the n lowest coefficients of p, highest exponent
// first.
func (f *Field) Bytes(p Poly, n int) []byte {
	b := make([]byte, n)
	for _, t := range p {
		if t.Exp < n {
			b[n-1-t.Exp] = f.exp[t.Log]
		}
	}
	return b
}

// PolyAdd returns a + b.  a and b must be simplified, as returned by
// NewPoly, PolyAdd and PolyMul.
func (f *Field) PolyAdd(a, b Poly) Poly {
	p := make(Poly, 0, len(a)+len(b))
	for len(a) != 0 && len(b) != 0 {
		switch s, t := a[0], b[0]; {
		case s.Exp > t.Exp:
			p = append(p, s)
			a = a[1:]
		case s.Exp < t.Exp:
			p = append(p, t)
			b = b[1:]
		default:
			if v := f.exp[s.Log] ^ f.exp[t.Log]; v != 0 {
				p = append(p, Term{f.log[v], s.Exp})
			}
			a, b = a[1:], b[1:]
		}
	}
	p = append(p, a...)
	return append(p, b...)
}

// PolyMul returns a × b.
func (f *Field) PolyMul(a, b Poly) Poly {
	p := make(Poly, 0, len(a)*len(b))
	for _, s := range a {
		for _, t := range b {
			p = append(p, Term{
				Log: uint8((int(s.Log) + int(t.Log)) % 255),
				Exp: s.Exp + t.Exp,
			})
		}
	}
	return f.simplify(p)
}

// Shift returns p × α^log × x^exp.
func (p Poly) Shift(log, exp int) Poly {
	q := make(Poly, len(p))
	for i, t := range p {
		q[i] = Term{uint8((int(t.Log) + log) % 255), t.Exp + exp}
	}
	return q
}

// Generator returns the Reed-Solomon generator polynomial of degree
// n, the product of (x - α^i) for i from 0 to n-1.
func (f *Field) Generator(n int) Poly {
	g := Poly{{0, 0}}
	for i := 0; i < n; i++ {
		// In GF(2^k) subtraction is addition.
		g = f.PolyMul(g, Poly{{0, 1}, {uint8(i % 255), 0}})
	}
	return g
}

// Remainder returns the remainder of p divided by g.  Division is
// performed by repeatedly subtracting g multiplied to match the
// leading term of the remainder.
func (f *Field) Remainder(p, g Poly) Poly {
	if len(g) == 0 {
		panic("gf256: division by zero polynomial")
	}
	r := p
	lead := g[0]
	for len(r) != 0 && r[0].Exp >= lead.Exp {
		log := (int(r[0].Log) - int(lead.Log) + 255) % 255
		r = f.PolyAdd(r, g.Shift(log, r[0].Exp-lead.Exp))
	}
	return r
}
