// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2026 The karaoke-picker Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

// A Poly is a polynomial over GF(256), coefficients stored highest
// degree first.  Leading zero coefficients are stripped, so the first
// coefficient is nonzero unless the polynomial is zero, in which case
// it has no coefficients at all.  A Poly is not modified after it is
// created.
type Poly struct {
	c []byte
}

// NewPoly returns the polynomial with coefficients c multiplied by
// x**shift, that is, with shift zero coefficients appended.
func NewPoly(c []byte, shift int) Poly {
	off := 0
	for off < len(c) && c[off] == 0 {
		off++
	}
	if off == len(c) {
		return Poly{}
	}
	p := make([]byte, len(c)-off+shift)
	copy(p, c[off:])
	return Poly{p}
}

// Len returns the number of coefficients, that is, the degree plus 1.
func (p Poly) Len() int { return len(p.c) }

// Coeff returns coefficient i, counting from the highest degree.
func (p Poly) Coeff(i int) byte { return p.c[i] }

// Bytes returns a copy of the coefficients.
func (p Poly) Bytes() []byte { return append([]byte(nil), p.c...) }

// Mul returns the product of p and q.
func (p Poly) Mul(q Poly) Poly {
	if len(p.c) == 0 || len(q.c) == 0 {
		return Poly{}
	}
	c := make([]byte, len(p.c)+len(q.c)-1)
	for i, a := range p.c {
		for j, b := range q.c {
			c[i+j] ^= Mul(a, b)
		}
	}
	return NewPoly(c, 0)
}

// Mod returns the remainder of dividing p by d.  If p is shorter than
// d, p is returned unchanged.  Mod panics if d is the zero polynomial.
func (p Poly) Mod(d Poly) Poly {
	if len(d.c) == 0 {
		panic("gf256: division by zero polynomial")
	}
	if len(p.c) < len(d.c) {
		return p
	}
	c := append([]byte(nil), p.c...)
	dl := Log(int(d.c[0]))
	for len(c) >= len(d.c) {
		// c[0] is nonzero here: leading zeros are stripped below.
		ratio := Log(int(c[0])) - dl
		for i, v := range d.c {
			if v != 0 {
				c[i] ^= Exp(Log(int(v)) + ratio)
			}
		}
		for len(c) > 0 && c[0] == 0 {
			c = c[1:]
		}
	}
	return Poly{c}
}

// Generator returns the Reed-Solomon generator polynomial of degree n,
// the product of (x - 2**i) for i in [0, n).
func Generator(n int) Poly {
	g := Poly{[]byte{1}}
	for i := 0; i < n; i++ {
		g = g.Mul(Poly{[]byte{1, Exp(i)}})
	}
	return g
}

// Remainder returns the n Reed-Solomon check bytes for data.
func Remainder(data []byte, n int) []byte {
	rem := NewPoly(data, n).Mod(Generator(n))
	ecc := make([]byte, n)
	copy(ecc[n-len(rem.c):], rem.c)
	return ecc
}
