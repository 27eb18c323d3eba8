// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2026 The karaoke-picker Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package gf256 implements arithmetic over the Galois Field GF(256) used
by QR code error correction, with the field polynomial 0x11d and
generator 2.

The exponent and logarithm tables are built once at package
initialisation and never modified afterwards, so all functions are safe
for concurrent use.
*/
package gf256 // import "github.com/Thabuki/karaoke-picker/gf256"

import "strconv"

var (
	exp [256]byte // exp[i] = 2**i; exp[255] wraps to 1
	log [256]byte // log[0] is unused
)

func init() {
	for i := 0; i < 8; i++ {
		exp[i] = 1 << i
	}
	// x**8 = x**4 + x**3 + x**2 + 1
	for i := 8; i < 256; i++ {
		exp[i] = exp[i-4] ^ exp[i-5] ^ exp[i-6] ^ exp[i-8]
	}
	for i := 0; i < 255; i++ {
		log[exp[i]] = byte(i)
	}
}

// DomainError is the panic value raised by Log for arguments outside
// [1, 255].  It indicates a programming error.
type DomainError int

func (e DomainError) Error() string {
	return "gf256: log(" + strconv.Itoa(int(e)) + ") undefined"
}

// Exp returns 2**n in GF(256).  n may be any integer; it is reduced
// modulo 255.
func Exp(n int) byte {
	if n %= 255; n < 0 {
		n += 255
	}
	return exp[n]
}

// Log returns the discrete logarithm of n, in [0, 254].
// Log panics with a DomainError if n is not in [1, 255].
func Log(n int) int {
	if n < 1 || n > 255 {
		panic(DomainError(n))
	}
	return int(log[n])
}

// Mul returns the product of a and b.
func Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return exp[(int(log[a])+int(log[b]))%255]
}
