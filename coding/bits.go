// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Bits is an append-only bit buffer.  Bits are written most
// significant first and packed into bytes; unused bits of the last
// byte are zero.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for the codewords of the
// given version.
func NewBits(v Version) *Bits {
	n := 0
	if v.IsValid() {
		n = vtab[v].bytes
	}
	return &Bits{b: make([]byte, 0, n)}
}

// Len returns the number of bits written.
func (b *Bits) Len() int { return b.nbit }

// Bytes returns the underlying bytes.  The last byte may be partial.
func (b *Bits) Bytes() []byte { return b.b }

// Get reports whether bit i is set.
func (b *Bits) Get(i int) bool {
	return b.b[i>>3]>>(7&^i)&1 != 0
}

// PutBit appends one bit.
func (b *Bits) PutBit(bit bool) {
	if b.nbit&7 == 0 {
		b.b = append(b.b, 0)
	}
	if bit {
		b.b[len(b.b)-1] |= 0x80 >> (b.nbit & 7)
	}
	b.nbit++
}

// Put appends the low nbit bits of v, most significant first.
// nbit must be in [0, 32].
func (b *Bits) Put(v uint32, nbit int) {
	if nbit == 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}
