// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"bytes"
	"testing"
)

func TestBits(t *testing.T) {
	b := NewBits(1)
	b.Put(0b101, 3)
	b.PutBit(true)
	b.PutBit(false)
	b.Put(0x3ff, 10)
	b.Put(0, 0)
	if b.Len() != 15 {
		t.Fatalf("Len = %d, want 15", b.Len())
	}
	want := []byte{0b1011_0111, 0b1111_1110}
	if !bytes.Equal(b.Bytes(), want) {
		t.Errorf("Bytes = %08b, want %08b", b.Bytes(), want)
	}
	for i, w := range "101101111111111" {
		if b.Get(i) != (w == '1') {
			t.Errorf("Get(%d) = %v", i, b.Get(i))
		}
	}
}

func TestBitsPutMatchesPutBit(t *testing.T) {
	a, b := NewBits(1), NewBits(1)
	vals := []struct {
		v uint32
		n int
	}{{4, 4}, {0x12345, 17}, {1, 1}, {0xdeadbeef, 32}, {0x55, 7}, {0, 9}}
	for _, v := range vals {
		a.Put(v.v, v.n)
		for i := v.n - 1; i >= 0; i-- {
			b.PutBit(v.v>>i&1 != 0)
		}
	}
	if a.Len() != b.Len() || !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Errorf("Put: %x (%d bits), PutBit: %x (%d bits)",
			a.Bytes(), a.Len(), b.Bytes(), b.Len())
	}
}
