// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestNewSegment(t *testing.T) {
	tests := []struct {
		text string
		want []byte
	}{
		{"", []byte{}},
		{"A", []byte{0x41}},
		{"\u0080", []byte{0x80}}, // one byte, not two
		{"\u0081", []byte{0xc2, 0x81}},
		{"é", []byte{0xc3, 0xa9}},
		{"€", []byte{0xe2, 0x82, 0xac}},
		{"😀", []byte{0xf0, 0x9f, 0x98, 0x80}},
		{"Olá, #s=MSwy", []byte("Olá, #s=MSwy")},
	}
	for _, tt := range tests {
		s := NewSegment(tt.text)
		if !bytes.Equal(s.Bytes(), tt.want) || s.Len() != len(tt.want) {
			t.Errorf("NewSegment(%q) = % x, want % x", tt.text, s.Bytes(), tt.want)
		}
	}
}

func TestSegmentEncode(t *testing.T) {
	b := NewBits(1)
	if err := NewSegment("A").Encode(b, 1); err != nil {
		t.Fatal(err)
	}
	// 0100 00000001 01000001
	if want := []byte{0x40, 0x14, 0x10}; b.Len() != 20 || !bytes.Equal(b.Bytes(), want) {
		t.Errorf("Encode = % x (%d bits), want % x (20 bits)", b.Bytes(), b.Len(), want)
	}

	b = NewBits(10)
	if err := NewSegment("AB").Encode(b, 10); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 4+16+16 {
		t.Errorf("version 10 segment is %d bits, want 36", b.Len())
	}

	err := NewSegment(strings.Repeat("x", 256)).Encode(NewBits(9), 9)
	var se SegmentError
	if !errors.As(err, &se) || se.Len != 256 {
		t.Errorf("256 bytes at version 9: err = %v", err)
	}
}
