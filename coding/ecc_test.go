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

	"github.com/Thabuki/karaoke-picker/gf256"
)

func TestVersionTable(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		total := 0
		for _, b := range v.Blocks() {
			if b.Data > b.Total {
				t.Errorf("version %d: block %+v", v, b)
			}
			total += b.Total
		}
		if total != v.TotalBytes() {
			t.Errorf("version %d: blocks hold %d codewords, want %d",
				v, total, v.TotalBytes())
		}
	}
	if MaxVersion.DataBytes() != 274 {
		t.Errorf("version 10 holds %d data bytes, want 274", MaxVersion.DataBytes())
	}
	if Version(0).Blocks() != nil || Version(11).Blocks() != nil {
		t.Error("Blocks of unsupported version")
	}
}

func TestCodewords(t *testing.T) {
	cw, err := Codewords(1, NewSegment("A"))
	if err != nil {
		t.Fatal(err)
	}
	data := []byte{0x40, 0x14, 0x10}
	for len(data) < 19 {
		data = append(data, 0xec, 0x11)
	}
	data = data[:19]
	if !bytes.Equal(cw[:19], data) {
		t.Errorf("data codewords = % x, want % x", cw[:19], data)
	}
	if ecc := gf256.Remainder(data, 7); !bytes.Equal(cw[19:], ecc) {
		t.Errorf("check codewords = % x, want % x", cw[19:], ecc)
	}
}

func TestCodewordsFull(t *testing.T) {
	// 12 header bits + 17*8 = 148 bits; the terminator ends the last byte
	cw, err := Codewords(1, NewSegment(strings.Repeat("\xff", 17)))
	if err != nil {
		t.Fatal(err)
	}
	if len(cw) != 26 || cw[18] != 0xf0 {
		t.Errorf("last data codeword = %#x, want 0xf0", cw[18])
	}
}

func TestInterleave(t *testing.T) {
	got := interleave(nil, [][]byte{{1, 4}, {2, 5}, {3, 6, 7}})
	if want := []byte{1, 2, 3, 4, 5, 6, 7}; !bytes.Equal(got, want) {
		t.Errorf("interleave = %v, want %v", got, want)
	}
	cw, err := Codewords(10, NewSegment("interleaved"))
	if err != nil {
		t.Fatal(err)
	}
	if len(cw) != 346 {
		t.Fatalf("%d codewords, want 346", len(cw))
	}
	// The first data codewords of the four blocks start the stream.
	// Block 0 starts with the header 0100 0000.
	if cw[0] != 0x40 {
		t.Errorf("cw[0] = %#x", cw[0])
	}
}

func TestCapacity(t *testing.T) {
	tests := []struct {
		n    int
		from Version
		want Version
	}{
		{0, 1, 1},
		{17, 1, 1},
		{18, 1, 2},
		{17, 4, 4},
		{17, 20, 10},
		{230, 1, 9},
		{231, 1, 10},
		{271, 1, 10},
	}
	for _, tt := range tests {
		v, _, err := Fit(strings.Repeat("a", tt.n), tt.from)
		if err != nil || v != tt.want {
			t.Errorf("Fit(%d bytes, %d) = %d, %v; want %d",
				tt.n, tt.from, v, err, tt.want)
		}
	}
	_, _, err := Fit(strings.Repeat("a", 272), 1)
	var ce *CapacityError
	if !errors.As(err, &ce) || ce.Bits != 2196 || ce.Max != 2192 {
		t.Errorf("Fit(272 bytes) error = %v", err)
	}

	_, err = Codewords(1, NewSegment(strings.Repeat("a", 18)))
	if !errors.As(err, &ce) || ce.Bits-ce.Max != 4 {
		t.Errorf("Codewords(18 bytes, 1) error = %v", err)
	}
	// too long for the 8 bit count field as well
	long := NewSegment(strings.Repeat("a", 256))
	_, err = Codewords(9, long)
	if !errors.As(err, &ce) || ce.Bits != 2060 || ce.Max != 1856 {
		t.Errorf("Codewords(256 bytes, 9) error = %v", err)
	}
	_, err = Encode(9, long)
	if !errors.As(err, &ce) {
		t.Errorf("Encode(256 bytes, 9) error = %v", err)
	}
	if _, err := Codewords(11); err != ErrVersion {
		t.Errorf("Codewords(version 11) error = %v", err)
	}
}
