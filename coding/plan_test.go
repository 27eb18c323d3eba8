// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "testing"

func TestFormatBits(t *testing.T) {
	want := [8]uint32{0x77c4, 0x72f3, 0x7daa, 0x789d,
		0x662f, 0x6318, 0x6c41, 0x6976}
	for mask, w := range want {
		if fb := FormatBits(mask); fb != w {
			t.Errorf("FormatBits(%d) = %#x, want %#x", mask, fb, w)
		}
	}
}

func TestVersionBits(t *testing.T) {
	want := map[Version]uint32{7: 0x07c94, 8: 0x085bc, 9: 0x09a99, 10: 0x0a4d3}
	for v, w := range want {
		if vb := VersionBits(v); vb != w {
			t.Errorf("VersionBits(%d) = %#x, want %#x", v, vb, w)
		}
	}
}

func TestPlanTemplate(t *testing.T) {
	p, err := NewPlan(2)
	if err != nil {
		t.Fatal(err)
	}
	if p.Size != 25 {
		t.Fatalf("Size = %d, want 25", p.Size)
	}
	m := p.template
	tests := []struct {
		row, col int
		want     Module
	}{
		{0, 0, Dark}, {1, 1, Light}, {3, 3, Dark}, {7, 7, Light}, // position box
		{0, 24, Dark}, {7, 17, Light}, {24, 0, Dark}, {17, 7, Light},
		{6, 8, Dark}, {6, 9, Light}, {8, 6, Dark}, {9, 6, Light}, // timing
		{18, 18, Dark}, {17, 17, Light}, {16, 16, Dark}, // alignment
		{8, 8, Unset}, {12, 12, Unset},
	}
	for _, tt := range tests {
		if got := m.At(tt.row, tt.col); got != tt.want {
			t.Errorf("(%d, %d) = %d, want %d", tt.row, tt.col, got, tt.want)
		}
	}
	if q, _ := NewPlan(2); q != p {
		t.Error("NewPlan(2) not cached")
	}
	if _, err := NewPlan(0); err != ErrVersion {
		t.Errorf("NewPlan(0) error = %v", err)
	}
}

func TestBuild(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		p, err := NewPlan(v)
		if err != nil {
			t.Fatal(err)
		}
		cw, err := Codewords(v, NewSegment("build "+v.String()))
		if err != nil {
			t.Fatal(err)
		}
		for mask := 0; mask < 8; mask++ {
			m, err := p.Build(cw, mask, false)
			if err != nil {
				t.Fatal(err)
			}
			if !m.Complete() {
				t.Errorf("version %d mask %d: unset modules", v, mask)
			}
			// Structure is never overwritten by data.
			for i, s := range p.template.m {
				if s != Unset && m.m[i] != s {
					t.Errorf("version %d mask %d: module %d changed",
						v, mask, i)
					break
				}
			}
			if !m.Dark(m.Size-8, 8) {
				t.Errorf("version %d: dark module missing", v)
			}
			// Format information, both copies.
			fb := FormatBits(mask)
			if m.Dark(0, 8) != (fb&1 != 0) || m.Dark(8, m.Size-1) != (fb&1 != 0) {
				t.Errorf("version %d mask %d: format bit 0", v, mask)
			}
			if m.Dark(8, 0) != (fb>>14&1 != 0) || m.Dark(m.Size-1, 8) != (fb>>14&1 != 0) {
				t.Errorf("version %d mask %d: format bit 14", v, mask)
			}
		}
		if _, err := p.Build(cw[1:], 0, false); err == nil {
			t.Errorf("version %d: short codewords accepted", v)
		}
		if _, err := p.Build(cw, 8, false); err == nil {
			t.Errorf("version %d: mask 8 accepted", v)
		}
	}
}

func TestBuildTestMode(t *testing.T) {
	p, _ := NewPlan(7)
	cw, err := Codewords(7, NewSegment("test mode"))
	if err != nil {
		t.Fatal(err)
	}
	m, err := p.Build(cw, 3, true)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 9; i++ {
		if i != 6 && m.Dark(i, 8) {
			t.Errorf("test mode: format module (%d, 8) is dark", i)
		}
	}
	for i := 0; i < 18; i++ {
		if m.Dark(i/3, i%3+m.Size-11) {
			t.Errorf("test mode: version module %d is dark", i)
		}
	}
	if m.Dark(m.Size-8, 8) {
		t.Error("test mode: dark module is dark")
	}
}

func TestMask(t *testing.T) {
	// Mask 0 is a checkerboard with the top left flipped.
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if Mask(0, i, j) != ((i+j)%2 == 0) {
				t.Errorf("Mask(0, %d, %d)", i, j)
			}
		}
	}
	for mask := 0; mask < 8; mask++ {
		if !Mask(mask, 0, 0) {
			t.Errorf("Mask(%d, 0, 0) = false", mask)
		}
	}
}
