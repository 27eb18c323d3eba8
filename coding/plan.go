// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"math/bits"
	"sync"
)

// A Plan describes how to construct a QR code of a specific version.
// Its template holds the position, alignment and timing patterns;
// every other module is unset.
type Plan struct {
	Version Version
	Size    int // number of modules on a side

	template *Matrix
}

// Pre-allocated Plans.  A Plan is created the first time a version is
// used and shared read-only afterwards.
var plans [MaxVersion + 1]struct {
	once sync.Once
	p    *Plan
}

// NewPlan returns the Plan for version v.
func NewPlan(v Version) (*Plan, error) {
	if !v.IsValid() {
		return nil, ErrVersion
	}
	p := &plans[v]
	p.once.Do(func() { p.p = vplan(v) })
	return p.p, nil
}

// vplan creates a Plan for the given version.
func vplan(v Version) *Plan {
	siz := v.Size()
	m := NewMatrix(siz)
	// Position boxes.
	positionBox(m, 0, 0)
	positionBox(m, siz-7, 0)
	positionBox(m, 0, siz-7)
	// Alignment boxes, skipping those overlapping position boxes.
	pos := v.Alignment()
	for _, row := range pos {
		for _, col := range pos {
			if m.At(row, col) == Unset {
				alignBox(m, row, col)
			}
		}
	}
	// Timing markers.
	for i := 8; i < siz-8; i++ {
		if m.At(i, 6) == Unset {
			m.Set(i, 6, module(i&1 == 0))
		}
		if m.At(6, i) == Unset {
			m.Set(6, i, module(i&1 == 0))
		}
	}
	return &Plan{Version: v, Size: siz, template: m}
}

// positionBox draws a 7×7 position box with its separator at row, col.
func positionBox(m *Matrix, row, col int) {
	for r := -1; r <= 7; r++ {
		if row+r < 0 || row+r >= m.Size {
			continue
		}
		for c := -1; c <= 7; c++ {
			if col+c < 0 || col+c >= m.Size {
				continue
			}
			dark := 0 <= r && r <= 6 && (c == 0 || c == 6) ||
				0 <= c && c <= 6 && (r == 0 || r == 6) ||
				2 <= r && r <= 4 && 2 <= c && c <= 4
			m.Set(row+r, col+c, module(dark))
		}
	}
}

// alignBox draws a 5×5 alignment box centred at row, col.
func alignBox(m *Matrix, row, col int) {
	for r := -2; r <= 2; r++ {
		for c := -2; c <= 2; c++ {
			dark := r == -2 || r == 2 || c == -2 || c == 2 ||
				r == 0 && c == 0
			m.Set(row+r, col+c, module(dark))
		}
	}
}

// BCH generators for format and version information.
const (
	g15     = 1<<10 | 1<<8 | 1<<5 | 1<<4 | 1<<2 | 1<<1 | 1
	g15Mask = 1<<14 | 1<<12 | 1<<10 | 1<<4 | 1<<1
	g18     = 1<<12 | 1<<11 | 1<<10 | 1<<9 | 1<<8 | 1<<5 | 1<<2 | 1

	levelL = 1 // format bits of error correction level L
)

// bch returns data followed by its shift check bits for generator g.
func bch(data, g uint32, shift int) uint32 {
	d := data << shift
	gl := bits.Len32(g)
	for n := bits.Len32(d); n >= gl; n = bits.Len32(d) {
		d ^= g << (n - gl)
	}
	return data<<shift | d
}

// FormatBits returns the 15 bit format information for mask.
func FormatBits(mask int) uint32 {
	return bch(levelL<<3|uint32(mask), g15, 10) ^ g15Mask
}

// VersionBits returns the 18 bit version information for v.
func VersionBits(v Version) uint32 {
	return bch(uint32(v), g18, 12)
}

// Build returns the matrix for the interleaved codewords with the
// given mask.  In test mode format and version information modules
// are left light, as used when scoring masks.
func (p *Plan) Build(codewords []byte, mask int, test bool) (*Matrix, error) {
	if mask < 0 || mask > 7 {
		return nil, fmt.Errorf("qr: invalid mask %d", mask)
	}
	if len(codewords) != p.Version.TotalBytes() {
		return nil, fmt.Errorf("qr: %d codewords for version %s, want %d",
			len(codewords), p.Version, p.Version.TotalBytes())
	}
	m := p.template.Clone()
	siz := p.Size

	// Format information, two copies.
	fb := FormatBits(mask)
	for i := 0; i < 15; i++ {
		v := module(!test && fb>>i&1 != 0)
		switch {
		case i < 6:
			m.Set(i, 8, v)
		case i < 8:
			m.Set(i+1, 8, v)
		default:
			m.Set(siz-15+i, 8, v)
		}
		switch {
		case i < 8:
			m.Set(8, siz-i-1, v)
		case i < 9:
			m.Set(8, 15-i, v)
		default:
			m.Set(8, 14-i, v)
		}
	}
	// One lonely dark module.
	m.Set(siz-8, 8, module(!test))

	// Version information, two copies.
	if p.Version >= 7 {
		vb := VersionBits(p.Version)
		for i := 0; i < 18; i++ {
			v := module(!test && vb>>i&1 != 0)
			m.Set(i/3, i%3+siz-11, v)
			m.Set(i%3+siz-11, i/3, v)
		}
	}

	serialise(m, codewords, mask)
	return m, nil
}

// serialise places codewords in zigzag scan order, two columns at a
// time from the right, skipping the vertical timing column.
func serialise(m *Matrix, data []byte, mask int) {
	siz := m.Size
	inc := -1
	row := siz - 1
	pos := 0
	for col := siz - 1; col > 0; col -= 2 {
		if col == 6 {
			col--
		}
		for {
			for c := 0; c < 2; c++ {
				if m.At(row, col-c) != Unset {
					continue
				}
				dark := false
				if i := pos >> 3; i < len(data) {
					dark = data[i]>>(7&^pos)&1 != 0
				}
				if Mask(mask, row, col-c) {
					dark = !dark
				}
				m.Set(row, col-c, module(dark))
				pos++
			}
			row += inc
			if row < 0 || row >= siz {
				row -= inc
				inc = -inc
				break
			}
		}
	}
}

// Mask reports whether mask pattern mask flips the module at row, col.
//
//	0: ▄▀▄▀▄▀▄▀▄▀▄▀  1: ▄▄▄▄▄▄▄▄▄▄▄▄  2:  ██ ██ ██ ██  3: ▄█▀▄█▀▄█▀▄█▀
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     ▀▄█▀▄█▀▄█▀▄█
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     █▀▄█▀▄█▀▄█▀▄
//
//	4:    ███   ███  5:  ▄▄▄▄▄ ▄▄▄▄▄  6:    ▄▄▄   ▄▄▄  7: ▄█▄▀ ▀▄█▄▀ ▀
//	   ███   ███         █▀▄▀█ █▀▄▀█      ▄▀▄ █ ▄▀▄ █     ▄▀█▀▄ ▄▀█▀▄
//	      ███   ███      ██▄██ ██▄██      █▄▄▀  █▄▄▀      ▄  ▀██▄  ▀██
func Mask(mask, i, j int) bool {
	switch mask {
	case 0:
		return (i+j)%2 == 0
	case 1:
		return i%2 == 0
	case 2:
		return j%3 == 0
	case 3:
		return (i+j)%3 == 0
	case 4:
		return (i/2+j/3)%2 == 0
	case 5:
		return i*j%2+i*j%3 == 0
	case 6:
		return (i*j%2+i*j%3)%2 == 0
	case 7:
		return ((i+j)%2+i*j%3)%2 == 0
	}
	panic(fmt.Sprintf("qr: bad mask pattern %d", mask))
}
