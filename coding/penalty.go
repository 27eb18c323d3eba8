// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Penalty weights.
const (
	MinRun = 5  // RunP:  minimum run length
	RunPP  = 3  // RunP:  points for a run of MinRun
	BoxPP  = 3  // BoxP:  points per 2×2 box
	FindPP = 40 // FindP: points per finder-like pattern
	BalPP  = 10 // BalP:  points per 5% away from 50% dark
)

// Penalty returns the penalty value of a complete matrix.  The mask
// with the smallest penalty is chosen.
//
//   - RunP: for each run of n >= 5 same-colour modules in a row or
//     column -> 3 + (n-5)
//   - BoxP: for each, possibly overlapping, 2×2 box of one colour -> 3
//   - FindP: for each dark-light-dark-dark-dark-light-dark sequence in
//     a row or column -> 40
//   - BalP: for n% dark modules -> 10 * floor(abs(n-50) / 5)
func Penalty(m *Matrix) int {
	siz := m.Size
	p := 0
	dark := 0
	for i := 0; i < siz; i++ {
		p += linePenalty(siz, func(j int) bool { return m.Dark(i, j) })
		p += linePenalty(siz, func(j int) bool { return m.Dark(j, i) })
		for j := 0; j < siz; j++ {
			if m.Dark(i, j) {
				dark++
			}
		}
	}
	for row := 0; row < siz-1; row++ {
		for col := 0; col < siz-1; col++ {
			c := m.Dark(row, col)
			if m.Dark(row+1, col) == c && m.Dark(row, col+1) == c &&
				m.Dark(row+1, col+1) == c {
				p += BoxPP
			}
		}
	}
	// floor(abs(100*dark/total - 50) / 5) in integers
	total := siz * siz
	d := 100*dark - 50*total
	if d < 0 {
		d = -d
	}
	p += d / (5 * total) * BalPP
	return p
}

// linePenalty returns RunP and FindP for one row or column of n
// modules.
func linePenalty(n int, dark func(int) bool) int {
	p := 0
	run := 1
	for j := 1; j <= n; j++ {
		if j < n && dark(j) == dark(j-1) {
			run++
			continue
		}
		if run >= MinRun {
			p += RunPP + run - MinRun
		}
		run = 1
	}
	for j := 0; j+6 < n; j++ {
		if dark(j) && !dark(j+1) && dark(j+2) && dark(j+3) &&
			dark(j+4) && !dark(j+5) && dark(j+6) {
			p += FindPP
		}
	}
	return p
}
