// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Module is the state of one cell of a QR code.
type Module uint8

const (
	Unset Module = iota // not yet placed
	Light
	Dark
)

func module(dark bool) Module {
	if dark {
		return Dark
	}
	return Light
}

// A Matrix is a square grid of modules, stored row by row.
type Matrix struct {
	Size int
	m    []Module
}

// NewMatrix returns a matrix of size×size unset modules.
func NewMatrix(size int) *Matrix {
	return &Matrix{Size: size, m: make([]Module, size*size)}
}

// At returns the module at row, col.
func (m *Matrix) At(row, col int) Module { return m.m[row*m.Size+col] }

// Set sets the module at row, col.
func (m *Matrix) Set(row, col int, v Module) { m.m[row*m.Size+col] = v }

// Dark reports whether the module at row, col is dark.
func (m *Matrix) Dark(row, col int) bool { return m.m[row*m.Size+col] == Dark }

// Complete reports whether every module is placed.
func (m *Matrix) Complete() bool {
	for _, v := range m.m {
		if v == Unset {
			return false
		}
	}
	return true
}

// Clone returns a copy of m.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{Size: m.Size, m: append([]Module(nil), m.m...)}
}

// Equal reports whether m and n hold the same modules.
func (m *Matrix) Equal(n *Matrix) bool {
	if m.Size != n.Size {
		return false
	}
	for i, v := range m.m {
		if n.m[i] != v {
			return false
		}
	}
	return true
}
