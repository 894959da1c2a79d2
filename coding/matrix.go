// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strings"

// A Cell is the state of a matrix cell.
type Cell byte

const (
	Unset Cell = iota // not yet placed
	Light             // 0, white
	Dark              // 1, black
)

// cellOf returns Dark if b is set, Light otherwise.
func cellOf(b bool) Cell {
	if b {
		return Dark
	}
	return Light
}

// A Matrix is a square grid of cells stored row by row.
type Matrix struct {
	Size  int
	Cells []Cell // cell (x, y) is Cells[y*Size+x]
}

// NewMatrix returns a size×size matrix with all cells unset.
func NewMatrix(size int) *Matrix {
	return &Matrix{Size: size, Cells: make([]Cell, size*size)}
}

// Clone returns a copy of m.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{Size: m.Size, Cells: append([]Cell(nil), m.Cells...)}
}

// index returns the offset of (x, y), panicking with CellError if
// the cell is outside m.
func (m *Matrix) index(x, y int) int {
	if uint(x) >= uint(m.Size) || uint(y) >= uint(m.Size) {
		panic(&CellError{x, y, m.Size})
	}
	return y*m.Size + x
}

// At returns the cell at (x, y).
func (m *Matrix) At(x, y int) Cell { return m.Cells[m.index(x, y)] }

// Set sets the cell at (x, y), overwriting any previous value.
func (m *Matrix) Set(x, y int, c Cell) { m.Cells[m.index(x, y)] = c }

// SetIfUnset sets the cell at (x, y) unless it is already set,
// reporting whether it was set.
func (m *Matrix) SetIfUnset(x, y int, c Cell) bool {
	i := m.index(x, y)
	if m.Cells[i] != Unset {
		return false
	}
	m.Cells[i] = c
	return true
}

// Black reports whether the cell at (x, y) is dark.
// Cells outside m are light.
func (m *Matrix) Black(x, y int) bool {
	return uint(x) < uint(m.Size) && uint(y) < uint(m.Size) &&
		m.Cells[y*m.Size+x] == Dark
}

// CountUnset returns the number of unset cells.
func (m *Matrix) CountUnset() int {
	n := 0
	for _, c := range m.Cells {
		if c == Unset {
			n++
		}
	}
	return n
}

// Merge returns a matrix with the cells of m, and the cells of over
// where m is unset.
func (m *Matrix) Merge(over *Matrix) *Matrix {
	r := m.Clone()
	for i, c := range r.Cells {
		if c == Unset {
			r.Cells[i] = over.Cells[i]
		}
	}
	return r
}

// String returns the matrix drawn with "#" for dark, "." for light
// and "?" for unset cells, one row per line.
func (m *Matrix) String() string {
	var b strings.Builder
	b.Grow((m.Size + 1) * m.Size)
	for i, c := range m.Cells {
		b.WriteByte(".#?"[(c+2)%3])
		if i%m.Size == m.Size-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
