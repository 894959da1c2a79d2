// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "sync"

// A Plan describes the function patterns of a QR code with a
// specific version: position, alignment and timing patterns, the
// dark module, and format and version information.  Cells left
// unset hold data and error correction bits.
type Plan struct {
	Version Version // QR code version
	Size    int     // number of pixels on a side
	Func    *Matrix // function patterns, format information zeroed
	open    int     // number of unset cells
}

// Pre-allocated Plans.  A Plan is created the first time a version is
// used and is never modified afterwards.
var plans [MaxVersion + 1]struct {
	once sync.Once
	p    *Plan
}

// NewPlan returns the Plan for a QR code with the given version.
// The Plan is shared and must not be modified.
func NewPlan(v Version) (*Plan, error) {
	if !v.IsValid() {
		return nil, ErrVersion
	}
	p := &plans[v]
	p.once.Do(func() { p.p = vplan(v) })
	return p.p, nil
}

// vplan creates a Plan for the given version.  Stages run in order,
// and only the separators and information areas overwrite cells
// already set.
func vplan(v Version) *Plan {
	siz := v.Size()
	p := &Plan{Version: v, Size: siz, Func: NewMatrix(siz)}
	m := p.Func

	// Position boxes and separators.
	corners := [3][2]int{{0, 0}, {siz - 7, 0}, {0, siz - 7}}
	for _, c := range corners {
		positionBox(m, c[0], c[1])
	}
	for _, c := range corners {
		separator(m, c[0], c[1])
	}

	// Alignment boxes, centred on every pair of listed coordinates
	// not already taken.
	apos := vtab[v].align
	for _, y := range apos {
		for _, x := range apos {
			if m.At(x, y) == Unset {
				alignBox(m, x, y)
			}
		}
	}

	// Timing markers.
	for i := 0; i < siz; i++ {
		c := cellOf(i&1 == 0)
		m.SetIfUnset(i, 6, c)
		m.SetIfUnset(6, i, c)
	}

	// One lonely black pixel
	m.Set(8, siz-8, Dark)

	// Format information, filled in by Finish.
	p.setFormat(m, 0)

	// Version information.
	if vb := VersionBits(v); vb != 0 {
		for i := 0; i < versionLen; i++ {
			c := cellOf(vb>>i&1 != 0)
			a, b := siz-11+i%3, i/3
			m.Set(a, b, c) // top right
			m.Set(b, a, c) // bottom left
		}
	}

	p.open = m.CountUnset()
	return p
}

// positionBox draws a position (finder) box at upper left x, y.
func positionBox(m *Matrix, x, y int) {
	for dy := 0; dy < 7; dy++ {
		for dx := 0; dx < 7; dx++ {
			ring := dx == 0 || dx == 6 || dy == 0 || dy == 6
			core := 2 <= dx && dx <= 4 && 2 <= dy && dy <= 4
			m.Set(x+dx, y+dy, cellOf(ring || core))
		}
	}
}

// separator draws the light border one pixel wide around the
// position box at upper left x, y, clipped to the matrix.
func separator(m *Matrix, x, y int) {
	for i := -1; i <= 7; i++ {
		for _, p := range [4][2]int{{x + i, y - 1}, {x + i, y + 7},
			{x - 1, y + i}, {x + 7, y + i}} {
			if uint(p[0]) < uint(m.Size) && uint(p[1]) < uint(m.Size) {
				m.Set(p[0], p[1], Light)
			}
		}
	}
}

// alignBox draws an alignment (small) box centred at x, y into
// unset cells.
func alignBox(m *Matrix, x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			ring := dx == -2 || dx == 2 || dy == -2 || dy == 2
			m.SetIfUnset(x+dx, y+dy, cellOf(ring || dx|dy == 0))
		}
	}
}

// formatCells returns the coordinates of format information bit i in
// its two copies: around the upper left position box, and split
// between the lower left and upper right ones.  Bit 14 is the most
// significant.
func formatCells(siz, i int) (x1, y1, x2, y2 int) {
	switch {
	case i < 6:
		x1, y1 = 8, i
	case i < 8:
		x1, y1 = 8, i+1
	case i == 8:
		x1, y1 = 7, 8
	default:
		x1, y1 = 14-i, 8
	}
	if i < 8 {
		x2, y2 = siz-1-i, 8
	} else {
		x2, y2 = 8, siz-15+i
	}
	return
}

// setFormat writes the format information fb into m.
func (p *Plan) setFormat(m *Matrix, fb uint16) {
	for i := 0; i < formatLen; i++ {
		c := cellOf(fb>>i&1 != 0)
		x1, y1, x2, y2 := formatCells(p.Size, i)
		m.Set(x1, y1, c)
		m.Set(x2, y2, c)
	}
}

// DataBits returns the number of cells available for data and error
// correction bits.
func (p *Plan) DataBits() int { return p.open }

// Serialise places the bits of codewords into the cells left unset
// by p in zigzag scan order, returning the data layer.  The scan
// runs in strips two pixels wide from right to left, skipping the
// vertical timing strip, alternately upwards and downwards.  Cells
// past the end of codewords are light.
func (p *Plan) Serialise(codewords []byte) *Matrix {
	siz := p.Size
	fn := p.Func
	data := NewMatrix(siz)
	pos, nbit := 0, len(codewords)*8
	up := true
	for x := siz - 1; x > 0; x -= 2 {
		if x == 6 { // vertical timing strip
			x--
		}
		for i := 0; i < siz; i++ {
			y := i
			if up {
				y = siz - 1 - i
			}
			for _, xx := range [2]int{x, x - 1} {
				if fn.At(xx, y) != Unset {
					continue
				}
				c := Light
				if pos < nbit {
					c = cellOf(codewords[pos>>3]>>(7&^pos)&1 != 0)
					pos++
				}
				data.Set(xx, y, c)
			}
		}
		up = !up
	}
	return data
}
