// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "golang.org/x/sync/errgroup"

// Mask patterns:
//
//	0: ▄▀▄▀▄▀▄▀▄▀▄▀  1: ▄▄▄▄▄▄▄▄▄▄▄▄  2:  ██ ██ ██ ██  3: ▄█▀▄█▀▄█▀▄█▀
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     ▀▄█▀▄█▀▄█▀▄█
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     █▀▄█▀▄█▀▄█▀▄
//
//	4:    ███   ███  5:  ▄▄▄▄▄ ▄▄▄▄▄  6:    ▄▄▄   ▄▄▄  7: ▄█▄▀ ▀▄█▄▀ ▀
//	   ███   ███         █▀▄▀█ █▀▄▀█      ▄▀▄ █ ▄▀▄ █     ▄▀█▀▄ ▄▀█▀▄
//	      ███   ███      ██▄██ ██▄██      █▄▄▀  █▄▄▀      ▄  ▀██▄  ▀██
//
// The drawings show the pattern false as dark.  A data pixel at
// (x, y) is inverted where the pattern is true.
var Masks = [8]func(x, y int) bool{
	func(x, y int) bool { return (x+y)%2 == 0 },
	func(x, y int) bool { return y%2 == 0 },
	func(x, y int) bool { return x%3 == 0 },
	func(x, y int) bool { return (x+y)%3 == 0 },
	func(x, y int) bool { return (y/2+x/3)%2 == 0 },
	func(x, y int) bool { return x*y%2+x*y%3 == 0 },
	func(x, y int) bool { return (x*y%2+x*y%3)%2 == 0 },
	func(x, y int) bool { return ((x+y)%2+x*y%3)%2 == 0 },
}

// Penalty constants.
//
//   - RunP: for maximal runs of n same-colour pixels, n>=5 -> n-2
//   - BoxP: for possibly overlapping 2x2 boxes -> 3
//   - FindP: for possibly overlapping finder patterns -> 40
//     The pattern is 1011101 with 0000 on either side;
//     lines extend 4 pixels into the quiet zone
//   - BalP: for n% of black pixels -> 10 per 5% step away from 50%
const (
	MinRun  = 5  // RunP:  minimum run length
	RunPP   = 3  // RunP:  points for a run of MinRun
	BoxPP   = 3  // BoxP:  points per box
	FindPP  = 40 // FindP: points per pattern
	BalPP   = 10 // BalP:  points per step
	BalStep = 5  // BalP:  step in percent

	findLen = 11             // finder pattern length
	findB   = 0b0000_1011101 // quiet zone before
	findA   = 0b1011101_0000 // quiet zone after
	findPad = 4              // quiet zone pixels
	findWin = 1<<findLen - 1 // window mask
)

// linePenalty returns RunP and FindP for a line of pixels.
func linePenalty(line []Cell) int {
	p := 0
	r := 0
	for i, c := range line {
		if i > 0 && c != line[i-1] {
			if r >= MinRun {
				p += RunPP + r - MinRun
			}
			r = 0
		}
		r++
	}
	if r >= MinRun {
		p += RunPP + r - MinRun
	}

	pat := 0
	for i := -findPad; i < len(line)+findPad; i++ {
		bit := 0
		if i >= 0 && i < len(line) && line[i] == Dark {
			bit = 1
		}
		pat = (pat<<1 | bit) & findWin
		if i+findPad >= findLen-1 && (pat == findB || pat == findA) {
			p += FindPP
		}
	}
	return p
}

// Penalty returns the penalty value for a complete QR code matrix.
// The value is used for choosing the mask.
func Penalty(m *Matrix) int {
	siz := m.Size
	p := 0
	line := make([]Cell, siz)
	for y := 0; y < siz; y++ {
		p += linePenalty(m.Cells[y*siz : (y+1)*siz])
	}
	for x := 0; x < siz; x++ {
		for y := range line {
			line[y] = m.Cells[y*siz+x]
		}
		p += linePenalty(line)
	}

	// BoxP
	for y := 1; y < siz; y++ {
		prev, cur := m.Cells[(y-1)*siz:y*siz], m.Cells[y*siz:(y+1)*siz]
		for x := 1; x < siz; x++ {
			if c := cur[x]; c == cur[x-1] && c == prev[x] && c == prev[x-1] {
				p += BoxPP
			}
		}
	}

	// BalP: percentage of black pixels rounded down; the step
	// boundary closer to 50% decides.
	dark := 0
	for _, c := range m.Cells {
		if c == Dark {
			dark++
		}
	}
	pct := dark * 100 / len(m.Cells)
	lo := pct / BalStep * BalStep
	d := min(abs(lo-50), abs(lo+BalStep-50))
	p += d / BalStep * BalPP
	return p
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Finish returns the QR code matrix built from p and the data layer
// data with the given mask applied and format information for level
// l and the mask written.  p and data are not modified.
func (p *Plan) Finish(data *Matrix, l Level, mask int) *Matrix {
	fn := p.Func.Clone()
	p.setFormat(fn, FormatBits(l, mask))
	is := Masks[mask]
	md := data.Clone()
	siz := md.Size
	for i, c := range md.Cells {
		if c != Unset && is(i%siz, i/siz) {
			md.Cells[i] = c ^ Light ^ Dark
		}
	}
	return fn.Merge(md)
}

// ChooseMask applies each mask to the data layer and returns the mask
// with the smallest penalty, the lowest numbered one on a tie, and
// its penalty.  Masks are evaluated concurrently.
func (p *Plan) ChooseMask(data *Matrix, l Level) (mask, penalty int) {
	var pen [len(Masks)]int
	var g errgroup.Group
	for i := range Masks {
		i := i
		g.Go(func() error {
			pen[i] = Penalty(p.Finish(data, l, i))
			return nil
		})
	}
	g.Wait() // never fails
	for i := 1; i < len(pen); i++ {
		if pen[i] < pen[mask] {
			mask = i
		}
	}
	return mask, pen[mask]
}
