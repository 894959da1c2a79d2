// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"testing"
)

// Number of remainder bits by version.
func remainderBits(v Version) int {
	switch {
	case v == 1:
		return 0
	case v <= 6:
		return 7
	case v <= 13:
		return 0
	case v <= 20:
		return 3
	case v <= 27:
		return 4
	case v <= 34:
		return 3
	}
	return 0
}

func TestPlanDataBits(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		p, err := NewPlan(v)
		if err != nil {
			t.Fatal(err)
		}
		if p.Size != v.Size() || p.Func.Size != v.Size() {
			t.Errorf("version %v: size %d", v, p.Size)
		}
		want := vtab[v].bytes*8 + remainderBits(v)
		if n := p.DataBits(); n != want || p.Func.CountUnset() != n {
			t.Errorf("version %v: %d data bits, want %d", v, n, want)
		}
	}
}

func TestPlanShared(t *testing.T) {
	p1, _ := NewPlan(5)
	p2, _ := NewPlan(5)
	if p1 != p2 {
		t.Error("NewPlan(5) returned distinct plans")
	}
	for _, v := range []Version{-1, 0, 41} {
		if _, err := NewPlan(v); !errors.Is(err, ErrVersion) {
			t.Errorf("NewPlan(%d) error = %v", v, err)
		}
	}
}

var finder = [7]string{
	"#######",
	"#.....#",
	"#.###.#",
	"#.###.#",
	"#.###.#",
	"#.....#",
	"#######",
}

func cellChar(c Cell) byte { return ".#?"[(c+2)%3] }

func TestPlanPatterns(t *testing.T) {
	for _, v := range []Version{1, 2, 7, 14, 40} {
		p, _ := NewPlan(v)
		m, siz := p.Func, p.Size
		for _, c := range [3][2]int{{0, 0}, {siz - 7, 0}, {0, siz - 7}} {
			for y := range finder {
				for x := range finder[y] {
					if got := cellChar(m.At(c[0]+x, c[1]+y)); got != finder[y][x] {
						t.Errorf("version %v: finder at %v: (%d,%d) = %c",
							v, c, x, y, got)
					}
				}
			}
		}
		// Separators.
		for i := 0; i < 8; i++ {
			for _, xy := range [6][2]int{
				{i, 7}, {7, i},
				{siz - 1 - i, 7}, {siz - 8, i},
				{i, siz - 8}, {7, siz - 1 - i},
			} {
				if m.At(xy[0], xy[1]) != Light {
					t.Errorf("version %v: separator (%d,%d) not light",
						v, xy[0], xy[1])
				}
			}
		}
		// Timing patterns.
		for i := 8; i < siz-8; i++ {
			want := cellOf(i%2 == 0)
			if m.At(i, 6) != want || m.At(6, i) != want {
				t.Errorf("version %v: timing at %d", v, i)
			}
		}
		if m.At(8, siz-8) != Dark {
			t.Errorf("version %v: no dark module", v)
		}
		// Alignment pattern centres, except those in finder corners.
		apos := vtab[v].align
		for _, y := range apos {
			for _, x := range apos {
				if x == 6 && (y == 6 || y == siz-7) || y == 6 && x == siz-7 {
					continue
				}
				if m.At(x, y) != Dark || m.At(x+1, y) != Light ||
					m.At(x+2, y+2) != Dark || m.At(x-2, y-1) != Dark {
					t.Errorf("version %v: alignment box at (%d,%d)", v, x, y)
				}
			}
		}
	}
}

func TestPlanVersionInfo(t *testing.T) {
	p, _ := NewPlan(7)
	m, siz := p.Func, p.Size
	vb := VersionBits(7)
	for i := 0; i < versionLen; i++ {
		want := cellOf(vb>>i&1 != 0)
		if c := m.At(siz-11+i%3, i/3); c != want {
			t.Errorf("top right version bit %d = %v", i, c)
		}
		if c := m.At(i/3, siz-11+i%3); c != want {
			t.Errorf("bottom left version bit %d = %v", i, c)
		}
	}
}

func TestSerialise(t *testing.T) {
	p, _ := NewPlan(1)
	cw := make([]byte, 26)
	cw[0] = 0x80 // first bit dark
	cw[25] = 0x01
	d := p.Serialise(cw)
	if d.CountUnset() != 21*21-p.DataBits() {
		t.Errorf("%d cells unset", d.CountUnset())
	}
	// The first bit is in the lower right corner, the second to
	// its left, the third above the first.
	if d.At(20, 20) != Dark || d.At(19, 20) != Light || d.At(20, 19) != Light {
		t.Errorf("bad start of placement:\n%v", d)
	}
	// The last bit of version 1 lands above the lower left
	// separator: column 0 is scanned downwards between rows 9 and 12.
	if d.At(0, 12) != Dark {
		t.Errorf("bad end of placement:\n%v", d)
	}
	if m := p.Func.Merge(d); m.CountUnset() != 0 {
		t.Errorf("merged matrix has %d unset cells", m.CountUnset())
	}
}

func TestMatrixOutOfRange(t *testing.T) {
	m := NewMatrix(21)
	for _, xy := range [][2]int{{-1, 0}, {0, -1}, {21, 0}, {0, 21}} {
		func() {
			defer func() {
				err, _ := recover().(error)
				var ce *CellError
				if !errors.As(err, &ce) || !errors.Is(err, ErrInvalidCellAccess) {
					t.Errorf("At(%d, %d) recovered %v", xy[0], xy[1], err)
				}
			}()
			m.At(xy[0], xy[1])
		}()
		if m.Black(xy[0], xy[1]) {
			t.Errorf("Black(%d, %d) = true", xy[0], xy[1])
		}
	}
}

func TestMatrixString(t *testing.T) {
	m := NewMatrix(2)
	m.Set(0, 0, Dark)
	m.Set(1, 0, Light)
	m.Set(0, 1, Dark)
	if s := m.String(); s != "#.\n#?\n" {
		t.Errorf("String() = %q", s)
	}
	if !m.SetIfUnset(1, 1, Light) || m.SetIfUnset(1, 1, Dark) || m.At(1, 1) != Light {
		t.Error("SetIfUnset overwrote a set cell")
	}
}
