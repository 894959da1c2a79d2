// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/unixdj/qrgen/coding"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		text string
		l    Level
		v    Version
		mode Mode
	}{
		{"HELLO WORLD", M, 1, coding.Alphanumeric},
		{"HELLO WORLD", H, 2, coding.Alphanumeric},
		{"01234567", M, 1, coding.Numeric},
		{"https://github.com/unixdj/qrgen", L, 2, coding.Byte},
		{"", DefaultLevel, 1, coding.Numeric},
		{strings.Repeat("9", 7089), L, 40, coding.Numeric},
	}
	for _, tt := range tests {
		s, err := Generate(tt.text, tt.l)
		if err != nil {
			t.Errorf("Generate(%.10q, %v): %v", tt.text, tt.l, err)
			continue
		}
		if s.Version != tt.v || s.Mode != tt.mode || s.Level != tt.l {
			t.Errorf("Generate(%.10q, %v) = %v-%v %v, want %v-%v %v",
				tt.text, tt.l, s.Version, s.Level, s.Mode, tt.v, tt.l, tt.mode)
		}
		if s.Size != tt.v.Size() || s.Stride != (s.Size+7)/8 ||
			len(s.Bitmap) != s.Stride*s.Size {
			t.Errorf("%.10q: bad geometry %d/%d/%d", tt.text,
				s.Size, s.Stride, len(s.Bitmap))
		}
		if s.Format != coding.FormatBits(tt.l, s.Mask) {
			t.Errorf("%.10q: format %015b for mask %d", tt.text, s.Format, s.Mask)
		}
	}
}

func TestGenerateCells(t *testing.T) {
	const text = "THE QUICK BROWN FOX"
	s, err := Generate(text, Q)
	if err != nil {
		t.Fatal(err)
	}
	r, err := coding.Encode(text, Q)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < s.Size; y++ {
		for x := 0; x < s.Size; x++ {
			want := Light
			if r.Matrix.At(x, y) == coding.Dark {
				want = Dark
			}
			if c := s.CellAt(x, y); c != want {
				t.Fatalf("CellAt(%d, %d) = %v, want %v", x, y, c, want)
			}
			if s.Black(x, y) != (want == Dark) {
				t.Fatalf("Black(%d, %d) disagrees with CellAt", x, y)
			}
		}
	}
	// Padding bits past the last module stay clear.
	for y := 0; y < s.Size; y++ {
		if last := s.Bitmap[y*s.Stride+s.Stride-1]; last<<uint(s.Size&7) != 0 && s.Size&7 != 0 {
			t.Errorf("row %d: padding bits set in %08b", y, last)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		text string
		l    Level
		err  error
	}{
		{"ünïcödé", M, ErrUnsupportedMode},
		{strings.Repeat("x", 2954), L, ErrDataTooLong},
		{strings.Repeat("x", 1274), H, ErrDataTooLong},
		{"x", Level(4), ErrLevel},
	}
	for _, tt := range tests {
		s, err := Generate(tt.text, tt.l)
		if s != nil || !errors.Is(err, tt.err) {
			t.Errorf("Generate(%.10q, %v) = %v, %v, want %v",
				tt.text, tt.l, s, err, tt.err)
		}
	}
	_, err := Generate("日本語", M)
	var me *ModeError
	if !errors.As(err, &me) || me.Pos != 0 {
		t.Errorf("Generate(kanji): %v", err)
	}
}

func TestCellAtOutOfRange(t *testing.T) {
	s, err := Generate("1", L)
	if err != nil {
		t.Fatal(err)
	}
	for _, xy := range [][2]int{{-1, 0}, {0, -1}, {21, 0}, {0, 21}, {21, 21}} {
		func() {
			defer func() {
				err, _ := recover().(error)
				if !errors.Is(err, ErrInvalidCellAccess) {
					t.Errorf("CellAt(%d, %d): recovered %v", xy[0], xy[1], err)
				}
			}()
			s.CellAt(xy[0], xy[1])
		}()
		if s.Black(xy[0], xy[1]) {
			t.Errorf("Black(%d, %d) = true", xy[0], xy[1])
		}
	}
}

// finder position boxes
func TestFinders(t *testing.T) {
	s, err := Generate("HELLO WORLD", M)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range [3][2]int{{0, 0}, {s.Size - 7, 0}, {0, s.Size - 7}} {
		for i := 0; i < 7; i++ {
			for _, xy := range [4][2]int{{i, 0}, {i, 6}, {0, i}, {6, i}} {
				if s.CellAt(c[0]+xy[0], c[1]+xy[1]) != Dark {
					t.Errorf("finder at %v: ring cell %v light", c, xy)
				}
			}
		}
		if s.CellAt(c[0]+1, c[1]+1) != Light || s.CellAt(c[0]+3, c[1]+3) != Dark {
			t.Errorf("finder at %v: bad interior", c)
		}
	}
}

// readPBM parses a binary PBM image.
func readPBM(t *testing.T, b []byte) (int, []byte) {
	t.Helper()
	var w, h int
	n, err := fmt.Sscanf(string(b), "P4\n%d %d\n", &w, &h)
	if n != 2 || err != nil || w != h {
		t.Fatalf("bad PBM header %q: %v", b[:min(len(b), 16)], err)
	}
	b = b[bytes.IndexByte(b[3:], '\n')+4:]
	if len(b) != (w+7)/8*h {
		t.Fatalf("PBM data length %d, want %d", len(b), (w+7)/8*h)
	}
	return w, b
}

func TestEncodePBM(t *testing.T) {
	for _, text := range []string{"HELLO WORLD", "hello, world"} {
		s, err := Generate(text, M)
		if err != nil {
			t.Fatal(err)
		}
		for _, scale := range []int{1, 2, 3, 4, 5, 7, 8, 12, 16} {
			for _, border := range []int{0, 1, 2, 3, 4, 5} {
				var buf bytes.Buffer
				if err := s.EncodePBM(&buf, scale, border); err != nil {
					t.Fatal(err)
				}
				w, data := readPBM(t, buf.Bytes())
				if w != (s.Size+2*border)*scale {
					t.Fatalf("scale %d border %d: width %d", scale, border, w)
				}
				stride := (w + 7) / 8
				for y := 0; y < w; y++ {
					for x := 0; x < w; x++ {
						got := data[y*stride+x/8]>>uint(7-x&7)&1 != 0
						want := s.Black(x/scale-border, y/scale-border)
						if got != want {
							t.Fatalf("%q scale %d border %d: pixel (%d,%d) = %v",
								text, scale, border, x, y, got)
						}
					}
				}
			}
		}
	}
}

func TestEncodePBMArgs(t *testing.T) {
	s, _ := Generate("1", L)
	for _, tt := range []struct {
		scale, border int
		err           error
	}{
		{0, 4, ErrArgs},
		{1, -1, ErrArgs},
		{1 << 20, 0, ErrLargeImage},
		{1 << 14, 4, ErrLargeImage},
	} {
		if err := s.EncodePBM(new(bytes.Buffer), tt.scale, tt.border); err != tt.err {
			t.Errorf("EncodePBM(scale %d, border %d) = %v, want %v",
				tt.scale, tt.border, err, tt.err)
		}
	}
}

func TestImage(t *testing.T) {
	s, err := Generate("HELLO WORLD", Q)
	if err != nil {
		t.Fatal(err)
	}
	img := s.Image(3, 2)
	r := img.Bounds()
	if r.Min.X != 0 || r.Min.Y != 0 || r.Dx() != 75 || r.Dy() != 75 {
		t.Fatalf("Bounds() = %v", r)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			if want := s.Black(x/3-2, y/3-2); (g.Y == 0) != want {
				t.Fatalf("At(%d, %d) = %v", x, y, g)
			}
		}
	}
}

type recorder struct {
	n, dark    int
	maxX, maxY int
}

func (r *recorder) PaintCell(x, y int, c color.Color) {
	r.n++
	if g := color.GrayModel.Convert(c).(color.Gray); g.Y == 0 {
		r.dark++
	}
	r.maxX, r.maxY = max(r.maxX, x), max(r.maxY, y)
}

func TestPaint(t *testing.T) {
	s, err := Generate("HELLO WORLD", M)
	if err != nil {
		t.Fatal(err)
	}
	dark := 0
	for y := 0; y < s.Size; y++ {
		for x := 0; x < s.Size; x++ {
			dark += int(s.CellAt(x, y))
		}
	}
	var r recorder
	s.Paint(&r, QuietZone)
	if pix := s.Size + 2*QuietZone; r.n != pix*pix || r.maxX != pix-1 || r.maxY != pix-1 {
		t.Errorf("painted %d cells up to (%d,%d)", r.n, r.maxX, r.maxY)
	}
	if r.dark != dark {
		t.Errorf("painted %d dark cells, want %d", r.dark, dark)
	}
}

func TestText(t *testing.T) {
	s, err := Generate("HELLO WORLD", M)
	if err != nil {
		t.Fatal(err)
	}
	pix := s.Size + 2*QuietZone
	lines := strings.Split(strings.TrimSuffix(s.String(), "\n"), "\n")
	if len(lines) != (pix+1)/2 {
		t.Errorf("String: %d lines, want %d", len(lines), (pix+1)/2)
	}
	for i, l := range lines {
		if n := utf8.RuneCountInString(l); n != pix {
			t.Errorf("String: line %d: %d runes", i, n)
		}
	}
	// Line 2 holds rows 0 and 1, the top of the finders.
	if want := "    █▀▀▀▀▀█"; !strings.HasPrefix(lines[2], want) {
		t.Errorf("String: line 2 = %q", lines[2])
	}

	lines = strings.Split(strings.TrimSuffix(s.ASCII(), "\n"), "\n")
	if len(lines) != pix {
		t.Errorf("ASCII: %d lines, want %d", len(lines), pix)
	}
	if lines[0] != strings.Repeat(" ", 2*pix) {
		t.Errorf("ASCII: line 0 = %q", lines[0])
	}
	if want := "        " + strings.Repeat("#", 14) + "  "; !strings.HasPrefix(lines[4], want) {
		t.Errorf("ASCII: line 4 = %q", lines[4])
	}

	var b bytes.Buffer
	if err := s.WriteASCII(&b, 0, true); err != nil {
		t.Fatal(err)
	}
	if first, _, _ := strings.Cut(b.String(), "\n"); first[:14] != strings.Repeat(" ", 14) ||
		first[14:16] != "##" {
		t.Errorf("WriteASCII reversed: first line %q", first)
	}
	b.Reset()
	if err := s.WriteText(&b, 1, true); err != nil {
		t.Fatal(err)
	}
	if first, _, _ := strings.Cut(b.String(), "\n"); !strings.HasPrefix(first, "█▀▀▀▀▀▀▀█") {
		t.Errorf("WriteText reversed: first line %q", first)
	}
}
