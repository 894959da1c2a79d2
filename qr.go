// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes QR codes.

Generate encodes text in a single segment, choosing the most compact
of numeric, alphanumeric and byte modes, the smallest version that
holds the text at the requested error correction level, and the mask
with the lowest penalty.  The resulting Symbol is a square grid of
modules which can be queried cell by cell or rendered as an image,
a Portable Bit Map or text.
*/
package qr // import "github.com/unixdj/qrgen"

import (
	"image"
	"image/color"

	"github.com/unixdj/qrgen/coding"
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level = coding.Level

const (
	L = coding.L // 20% redundant
	M = coding.M // 38% redundant
	Q = coding.Q // 55% redundant
	H = coding.H // 65% redundant
)

// DefaultLevel is the error correction level used when none is
// chosen.
const DefaultLevel = M

// QuietZone is the recommended width of the light border around a
// QR code, in modules.
const QuietZone = 4

type (
	Mode    = coding.Mode    // segment encoding mode
	Version = coding.Version // QR version, 1 to 40
)

var (
	ErrLevel             = coding.ErrLevel
	ErrVersion           = coding.ErrVersion
	ErrUnsupportedMode   = coding.ErrUnsupportedMode
	ErrDataTooLong       = coding.ErrDataTooLong
	ErrInvalidCapacity   = coding.ErrInvalidCapacity
	ErrInvalidCellAccess = coding.ErrInvalidCellAccess
)

type (
	ModeError     = coding.ModeError
	LengthError   = coding.LengthError
	CapacityError = coding.CapacityError
	CellError     = coding.CellError
)

// ParseLevel returns the Level named by s, one of "L", "M", "Q" or
// "H" in either case.
func ParseLevel(s string) (Level, error) { return coding.ParseLevel(s) }

// A Bit is the colour of a QR module.
type Bit byte

const (
	Light Bit = iota // white
	Dark             // black
)

func (b Bit) String() string {
	if b == Dark {
		return "dark"
	}
	return "light"
}

// A Symbol is an encoded QR code: a square grid of modules ("pixels")
// and the parameters it was encoded with.  A Symbol is not modified
// after Generate returns it.
type Symbol struct {
	Version Version // QR version
	Level   Level   // error correction level
	Mode    Mode    // encoding mode of the single segment
	Mask    int     // mask pattern, 0 to 7
	Format  uint16  // 15 bit format information
	Penalty int     // mask penalty score
	Size    int     // number of modules on a side
	Stride  int     // number of bytes per row
	Bitmap  []byte  // 1 is black, 0 is white, most significant bit first
}

// Generate returns the QR code encoding text at the given error
// correction level.  Text containing characters outside ASCII is
// rejected with a ModeError, text too long for a version 40 code
// with a LengthError.  No Symbol is returned on error.
func Generate(text string, level Level) (*Symbol, error) {
	r, err := coding.Encode(text, level)
	if err != nil {
		return nil, err
	}
	return newSymbol(r), nil
}

// newSymbol packs the matrix of r into a Symbol.
func newSymbol(r *coding.Result) *Symbol {
	siz := r.Matrix.Size
	s := &Symbol{
		Version: r.Version,
		Level:   r.Level,
		Mode:    r.Mode,
		Mask:    r.Mask,
		Format:  r.Format,
		Penalty: r.Penalty,
		Size:    siz,
		Stride:  (siz + 7) / 8,
	}
	s.Bitmap = make([]byte, s.Stride*siz)
	for y := 0; y < siz; y++ {
		row := s.Bitmap[y*s.Stride:]
		for x := 0; x < siz; x++ {
			if r.Matrix.Black(x, y) {
				row[x/8] |= 1 << uint(7-x&7)
			}
		}
	}
	return s
}

// CellAt returns the colour of the module at (x, y), with (0, 0)
// at the upper left.  It panics with a CellError wrapping
// ErrInvalidCellAccess if (x, y) is outside the symbol.
func (s *Symbol) CellAt(x, y int) Bit {
	if uint(x) >= uint(s.Size) || uint(y) >= uint(s.Size) {
		panic(&CellError{X: x, Y: y, Size: s.Size})
	}
	return Bit(s.Bitmap[y*s.Stride+x/8] >> uint(7-x&7) & 1)
}

// Black returns true if the pixel at (x,y) is black.  Pixels outside
// the symbol, in the quiet zone, are white.
func (s *Symbol) Black(x, y int) bool {
	return 0 <= x && x < s.Size && 0 <= y && y < s.Size &&
		s.Bitmap[y*s.Stride+x/8]&(1<<uint(7-x&7)) != 0
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

// A Painter receives the modules of a symbol one at a time.
type Painter interface {
	PaintCell(x, y int, c color.Color)
}

// Paint calls p.PaintCell for each module of s surrounded by a quiet
// zone border modules wide, row by row.  Coordinates passed to p
// start at (0, 0) in the upper left corner of the quiet zone.
func (s *Symbol) Paint(p Painter, border int) {
	border = max(border, 0)
	for y := -border; y < s.Size+border; y++ {
		for x := -border; x < s.Size+border; x++ {
			c := whiteColor
			if s.Black(x, y) {
				c = blackColor
			}
			p.PaintCell(x+border, y+border, c)
		}
	}
}

// Image returns an Image displaying the code, scale pixels per
// module, with a quiet zone border modules wide.
func (s *Symbol) Image(scale, border int) image.Image {
	return &codeImage{s, max(scale, 1), max(border, 0)}
}

// codeImage implements image.Image
type codeImage struct {
	*Symbol
	scale  int
	border int
}

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size + 2*c.border) * c.scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	if x >= 0 && y >= 0 && c.Black(x/c.scale-c.border, y/c.scale-c.border) {
		return blackColor
	}
	return whiteColor
}

func (c *codeImage) ColorModel() color.Model {
	return color.GrayModel
}
