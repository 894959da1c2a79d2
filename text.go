// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import "io"

// Half block characters by the colour of the upper and lower module.
var halfBlocks = [4]string{" ", "▄", "▀", "█"}

// appendText appends to b the code drawn with Unicode half blocks,
// two rows of modules per line, with a quiet zone border modules
// wide.  Dark modules are drawn as blocks, or light ones if rev is
// set.
func (s *Symbol) appendText(b []byte, border int, rev bool) []byte {
	end := s.Size + border
	for y := -border; y < end; y += 2 {
		for x := -border; x < end; x++ {
			i := 0
			if s.Black(x, y) != rev {
				i |= 2
			}
			if y+1 < end && s.Black(x, y+1) != rev {
				i |= 1
			}
			b = append(b, halfBlocks[i]...)
		}
		b = append(b, '\n')
	}
	return b
}

// appendASCII appends to b the code drawn with "##" for dark modules
// and two spaces for light ones, or the other way round if rev is
// set, with a quiet zone border modules wide.
func (s *Symbol) appendASCII(b []byte, border int, rev bool) []byte {
	for y := -border; y < s.Size+border; y++ {
		for x := -border; x < s.Size+border; x++ {
			p := byte(' ')
			if s.Black(x, y) != rev {
				p = '#'
			}
			b = append(b, p, p)
		}
		b = append(b, '\n')
	}
	return b
}

// WriteText writes the code to w drawn with Unicode half blocks as
// returned by String, with a quiet zone border modules wide.  If rev
// is set, light modules are drawn as blocks, for display as light
// text on a dark background.
func (s *Symbol) WriteText(w io.Writer, border int, rev bool) error {
	border = max(border, 0)
	pix := s.Size + 2*border
	b := make([]byte, 0, (pix*3+1)*(pix+1)/2)
	_, err := w.Write(s.appendText(b, border, rev))
	return err
}

// WriteASCII writes the code to w drawn as returned by ASCII, with a
// quiet zone border modules wide.  If rev is set, light modules are
// drawn as "##".
func (s *Symbol) WriteASCII(w io.Writer, border int, rev bool) error {
	border = max(border, 0)
	pix := s.Size + 2*border
	b := make([]byte, 0, (pix*2+1)*pix)
	_, err := w.Write(s.appendASCII(b, border, rev))
	return err
}

// String returns the code drawn with Unicode half blocks, two rows
// of modules per line, with the standard quiet zone.  Dark modules
// are drawn as blocks.
func (s *Symbol) String() string {
	return string(s.appendText(nil, QuietZone, false))
}

// ASCII returns the code drawn with "##" for dark modules and two
// spaces for light ones, with the standard quiet zone.
func (s *Symbol) ASCII() string {
	return string(s.appendASCII(nil, QuietZone, false))
}
