// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Result is an encoded QR code with the parameters chosen for it.
type Result struct {
	Version   Version // QR version
	Level     Level   // error correction level
	Mode      Mode    // segment mode
	Mask      int     // mask pattern, 0-7
	Format    uint16  // format information
	Penalty   int     // penalty of the chosen mask
	Codewords []byte  // interleaved data and error correction codewords
	Matrix    *Matrix // complete matrix, no unset cells
}

// Encode encodes text in a single segment at the given level,
// choosing the mode, the smallest version and the mask.
func Encode(text string, l Level) (*Result, error) {
	m, v, err := Select(text, l)
	if err != nil {
		return nil, err
	}
	return EncodeVersion(Segment{text, m}, v, l)
}

// EncodeVersion encodes seg into a QR code with the given version
// and level.
func EncodeVersion(seg Segment, v Version, l Level) (*Result, error) {
	if !l.IsValid() {
		return nil, ErrLevel
	}
	p, err := NewPlan(v)
	if err != nil {
		return nil, err
	}
	b := NewBits(v)
	if err := seg.Encode(b, v); err != nil {
		return nil, err
	}
	if err := b.PadTo(v, l); err != nil {
		return nil, err
	}
	data, err := Split(b.Bytes(), v, l)
	if err != nil {
		return nil, err
	}
	check, err := CheckBytes(data, v, l)
	if err != nil {
		return nil, err
	}
	cw := Interleave(data, check)
	dl := p.Serialise(cw)
	mask, pen := p.ChooseMask(dl, l)
	return &Result{
		Version:   v,
		Level:     l,
		Mode:      seg.Mode,
		Mask:      mask,
		Format:    FormatBits(l, mask),
		Penalty:   pen,
		Codewords: cw,
		Matrix:    p.Finish(dl, l, mask),
	}, nil
}
