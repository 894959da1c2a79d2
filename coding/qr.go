// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: mode and
// version selection, the data bit stream, Reed-Solomon blocks,
// symbol layout and masking.
package coding // import "github.com/unixdj/qrgen/coding"

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrLevel             = errors.New("qr: invalid level")
	ErrVersion           = errors.New("qr: invalid version")
	ErrUnsupportedMode   = errors.New("qr: unsupported mode")
	ErrDataTooLong       = errors.New("qr: data too long")
	ErrInvalidCapacity   = errors.New("qr: invalid capacity")
	ErrInvalidCellAccess = errors.New("qr: invalid cell access")
)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 pixels on a side.
// Versions run from 1 to 40: the larger the version, the more
// information the code can store.
type Version int

const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// QR version size classes.  The class determines the length of the
// character count field.
const (
	Class0 = iota // QR versions 1 to 9
	Class1        // QR versions 10 to 26
	Class2        // QR versions 27 to 40
)

// SizeClass returns the size class of v, as documented under Class0.
func (v Version) SizeClass() int {
	if v <= 9 {
		return Class0
	}
	if v <= 26 {
		return Class1
	}
	return Class2
}

// Size returns the number of pixels on a side of a QR code of
// version v.
func (v Version) Size() int { return int(v)*4 + 17 }

// IsValid reports whether v is a QR version.
func (v Version) IsValid() bool { return MinVersion <= v && v <= MaxVersion }

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// IsValid reports whether l is an error correction level.
func (l Level) IsValid() bool { return L <= l && l <= H }

// ParseLevel returns the Level named by s, one of "L", "M", "Q" or
// "H" in either case.
func ParseLevel(s string) (Level, error) {
	if len(s) == 1 {
		for l, c := range "LMQHlmqh" {
			if byte(c) == s[0] {
				return Level(l & 3), nil
			}
		}
	}
	return 0, fmt.Errorf("%w %q", ErrLevel, s)
}

// formatBits returns the 2 bit level indicator for format
// information: L=01, M=00, Q=11, H=10.
func (l Level) formatBits() uint16 { return uint16(l ^ 1) }

// A Mode is a QR segment encoding mode.
type Mode int

// Encoding modes, in order of preference.
const (
	Numeric      Mode = iota // numeric mode, digits
	Alphanumeric             // alphanumeric mode, "0-9A-Z $%*+-./:"
	Byte                     // byte mode, 8 bit data
	Kanji                    // kanji mode, unsupported
	modes
)

var modeNames = [modes]string{"numeric", "alphanumeric", "byte", "kanji"}

func (m Mode) String() string {
	if 0 <= m && m < modes {
		return modeNames[m]
	}
	return strconv.Itoa(int(m))
}

// Indicator returns the 4 bit mode indicator.
func (m Mode) Indicator() uint32 { return 1 << uint(m) }

// countLength lists lengths of the character count field in the
// three QR version size classes.
var countLength = [modes][3]int{
	Numeric:      {10, 12, 14},
	Alphanumeric: {9, 11, 13},
	Byte:         {8, 16, 16},
	Kanji:        {8, 10, 12},
}

// CountLength returns the length of the character count field for
// mode m in version v.
func (m Mode) CountLength(v Version) int {
	return countLength[m][v.SizeClass()]
}

// Bits is a bit stream writer.  Bits are written most significant
// first.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for a QR code of the
// given version.
func NewBits(v Version) *Bits {
	n := 0
	if v.IsValid() {
		n = vtab[v].bytes
	}
	return &Bits{b: make([]byte, 0, n)}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Bits returns the number of bits written.
func (b *Bits) Bits() int {
	return b.nbit
}

// Bytes returns the written bytes.  It panics unless a whole number
// of bytes has been written.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Write appends the nbit low bits of v, nbit <= 32.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit == 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// PadTo adds the terminator and pad bytes to b, filling the data
// capacity of a QR code with the given version and level: up to 4
// zero bits, zero bits to a byte boundary, then alternating 0xec and
// 0x11.
func (b *Bits) PadTo(v Version, l Level) error {
	n, err := DataBytes(v, l)
	if err != nil {
		return err
	}
	nb := n * 8
	if b.nbit > nb {
		return &LengthError{Length: b.nbit, Capacity: nb, Level: l}
	}
	b.Write(0, min(4, nb-b.nbit))
	b.Write(0, -b.nbit&7)
	for pad := uint32(0xec); b.nbit < nb; pad ^= 0xec ^ 0x11 {
		b.Write(pad, 8)
	}
	return nil
}

// Alphanumeric encoding table.  Used after validation.
// "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
var alpha = [64]byte{
	00, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, // 0x40
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 00, 00, 00, 00, 00, // 0x50
	36, 00, 00, 00, 37, 38, 00, 00, 00, 00, 39, 40, 00, 41, 42, 43, // 0x20
	00, 01, 02, 03, 04, 05, 06, 07, 010, 9, 44, 00, 00, 00, 00, 00, // 0x30
}

// A Segment describes a QR code segment.
type Segment struct {
	Text string // data to encode
	Mode Mode   // encoding mode
}

// IsValid reports whether seg.Text is encodable in seg.Mode.
func (seg Segment) IsValid() bool {
	var is func(byte) bool
	switch seg.Mode {
	case Numeric:
		is = IsDigit
	case Alphanumeric:
		is = IsAlnum
	case Byte:
		return true
	default:
		return false
	}
	for i := 0; i < len(seg.Text); i++ {
		if !is(seg.Text[i]) {
			return false
		}
	}
	return true
}

// EncodedLength returns the length in bits of seg encoded in
// version v, including the header.
func (seg Segment) EncodedLength(v Version) int {
	n := len(seg.Text)
	h := 4 + seg.Mode.CountLength(v)
	switch seg.Mode {
	case Numeric:
		return h + n/3*10 + [3]int{0, 4, 7}[n%3]
	case Alphanumeric:
		return h + n/2*11 + n%2*6
	case Kanji:
		return h + n/2*13
	}
	return h + n*8
}

// Encode writes seg encoded for the given QR version to b.
// The text must be valid for the mode, as reported by Classify.
func (seg Segment) Encode(b *Bits, v Version) error {
	if seg.Mode == Kanji || seg.Mode < 0 || seg.Mode >= modes {
		return &ModeError{Mode: seg.Mode, Pos: -1}
	}
	if !seg.IsValid() {
		return SegmentError(seg)
	}
	s := seg.Text
	// write header
	b.Write(seg.Mode.Indicator(), 4)
	b.Write(uint32(len(s)), seg.Mode.CountLength(v))
	// encode the string
	switch seg.Mode {
	case Numeric:
		for ; len(s) >= 3; s = s[3:] {
			b.Write(uint32(s[0]-'0')*100+uint32(s[1]-'0')*10+
				uint32(s[2]-'0'), 10)
		}
		switch len(s) {
		case 2:
			b.Write(uint32(s[0]-'0')*10+uint32(s[1]-'0'), 7)
		case 1:
			b.Write(uint32(s[0]-'0'), 4)
		}
	case Alphanumeric:
		for ; len(s) >= 2; s = s[2:] {
			b.Write(uint32(alpha[s[0]&0x3f])*45+
				uint32(alpha[s[1]&0x3f]), 11)
		}
		if len(s) == 1 {
			b.Write(uint32(alpha[s[0]&0x3f]), 6)
		}
	default:
		if b.nbit&7 == 0 {
			b.b = append(b.b, s...)
			b.nbit += len(s) * 8
			break
		}
		for i := 0; i < len(s); i++ {
			b.Write(uint32(s[i]), 8)
		}
	}
	return nil
}
