// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

const (
	alphamask uint64 = 0x07fffffe_07ffec31 // SPACE $% *+ -./ [0-9] : [A-Z]
	digitmask uint64 = 0x00000000_03ff0000 // [0-9]
)

// IsDigit reports whether c is encodable in numeric mode.
func IsDigit(c byte) bool {
	return c >= ' ' && c < ' '+64 && digitmask>>(c-' ')&1 != 0
}

// IsAlnum reports whether c is encodable in alphanumeric mode.
func IsAlnum(c byte) bool {
	return c >= ' ' && c < ' '+64 && alphamask>>(c-' ')&1 != 0
}

// Classify returns the mode encoding the whole of text: Numeric if
// text consists of digits, Alphanumeric if of characters in the
// alphanumeric set, Byte if of other ASCII characters.  Text
// containing non-ASCII bytes requires Kanji mode, which is not
// supported; Classify returns a ModeError.
func Classify(text string) (Mode, error) {
	m := Numeric
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 0x80:
			return Kanji, &ModeError{Kanji, i}
		case m == Numeric && IsDigit(c):
		case m <= Alphanumeric && IsAlnum(c):
			m = Alphanumeric
		default:
			m = Byte
		}
	}
	return m, nil
}

// Select returns the encoding mode for text and the smallest QR
// version with enough capacity at the given level.
func Select(text string, l Level) (Mode, Version, error) {
	if !l.IsValid() {
		return 0, 0, ErrLevel
	}
	m, err := Classify(text)
	if err != nil {
		return m, 0, err
	}
	n := len(text)
	for v := MinVersion; v <= MaxVersion; v++ {
		c, err := Capacity(v, l, m)
		if err != nil {
			return m, 0, err
		}
		if c >= n {
			return m, v, nil
		}
	}
	c, _ := Capacity(MaxVersion, l, m)
	return m, 0, &LengthError{Length: n, Capacity: c, Mode: m, Level: l}
}
