// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

// ModeError reports text requiring an unsupported encoding mode.
type ModeError struct {
	Mode Mode // mode required
	Pos  int  // byte offset of the first offending character, or -1
}

func (e *ModeError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("qr: %s mode not supported", e.Mode)
	}
	return fmt.Sprintf("qr: %s mode not supported (byte %d)",
		e.Mode, e.Pos)
}

func (e *ModeError) Unwrap() error { return ErrUnsupportedMode }

// SegmentError represents a Segment with text not encodable in its
// mode.
type SegmentError Segment

func (e SegmentError) Error() string {
	return fmt.Sprintf("qr: non-%s string %#q", e.Mode, e.Text)
}

// LengthError reports data exceeding the capacity of the largest
// usable QR version.  Length and Capacity are measured in characters
// when reported by Select, in bits when reported by Bits.PadTo.
type LengthError struct {
	Length   int
	Capacity int
	Mode     Mode
	Level    Level
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("qr: cannot encode %d into %d at level %s",
		e.Length, e.Capacity, e.Level)
}

func (e *LengthError) Unwrap() error { return ErrDataTooLong }

// CapacityError reports a version and level missing from the
// capacity or block tables.
type CapacityError struct {
	Version Version
	Level   Level
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("qr: no capacity for version %s level %s",
		e.Version, e.Level)
}

func (e *CapacityError) Unwrap() error { return ErrInvalidCapacity }

// CellError reports access to a cell outside the matrix.
type CellError struct {
	X, Y, Size int
}

func (e *CellError) Error() string {
	return fmt.Sprintf("qr: cell (%d,%d) outside %dx%d matrix",
		e.X, e.Y, e.Size, e.Size)
}

func (e *CellError) Unwrap() error { return ErrInvalidCellAccess }
