// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"strconv"
)

var (
	ErrArgs       = errors.New("qr: invalid arguments")
	ErrLargeImage = errors.New("qr: image too large")
)

// maxSide is the largest image width accepted by the encoders, in
// pixels.
const maxSide = 1 << 18

// checkArgs validates the scale and border of an image of s.
func (s *Symbol) checkArgs(scale, border int) error {
	if s == nil || s.Size == 0 || scale < 1 || border < 0 {
		return ErrArgs
	}
	if scale > maxSide || border > maxSide ||
		(s.Size+2*border)*scale > maxSide {
		return ErrLargeImage
	}
	return nil
}

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm, scale pixels per module, with a quiet zone
// border modules wide.
func (s *Symbol) EncodePBM(w io.Writer, scale, border int) error {
	if err := s.checkArgs(scale, border); err != nil {
		return err
	}
	b := bufio.NewWriter(w)
	siz := s.Size
	length := scale * (siz + border*2)
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	row := make([]byte, (length+7)/8)
	for i := 0; i < scale*border; i++ {
		if _, err := b.Write(row); err != nil {
			return err
		}
	}
	data := row[scale*border/8 : (scale*(siz+border)+7)/8]
	slen := scale * border & 7
	stride := s.Stride
	bitmap := s.Bitmap
	for len(bitmap) >= stride {
		srow := bitmap[:stride]
		bitmap = bitmap[stride:]
		// Raw data.  Bespoke fast encoders for common cases.
		if scale == 8 {
			pbmRow8(data, srow)
		} else if scale == 4 {
			pbmRow4(data, srow, slen)
		} else if scale == 1 && slen == 0 {
			copy(data, srow)
		} else {
			pbmRow(data, srow, scale, slen)
		}
		for i := 0; i < scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	if border != 0 {
		clear(data)
		for i := 0; i < scale*border; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}

// pbmRow8 encodes a row of QR data pixels in PBM format at scale 8.
func pbmRow8(row, srow []byte) {
	var b uint64
	for _, v := range srow {
		for i := 0; i < 8; i++ {
			b = b<<8 | uint64(-(v & 1))
			v >>= 1
		}
		if len(row) < 8 {
			break
		}
		binary.LittleEndian.PutUint64(row, b)
		row = row[8:]
	}
	if len(row) > 4 {
		binary.LittleEndian.PutUint32(row, uint32(b))
		b >>= 32
		row = row[4:]
	}
	for i := range row {
		row[i] = byte(b)
		b >>= 8
	}
}

// pbmRow4 encodes a row of QR data pixels in PBM format at scale 4.
// The row starts slen bits into the first byte.
func pbmRow4(row, srow []byte, slen int) {
	var b uint32
	var last uint16
	slen >>= 2
	for _, v := range srow {
		last |= uint16(v)
		b = uint32(byte(last>>slen)) * 01001001 & 0300070007 *
			0111 & 0x11111111 * 0xf
		last <<= 8
		if len(row) < 4 {
			break
		}
		binary.BigEndian.PutUint32(row, b)
		row = row[4:]
	}
	for i := range row {
		row[i] = byte(b >> 24)
		b <<= 8
	}
}

// pbmRow encodes a row of QR data pixels in PBM format.
// The row starts slen bits into the first byte.
func pbmRow(row, srow []byte, scale, slen int) {
	j := 0
	var z byte
	if scale == 1 {
		for _, v := range srow {
			row[j] = z | v>>slen
			z = v << (8 - slen)
			j++
		}
		if j < len(row) {
			row[j] = z
		}
		return
	}
	nz := slen
	for _, v := range srow {
		for i := 0; i < 8; i++ {
			bits := byte(int8(v) >> 7)
			v <<= 1
			shift := min(8-nz, scale)
			z = z<<shift | bits>>(8-shift)
			for nz += scale; nz >= 8; nz -= 8 {
				if j >= len(row) {
					return
				}
				row[j] = z
				z = bits
				j++
			}
		}
	}
}
