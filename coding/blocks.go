// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"

	"github.com/unixdj/qrgen/gf256"
)

// A version describes metadata associated with a version.
type version struct {
	bytes int       // total number of codewords
	align []int     // alignment pattern centres
	level [4]blocks // block structure by level
}

// blocks describes the Reed-Solomon block structure for a version
// and level.
type blocks struct {
	words  int      // number of data codewords
	check  int      // error correction codewords per block
	groups [2]group // first and second block groups
}

// group is a run of blocks with the same number of data codewords.
type group struct {
	blocks int
	words  int
}

func (b *blocks) nblock() int { return b.groups[0].blocks + b.groups[1].blocks }

// lookup returns the block structure for v and l.
func lookup(v Version, l Level) (*blocks, error) {
	if !v.IsValid() || !l.IsValid() {
		return nil, &CapacityError{v, l}
	}
	b := &vtab[v].level[l]
	if b.words == 0 {
		return nil, &CapacityError{v, l}
	}
	return b, nil
}

// DataBytes returns the number of data codewords that can be
// stored in a QR code with the given version and level.
func DataBytes(v Version, l Level) (int, error) {
	b, err := lookup(v, l)
	if err != nil {
		return 0, err
	}
	return b.words, nil
}

// TotalBytes returns the number of data and error correction
// codewords in a QR code with the given version and level.
func TotalBytes(v Version, l Level) (int, error) {
	b, err := lookup(v, l)
	if err != nil {
		return 0, err
	}
	return b.words + b.check*b.nblock(), nil
}

// Capacity returns the maximum number of characters encodable in
// mode m in a QR code with the given version and level.
func Capacity(v Version, l Level, m Mode) (int, error) {
	if !v.IsValid() || !l.IsValid() || m < 0 || m >= modes {
		return 0, &CapacityError{v, l}
	}
	n := capacity[v][l][m]
	if n == 0 {
		return 0, &CapacityError{v, l}
	}
	return n, nil
}

func init() {
	for v := MinVersion; v <= MaxVersion; v++ {
		vt := &vtab[v]
		for l := L; l <= H; l++ {
			b := &vt.level[l]
			n := 0
			for _, g := range b.groups {
				n += g.blocks * g.words
			}
			if b.words == 0 || n != b.words ||
				b.words+b.check*b.nblock() != vt.bytes ||
				capacity[v][l][Byte] == 0 {
				panic(fmt.Sprintf("qr: bad table entry %s-%s", v, l))
			}
		}
	}
}

// Split splits data codewords into Reed-Solomon blocks for the given
// version and level, first group first.  The blocks share data.
func Split(data []byte, v Version, l Level) ([][]byte, error) {
	b, err := lookup(v, l)
	if err != nil {
		return nil, err
	}
	if len(data) != b.words {
		return nil, fmt.Errorf("qr: %d data codewords for version %s-%s, want %d",
			len(data), v, l, b.words)
	}
	blk := make([][]byte, 0, b.nblock())
	for _, g := range b.groups {
		for i := 0; i < g.blocks; i++ {
			blk = append(blk, data[:g.words:g.words])
			data = data[g.words:]
		}
	}
	return blk, nil
}

// CheckBytes returns error correction codewords for each block
// using the given version and level.
func CheckBytes(blk [][]byte, v Version, l Level) ([][]byte, error) {
	b, err := lookup(v, l)
	if err != nil {
		return nil, err
	}
	rs := gf256.NewRSEncoder(gf256.QR, b.check)
	buf := make([]byte, len(blk)*b.check)
	check := make([][]byte, len(blk))
	for i, d := range blk {
		check[i], buf = buf[:b.check:b.check], buf[b.check:]
		rs.ECC(d, check[i])
	}
	return check, nil
}

// interleave appends to dst the codewords of blocks read column-wise:
// first codewords of each block, then the second ones, and so on.
// Shorter blocks are skipped past their end.
func interleave(dst []byte, blk [][]byte) []byte {
	width := 0
	for _, b := range blk {
		width = max(width, len(b))
	}
	for j := 0; j < width; j++ {
		for _, b := range blk {
			if j < len(b) {
				dst = append(dst, b[j])
			}
		}
	}
	return dst
}

// Interleave returns the final codeword sequence: interleaved data
// codewords followed by interleaved error correction codewords.
func Interleave(data, check [][]byte) []byte {
	n := 0
	for i := range data {
		n += len(data[i]) + len(check[i])
	}
	return interleave(interleave(make([]byte, 0, n), data), check)
}
