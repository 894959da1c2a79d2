// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"math/bits"
	"strconv"
	"testing"
)

// Format information strings by level and mask, ISO/IEC 18004 table C.1.
var formatTests = [4][8]string{
	L: {
		"111011111000100", "111001011110011", "111110110101010", "111100010011101",
		"110011000101111", "110001100011000", "110110001000001", "110100101110110",
	},
	M: {
		"101010000010010", "101000100100101", "101111001111100", "101101101001011",
		"100010111111001", "100000011001110", "100111110010111", "100101010100000",
	},
	Q: {
		"011010101011111", "011000001101000", "011111100110001", "011101000000110",
		"010010010110100", "010000110000011", "010111011011010", "010101111101101",
	},
	H: {
		"001011010001001", "001001110111110", "001110011100111", "001100111010000",
		"000011101100010", "000001001010101", "000110100001100", "000100000111011",
	},
}

func TestFormatBits(t *testing.T) {
	for l := L; l <= H; l++ {
		for mask := 0; mask < 8; mask++ {
			want, _ := strconv.ParseUint(formatTests[l][mask], 2, 16)
			if fb := FormatBits(l, mask); fb != uint16(want) {
				t.Errorf("FormatBits(%v, %d) = %015b, want %015b",
					l, mask, fb, want)
			}
		}
	}
}

// Any two format strings differ in at least 7 bits.
func TestFormatDistance(t *testing.T) {
	var all []uint16
	for l := L; l <= H; l++ {
		for mask := 0; mask < 8; mask++ {
			all = append(all, FormatBits(l, mask))
		}
	}
	for i, a := range all {
		for _, b := range all[:i] {
			if d := bits.OnesCount16(a ^ b); d < 7 {
				t.Errorf("%015b and %015b differ in %d bits", a, b, d)
			}
		}
	}
}

func TestVersionBits(t *testing.T) {
	tests := []struct {
		v    Version
		want uint32
	}{
		{1, 0},
		{6, 0},
		{7, 0x07c94},
		{8, 0x085bc},
		{21, 0x15683},
		{40, 0x28c69},
	}
	for _, tt := range tests {
		if vb := VersionBits(tt.v); vb != tt.want {
			t.Errorf("VersionBits(%v) = %#05x, want %#05x", tt.v, vb, tt.want)
		}
	}
	for v := Version(7); v <= MaxVersion; v++ {
		vb := VersionBits(v)
		if Version(vb>>12) != v || vb>>versionLen != 0 {
			t.Errorf("VersionBits(%v) = %018b", v, vb)
		}
	}
}
