// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "math/bits"

// BCH codes protecting format and version information.
const (
	formatPoly  = 0x537  // x¹⁰+x⁸+x⁵+x⁴+x²+x+1
	formatLen   = 15     // bits
	formatMask  = 0x5412 // 101010000010010
	versionPoly = 0x1f25 // x¹²+x¹¹+x¹⁰+x⁹+x⁸+x⁵+x²+1
	versionLen  = 18     // bits
)

// bch returns data followed by its BCH check bits, total bits long.
// The generator gen has degree total-k for k bit data.
func bch(data uint32, total int, gen uint32) uint32 {
	nc := bits.Len32(gen) - 1 // check bits
	rem := data << nc
	for bits.Len32(rem) > nc {
		rem ^= gen << (bits.Len32(rem) - nc - 1)
	}
	return (data<<nc | rem) & (1<<total - 1)
}

// FormatBits returns the 15 bit format information for level l and
// the given mask pattern, with the final XOR mask applied.
func FormatBits(l Level, mask int) uint16 {
	d := uint32(l.formatBits())<<3 | uint32(mask&7)
	return uint16(bch(d, formatLen, formatPoly) ^ formatMask)
}

// VersionBits returns the 18 bit version information for v,
// or 0 for versions below 7.
func VersionBits(v Version) uint32 {
	if v < 7 {
		return 0
	}
	return bch(uint32(v), versionLen, versionPoly)
}
