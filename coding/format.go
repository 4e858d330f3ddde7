// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

const (
	formatPoly  = 0x537  // BCH(15,5) generator
	formatMask  = 0x5412 // XORed with format information
	versionPoly = 0x1f25 // BCH(18,6) generator
)

// bch returns data followed by the BCH remainder of data shifted left
// by the degree of poly.
func bch(data, poly uint32, degree int) uint32 {
	rem := data
	for i := 0; i < degree; i++ {
		rem = rem<<1 ^ rem>>(degree-1)*poly
	}
	return data<<degree | rem
}

// FormatBits returns the 15 bit format information for level l and
// mask m: the level indicator and mask id, BCH protected and masked.
func FormatBits(l Level, m Mask) uint16 {
	data := uint32(l.formatBits()<<3) | uint32(m)
	return uint16(bch(data, formatPoly, 10) ^ formatMask)
}

// VersionBits returns the 18 bit version information for v: the
// version number followed by its BCH remainder.  Versions below 7
// carry no version information.
func VersionBits(v Version) uint32 {
	return bch(uint32(v), versionPoly, 12)
}

// formatPos returns the coordinates of bit i, 0 being the least
// significant, of both copies of the format information.
func formatPos(i, size int) (x1, y1, x2, y2 int) {
	switch {
	case i < 6:
		x1, y1 = 8, i
	case i < 8:
		x1, y1 = 8, i+1 // skip the timing row
	case i == 8:
		x1, y1 = 7, 8
	default:
		x1, y1 = 14-i, 8
	}
	if i < 8 {
		x2, y2 = size-1-i, 8
	} else {
		x2, y2 = 8, size-15+i
	}
	return
}

// reserveFormat marks the format information areas as function
// modules and draws the dark module.
func (g *Grid) reserveFormat() {
	for i := 0; i < 15; i++ {
		x1, y1, x2, y2 := formatPos(i, g.size)
		g.SetFunction(x1, y1, false)
		g.SetFunction(x2, y2, false)
	}
	g.SetFunction(8, g.size-8, true)
}

// DrawFormat writes both copies of the format information for level
// l and mask m.
func (g *Grid) DrawFormat(l Level, m Mask) {
	fb := FormatBits(l, m)
	for i := 0; i < 15; i++ {
		dark := fb>>i&1 != 0
		x1, y1, x2, y2 := formatPos(i, g.size)
		g.SetFunction(x1, y1, dark)
		g.SetFunction(x2, y2, dark)
	}
	g.SetFunction(8, g.size-8, true)
}

// versionPos returns the coordinates of bit i, 0 being the least
// significant, of both copies of the version information: a 6×3 block
// above the bottom left finder and its transpose left of the top
// right finder.
func versionPos(i, size int) (x1, y1, x2, y2 int) {
	a, b := size-11+i%3, i/3
	return b, a, a, b
}

func (g *Grid) reserveVersion() {
	for i := 0; i < 18; i++ {
		x1, y1, x2, y2 := versionPos(i, g.size)
		g.SetFunction(x1, y1, false)
		g.SetFunction(x2, y2, false)
	}
}

// DrawVersion writes both copies of the version information.
// It does nothing for versions below 7.
func (g *Grid) DrawVersion(v Version) {
	if v < 7 {
		return
	}
	vb := VersionBits(v)
	for i := 0; i < 18; i++ {
		dark := vb>>i&1 != 0
		x1, y1, x2, y2 := versionPos(i, g.size)
		g.SetFunction(x1, y1, dark)
		g.SetFunction(x2, y2, dark)
	}
}
