// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Module state bits.
const (
	modDark     byte = 1 << iota // module is dark
	modSet                       // module has been written
	modFunction                  // module belongs to a function pattern
)

// A Grid is a square grid of modules under construction.  Each module
// is unset, light or dark, and may be marked as a function module.
// Function modules are never changed by Set or ApplyMask.
type Grid struct {
	size int
	mod  []byte // row-major module state
}

// NewGrid returns a grid of size×size unset modules.
func NewGrid(size int) *Grid {
	return &Grid{size: size, mod: make([]byte, size*size)}
}

// Size returns the number of modules on a side.
func (g *Grid) Size() int { return g.size }

// Clone returns a copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{size: g.size, mod: append([]byte(nil), g.mod...)}
}

func (g *Grid) in(x, y int) bool {
	return 0 <= x && x < g.size && 0 <= y && y < g.size
}

// Dark reports whether the module at (x, y) is dark.  Modules outside
// the grid are light.
func (g *Grid) Dark(x, y int) bool {
	return g.in(x, y) && g.mod[y*g.size+x]&modDark != 0
}

// IsSet reports whether the module at (x, y) has been written.
func (g *Grid) IsSet(x, y int) bool {
	return g.in(x, y) && g.mod[y*g.size+x]&modSet != 0
}

// IsFunction reports whether the module at (x, y) is a function
// module.
func (g *Grid) IsFunction(x, y int) bool {
	return g.in(x, y) && g.mod[y*g.size+x]&modFunction != 0
}

// Set sets the module at (x, y) to dark or light and reports whether
// it was changed.  Function modules and modules outside the grid are
// left alone.
func (g *Grid) Set(x, y int, dark bool) bool {
	if !g.in(x, y) {
		return false
	}
	m := &g.mod[y*g.size+x]
	if *m&modFunction != 0 {
		return false
	}
	*m = modSet
	if dark {
		*m |= modDark
	}
	return true
}

// SetFunction sets the module at (x, y) to dark or light and marks
// it as a function module.  Coordinates outside the grid are ignored.
func (g *Grid) SetFunction(x, y int, dark bool) {
	if !g.in(x, y) {
		return
	}
	m := modSet | modFunction
	if dark {
		m |= modDark
	}
	g.mod[y*g.size+x] = m
}

// invert flips the module at (x, y) unless it is a function module.
func (g *Grid) invert(x, y int) {
	if m := &g.mod[y*g.size+x]; *m&modFunction == 0 {
		*m ^= modDark
	}
}

// Bitmap returns the modules as a row-major slice, true for dark.
func (g *Grid) Bitmap() []bool {
	b := make([]bool, len(g.mod))
	for i, m := range g.mod {
		b[i] = m&modDark != 0
	}
	return b
}

// Function pattern motifs, one row per byte, most significant bit
// first from bit 6 (finder) or bit 4 (alignment).
var (
	finderRows = [7]byte{0x7f, 0x41, 0x5d, 0x5d, 0x5d, 0x41, 0x7f}
	alignRows  = [5]byte{0x1f, 0x11, 0x15, 0x11, 0x1f}
)

// drawFinder draws a finder pattern with its upper left corner at
// (x, y), surrounded by a light separator where it fits in the grid.
func (g *Grid) drawFinder(x, y int) {
	for dy := -1; dy <= 7; dy++ {
		for dx := -1; dx <= 7; dx++ {
			dark := false
			if 0 <= dx && dx < 7 && 0 <= dy && dy < 7 {
				dark = finderRows[dy]>>(6-dx)&1 != 0
			}
			g.SetFunction(x+dx, y+dy, dark)
		}
	}
}

// drawAlign draws an alignment pattern centred at (x, y).
func (g *Grid) drawAlign(x, y int) {
	for dy := 0; dy < 5; dy++ {
		for dx := 0; dx < 5; dx++ {
			g.SetFunction(x-2+dx, y-2+dy, alignRows[dy]>>(4-dx)&1 != 0)
		}
	}
}

// drawTiming draws the timing patterns along row 6 and column 6,
// skipping function modules.
func (g *Grid) drawTiming() {
	for i := 0; i < g.size; i++ {
		if !g.IsFunction(i, 6) {
			g.SetFunction(i, 6, i&1 == 0)
		}
		if !g.IsFunction(6, i) {
			g.SetFunction(6, i, i&1 == 0)
		}
	}
}

// drawFunctionPatterns draws all function patterns of version v and
// reserves the format and version information areas.
func (g *Grid) drawFunctionPatterns(v Version) {
	siz := g.size
	g.drawFinder(0, 0)
	g.drawFinder(siz-7, 0)
	g.drawFinder(0, siz-7)
	g.drawTiming()
	pos := v.AlignPositions()
	last := len(pos) - 1
	for i, y := range pos {
		for j, x := range pos {
			// Skip the three finder corners.
			if i == 0 && (j == 0 || j == last) || i == last && j == 0 {
				continue
			}
			g.drawAlign(x, y)
		}
	}
	g.reserveFormat()
	if v >= 7 {
		g.reserveVersion()
	}
}
