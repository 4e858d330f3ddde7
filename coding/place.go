// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

// Place writes bits from s to the non-function modules of g in zigzag
// scan order: pairs of columns from right to left, skipping the
// vertical timing column, alternately upwards and downwards, right
// column before left.  The stream must fill the grid exactly.
func (g *Grid) Place(s *BitStream) error {
	siz := g.size
	up := true
	for right := siz - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for i := 0; i < siz; i++ {
			y := i
			if up {
				y = siz - 1 - i
			}
			for x := right; x >= right-1; x-- {
				if g.IsFunction(x, y) {
					continue
				}
				bit, ok := s.Next()
				if !ok {
					return InternalError(fmt.Sprintf(
						"bit stream of %d bits exhausted at (%d, %d)",
						s.Len(), x, y))
				}
				g.Set(x, y, bit)
			}
		}
		up = !up
	}
	if n := s.Remaining(); n != 0 {
		return InternalError(fmt.Sprintf(
			"%d of %d bits left after placement", n, s.Len()))
	}
	return nil
}
