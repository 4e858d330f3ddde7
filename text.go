// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strings"
)

// String returns the code rendered as UTF-8 text, two module rows per
// line, with a quiet zone of c.Border modules.  Dark modules are drawn
// with block elements, or light ones if c.Reverse is set.
func (c *Code) String() string {
	var b strings.Builder
	if err := c.EncodeText(&b, false); err != nil {
		return ""
	}
	return b.String()
}

// Half block elements indexed by top<<1 | bottom.
var halfBlocks = [4]string{" ", "▄", "▀", "█"}

// EncodeText writes the code to w as text with a quiet zone of
// c.Border modules.  If ascii is set, each module is two characters,
// "##" for ink and two spaces otherwise, one line per module row.
// If not, UTF-8 half blocks pack two module rows in each line.
// c.Scale is ignored.
func (c *Code) EncodeText(w io.Writer, ascii bool) error {
	if c == nil || c.Size <= 0 || len(c.Bitmap) != c.Size*c.Size ||
		c.Border < 0 || w == nil {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	lo, hi := -c.Border, c.Size+c.Border
	if ascii {
		for y := lo; y < hi; y++ {
			for x := lo; x < hi; x++ {
				if c.ink(x, y) {
					b.WriteString("##")
				} else {
					b.WriteString("  ")
				}
			}
			b.WriteByte('\n')
		}
		return b.Flush()
	}
	for y := lo; y < hi; y += 2 {
		for x := lo; x < hi; x++ {
			i := 0
			if c.ink(x, y) {
				i = 2
			}
			if y+1 < hi && c.ink(x, y+1) {
				i |= 1
			}
			b.WriteString(halfBlocks[i])
		}
		b.WriteByte('\n')
	}
	return b.Flush()
}
