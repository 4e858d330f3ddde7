// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.  The image has c.Scale pixels per module and a
// quiet zone of c.Border modules.
func (c *Code) EncodePBM(w io.Writer) error {
	if !c.isValid() || w == nil {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	siz := c.Size
	scale := c.Scale
	bord := c.Border
	length := scale * (siz + bord*2)
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	row := make([]byte, (length+7)/8)
	for y := -bord; y < siz+bord; y++ {
		c.pbmRow(row, y)
		for i := 0; i < scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}

// pbmRow encodes module row y, quiet zone included, as a row of PBM
// pixels, 1 being black.  Unused bits of the last byte are 0.
func (c *Code) pbmRow(row []byte, y int) {
	clear(row)
	scale, bord := c.Scale, c.Border
	j := 0
	for x := -bord; x < c.Size+bord; x++ {
		if !c.ink(x, y) {
			j += scale
			continue
		}
		for end := j + scale; j < end; j++ {
			row[j>>3] |= 0x80 >> (j & 7)
		}
	}
}
