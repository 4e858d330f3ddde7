// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"image"
	"image/color"
)

// Image returns an Image displaying the code, c.Scale pixels per
// module, surrounded by a quiet zone of c.Border modules.
// It returns nil if the rendering parameters are invalid.
func (c *Code) Image() image.Image {
	if !c.isValid() {
		return nil
	}
	return &codeImage{c}
}

// codeImage implements image.Image
type codeImage struct {
	*Code
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size + 2*c.Border) * c.Scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	if x < 0 || y < 0 {
		return whiteColor
	}
	if c.ink(x/c.Scale-c.Border, y/c.Scale-c.Border) {
		return blackColor
	}
	return whiteColor
}

func (c *codeImage) ColorModel() color.Model {
	return color.GrayModel
}
