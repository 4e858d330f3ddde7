// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes text as QR Code Model 2 symbols.

The whole input is encoded as a single byte mode segment in the smallest
version that holds it at the requested error correction level, with
mask pattern 0.  The result is a square matrix of modules; helpers
render it as an image, a PBM file or text.
*/
package qr // import "github.com/unixdj/qrmatrix"

import (
	"errors"

	"github.com/unixdj/qrmatrix/coding"
)

var ErrArgs = errors.New("qr: invalid arguments")

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level = coding.Level

const (
	L = coding.L // 7% of codewords can be restored
	M = coding.M // 15%
	Q = coding.Q // 25%
	H = coding.H // 30%
)

// DefaultLevel is the error correction level used when the caller has
// no preference.
const DefaultLevel = M

// Default rendering parameters of a new Code.
const (
	DefaultScale  = 8 // image pixels per module
	DefaultBorder = 4 // quiet zone in modules
)

// Encode returns an encoding of text at the given error correction
// level.  The text is encoded as is; use EncodeBytes for data that is
// not UTF-8.
func Encode(text string, level Level) (*Code, error) {
	return EncodeBytes([]byte(text), level)
}

// EncodeBytes returns an encoding of data at the given error
// correction level.
//
// It returns coding.ErrLevel for an invalid level and a
// *coding.CapacityError, matching coding.ErrTooLong, if data does not
// fit in a version 40 code at that level.
func EncodeBytes(data []byte, level Level) (*Code, error) {
	if !level.Valid() {
		return nil, coding.ErrLevel
	}
	cc, err := coding.Encode(data, level)
	if err != nil {
		return nil, err
	}
	return &Code{Code: *cc, Scale: DefaultScale, Border: DefaultBorder}, nil
}

// A Code is a square module grid with rendering parameters.
// It implements image.Image via Image, PBM encoding and text output.
type Code struct {
	coding.Code

	Scale   int  // number of image pixels per module
	Border  int  // quiet zone width in modules
	Reverse bool // swap dark and light when rendering
}

// isValid reports whether c can be rendered.
func (c *Code) isValid() bool {
	return c != nil && c.Size > 0 && len(c.Bitmap) == c.Size*c.Size &&
		c.Scale > 0 && c.Border >= 0
}

// ink reports whether the pixel for module (x, y) is drawn in the
// foreground colour, taking c.Reverse into account.  Modules outside
// the code, including the quiet zone, are light.
func (c *Code) ink(x, y int) bool {
	return c.Black(x, y) != c.Reverse
}
