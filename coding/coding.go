// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: capacity
// planning, bit stream construction, error correction blocks, function
// patterns, data placement, masking and format information.
package coding // import "github.com/unixdj/qrmatrix/coding"

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrLevel   = errors.New("qr: invalid level")
	ErrVersion = errors.New("qr: invalid version")
	ErrMask    = errors.New("qr: invalid mask")
	ErrTooLong = errors.New("qr: text too long to encode as QR")
)

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 7% of codewords can be restored
	M              // 15%
	Q              // 25%
	H              // 30%
)

func (l Level) String() string {
	if l.Valid() {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// Valid reports whether l is one of L, M, Q and H.
func (l Level) Valid() bool { return L <= l && l <= H }

// formatBits returns the two-bit level indicator used in format
// information: L=01, M=00, Q=11, H=10.
func (l Level) formatBits() int { return int(l) ^ 1 }

// CapacityError is returned when the data does not fit in a QR code
// of the requested version, or of any version if Version is 0, at the
// requested level.
type CapacityError struct {
	Bytes   int     // length of data
	Version Version // QR version, 0 if any
	Level   Level   // error correction level
}

func (e *CapacityError) Error() string {
	v := e.Version
	if !v.Valid() {
		v = MaxVersion
	}
	return fmt.Sprintf("qr: cannot encode %d bytes in version %s-%s: "+
		"maximum is %d", e.Bytes, v, e.Level, v.MaxBytes(e.Level))
}

// Is makes errors.Is(err, ErrTooLong) report true for CapacityError.
func (e *CapacityError) Is(target error) bool { return target == ErrTooLong }

// InternalError indicates a logic defect, such as a bit stream that
// does not fill the code exactly.
type InternalError string

func (e InternalError) Error() string { return "qr: internal error: " + string(e) }
