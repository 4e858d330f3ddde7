// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Code is a square module grid.
type Code struct {
	Bitmap  []bool  // row-major modules, true is dark
	Size    int     // number of modules on a side
	Version Version // QR version
	Level   Level   // error correction level
	Mask    Mask    // mask pattern
}

// Black reports whether the module at (x, y) is dark.  Modules
// outside the code are light.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Size+x]
}

// Matrix returns the modules as Size rows of Size values, true for
// dark.  The rows share memory with c.Bitmap.
func (c *Code) Matrix() [][]bool {
	m := make([][]bool, c.Size)
	for y := range m {
		m[y] = c.Bitmap[y*c.Size : (y+1)*c.Size : (y+1)*c.Size]
	}
	return m
}

// Encoder encodes byte mode QR codes of a fixed version and level.
// An Encoder reuses its bit buffer and is not safe for concurrent use.
type Encoder struct {
	Mask Mask // mask pattern, DefaultMask unless set

	p *Plan
	l Level
	b *Bits
}

// NewEncoder returns an Encoder for the given version and level.
func NewEncoder(v Version, l Level) (*Encoder, error) {
	if !l.Valid() {
		return nil, ErrLevel
	}
	p, err := NewPlan(v)
	if err != nil {
		return nil, err
	}
	return &Encoder{Mask: DefaultMask, p: p, l: l, b: NewBits(v)}, nil
}

// Version returns the version of codes produced by e.
func (e *Encoder) Version() Version { return e.p.Version }

// Level returns the error correction level of codes produced by e.
func (e *Encoder) Level() Level { return e.l }

// Encode returns a QR code holding data as a single byte mode
// segment.
func (e *Encoder) Encode(data []byte) (*Code, error) {
	v, l := e.p.Version, e.l
	if !e.Mask.Valid() {
		return nil, ErrMask
	}
	if len(data) > v.MaxBytes(l) {
		return nil, &CapacityError{Bytes: len(data), Version: v, Level: l}
	}

	// Bit stream: segment, terminator and padding.
	b := e.b
	b.Reset()
	EncodeByteSegment(b, data, v)
	if err := b.Pad(v, l); err != nil {
		return nil, err
	}

	// Error correction and interleaving.
	s, err := Assemble(b.Bytes(), v, l)
	if err != nil {
		return nil, err
	}

	// Lay out the modules.
	g := e.p.Grid()
	if err := g.Place(&s); err != nil {
		return nil, err
	}
	g.ApplyMask(e.Mask)
	g.DrawFormat(l, e.Mask)
	g.DrawVersion(v)

	return &Code{
		Bitmap:  g.Bitmap(),
		Size:    g.Size(),
		Version: v,
		Level:   l,
		Mask:    e.Mask,
	}, nil
}

// Encode encodes data in a QR code of the smallest version able to
// hold it at level l, using the default mask.
func Encode(data []byte, l Level) (*Code, error) {
	v, err := VersionFor(l, len(data))
	if err != nil {
		return nil, err
	}
	e, err := NewEncoder(v, l)
	if err != nil {
		return nil, err
	}
	return e.Encode(data)
}
