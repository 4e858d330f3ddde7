// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Bits accumulates a bit stream, most significant bit first.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for the data codewords of
// a QR code of the given version.
func NewBits(v Version) *Bits {
	return &Bits{b: make([]byte, 0, v.TotalCodewords())}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Bits returns the number of bits written.
func (b *Bits) Bits() int { return b.nbit }

// Bytes returns the codewords written so far.  It panics if the
// stream does not end on a byte boundary.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Write appends the low nbit bits of v, 0 <= nbit <= 32.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit == 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// WriteBytes appends the bytes of p, 8 bits each.
func (b *Bits) WriteBytes(p []byte) {
	if b.nbit&7 == 0 {
		b.b = append(b.b, p...)
		b.nbit += len(p) * 8
		return
	}
	for _, c := range p {
		b.Write(uint32(c), 8)
	}
}

// Byte mode indicator.
const byteMode = 0b0100

// EncodeByteSegment writes data to b as a byte mode segment for
// version v: the mode indicator, the character count and the bytes.
func EncodeByteSegment(b *Bits, data []byte, v Version) {
	b.Write(byteMode, 4)
	b.Write(uint32(len(data)), v.CountBits())
	b.WriteBytes(data)
}

// Pad adds a terminator of up to 4 zero bits, pads b with zero bits to
// a byte boundary, then fills the remaining data codewords of the
// given version and level with alternating 0xec and 0x11.
func (b *Bits) Pad(v Version, l Level) error {
	n := v.DataBits(l)
	if b.nbit > n {
		return &CapacityError{
			Bytes:   (b.nbit - v.segmentBits(0) + 7) / 8,
			Version: v,
			Level:   l,
		}
	}
	b.Write(0, min(4, n-b.nbit))
	b.Write(0, -b.nbit&7)
	for pad := uint32(0xec); b.nbit < n; pad ^= 0xec ^ 0x11 {
		b.Write(pad, 8)
	}
	return nil
}
