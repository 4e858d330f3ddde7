// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"

	"github.com/unixdj/qrmatrix/gf256"
)

// A Block is an error correction block: a slice of the data
// codewords and the error correction codewords computed for it.
type Block struct {
	Data []byte
	ECC  []byte
}

// SplitBlocks splits the padded data codewords of a code with the
// given version and level into error correction blocks and computes
// their error correction codewords.
//
// All blocks have the same number of error correction codewords.
// The first blocks are one codeword shorter than the rest.
func SplitBlocks(data []byte, v Version, l Level) ([]Block, error) {
	if len(data) != v.DataCodewords(l) {
		return nil, InternalError(fmt.Sprintf(
			"%d data codewords for version %s-%s, want %d",
			len(data), v, l, v.DataCodewords(l)))
	}
	nblock, check := v.NumBlocks(l), v.ECCPerBlock(l)
	rs, err := gf256.NewRSEncoder(gf256.QR(), check)
	if err != nil {
		return nil, InternalError(err.Error())
	}
	total := v.TotalCodewords()
	short := total / nblock
	nshort := nblock - total%nblock
	blocks := make([]Block, nblock)
	ecc := make([]byte, nblock*check)
	for i := range blocks {
		n := short - check
		if i >= nshort {
			n++
		}
		blk := &blocks[i]
		blk.Data, data = data[:n:n], data[n:]
		blk.ECC, ecc = ecc[:check:check], ecc[check:]
		rs.ECC(blk.Data, blk.ECC)
	}
	return blocks, nil
}

// Interleave returns the codewords of blocks in transmission order:
// the i-th data codeword of each block in turn, skipping blocks that
// are too short, followed by the error correction codewords
// interleaved the same way.
func Interleave(blocks []Block) []byte {
	var nd, nc, total int
	for _, blk := range blocks {
		nd = max(nd, len(blk.Data))
		nc = max(nc, len(blk.ECC))
		total += len(blk.Data) + len(blk.ECC)
	}
	dst := make([]byte, 0, total)
	for i := 0; i < nd; i++ {
		for _, blk := range blocks {
			if i < len(blk.Data) {
				dst = append(dst, blk.Data[i])
			}
		}
	}
	for i := 0; i < nc; i++ {
		for _, blk := range blocks {
			if i < len(blk.ECC) {
				dst = append(dst, blk.ECC[i])
			}
		}
	}
	return dst
}

// BitStream reads bits from the underlying buffer.
type BitStream struct {
	b    []byte
	pos  int
	nbit int
}

// NewBitStream returns a BitStream reading nbit bits from b.
// Bits past the end of b read as 0.
func NewBitStream(b []byte, nbit int) BitStream {
	return BitStream{b: b, nbit: nbit}
}

// Bytes returns the data underlying s.
func (s *BitStream) Bytes() []byte { return s.b }

// Len returns the total number of bits in s.
func (s *BitStream) Len() int { return s.nbit }

// Remaining returns the number of bits not yet read.
func (s *BitStream) Remaining() int { return s.nbit - s.pos }

// Next returns the next bit from s and true, or false if s is
// exhausted.
func (s *BitStream) Next() (bit, ok bool) {
	if s.pos >= s.nbit {
		return false, false
	}
	if i := s.pos >> 3; i < len(s.b) {
		bit = s.b[i]>>(7&^s.pos)&1 != 0
	}
	s.pos++
	return bit, true
}

// Assemble splits the padded data codewords into blocks, adds error
// correction and returns the interleaved codewords followed by the
// remainder bits as a BitStream filling exactly RawModules modules.
func Assemble(data []byte, v Version, l Level) (BitStream, error) {
	blocks, err := SplitBlocks(data, v, l)
	if err != nil {
		return BitStream{}, err
	}
	cw := Interleave(blocks)
	if len(cw) != v.TotalCodewords() {
		return BitStream{}, InternalError(fmt.Sprintf(
			"%d codewords for version %s, want %d",
			len(cw), v, v.TotalCodewords()))
	}
	// The remainder bits are zero and lie past the end of cw.
	return NewBitStream(cw, len(cw)*8+v.RemainderBits()), nil
}
