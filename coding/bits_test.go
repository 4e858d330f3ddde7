// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixdj/qrmatrix/gf256"
)

func TestBitsWrite(t *testing.T) {
	var b Bits
	b.Write(0b101, 3)
	b.Write(0, 0)
	b.Write(0b11111, 5)
	assert.Equal(t, 8, b.Bits())
	assert.Equal(t, []byte{0xbf}, b.Bytes())
	b.Write(0xabc, 12)
	assert.Equal(t, 20, b.Bits())
	assert.Panics(t, func() { b.Bytes() })
	b.Write(0xdeadbeef, 32)
	b.Write(0xf, 4)
	assert.Equal(t, []byte{0xbf, 0xab, 0xcd, 0xea, 0xdb, 0xee, 0xff}, b.Bytes())
	b.Reset()
	assert.Zero(t, b.Bits())
	assert.Empty(t, b.Bytes())
}

func TestBitsWriteBytes(t *testing.T) {
	var b Bits
	b.WriteBytes([]byte{1, 2})
	b.Write(0xf, 4)
	b.WriteBytes([]byte{0x12, 0x34})
	b.Write(0, 4)
	assert.Equal(t, []byte{1, 2, 0xf1, 0x23, 0x40}, b.Bytes())
}

func TestEncodeByteSegment(t *testing.T) {
	b := NewBits(1)
	EncodeByteSegment(b, []byte("HELLO"), 1)
	assert.Equal(t, 4+8+5*8, b.Bits())
	require.NoError(t, b.Pad(1, M))
	want := []byte{0x40, 0x54, 0x84, 0x54, 0xc4, 0xc4, 0xf0,
		0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec}
	assert.Equal(t, want, b.Bytes())

	// 16 bit count from version 10.
	b = NewBits(10)
	EncodeByteSegment(b, []byte{0xff}, 10)
	assert.Equal(t, 4+16+8, b.Bits())
	b.Write(0, 4)
	assert.Equal(t, []byte{0x40, 0x00, 0x1f, 0xf0}, b.Bytes())
}

func TestPad(t *testing.T) {
	b := NewBits(1)
	EncodeByteSegment(b, nil, 1)
	require.NoError(t, b.Pad(1, L))
	got := b.Bytes()
	require.Len(t, got, 19)
	assert.Equal(t, []byte{0x40, 0x00, 0xec, 0x11, 0xec}, got[:5])
	assert.Equal(t, byte(0xec), got[18])

	// A full code leaves no room for the terminator.
	b = NewBits(1)
	EncodeByteSegment(b, bytes.Repeat([]byte{'a'}, 17), 1)
	assert.Equal(t, 148, b.Bits())
	require.NoError(t, b.Pad(1, L))
	assert.Equal(t, 152, b.Bits())

	// Overfull.
	b = NewBits(1)
	EncodeByteSegment(b, bytes.Repeat([]byte{'a'}, 18), 1)
	err := b.Pad(1, L)
	assert.ErrorIs(t, err, ErrTooLong)
	var ce *CapacityError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 18, ce.Bytes)
	assert.Equal(t, Version(1), ce.Version)
}

func TestSplitBlocks(t *testing.T) {
	data := make([]byte, Version(5).DataCodewords(Q))
	for i := range data {
		data[i] = byte(i)
	}
	blocks, err := SplitBlocks(data, 5, Q)
	require.NoError(t, err)
	require.Len(t, blocks, 4)
	for i, n := range []int{15, 15, 16, 16} {
		require.Len(t, blocks[i].Data, n)
		require.Len(t, blocks[i].ECC, 18)
	}
	assert.Equal(t, data[:15], blocks[0].Data)
	assert.Equal(t, data[30:46], blocks[2].Data)

	f := gf256.QR()
	div, err := f.Divisor(18)
	require.NoError(t, err)
	for _, blk := range blocks {
		assert.Equal(t, f.Remainder(blk.Data, div), blk.ECC)
	}

	_, err = SplitBlocks(data[1:], 5, Q)
	var ie InternalError
	assert.ErrorAs(t, err, &ie)
}

func TestSplitBlocksInvariants(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		for _, l := range levels {
			blocks, err := SplitBlocks(make([]byte, v.DataCodewords(l)), v, l)
			require.NoError(t, err)
			require.Len(t, blocks, v.NumBlocks(l))
			total, long := 0, 0
			short := len(blocks[0].Data)
			for _, blk := range blocks {
				require.Len(t, blk.ECC, v.ECCPerBlock(l))
				total += len(blk.Data) + len(blk.ECC)
				switch len(blk.Data) {
				case short:
					require.Zero(t, long, "short block after long")
				case short + 1:
					long++
				default:
					t.Fatalf("version %s-%s: block of %d data codewords",
						v, l, len(blk.Data))
				}
			}
			require.Equal(t, v.TotalCodewords(), total)
			require.Equal(t, v.TotalCodewords()%v.NumBlocks(l), long)
		}
	}
}

func TestInterleave(t *testing.T) {
	blocks := []Block{
		{Data: []byte{1, 2}, ECC: []byte{10, 11}},
		{Data: []byte{3, 4, 5}, ECC: []byte{12, 13}},
		{Data: []byte{6, 7, 8}, ECC: []byte{14, 15}},
	}
	assert.Equal(t, []byte{1, 3, 6, 2, 4, 7, 5, 8, 10, 12, 14, 11, 13, 15},
		Interleave(blocks))
}

func TestAssemble(t *testing.T) {
	for _, v := range []Version{1, 2, 14, 21, 40} {
		s, err := Assemble(make([]byte, v.DataCodewords(M)), v, M)
		require.NoError(t, err)
		assert.Equal(t, v.RawModules(), s.Len())
		assert.Len(t, s.Bytes(), v.TotalCodewords())
	}
}

func TestBitStream(t *testing.T) {
	s := NewBitStream([]byte{0xa0}, 11)
	var got []bool
	for {
		bit, ok := s.Next()
		if !ok {
			break
		}
		got = append(got, bit)
	}
	assert.Equal(t, []bool{true, false, true, false, false, false, false,
		false, false, false, false}, got)
	assert.Zero(t, s.Remaining())
}
