// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bytes"
	"image"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixdj/qrmatrix/coding"
)

func TestEncode(t *testing.T) {
	c, err := Encode("HELLO", M)
	require.NoError(t, err)
	assert.Equal(t, coding.Version(1), c.Version)
	assert.Equal(t, M, c.Level)
	assert.Equal(t, coding.DefaultMask, c.Mask)
	assert.Equal(t, DefaultScale, c.Scale)
	assert.Equal(t, DefaultBorder, c.Border)
	m := c.Matrix()
	require.Len(t, m, 21)
	for _, row := range m {
		require.Len(t, row, 21)
	}

	c, err = Encode("", L)
	require.NoError(t, err)
	assert.Equal(t, 21, c.Size)

	c, err = EncodeBytes(make([]byte, 2953), L)
	require.NoError(t, err)
	assert.Equal(t, 177, c.Size)
}

func TestEncodeErrors(t *testing.T) {
	_, err := Encode(strings.Repeat("x", 3000), H)
	assert.ErrorIs(t, err, coding.ErrTooLong)
	var ce *coding.CapacityError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 3000, ce.Bytes)

	_, err = Encode("x", Level(4))
	assert.ErrorIs(t, err, coding.ErrLevel)
	_, err = EncodeBytes(nil, Level(-1))
	assert.ErrorIs(t, err, coding.ErrLevel)
}

func TestLevelsShareSize(t *testing.T) {
	l, err := Encode("A", L)
	require.NoError(t, err)
	h, err := Encode("A", H)
	require.NoError(t, err)
	assert.Equal(t, l.Size, h.Size)
	// Format information sits in row 8 and column 8.
	differ := false
	for i := 0; i < l.Size; i++ {
		differ = differ || l.Black(i, 8) != h.Black(i, 8) ||
			l.Black(8, i) != h.Black(8, i)
	}
	assert.True(t, differ)
}

func TestIdempotent(t *testing.T) {
	a, err := Encode("idempotent", Q)
	require.NoError(t, err)
	b, err := Encode("idempotent", Q)
	require.NoError(t, err)
	assert.Equal(t, a.Matrix(), b.Matrix())
}

func TestFindersAndTiming(t *testing.T) {
	small, err := Encode("", M)
	require.NoError(t, err)
	for _, n := range []int{1, 100, 1000, 2331} {
		c, err := EncodeBytes(bytes.Repeat([]byte{0x55}, n), M)
		require.NoError(t, err)
		siz := c.Size
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				want := small.Black(x, y)
				require.Equal(t, want, c.Black(x, y))
				require.Equal(t, want, c.Black(siz-1-x, y))
				require.Equal(t, want, c.Black(x, siz-1-y))
			}
		}
		for i := 8; i < siz-8; i++ {
			require.Equal(t, i%2 == 0, c.Black(i, 6), "size %d", siz)
			require.Equal(t, i%2 == 0, c.Black(6, i), "size %d", siz)
		}
		require.True(t, c.Black(8, siz-8))
	}
}

func TestImage(t *testing.T) {
	c, err := Encode("HELLO", M)
	require.NoError(t, err)
	img := c.Image()
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 232, 232), img.Bounds())
	gray := func(x, y int) uint32 {
		r, _, _, _ := img.At(x, y).RGBA()
		return r
	}
	assert.Equal(t, uint32(0xffff), gray(0, 0))
	assert.Equal(t, uint32(0xffff), gray(31, 31))
	assert.Zero(t, gray(32, 32))
	assert.Zero(t, gray(32+6*8+7, 32))
	assert.Equal(t, uint32(0xffff), gray(32+7*8, 32))

	c.Reverse = true
	assert.Zero(t, gray(0, 0))
	assert.Equal(t, uint32(0xffff), gray(32, 32))

	c.Scale = 1
	c.Border = 0
	assert.Equal(t, image.Rect(0, 0, 21, 21), c.Image().Bounds())

	c.Scale = 0
	assert.Nil(t, c.Image())
}

func TestEncodePBM(t *testing.T) {
	c, err := Encode("HELLO", M)
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, c.EncodePBM(&b))
	hdr := "P4\n232 232\n"
	require.True(t, strings.HasPrefix(b.String(), hdr))
	data := b.Bytes()[len(hdr):]
	require.Len(t, data, 232*29)
	assert.Equal(t, make([]byte, 29), data[:29])
	row := data[32*29 : 33*29]
	assert.Equal(t, []byte{0, 0, 0, 0, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0},
		row[:12])

	c.Scale, c.Border = 1, 0
	b.Reset()
	require.NoError(t, c.EncodePBM(&b))
	hdr = "P4\n21 21\n"
	data = b.Bytes()[len(hdr):]
	require.Len(t, data, 3*21)
	assert.Equal(t, byte(0xfe), data[0])
	// Bits past the right edge are zero.
	for y := 0; y < 21; y++ {
		assert.Zero(t, data[y*3+2]&0x07)
	}

	c.Scale = 3
	c.Border = 1
	c.Reverse = true
	b.Reset()
	require.NoError(t, c.EncodePBM(&b))
	hdr = "P4\n69 69\n"
	data = b.Bytes()[len(hdr):]
	require.Len(t, data, 9*69)
	// Reversed quiet zone is black.
	assert.Equal(t, byte(0xff), data[0])
	assert.Equal(t, byte(0xf8), data[8])

	c.Border = -1
	assert.ErrorIs(t, c.EncodePBM(&b), ErrArgs)
	c.Border = 4
	assert.ErrorIs(t, c.EncodePBM(nil), ErrArgs)
}

func TestEncodeText(t *testing.T) {
	c, err := Encode("HELLO", M)
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, c.EncodeText(&b, true))
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(t, lines, 29)
	for _, l := range lines {
		require.Len(t, l, 58)
	}
	assert.Equal(t, strings.Repeat(" ", 58), lines[0])
	assert.Equal(t, strings.Repeat(" ", 8)+strings.Repeat("##", 7)+"  ",
		lines[4][:8+14+2])

	c.Border = 0
	s := c.String()
	lines = strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	require.Len(t, lines, 11)
	for _, l := range lines {
		require.Equal(t, 21, utf8.RuneCountInString(l))
	}
	assert.True(t, strings.HasPrefix(lines[0], "█▀▀▀▀▀█ "))
	// The last line holds a single module row.
	for _, r := range lines[10] {
		assert.Contains(t, []rune{' ', '▀'}, r)
	}

	c.Reverse = true
	assert.True(t, strings.HasPrefix(c.String(), " ▄▄▄▄▄ █"))

	c.Border = -1
	assert.Empty(t, c.String())
	assert.ErrorIs(t, c.EncodeText(&b, true), ErrArgs)
}
