// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strconv"

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 pixels on a side.
// Versions run from 1 to 40: the larger the version, the more
// information the code can store.
type Version int

const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// Valid reports whether v is in the range [MinVersion, MaxVersion].
func (v Version) Valid() bool { return MinVersion <= v && v <= MaxVersion }

// Size returns the number of modules on a side.
func (v Version) Size() int { return int(v)*4 + 17 }

// Error correction codewords per block, by level and version.
// Index 0 is unused.
var eccPerBlock = [4][MaxVersion + 1]int8{
	//    1   2   3   4   5   6   7   8   9  10  11  12  13  14  15  16  17  18  19  20  21  22  23  24  25  26  27  28  29  30  31  32  33  34  35  36  37  38  39  40
	L: {-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	M: {-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28},
	Q: {-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	H: {-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
}

// Number of error correction blocks, by level and version.
// Index 0 is unused.
var numBlocks = [4][MaxVersion + 1]int8{
	//    1  2  3  4  5  6  7  8  9 10 11 12 13  14  15  16  17  18  19  20  21  22  23  24  25  26  27  28  29  30  31  32  33  34  35  36  37  38  39  40
	L: {-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},
	M: {-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},
	Q: {-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},
	H: {-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81},
}

// ECCPerBlock returns the number of error correction codewords in
// each block of a code with version v and level l.
func (v Version) ECCPerBlock(l Level) int { return int(eccPerBlock[l][v]) }

// NumBlocks returns the number of error correction blocks of a code
// with version v and level l.
func (v Version) NumBlocks(l Level) int { return int(numBlocks[l][v]) }

// numAlign returns the number of alignment pattern positions per axis.
func (v Version) numAlign() int {
	if v == 1 {
		return 0
	}
	return int(v)/7 + 2
}

// AlignPositions returns the ascending list of alignment pattern
// center coordinates, used for both axes.  The first is always 6 and
// the last is always Size()-7.  Version 1 has none.
func (v Version) AlignPositions() []int {
	n := v.numAlign()
	if n == 0 {
		return nil
	}
	step := (int(v)*8 + n*3 + 5) / (n*4 - 4) * 2
	pos := make([]int, n)
	pos[0] = 6
	for i, p := n-1, v.Size()-7; i >= 1; i, p = i-1, p-step {
		pos[i] = p
	}
	return pos
}

// RawModules returns the number of modules available for data and
// error correction codewords, including remainder bits, after all
// function patterns are excluded.
func (v Version) RawModules() int {
	n := int(v)
	r := (16*n+128)*n + 64
	if a := v.numAlign(); a != 0 {
		r -= (25*a-10)*a - 55
		if v >= 7 {
			r -= 36 // version information
		}
	}
	return r
}

// TotalCodewords returns the number of data and error correction
// codewords in a code with version v.
func (v Version) TotalCodewords() int { return v.RawModules() / 8 }

// RemainderBits returns the number of bits left over after the last
// codeword.
func (v Version) RemainderBits() int { return v.RawModules() % 8 }

// DataCodewords returns the number of data codewords that can be
// stored in a QR code with the given version and level.
func (v Version) DataCodewords(l Level) int {
	return v.TotalCodewords() - v.ECCPerBlock(l)*v.NumBlocks(l)
}

// DataBits returns the number of data bits that can be
// stored in a QR code with the given version and level.
func (v Version) DataBits(l Level) int { return v.DataCodewords(l) * 8 }

// CountBits returns the length of the byte mode character count
// field: 8 bits up to version 9, 16 bits from version 10.
func (v Version) CountBits() int {
	if v <= 9 {
		return 8
	}
	return 16
}

// segmentBits returns the length in bits of an n byte segment
// encoded in byte mode, including the header.
func (v Version) segmentBits(n int) int { return 4 + v.CountBits() + n*8 }

// MaxBytes returns the maximum number of bytes that can be encoded
// in byte mode in a QR code with the given version and level.
func (v Version) MaxBytes(l Level) int {
	return (v.DataBits(l) - v.segmentBits(0)) / 8
}

// VersionFor returns the smallest version able to hold n bytes in
// byte mode at level l.
func VersionFor(l Level, n int) (Version, error) {
	if !l.Valid() {
		return 0, ErrLevel
	}
	for v := MinVersion; v <= MaxVersion; v++ {
		if v.segmentBits(n) <= v.DataBits(l) {
			return v, nil
		}
	}
	return 0, &CapacityError{Bytes: n, Level: l}
}
