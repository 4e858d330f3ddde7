// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr_test

import (
	"fmt"
	"strings"

	"github.com/unixdj/qrmatrix"
)

func ExampleEncode() {
	c, err := qr.Encode("HELLO", qr.DefaultLevel)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.Version, c.Level, c.Size, c.Mask)
	// Output: 1 M 21 0
}

func ExampleEncodeBytes() {
	_, err := qr.EncodeBytes(make([]byte, 3000), qr.H)
	fmt.Println(err)
	// Output: qr: cannot encode 3000 bytes in version 40-H: maximum is 1273
}

func ExampleCode_Matrix() {
	c, err := qr.Encode("HELLO", qr.M)
	if err != nil {
		fmt.Println(err)
		return
	}
	row := func(r []bool) string {
		var b strings.Builder
		for _, dark := range r {
			if dark {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		return b.String()
	}
	m := c.Matrix()
	fmt.Println(row(m[0][:8]))
	fmt.Println(row(m[6]))
	// Output:
	// #######.
	// #######.#.#.#.#######
}
