// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import "strings"

// halfBlocks is indexed by top<<1 | bottom, 1 meaning ink.
var halfBlocks = [4]string{" ", "▄", "▀", "█"}

// Text renders the code with its quiet zone for a terminal, two
// module rows per line.  Dark modules are drawn in ink unless reverse
// is set, in which case light modules are, for light-on-dark
// terminals.
func (c *Code) Text(reverse bool) string {
	if !c.isValid() {
		return ""
	}
	ink := func(x, y int) int {
		if c.Black(x, y) != reverse {
			return 1
		}
		return 0
	}
	var b strings.Builder
	for y := -c.Border; y < c.Size+c.Border; y += 2 {
		for x := -c.Border; x < c.Size+c.Border; x++ {
			n := ink(x, y) << 1
			if y+1 < c.Size+c.Border {
				n |= ink(x, y+1)
			}
			b.WriteString(halfBlocks[n])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String returns c.Text(false).
func (c *Code) String() string {
	return c.Text(false)
}
