// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: byte mode
// segments, error correction, module placement and mask selection.
package coding // import "github.com/Thabuki/karaoke-picker/coding"

import (
	"errors"
	"strconv"
)

var ErrVersion = errors.New("qr: invalid version")

// A Version represents a QR version, also known as the type number.
// A QR code with version v has 4v+17 modules on a side.  Versions 1
// to 10 are supported, at error correction level L only.
type Version int

const (
	MinVersion Version = 1  // Minimum supported version
	MaxVersion Version = 10 // Maximum supported version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// IsValid reports whether v is a supported version.
func (v Version) IsValid() bool { return MinVersion <= v && v <= MaxVersion }

// Clamp returns v limited to [MinVersion, MaxVersion].
func (v Version) Clamp() Version {
	return min(max(v, MinVersion), MaxVersion)
}

// Size returns the number of modules on a side.
func (v Version) Size() int { return int(v)*4 + 17 }

// A BlockSpec describes one Reed-Solomon block.
type BlockSpec struct {
	Total int // total codewords
	Data  int // data codewords; the rest are check codewords
}

// Check returns the number of check codewords.
func (b BlockSpec) Check() int { return b.Total - b.Data }

// blockRow describes count blocks of the same shape.
type blockRow struct {
	count, total, data int
}

// A version describes metadata associated with a version.
type version struct {
	bytes  int        // total codewords
	align  []int      // alignment pattern centre coordinates
	blocks []blockRow // level L block layout
}

// Version table, level L.
var vtab = [MaxVersion + 1]version{
	1:  {26, nil, []blockRow{{1, 26, 19}}},
	2:  {44, []int{6, 18}, []blockRow{{1, 44, 34}}},
	3:  {70, []int{6, 22}, []blockRow{{1, 70, 55}}},
	4:  {100, []int{6, 26}, []blockRow{{1, 100, 80}}},
	5:  {134, []int{6, 30}, []blockRow{{1, 134, 108}}},
	6:  {172, []int{6, 34}, []blockRow{{2, 86, 68}}},
	7:  {196, []int{6, 22, 38}, []blockRow{{2, 98, 78}}},
	8:  {242, []int{6, 24, 42}, []blockRow{{2, 121, 97}}},
	9:  {292, []int{6, 26, 46}, []blockRow{{2, 146, 116}}},
	10: {346, []int{6, 28, 50}, []blockRow{{2, 86, 68}, {2, 87, 69}}},
}

// Blocks returns the Reed-Solomon blocks of v in transmission order.
func (v Version) Blocks() []BlockSpec {
	if !v.IsValid() {
		return nil
	}
	var bs []BlockSpec
	for _, r := range vtab[v].blocks {
		for i := 0; i < r.count; i++ {
			bs = append(bs, BlockSpec{r.total, r.data})
		}
	}
	return bs
}

// TotalBytes returns the number of data and check codewords.
func (v Version) TotalBytes() int { return vtab[v].bytes }

// DataBytes returns the number of data codewords.
func (v Version) DataBytes() int {
	n := 0
	for _, r := range vtab[v].blocks {
		n += r.count * r.data
	}
	return n
}

// DataBits returns the number of data bits that can be stored.
func (v Version) DataBits() int { return v.DataBytes() * 8 }

// Alignment returns the alignment pattern centre coordinates.
func (v Version) Alignment() []int { return vtab[v].align }

// countLength returns the length of the byte mode character count.
func (v Version) countLength() int {
	if v <= 9 {
		return 8
	}
	return 16
}
