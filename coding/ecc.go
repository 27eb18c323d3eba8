// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"

	"github.com/Thabuki/karaoke-picker/gf256"
)

// CapacityError reports data too long for a version.
type CapacityError struct {
	Bits int // encoded length
	Max  int // data capacity
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("qr: code length overflow (%d > %d bits, %d over)",
		e.Bits, e.Max, e.Bits-e.Max)
}

// Fit returns the smallest version not below from able to hold text
// and the encoded segment.  If none fits, the error is a
// *CapacityError against MaxVersion.
func Fit(text string, from Version) (Version, Segment, error) {
	seg := NewSegment(text)
	for v := from.Clamp(); v <= MaxVersion; v++ {
		if seg.EncodedLength(v) <= v.DataBits() {
			return v, seg, nil
		}
	}
	return 0, seg, &CapacityError{seg.EncodedLength(MaxVersion),
		MaxVersion.DataBits()}
}

// pad adds the terminator and padding to b, filling n data bytes.
func (b *Bits) pad(n int) {
	if b.nbit+4 <= n*8 {
		b.Put(0, 4)
	}
	for b.nbit&7 != 0 {
		b.PutBit(false)
	}
	for pad := uint32(0xec); b.nbit < n*8; pad ^= 0xec ^ 0x11 {
		b.Put(pad, 8)
	}
}

// Codewords returns the data and check codewords for the segments at
// version v, blocks interleaved in transmission order.  If the
// segments do not fit v, the error is a *CapacityError.
func Codewords(v Version, segs ...Segment) ([]byte, error) {
	if !v.IsValid() {
		return nil, ErrVersion
	}
	nbit := 0
	for _, s := range segs {
		nbit += s.EncodedLength(v)
	}
	nd := v.DataBytes()
	if nbit > nd*8 {
		return nil, &CapacityError{nbit, nd * 8}
	}
	b := NewBits(v)
	for _, s := range segs {
		if err := s.Encode(b, v); err != nil {
			return nil, err
		}
	}
	b.pad(nd)

	blocks := v.Blocks()
	data := make([][]byte, len(blocks))
	check := make([][]byte, len(blocks))
	dat := b.Bytes()
	for i, bs := range blocks {
		data[i], dat = dat[:bs.Data], dat[bs.Data:]
		check[i] = gf256.Remainder(data[i], bs.Check())
	}

	out := make([]byte, 0, v.TotalBytes())
	out = interleave(out, data)
	out = interleave(out, check)
	if len(out) != v.TotalBytes() {
		panic("qr: internal error")
	}
	return out, nil
}

// interleave appends the blocks to dst column by column.  Shorter
// blocks are skipped once exhausted.
func interleave(dst []byte, blocks [][]byte) []byte {
	n := 0
	for _, b := range blocks {
		n = max(n, len(b))
	}
	for i := 0; i < n; i++ {
		for _, b := range blocks {
			if i < len(b) {
				dst = append(dst, b[i])
			}
		}
	}
	return dst
}
