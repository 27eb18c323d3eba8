// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

// ByteIndicator is the 4 bit mode indicator of byte mode segments.
const ByteIndicator = 4

// A Segment is a byte mode segment.  It is created from text and not
// modified afterwards.
type Segment struct {
	data []byte
}

// NewSegment returns a byte mode segment for text.
//
// Each code point is expanded into one to four bytes in the manner of
// UTF-8, except that U+0080 and U+10000 fall on the shorter side of
// their boundaries: code points above 0x10000 take four bytes, above
// 0x800 three, above 0x80 two, and the rest one byte.
func NewSegment(text string) Segment {
	b := make([]byte, 0, len(text))
	for _, r := range text {
		c := uint32(r)
		switch {
		case c > 0x10000:
			b = append(b, 0xf0|byte(c&0x1c0000>>18),
				0x80|byte(c&0x3f000>>12),
				0x80|byte(c&0xfc0>>6),
				0x80|byte(c&0x3f))
		case c > 0x800:
			b = append(b, 0xe0|byte(c&0xf000>>12),
				0x80|byte(c&0xfc0>>6),
				0x80|byte(c&0x3f))
		case c > 0x80:
			b = append(b, 0xc0|byte(c&0x7c0>>6),
				0x80|byte(c&0x3f))
		default:
			b = append(b, byte(c))
		}
	}
	return Segment{b}
}

// Bytes returns a copy of the segment payload.
func (s Segment) Bytes() []byte { return append([]byte(nil), s.data...) }

// Len returns the payload length in bytes.
func (s Segment) Len() int { return len(s.data) }

// EncodedLength returns the encoded length in bits of s in version v,
// including the mode indicator and character count.
func (s Segment) EncodedLength(v Version) int {
	return 4 + v.countLength() + 8*len(s.data)
}

// SegmentError reports a segment too long for the character count
// field of a version.
type SegmentError struct {
	Len     int
	Version Version
}

func (e SegmentError) Error() string {
	return fmt.Sprintf("qr: %d byte segment does not fit version %s count field",
		e.Len, e.Version)
}

// Encode writes s encoded for version v to b.
func (s Segment) Encode(b *Bits, v Version) error {
	cl := v.countLength()
	if len(s.data) >= 1<<cl {
		return SegmentError{len(s.data), v}
	}
	b.Put(ByteIndicator, 4)
	b.Put(uint32(len(s.data)), cl)
	for _, c := range s.data {
		b.Put(uint32(c), 8)
	}
	return nil
}
