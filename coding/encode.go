// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "golang.org/x/sync/errgroup"

// A Code is a finished QR code.
type Code struct {
	Version Version
	Mask    int     // selected mask pattern
	Matrix  *Matrix // every module is Light or Dark
}

// BestMask builds a test matrix for each of the eight masks and
// returns the mask with the smallest penalty.  Ties go to the lower
// mask number.  The trials run concurrently.
func (p *Plan) BestMask(codewords []byte) (int, error) {
	var scores [8]int
	var g errgroup.Group
	for mask := range scores {
		g.Go(func() error {
			m, err := p.Build(codewords, mask, true)
			if err != nil {
				return err
			}
			scores[mask] = Penalty(m)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	best := 0
	for mask, s := range scores {
		if s < scores[best] {
			best = mask
		}
	}
	return best, nil
}

// Encode returns the QR code of version v holding the segments.
func Encode(v Version, segs ...Segment) (*Code, error) {
	p, err := NewPlan(v)
	if err != nil {
		return nil, err
	}
	cw, err := Codewords(v, segs...)
	if err != nil {
		return nil, err
	}
	mask, err := p.BestMask(cw)
	if err != nil {
		return nil, err
	}
	m, err := p.Build(cw, mask, false)
	if err != nil {
		return nil, err
	}
	return &Code{Version: v, Mask: mask, Matrix: m}, nil
}

// EncodeText returns the QR code for text in the smallest version not
// below from that holds it.  Empty text is encoded with no segments.
func EncodeText(text string, from Version) (*Code, error) {
	if text == "" {
		return Encode(from.Clamp())
	}
	v, seg, err := Fit(text, from)
	if err != nil {
		return nil, err
	}
	return Encode(v, seg)
}
