// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"errors"
	"image"
	"image/draw"
)

var ErrTargetTooSmall = errors.New("qr: target too small")

// Layout returns the module size in pixels and the offset of the code
// from the top left corner of a square target width pixels wide, with
// at least margin pixels on each side.  The code is centred.
func Layout(width, size, margin int) (ppm, offset int, err error) {
	if size <= 0 {
		return 0, 0, ErrArgs
	}
	ppm = (width - 2*margin) / size
	if ppm <= 0 {
		return 0, 0, ErrTargetTooSmall
	}
	return ppm, (width - ppm*size) / 2, nil
}

// Render generates the code for text and draws it onto dst.
// If opt is nil, DefaultOptions is used.  See Options for the margin.
func Render(dst draw.Image, text string, opt *Options) error {
	if opt == nil {
		opt = DefaultOptions()
	}
	c, err := Generate(text, opt)
	if err != nil {
		return err
	}
	return c.Draw(dst, opt.margin())
}

// Draw fills dst with the background colour and draws the code on it,
// fitted to the width of dst with margin pixels clear on each side.
// The same offset is used on both axes.
func (c *Code) Draw(dst draw.Image, margin int) error {
	if !c.isValid() {
		return ErrArgs
	}
	r := dst.Bounds()
	ppm, off, err := Layout(r.Dx(), c.Size, margin)
	if err != nil {
		return err
	}
	pal := c.palette()
	draw.Draw(dst, r, image.NewUniform(pal[0]), image.Point{}, draw.Src)
	fg := image.NewUniform(pal[1])
	o := r.Min.Add(image.Pt(off, off))
	for y := 0; y < c.Size; y++ {
		for x := 0; x < c.Size; x++ {
			if c.Black(x, y) {
				p := o.Add(image.Pt(x*ppm, y*ppm))
				draw.Draw(dst, image.Rectangle{p, p.Add(image.Pt(ppm, ppm))},
					fg, image.Point{}, draw.Src)
			}
		}
	}
	return nil
}
