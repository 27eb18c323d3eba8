// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes QR codes for share links.

Text is encoded in byte mode at error correction level L in the
smallest QR version from 1 to 10 that holds it.  The resulting Code can
be drawn onto an image, converted to an image.Image, or written as PBM
or terminal text.
*/
package qr // import "github.com/Thabuki/karaoke-picker"

import (
	"errors"
	"image"
	"image/color"

	"github.com/Thabuki/karaoke-picker/coding"
)

var ErrArgs = errors.New("qr: invalid arguments")

// Options control version selection and rendering.
// The zero value of each field selects its default.
type Options struct {
	Margin     int         // pixels kept clear on each side; 0 is 4, negative is none
	TypeNumber int         // minimum version, clamped to [1, 10]
	Background color.Color // light module colour; nil is white
	Color      color.Color // dark module colour; nil is black
}

// DefaultMargin is the margin used when Options.Margin is 0.
const DefaultMargin = 4

// DefaultOptions returns the options used when nil is passed.
func DefaultOptions() *Options {
	return &Options{Margin: DefaultMargin}
}

func (o *Options) margin() int {
	switch {
	case o.Margin == 0:
		return DefaultMargin
	case o.Margin < 0:
		return 0
	}
	return o.Margin
}

func (o *Options) colors() (bg, fg color.Color) {
	bg, fg = color.Color(color.White), color.Color(color.Black)
	if o.Background != nil {
		bg = o.Background
	}
	if o.Color != nil {
		fg = o.Color
	}
	return bg, fg
}

// A Code is a square pixel grid.
// It implements image.Image via Image.
type Code struct {
	Bitmap  []byte // 1 is dark, 0 is light
	Size    int    // number of modules on a side
	Stride  int    // number of bytes per row
	Scale   int    // number of image pixels per module
	Border  int    // quiet zone width in modules
	Version int    // QR version
	Mask    int    // mask pattern

	Background color.Color // nil is white
	Foreground color.Color // nil is black
}

// Generate returns the QR code for text.  If opt is nil,
// DefaultOptions is used.  The error is a *coding.CapacityError if
// text does not fit version 10.
func Generate(text string, opt *Options) (*Code, error) {
	if opt == nil {
		opt = DefaultOptions()
	}
	cc, err := coding.EncodeText(text, coding.Version(opt.TypeNumber))
	if err != nil {
		return nil, err
	}
	c := newCode(cc)
	c.Background, c.Foreground = opt.colors()
	return c, nil
}

// newCode packs the module matrix of cc into a bitmap.
func newCode(cc *coding.Code) *Code {
	m := cc.Matrix
	siz := m.Size
	stride := (siz + 7) >> 3
	c := &Code{
		Bitmap:  make([]byte, siz*stride),
		Size:    siz,
		Stride:  stride,
		Scale:   8,
		Border:  4,
		Version: int(cc.Version),
		Mask:    cc.Mask,
	}
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			if m.Dark(y, x) {
				c.Bitmap[y*stride+x>>3] |= 0x80 >> (x & 7)
			}
		}
	}
	return c
}

// Black returns true if the module at (x,y) is dark.
// Modules outside the code are light.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7&^x)) != 0
}

func (c *Code) isValid() bool {
	return c != nil && c.Size > 0 && c.Stride == (c.Size+7)>>3 &&
		len(c.Bitmap) == c.Size*c.Stride && c.Scale > 0 && c.Border >= 0
}

func (c *Code) palette() color.Palette {
	o := Options{Background: c.Background, Color: c.Foreground}
	bg, fg := o.colors()
	return color.Palette{bg, fg}
}

// Image returns an Image displaying the code with c.Scale pixels per
// module and a c.Border module quiet zone.
func (c *Code) Image() image.Image {
	return &codeImage{c, c.palette()}
}

// codeImage implements image.Image
type codeImage struct {
	*Code
	pal color.Palette
}

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size + 2*c.Border) * c.Scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	if c.Black(x/c.Scale-c.Border, y/c.Scale-c.Border) {
		return c.pal[1]
	}
	return c.pal[0]
}

func (c *codeImage) ColorModel() color.Model {
	return c.pal
}
