package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/Thabuki/karaoke-picker"
	"github.com/Thabuki/karaoke-picker/share"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

var g = struct {
	scale  int    // scale
	border int    // quiet zone, or canvas margin with -w
	width  int    // canvas width
	fn     string // filename
	ver    int    // minimum QR version
	format int    // output file format
	cx     int    // randr source X coordinate index in inc
	inc    [2]int // randr source X,Y coordinate increments
	bg, fg rgba   // colour
	colSet bool   // colour set
	info   bool   // log version and mask
	base   string // share link base URL
	ids    []int  // song IDs for share link
}{
	inc: [2]int{1, 1},
	bg:  rgba{0xff, 0xff, 0xff, 0xff},
	fg:  rgba{0x00, 0x00, 0x00, 0xff},
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	ul := make([]string, 1, 4)
	ul[0] = cl.UsageLine() + " [string ...]"
	ml := max(70-len("Usage: ")-1-len(prog), 0)
	for i := 0; len(ul[i]) > ml; i++ {
		s := ul[i]
		n := ml - 1
		for n > 0 && (s[n] != ' ' || s[n+1] != '[') {
			n--
		}
		ul = append(ul, s[n+1:])
		ul[i] = s[:max(n, 0)]
		ml = 60
	}
	fmt.Fprint(w, "QR code generator for karaoke song lists\nUsage: ",
		prog, " ", strings.Join(ul, "\n          "), `
If no string is given and -S is not used, data is read from standard
input and the final newline is stripped.  Data is encoded in byte mode
at error correction level L, in the smallest version from 1 to 10
that holds it.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qr version 1.0.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2025 Vadim Vygonets
Copyright (c) 2026 The karaoke-picker Authors`)
	os.Exit(0)
}

func flip() {
	g.inc[0] = -g.inc[0]
}

func rotate() {
	g.cx ^= 1
	m := g.inc[0] * g.inc[1]
	g.inc[0] *= m
	g.inc[1] *= -m
}

type rgba struct {
	R, G, B, A uint8
}

var rgb = map[string]rgba{
	"black":  {0x00, 0x00, 0x00, 0xff},
	"white":  {0xff, 0xff, 0xff, 0xff},
	"red":    {0xff, 0x00, 0x00, 0xff},
	"green":  {0x00, 0xff, 0x00, 0xff},
	"blue":   {0x00, 0x00, 0xff, 0xff},
	"yellow": {0xff, 0xff, 0x00, 0xff},
	"purple": {0xa0, 0x20, 0xf0, 0xff},
	"gray":   {0xbe, 0xbe, 0xbe, 0xff},
	"grey":   {0xbe, 0xbe, 0xbe, 0xff},
}

func (c *rgba) String() string {
	if *c == (rgba{0x00, 0x00, 0x00, 0xff}) {
		return "black"
	} else if *c == (rgba{0xff, 0xff, 0xff, 0xff}) {
		return "white"
	} else if c.A == 0xff {
		return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
	} else {
		return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
}

func (c *rgba) Set(s string, _ getopt.Option) error {
	g.colSet = true
	var ok bool
	if *c, ok = rgb[strings.ToLower(strings.ReplaceAll(s, " ", ""))]; ok {
		return nil
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("%q: bad colour spec", s)
	}
	switch len(s) {
	case 3:
		n = n<<4 | 0xf
		fallthrough
	case 4:
		var nn uint64
		for i := 0; i < 4; i++ {
			nn <<= 8
			nn |= n >> 12 & 0xf * 0x11
			n <<= 4
		}
		n = nn
	case 6:
		n = n<<8 | 0xff
	case 8:
	default:
		return fmt.Errorf("%q: bad colour spec", s)
	}
	c.R, c.G, c.B, c.A = uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)
	return nil
}

// idList is a comma separated list of song IDs.
type idList []int

func (l *idList) String() string {
	s := make([]string, len(*l))
	for i, id := range *l {
		s[i] = strconv.Itoa(id)
	}
	return strings.Join(s, ",")
}

func (l *idList) Set(s string, _ getopt.Option) error {
	for _, f := range strings.Split(s, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || id <= 0 {
			return fmt.Errorf("%q: bad song ID", f)
		}
		*l = append(*l, id)
	}
	return nil
}

var formats = []string{"png", "pbm", "eps", "utf8", "utf8i", "ascii"}

const (
	fmtPNG = iota
	fmtPBM
	fmtEPS
	fmtUTF8
	fmtUTF8i
	fmtASCII
)

var encoders = [...]func(*qr.Code, io.Writer) error{
	fmtPNG: func(c *qr.Code, w io.Writer) error { return png.Encode(w, c.Image()) },
	fmtPBM: (*qr.Code).EncodePBM,
	fmtEPS: eps,
	fmtUTF8: func(c *qr.Code, w io.Writer) error {
		_, err := fmt.Fprint(w, c)
		return err
	},
	fmtUTF8i: func(c *qr.Code, w io.Writer) error {
		_, err := io.WriteString(w, c.Text(true))
		return err
	},
	fmtASCII: ascii,
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.bg, "background", 'B', `background colour; see -F`,
		"RGB[A]|name")
	getopt.FlagLong(&g.fg, "foreground", 'F', `foreground colour `+
		`as 3, 4, 6 or 8 hex digits or a colour name; `+
		`only for types png and eps`, "RGB[A]|name")
	getopt.Flag(opt(flip), 'f', `flip code horizontally; `+
		`to flip vertically, use "-frr"`).SetFlag()
	getopt.Flag(opt(rotate), 'r', `rotate code 90° counterclockwise; `+
		`-r and -f may be given multiple times, `+
		`order matters: "-fr" = "-rfrr" = "-rrrf"`).SetFlag()
	getopt.Flag(&g.info, 'i', "log version and mask of the code")
	getopt.Flag(&g.border, 'm', `quiet zone modules [4]; `+
		`with -w, canvas margin pixels [4]`, "margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	ver := getopt.Unsigned('v', 1, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 1, Max: 10},
		"minimum QR version", "ver")
	scale := getopt.Unsigned('s', 4,
		&(getopt.UnsignedLimit{Base: 0, Bits: 28, Min: 1, Max: 1 << 28}),
		`image pixels (type eps: points) per QR module; `+
			`ignored for types utf8[i] and ascii`, "scale")
	width := getopt.Unsigned('w', 0,
		&(getopt.UnsignedLimit{Base: 0, Bits: 28, Min: 0, Max: 1 << 16}),
		`draw the code centred on a square canvas this many `+
			`pixels wide; only for type png`, "width")
	getopt.Flag(&g.base, 'u', `base URL of the song picker for -S`, "url")
	ids := (*idList)(&g.ids)
	getopt.Flag(ids, 'S', `encode the share link selecting the given `+
		`songs; may be given multiple times`, "id,...")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+`; utf8i has colours inverted `+
		`for light on dark terminals; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	g.scale = int(*scale)
	g.width = int(*width)
	g.ver = int(*ver)
	if !getopt.IsSet('m') {
		g.border = -1
	}
	if *ff == "" {
		if g.width == 0 && !fno.Seen() &&
			isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = i
			break
		}
	}
	if g.width != 0 && g.format != fmtPNG {
		fmt.Fprintln(os.Stderr, "-w requires type png")
		usage()
	}
	if len(g.ids) != 0 && len(getopt.Args()) != 0 {
		fmt.Fprintln(os.Stderr, "-S and string arguments are incompatible")
		usage()
	}
	if g.base != "" && len(g.ids) == 0 {
		fmt.Fprintln(os.Stderr, "-u requires -S")
		usage()
	}
	if g.fn == "-" {
		g.fn = ""
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var s string
	if len(g.ids) != 0 {
		s = share.URL(g.base, g.ids)
	} else if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}

	o := &qr.Options{TypeNumber: g.ver}
	margin := qr.DefaultMargin
	if g.width != 0 && g.border >= 0 {
		margin = g.border
	}
	if g.colSet {
		o.Background, o.Color = color.RGBA(g.bg), color.RGBA(g.fg)
	}
	c, err := qr.Generate(s, o)
	if err != nil {
		log.Fatalln(err)
	}
	if g.info {
		log.Printf("version %d, mask %d, %d modules, %d bytes",
			c.Version, c.Mask, c.Size, len(s))
	}
	write(c, margin)
}

func write(c *qr.Code, margin int) {
	var w = os.Stdout
	if g.fn != "" {
		var err error
		if w, err = os.OpenFile(g.fn,
			os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666); err != nil {
			log.Fatalln(err)
		}
	}
	c = randr(c)
	c.Scale = g.scale
	if g.border >= 0 && g.width == 0 {
		c.Border = g.border
	}
	var err error
	if g.width != 0 {
		err = canvas(c, w, margin)
	} else {
		err = encoders[g.format](c, w)
	}
	if g.fn != "" && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// canvas draws c on a g.width square canvas and writes it as PNG.
func canvas(c *qr.Code, w io.Writer, margin int) error {
	m := image.NewRGBA(image.Rect(0, 0, g.width, g.width))
	if err := c.Draw(m, margin); err != nil {
		return err
	}
	return png.Encode(w, m)
}

// randr rotates and reflects c.
func randr(c *qr.Code) *qr.Code {
	cx, inc := g.cx, g.inc
	if cx == 0 && inc == [2]int{1, 1} {
		return c
	}
	b := make([]byte, 0, len(c.Bitmap))
	var coord [2]int
	siz := c.Size
	coord[cx^1] = (siz - 1) & inc[1]
	for y := 0; y < siz; y++ {
		coord[cx] = (siz - 1) & inc[0]
		var bb byte
		for x := 0; x < siz; x++ {
			bb <<= 1
			if c.Black(coord[0], coord[1]) {
				bb |= 1
			}
			if x&7 == 7 {
				b = append(b, bb)
			}
			coord[cx] += inc[0]
		}
		b = append(b, bb<<(8-siz&7))
		coord[cx^1] += inc[1]
	}
	c.Bitmap = b
	return c
}

func eps(c *qr.Code, w io.Writer) error {
	const midx, midy = 306, 396
	siz := c.Size
	scale := c.Scale
	bord := c.Border
	xorig := (midx*2 - (siz+2*bord)*scale) / 2
	yorig := (midy*2 - (siz+2*bord)*scale) / 2
	fmt.Fprintf(w, `%%!PS-Adobe-2.0 EPSF-2.0
%%%%Creator: karaoke-picker qr
%%%%Title: QR Code
%%%%BoundingBox: %d %d %d %d
%%%%EndComments
%%%%EndProlog
<< >> begin
gsave
%g %g translate
%d dup neg scale
/row 0 def
/p { 0 rmoveto 0 rlineto } def
/r { 0 row 1 add dup /row exch def moveto } def
`,
		xorig-1, yorig-1, midx*2-xorig, midy*2-yorig,
		midx-float64(siz*scale)/2, midy+float64((siz-1)*scale)/2-1,
		scale)
	if g.colSet {
		bg, fg := g.bg, g.fg
		fmt.Fprintf(w, `gsave
newpath %d %d moveto
%d dup neg scale
%.3g %.3g %.3g setrgbcolor
1 0 rlineto stroke
grestore
%.3g %.3g %.3g setrgbcolor
`,
			-bord, siz/2, siz+2*bord,
			float64(bg.R)/0xff, float64(bg.G)/0xff,
			float64(bg.B)/0xff, float64(fg.R)/0xff,
			float64(fg.G)/0xff, float64(fg.B)/0xff)
	}
	fmt.Fprintln(w, "newpath 0 0 moveto")
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; {
			s := x
			for x < siz && !c.Black(x, y) {
				x++
			}
			if x == siz {
				break
			}
			b := x
			for x < siz && c.Black(x, y) {
				x++
			}
			fmt.Fprintf(w, "%d %d p ", x-b, b-s)
		}
		fmt.Fprintln(w, "r")
	}
	_, err := io.WriteString(w, "stroke grestore\nend\n%%Trailer\n")
	return err
}

func ascii(c *qr.Code, w io.Writer) error {
	siz := c.Size
	bord := c.Border
	pix := siz + 2*bord
	b := make([]byte, (pix*2+1)*pix)
	i := 0
	for y := -bord; y < siz+bord; y++ {
		for x := -bord; x < siz+bord; x++ {
			var p byte = ' '
			if c.Black(x, y) {
				p = '#'
			}
			_ = b[i+1]
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	_, err := w.Write(b)
	return err
}
