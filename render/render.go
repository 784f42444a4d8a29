// Package render draws the state of a spirovm CPU as an image.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/spirovm/cpu"
	"github.com/ezrec/spirovm/translate"
)

var f = translate.From

var (
	ErrThemeLength = errors.New(f("theme needs 4 colors"))
	ErrScale       = errors.New(f("scale out of range"))
	ErrBorder      = errors.New(f("border is negative"))
)

// ErrColor is a color that could not be parsed.
type ErrColor string

func (err ErrColor) Error() string {
	return f("'%v' is not a #rgb or #rrggbb color", string(err))
}

// Theme palette entries.
const (
	THEME_BACKGROUND = 0 // Clear cells.
	THEME_INK        = 1 // Set cells.
	THEME_CURSOR     = 2 // Cursor cell.
	THEME_BORDER     = 3 // Border around the buffer.
)

const SCALE_LIMIT = 16 // Maximum pixels per buffer cell.

// Theme is the palette used to draw a frame.
type Theme [4]color.RGBA

// DefaultTheme is the classic palette.
var DefaultTheme = Theme{
	{R: 0x22, G: 0xcc, B: 0xbb, A: 0xff},
	{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	{R: 0xff, G: 0xee, B: 0xbb, A: 0xff},
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// ParseColor parses a #rgb or #rrggbb color.
func ParseColor(str string) (rgba color.RGBA, err error) {
	hex, ok := strings.CutPrefix(str, "#")
	if !ok || (len(hex) != 3 && len(hex) != 6) {
		err = ErrColor(str)
		return
	}

	value, perr := strconv.ParseUint(hex, 16, 32)
	if perr != nil {
		err = ErrColor(str)
		return
	}

	if len(hex) == 3 {
		// #rgb => #rrggbb
		r := (value >> 8) & 0xf
		g := (value >> 4) & 0xf
		b := (value >> 0) & 0xf
		value = (r * 0x11 << 16) | (g * 0x11 << 8) | (b * 0x11)
	}

	rgba = color.RGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 0xff,
	}
	return
}

// FormatColor formats a color as #rrggbb. Alpha is dropped.
func FormatColor(rgba color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

// Strings returns the theme as color strings, in the form ParseTheme reads.
func (theme Theme) Strings() (colors []string) {
	colors = make([]string, len(theme))
	for n, rgba := range theme {
		colors[n] = FormatColor(rgba)
	}
	return
}

// ParseTheme parses a theme from four color strings.
func ParseTheme(colors []string) (theme Theme, err error) {
	if len(colors) != len(theme) {
		err = ErrThemeLength
		return
	}

	for n, str := range colors {
		theme[n], err = ParseColor(str)
		if err != nil {
			return
		}
	}

	return
}

// Options control how a frame is drawn.
type Options struct {
	Theme  Theme
	Scale  int  // Pixels per buffer cell.
	Border int  // Border width, in cells.
	Cursor bool // Draw the cursor cell.
}

// fill paints a cell-sized square at cell coordinates x, y.
func (opts *Options) fill(img *image.RGBA, x, y int, c color.RGBA) {
	scale := opts.Scale
	x = (x + opts.Border) * scale
	y = (y + opts.Border) * scale
	draw.Draw(img, image.Rect(x, y, x+scale, y+scale), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// Image draws the pixel buffer and cursor of the CPU.
func Image(cp *cpu.Cpu, opts Options) (img *image.RGBA, err error) {
	if opts.Scale < 1 || opts.Scale > SCALE_LIMIT {
		err = ErrScale
		return
	}
	if opts.Border < 0 {
		err = ErrBorder
		return
	}

	scale := opts.Scale
	outer := image.Rect(0, 0, (cpu.WIDTH+2*opts.Border)*scale, (cpu.HEIGHT+2*opts.Border)*scale)
	inner := image.Rect(opts.Border*scale, opts.Border*scale, (cpu.WIDTH+opts.Border)*scale, (cpu.HEIGHT+opts.Border)*scale)

	img = image.NewRGBA(outer)
	draw.Draw(img, outer, &image.Uniform{C: opts.Theme[THEME_BORDER]}, image.Point{}, draw.Src)
	draw.Draw(img, inner, &image.Uniform{C: opts.Theme[THEME_BACKGROUND]}, image.Point{}, draw.Src)

	for pt := range cp.Lit() {
		opts.fill(img, pt.X, pt.Y, opts.Theme[THEME_INK])
	}

	if opts.Cursor {
		x, y := cp.Cursor()
		if image.Pt(x, y).In(cpu.Bounds) {
			opts.fill(img, x, y, opts.Theme[THEME_CURSOR])
		}
	}

	return
}

// WritePNG encodes the image as a PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
