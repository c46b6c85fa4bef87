package qrgen

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"strconv"
	"strings"
)

// PNGOptions configures WritePNG and SavePNG. The zero value renders black
// on white at 10 pixels per module without a frame.
type PNGOptions struct {
	Scale int         // pixels per module (0 means 10)
	Frame bool        // add a 10-pixel border around the symbol
	Dark  color.Color // dark module colour (nil = black)
	Light color.Color // light module colour (nil = white)
}

const (
	defaultPNGScale = 10
	pngFrameWidth   = 10
)

// WritePNG renders the symbol as a PNG image to w.
func WritePNG(w io.Writer, symbol *Symbol, opts *PNGOptions) error {
	if opts == nil {
		opts = &PNGOptions{}
	}
	scale := opts.Scale
	if scale == 0 {
		scale = defaultPNGScale
	}
	if scale < 1 {
		return fmt.Errorf("qrgen: png scale %d must be positive", opts.Scale)
	}
	dark := opts.Dark
	if dark == nil {
		dark = color.Black
	}
	light := opts.Light
	if light == nil {
		light = color.White
	}

	frame := 0
	if opts.Frame {
		frame = pngFrameWidth
	}
	grid := symbol.Grid
	side := grid.Size()*scale + 2*frame
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(img, img.Bounds(), image.NewUniform(light), image.Point{}, draw.Src)

	for r := 0; r < grid.Size(); r++ {
		for c := 0; c < grid.Size(); c++ {
			if !grid.Dark(r, c) {
				continue
			}
			x := c*scale + frame
			y := r*scale + frame
			cell := image.Rect(x, y, x+scale, y+scale)
			draw.Draw(img, cell, image.NewUniform(dark), image.Point{}, draw.Src)
		}
	}
	return png.Encode(w, img)
}

// SavePNG renders the symbol as a PNG image to the named file.
func SavePNG(path string, symbol *Symbol, opts *PNGOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, symbol, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ansiRGB maps the basic and bright ANSI foreground colour codes to RGB.
var ansiRGB = map[int]color.RGBA{
	30: {0, 0, 0, 255},
	31: {128, 0, 0, 255},
	32: {0, 128, 0, 255},
	33: {128, 128, 0, 255},
	34: {0, 0, 128, 255},
	35: {128, 0, 128, 255},
	36: {0, 128, 128, 255},
	37: {192, 192, 192, 255},
	90: {128, 128, 128, 255},
	91: {255, 0, 0, 255},
	92: {0, 255, 0, 255},
	93: {255, 255, 0, 255},
	94: {0, 0, 255, 255},
	95: {255, 0, 255, 255},
	96: {0, 255, 255, 255},
	97: {255, 255, 255, 255},
}

// ParseColor interprets s as either a "#rrggbb" hex colour or an ANSI SGR
// colour code (30-37, 90-97).
func ParseColor(s string) (color.RGBA, error) {
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 6 {
			return color.RGBA{}, fmt.Errorf("qrgen: colour %q is not #rrggbb", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("qrgen: colour %q is not #rrggbb", s)
		}
		return color.RGBA{
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
			A: 255,
		}, nil
	}
	code, err := strconv.Atoi(s)
	if err == nil {
		if rgb, ok := ansiRGB[code]; ok {
			return rgb, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("qrgen: unknown colour %q", s)
}
