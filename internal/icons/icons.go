// Package icons renders the PWA home screen icons and iOS splash screens.
package icons

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/image/draw"
)

// BaseSize is the side of the icon every other size is scaled from.
const BaseSize = 512

// IconSizes are the square icon sides written by Generate.
var IconSizes = []int{72, 96, 128, 144, 152, 167, 180, 192, 384, 512}

// SplashSizes are the splash screen dimensions written by Generate.
var SplashSizes = []image.Point{
	{X: 640, Y: 1136},  // iPhone 5/SE
	{X: 750, Y: 1334},  // iPhone 6/7/8
	{X: 1242, Y: 2208}, // iPhone 6+/7+/8+
	{X: 1125, Y: 2436}, // iPhone X/XS
}

var (
	iconBackground   = color.RGBA{R: 76, G: 175, B: 80, A: 255} // #4CAF50
	splashBackground = color.RGBA{R: 26, G: 26, B: 26, A: 255} // #1a1a1a
	glyphBody        = color.RGBA{R: 205, G: 220, B: 57, A: 255}
	glyphEye         = color.RGBA{R: 26, G: 26, B: 26, A: 255}
	glyphTongue      = color.RGBA{R: 244, G: 67, B: 54, A: 255}
)


// splashScale is the glyph size relative to the shorter splash side.
const splashScale = 0.3

// Base renders the full size icon: the snake glyph on a green square.
func Base() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, BaseSize, BaseSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(iconBackground), image.Point{}, draw.Src)

	drawGlyph(img, glyphRect())
	return img
}

// glyphRect is the centered square covering three fifths of the base icon.
func glyphRect() image.Rectangle {
	side := BaseSize * 3 / 5
	off := (BaseSize - side) / 2
	return image.Rect(off, off, off+side, off+side)
}

// Icon scales src to a size x size square.
func Icon(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Splash renders a splash screen with the glyph centered.
func Splash(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(splashBackground), image.Point{}, draw.Src)

	glyph := image.NewRGBA(image.Rect(0, 0, BaseSize, BaseSize))
	drawGlyph(glyph, glyph.Bounds())

	side := int(float64(min(width, height)) * splashScale)
	x := (width - side) / 2
	y := (height - side) / 2
	draw.CatmullRom.Scale(img, image.Rect(x, y, x+side, y+side), glyph, glyph.Bounds(), draw.Over, nil)
	return img
}

// drawGlyph paints a coiled snake inside r.
func drawGlyph(img *image.RGBA, r image.Rectangle) {
	w := float64(r.Dx())
	h := float64(r.Dy())
	ox := float64(r.Min.X)
	oy := float64(r.Min.Y)
	radius := w * 0.09

	// Body: discs along one period of a sine wave
	const steps = 96
	var hx, hy float64
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps
		hx = ox + w*(0.12+0.7*t)
		hy = oy + h*(0.5+0.25*math.Sin(t*2*math.Pi))
		fillCircle(img, hx, hy, radius, glyphBody)
	}

	// Head, eye and tongue at the end of the body
	fillCircle(img, hx, hy, radius*1.35, glyphBody)
	fillCircle(img, hx+radius*0.35, hy-radius*0.45, radius*0.28, glyphEye)
	tongue := image.Rect(
		int(hx+radius*1.2), int(hy-radius*0.1),
		int(hx+radius*1.9), int(hy+radius*0.15),
	)
	draw.Draw(img, tongue.Intersect(r), image.NewUniform(glyphTongue), image.Point{}, draw.Src)
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.RGBA) {
	bounds := image.Rect(int(cx-r), int(cy-r), int(cx+r)+1, int(cy+r)+1).Intersect(img.Bounds())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// Generate writes every icon and splash screen into dir and returns the
// written paths.
func Generate(dir string, logger *log.Logger) ([]string, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("icons: create %s: %w", dir, err)
	}

	var written []string
	write := func(name string, img image.Image) error {
		path := filepath.Join(dir, name)
		if err := writePNG(path, img); err != nil {
			return err
		}
		logger.Info("generated", "file", name)
		written = append(written, path)
		return nil
	}

	base := Base()
	for _, size := range IconSizes {
		if err := write(fmt.Sprintf("icon-%dx%d.png", size, size), Icon(base, size)); err != nil {
			return written, err
		}
	}
	for _, s := range SplashSizes {
		if err := write(fmt.Sprintf("splash-%dx%d.png", s.X, s.Y), Splash(s.X, s.Y)); err != nil {
			return written, err
		}
	}
	return written, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("icons: %w", err)
	}
	if err := Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("icons: encode %s: %w", path, err)
	}
	return f.Close()
}
