package icons

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestBaseIcon(t *testing.T) {
	img := Base()
	if b := img.Bounds(); b.Dx() != BaseSize || b.Dy() != BaseSize {
		t.Fatalf("bounds = %v", b)
	}
	if got := img.RGBAAt(0, 0); got != iconBackground {
		t.Errorf("corner = %v, want background", got)
	}

	// The glyph must cover part of the center band.
	found := false
	for x := 0; x < BaseSize && !found; x++ {
		found = img.RGBAAt(x, BaseSize/2) == glyphBody
	}
	if !found {
		t.Error("no glyph pixels on the middle row")
	}
}

func TestGlyphRect(t *testing.T) {
	want := image.Rect(102, 102, 409, 409)
	if got := glyphRect(); got != want {
		t.Errorf("glyphRect() = %v, want %v", got, want)
	}

	img := Base()
	if got := img.RGBAAt(want.Min.X-1, BaseSize/2); got != iconBackground {
		t.Errorf("pixel left of the glyph = %v, want background", got)
	}
}

func TestIconScaling(t *testing.T) {
	for _, size := range IconSizes {
		img := Icon(Base(), size)
		if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
			t.Errorf("Icon(%d) bounds = %v", size, b)
		}
	}
}

func TestSplash(t *testing.T) {
	img := Splash(640, 1136)
	if b := img.Bounds(); b.Dx() != 640 || b.Dy() != 1136 {
		t.Fatalf("bounds = %v", b)
	}
	if got := img.RGBAAt(5, 5); got != splashBackground {
		t.Errorf("corner = %v, want splash background", got)
	}
}

func TestGenerate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "icons")

	paths, err := Generate(dir, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if want := len(IconSizes) + len(SplashSizes); len(paths) != want {
		t.Fatalf("wrote %d files, want %d", len(paths), want)
	}

	data, err := os.ReadFile(filepath.Join(dir, "icon-192x192.png"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 192 || cfg.Height != 192 {
		t.Errorf("icon-192x192.png is %dx%d", cfg.Width, cfg.Height)
	}

	if _, err := os.Stat(filepath.Join(dir, "splash-1125x2436.png")); err != nil {
		t.Errorf("splash missing: %v", err)
	}
}
