package main

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/lixenwraith/rooftop-fighter/level"
	"github.com/lixenwraith/rooftop-fighter/parameter"
)

func defaultScript(t *testing.T) *level.Script {
	t.Helper()
	s, err := level.Default()
	if err != nil {
		t.Fatalf("default level: %v", err)
	}
	return s
}

func sameRGB(a, b color.Color) bool {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	return ar>>8 == br>>8 && ag>>8 == bg>>8 && ab>>8 == bb>>8
}

func TestRenderMap(t *testing.T) {
	s := defaultScript(t)
	w, h := bounds(s)
	const scale = 2.0

	dc := renderMap(s, scale)
	if dc.Width() != int(w*scale) || dc.Height() != int(h*scale) {
		t.Fatalf("image = %dx%d, want %dx%d", dc.Width(), dc.Height(), int(w*scale), int(h*scale))
	}

	// Inside the first building, just above street level
	roof := s.Platforms[0]
	x := int((roof.XMin + roof.XMax) / 2 * scale)
	y := int((h - 1) * scale)
	if got := dc.Image().At(x, y); !sameRGB(got, rgb(parameter.ColorRooftop)) {
		t.Errorf("building pixel = %v, want rooftop color", got)
	}

	// Open sky well above every platform
	if got := dc.Image().At(x, 1); !sameRGB(got, rgb(0x141428)) {
		t.Errorf("sky pixel = %v, want backdrop", got)
	}
}

func TestBoundsCoversGeometry(t *testing.T) {
	s := defaultScript(t)
	w, h := bounds(s)
	for _, p := range s.Platforms {
		if p.XMax > w || p.Height > h {
			t.Errorf("platform %s outside bounds %vx%v", p.Name, w, h)
		}
	}
	if s.Wall.X+s.Wall.Thickness > w {
		t.Errorf("wall outside bounds width %v", w)
	}
}

func TestThumbPath(t *testing.T) {
	tests := []struct{ in, want string }{
		{"level.png", "level.thumb.png"},
		{"out/map", "out/map.thumb.png"},
		{"a.b/map", "a.b/map.thumb.png"},
		{"a.b/map.png", "a.b/map.thumb.png"},
	}
	for _, tt := range tests {
		if got := thumbPath(tt.in); got != tt.want {
			t.Errorf("thumbPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRunWritesImages(t *testing.T) {
	out := filepath.Join(t.TempDir(), "level.png")
	if err := run("", out, 2, 100); err != nil {
		t.Fatalf("run: %v", err)
	}

	if _, err := imaging.Open(out); err != nil {
		t.Fatalf("open map: %v", err)
	}
	thumb, err := imaging.Open(thumbPath(out))
	if err != nil {
		t.Fatalf("open thumbnail: %v", err)
	}
	if thumb.Bounds().Dx() != 100 {
		t.Errorf("thumbnail width = %d, want 100", thumb.Bounds().Dx())
	}

	if err := run("", out, 0, 0); err == nil {
		t.Error("zero scale accepted")
	}
}
