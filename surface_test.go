package blit

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/draw"

	"github.com/gogpu/blit/pixel"
)

func TestNewSurface(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr error
	}{
		{"valid", 3, 2, nil},
		{"zero width", 0, 2, ErrInvalidDimensions},
		{"negative height", 3, -1, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSurface(tt.w, tt.h)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if s.Width() != tt.w || s.Height() != tt.h || len(s.Pix()) != tt.w*tt.h || !s.Owned() {
				t.Errorf("surface = %dx%d, %d pixels, owned %v", s.Width(), s.Height(), len(s.Pix()), s.Owned())
			}
		})
	}
}

func TestNewSurfaceFrom(t *testing.T) {
	buf := make([]pixel.Pixel, 12)

	s, err := NewSurfaceFrom(buf, 4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if s.Owned() {
		t.Error("aliased surface reports Owned")
	}

	s.SetPixel(1, 1, white)
	if buf[5] != white {
		t.Error("surface does not alias the caller's storage")
	}

	if _, err := NewSurfaceFrom(buf, 4, 4); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("short buffer err = %v, want ErrDataTooSmall", err)
	}
}

func TestSurfacePixelAccess(t *testing.T) {
	s, _ := NewSurface(3, 3)
	s.SetPixel(2, 1, c1)
	s.SetPixel(-1, 0, c1)
	s.SetPixel(3, 0, c1)

	if got := s.PixelAt(2, 1); got != c1 {
		t.Errorf("PixelAt = %#x, want %#x", got, c1)
	}
	if got := s.PixelAt(5, 5); got != 0 {
		t.Errorf("PixelAt outside = %#x, want 0", got)
	}

	clone := s.Clone()
	clone.SetPixel(0, 0, c2)
	if s.PixelAt(0, 0) != 0 {
		t.Error("Clone shares storage")
	}
}

func TestColorKey(t *testing.T) {
	s, _ := NewSurface(2, 1)
	if _, ok := s.ColorKey(); ok {
		t.Error("new surface has a color key")
	}
	if s.Transparent() {
		t.Error("surface without a key is transparent")
	}

	s.SetColorKey(0)
	if k, ok := s.ColorKey(); !ok || k != 0 {
		t.Errorf("ColorKey = %#x, %v", k, ok)
	}
	if !s.Transparent() {
		t.Error("black surface keyed on black is not transparent")
	}

	s.ClearColorKey()
	if s.Transparent() {
		t.Error("surface is transparent after ClearColorKey")
	}
}

func TestSurfaceIsImage(t *testing.T) {
	s, _ := NewSurface(4, 4)

	var img draw.Image = s
	if got, want := img.Bounds(), image.Rect(0, 0, 4, 4); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}

	draw.Draw(img, image.Rect(1, 1, 3, 3), image.NewUniform(color.NRGBA{R: 255, A: 255}), image.Point{}, draw.Src)

	red := pixel.FromRGB(255, 0, 0)
	if got := s.PixelAt(1, 2); got != red {
		t.Errorf("drawn pixel = %#x, want %#x", got, red)
	}
	if got := s.PixelAt(0, 0); got != 0 {
		t.Errorf("pixel outside the drawn box = %#x", got)
	}

	r, g, b, a := s.At(2, 2).RGBA()
	wr, wg, wb, wa := red.RGBA()
	if r != wr || g != wg || b != wb || a != wa {
		t.Errorf("At = (%#x, %#x, %#x, %#x)", r, g, b, a)
	}
}

func TestSurfaceFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 8, 7))
	src.SetNRGBA(5, 5, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(6, 5, color.NRGBA{G: 255, A: 128})
	// (7, 5) and the second row stay fully transparent.

	s, err := SurfaceFromImage(src)
	if err != nil {
		t.Fatal(err)
	}
	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", s.Width(), s.Height())
	}

	tests := []struct {
		x, y int
		want pixel.Pixel
	}{
		{0, 0, pixel.FromRGB(255, 0, 0)},
		{1, 0, pixel.FromRGB(0, 255, 0)},
		{2, 0, pixel.DefaultKey},
		{0, 1, pixel.DefaultKey},
	}
	for _, tt := range tests {
		if got := s.PixelAt(tt.x, tt.y); got != tt.want {
			t.Errorf("(%d, %d) = %#x, want %#x", tt.x, tt.y, got, tt.want)
		}
	}

	if !s.Transparent() {
		t.Error("converted image with transparent pixels has no span table")
	}

	if _, err := SurfaceFromImage(image.NewNRGBA(image.Rectangle{})); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("empty image err = %v", err)
	}
}

func TestScaledFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{B: 255, A: 255})

	s, err := ScaledFromImage(src, 4, 2)
	if err != nil {
		t.Fatal(err)
	}

	red, blue := pixel.FromRGB(255, 0, 0), pixel.FromRGB(0, 0, 255)
	for y := range 2 {
		for x := range 4 {
			want := red
			if x >= 2 {
				want = blue
			}
			if got := s.PixelAt(x, y); got != want {
				t.Errorf("(%d, %d) = %#x, want %#x", x, y, got, want)
			}
		}
	}

	if _, err := ScaledFromImage(src, 0, 4); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero width err = %v", err)
	}
}
