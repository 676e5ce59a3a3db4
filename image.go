package blit

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/blit/pixel"
)

// ColorModel implements image.Image.
func (s *Surface) ColorModel() color.Model { return pixel.Model }

// Bounds implements image.Image.
func (s *Surface) Bounds() image.Rectangle { return image.Rect(0, 0, s.width, s.height) }

// At implements image.Image.
func (s *Surface) At(x, y int) color.Color { return s.PixelAt(x, y) }

// Set implements draw.Image, so a Surface can be the destination of the
// image/draw and golang.org/x/image/draw operations. Alpha is discarded.
func (s *Surface) Set(x, y int, c color.Color) {
	s.SetPixel(x, y, pixel.FromColor(c))
}

// SurfaceFromImage converts img into a new surface keyed with
// pixel.DefaultKey. Fully transparent pixels become the key; all other
// pixels lose their alpha.
func SurfaceFromImage(img image.Image) (*Surface, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, b.Dx(), b.Dy())
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(dst, image.Point{}, img, b, draw.Src, nil)

	return fromNRGBA(dst)
}

// ScaledFromImage resamples img to w×h with nearest neighbor sampling,
// which keeps pixel art sharp, and converts it like SurfaceFromImage.
func ScaledFromImage(img image.Image, w, h int) (*Surface, error) {
	if w <= 0 || h <= 0 || img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	return fromNRGBA(dst)
}

func fromNRGBA(img *image.NRGBA) (*Surface, error) {
	w, h := img.Rect.Dx(), img.Rect.Dy()

	s, err := NewSurface(w, h)
	if err != nil {
		return nil, err
	}

	for y := range h {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := range w {
			c := row[x*4 : x*4+4 : x*4+4]
			if c[3] == 0 {
				s.pix[y*w+x] = pixel.DefaultKey
				continue
			}
			s.pix[y*w+x] = pixel.FromRGB(int(c[0]), int(c[1]), int(c[2]))
		}
	}

	s.SetColorKey(pixel.DefaultKey)
	return s, nil
}
