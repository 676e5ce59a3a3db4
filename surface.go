// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blit

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/gogpu/blit/internal/blitter"
	"github.com/gogpu/blit/internal/span"
	"github.com/gogpu/blit/pixel"
)

// Surface is a rectangular buffer of packed pixels. It is both a render
// target and a sprite image.
//
// A Surface with a color key treats pixels equal to the key as
// transparent when blitted. Its span table is rebuilt lazily: mutations
// made through this package mark it stale, and the next blit or Commit
// rebuilds it.
type Surface struct {
	pix    []pixel.Pixel
	width  int
	height int
	owned  bool

	key   pixel.Pixel
	keyed bool

	spans *span.Table // nil when no key pixel is present
	spare *span.Table // buffers kept for the next rebuild
	dirty bool
}

// NewSurface allocates a black w×h surface without a color key.
func NewSurface(w, h int) (*Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}

	return &Surface{
		pix:    make([]pixel.Pixel, w*h),
		width:  w,
		height: h,
		owned:  true,
	}, nil
}

// NewSurfaceFrom wraps existing pixel storage, such as a framebuffer,
// without copying. Rows are w pixels apart.
func NewSurfaceFrom(pix []pixel.Pixel, w, h int) (*Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	if len(pix) < w*h {
		return nil, fmt.Errorf("%w: need %d pixels, got %d", ErrDataTooSmall, w*h, len(pix))
	}

	return &Surface{
		pix:    pix[:w*h],
		width:  w,
		height: h,
	}, nil
}

// Width returns the width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the height in pixels.
func (s *Surface) Height() int { return s.height }

// Pix returns the pixel storage, row by row. Call Invalidate after
// writing to it.
func (s *Surface) Pix() []pixel.Pixel { return s.pix }

// Owned reports whether the storage was allocated by NewSurface rather
// than supplied by the caller.
func (s *Surface) Owned() bool { return s.owned }

// PixelAt returns the pixel at (x, y), or 0 outside the surface.
func (s *Surface) PixelAt(x, y int) pixel.Pixel {
	if !s.inside(x, y) {
		return 0
	}
	return s.pix[y*s.width+x]
}

// SetPixel stores p at (x, y). Coordinates outside the surface are
// ignored.
func (s *Surface) SetPixel(x, y int, p pixel.Pixel) {
	if !s.inside(x, y) {
		return
	}
	s.pix[y*s.width+x] = p
	s.dirty = true
}

func (s *Surface) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.width && y < s.height
}

// Fill sets every pixel to p.
func (s *Surface) Fill(p pixel.Pixel) {
	for i := range s.pix {
		s.pix[i] = p
	}
	s.dirty = true
}

// Clone returns an owned copy with the same pixels and color key.
func (s *Surface) Clone() *Surface {
	return &Surface{
		pix:    slices.Clone(s.pix),
		width:  s.width,
		height: s.height,
		owned:  true,
		key:    s.key,
		keyed:  s.keyed,
		dirty:  true,
	}
}

// SetColorKey makes pixels equal to key transparent.
func (s *Surface) SetColorKey(key pixel.Pixel) {
	s.key = key
	s.keyed = true
	s.dirty = true
}

// ClearColorKey makes every pixel opaque.
func (s *Surface) ClearColorKey() {
	s.keyed = false
	s.dirty = true
}

// ColorKey returns the color key and whether one is set.
func (s *Surface) ColorKey() (pixel.Pixel, bool) {
	return s.key, s.keyed
}

// Invalidate marks the span table stale after writes through Pix.
func (s *Surface) Invalidate() {
	s.dirty = true
}

// Commit rebuilds the span table if it is stale. Blits commit on their
// own; calling Commit ahead of time moves the work out of the frame.
// Rebuilds are logged through the package logger; those triggered by a
// Context go to that Context's logger.
func (s *Surface) Commit() {
	s.commit(Logger())
}

func (s *Surface) commit(log *slog.Logger) {
	if !s.dirty {
		return
	}
	s.dirty = false

	if !s.keyed {
		s.spans = nil
		return
	}

	t := span.Rebuild(s.spare, s.pix, s.width, s.height, s.key)
	if t != nil {
		s.spare = t
	}
	s.spans = t

	log.Debug("blit: span table rebuilt",
		"width", s.width, "height", s.height, "transparent", t != nil)
}

// Transparent reports whether the surface has a color key and at least
// one pixel equal to it. It commits pending changes.
func (s *Surface) Transparent() bool {
	s.Commit()
	return s.spans != nil
}

func (s *Surface) source(log *slog.Logger) blitter.Source {
	s.commit(log)
	return blitter.Source{
		Pix:    s.pix,
		Width:  s.width,
		Height: s.height,
		Spans:  s.spans,
		Key:    s.key,
	}
}
