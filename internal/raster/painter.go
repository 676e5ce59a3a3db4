// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster draws pixels, lines, rectangles and circles into a packed
// pixel buffer.
//
// Every exported Painter method first tests its bounding box against the
// clip rectangle: boxes entirely outside are dropped, boxes entirely inside
// run the unclipped inner loop, and everything else runs a loop that
// recomputes the visible part. Pixels are written through the single blend
// inner loop the Painter was created with.
package raster

import (
	"github.com/gogpu/blit/internal/blend"
	"github.com/gogpu/blit/internal/clip"
	"github.com/gogpu/blit/pixel"
)

// Painter draws primitives into one buffer with one blend configuration.
type Painter struct {
	pix    []pixel.Pixel
	width  int
	clip   clip.Rect
	ops    blend.Ops
	params blend.Params
}

// NewPainter returns a Painter over pix, a buffer width pixels wide, which
// writes with the Flat inner loop of mode. The clip rectangle must lie
// inside the buffer.
//
// AlphaMask has no source to read coverage from and paints as Alpha.
func NewPainter(pix []pixel.Pixel, width int, c clip.Rect, mode blend.Mode, params blend.Params) *Painter {
	if mode == blend.AlphaMask {
		mode = blend.Alpha
	}

	return &Painter{
		pix:    pix,
		width:  width,
		clip:   c,
		ops:    blend.Lookup(mode, blend.Flat),
		params: params,
	}
}

// Clip returns the clip rectangle.
func (p *Painter) Clip() clip.Rect {
	return p.clip
}

// Pixel draws one pixel.
func (p *Painter) Pixel(x, y int) {
	if p.clip.Contains(x, y, 1, 1) {
		p.point(x, y)
	}
}

// HLine draws the pixels x1..x2 of row y.
func (p *Painter) HLine(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if !p.clip.Overlaps(x1, y, x2-x1+1, 1) {
		return
	}

	p.hline(max(x1, p.clip.X), min(x2, p.clip.X2-1), y)
}

// VLine draws the pixels y1..y2 of column x.
func (p *Painter) VLine(x, y1, y2 int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	if !p.clip.Overlaps(x, y1, 1, y2-y1+1) {
		return
	}

	p.vline(x, max(y1, p.clip.Y), min(y2, p.clip.Y2-1))
}

func (p *Painter) point(x, y int) {
	p.ops.Point(&p.pix[y*p.width+x], p.params.Color, &p.params)
}

func (p *Painter) hline(x1, x2, y int) {
	i := y*p.width + x1
	p.ops.Span(p.pix[i:i+x2-x1+1], nil, &p.params)
}

func (p *Painter) vline(x, y1, y2 int) {
	plot := p.ops.Point
	c := p.params.Color

	for i := y1*p.width + x; y1 <= y2; y1++ {
		plot(&p.pix[i], c, &p.params)
		i += p.width
	}
}
