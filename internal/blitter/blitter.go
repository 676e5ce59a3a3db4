// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package blitter copies sprite images into a pixel buffer, either
// straight at an integer position or rotated and scaled.
//
// Straight blits pick one walker per (mode, fill, keyed, clipped)
// combination from a table built at init. Keyed sprites carry a span table
// and the walkers skip their transparent runs without comparing pixels.
package blitter

import (
	"github.com/gogpu/blit/internal/blend"
	"github.com/gogpu/blit/internal/clip"
	"github.com/gogpu/blit/internal/span"
	"github.com/gogpu/blit/pixel"
)

// Dest is the buffer a blit writes to.
type Dest struct {
	Pix   []pixel.Pixel
	Width int
	Clip  clip.Rect // must lie inside the buffer
}

// Source is the sprite a blit reads from.
type Source struct {
	Pix    []pixel.Pixel
	Width  int
	Height int
	Spans  *span.Table // nil when the sprite has no transparent pixel
	Key    pixel.Pixel
}

// Func draws s with its top-left corner at (x, y).
type Func func(d *Dest, s *Source, x, y int, p *blend.Params)

type walker func(d *Dest, s *Source, x, y int, ops blend.Ops, p *blend.Params)

var funcs [blend.NumModes][blend.NumFills][2][2]Func

func init() {
	walkers := [2][2]walker{
		{block, blockClip},
		{keyed, keyedClip},
	}

	for m := range blend.NumModes {
		for f := range blend.NumFills {
			ops := blend.Lookup(m, f)
			for k := range 2 {
				for c := range 2 {
					w := walkers[k][c]
					funcs[m][f][k][c] = func(d *Dest, s *Source, x, y int, p *blend.Params) {
						w(d, s, x, y, ops, p)
					}
				}
			}
		}
	}
}

// Lookup returns the walker for one combination. The clipped walkers work
// for any position; the unclipped ones require the sprite to lie inside
// the clip rectangle.
func Lookup(mode blend.Mode, fill blend.Fill, keyed, clipped bool) Func {
	return funcs[mode][fill][b2i(keyed)][b2i(clipped)]
}

// Blit draws s with its top-left corner at (x, y).
func Blit(d *Dest, s *Source, x, y int, mode blend.Mode, fill blend.Fill, p *blend.Params) {
	if !d.Clip.Overlaps(x, y, s.Width, s.Height) {
		return
	}

	clipped := !d.Clip.Contains(x, y, s.Width, s.Height)
	Lookup(mode, fill, s.Spans != nil, clipped)(d, s, x, y, p)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
