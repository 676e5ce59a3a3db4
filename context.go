// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blit

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/blit/internal/blend"
	"github.com/gogpu/blit/internal/blitter"
	"github.com/gogpu/blit/internal/clip"
)

// Context is the drawing state of one renderer: the render target with its
// clip stack, the color state and the blit alignment, each with a stack
// for nested scopes.
//
// A Context is not safe for concurrent use.
type Context struct {
	target  *Surface
	clips   *clip.Stack
	targets []savedTarget

	color      blend.State
	colors     []blend.State
	resetColor ColorState

	align  alignment
	aligns []alignment

	scanner *blitter.Scanner
	debug   bool
	log     *slog.Logger
}

type savedTarget struct {
	surface *Surface
	clips   *clip.Stack
}

// NewContext creates a Context drawing into target.
func NewContext(target *Surface, opts ...Option) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Context{
		target:     target,
		clips:      clip.NewStack(bounds(target)),
		resetColor: o.color,
		align:      alignment{o.alignX, o.alignY},
		scanner:    blitter.NewScanner(target.width, target.height),
		debug:      o.debug,
		log:        o.logger,
	}
	c.color = o.color.state()

	return c
}

func bounds(s *Surface) clip.Rect {
	return clip.NewRect(0, 0, s.width, s.height)
}

func (c *Context) logger() *slog.Logger {
	if c.log != nil {
		return c.log
	}
	return Logger()
}

// unbalanced handles a pop without a matching push.
func (c *Context) unbalanced(op string) {
	if c.debug {
		panic(fmt.Errorf("%s: %w", op, ErrStackEmpty))
	}
	c.logger().Warn("blit: unbalanced pop", "op", op)
}

// Target returns the current render target.
func (c *Context) Target() *Surface {
	return c.target
}

// PushTarget redirects drawing into s until the matching PopTarget. The
// clip rectangle is reset to the whole of s; the previous clip stack is
// restored by PopTarget.
func (c *Context) PushTarget(s *Surface) {
	c.targets = append(c.targets, savedTarget{c.target, c.clips})
	c.target = s
	c.clips = clip.NewStack(bounds(s))

	c.logger().Debug("blit: push target", "width", s.width, "height", s.height, "depth", len(c.targets))
}

// PopTarget commits the span table of the surface drawn into and restores
// the previous target and its clip stack.
func (c *Context) PopTarget() {
	if len(c.targets) == 0 {
		c.unbalanced("PopTarget")
		return
	}

	c.target.commit(c.logger())

	last := len(c.targets) - 1
	c.target = c.targets[last].surface
	c.clips = c.targets[last].clips
	c.targets = c.targets[:last]

	c.logger().Debug("blit: pop target", "depth", len(c.targets))
}

// PushClip saves the clip rectangle and narrows it to its intersection
// with the given box.
func (c *Context) PushClip(x, y, w, h int) {
	c.clips.Push(clip.NewRect(x, y, w, h))
}

// PopClip restores the clip rectangle saved by the matching PushClip.
func (c *Context) PopClip() {
	if !c.clips.Pop() {
		c.unbalanced("PopClip")
	}
}

// SetClip replaces the clip rectangle. The box must lie inside the render
// target; otherwise ErrClipOutside is returned and nothing changes.
func (c *Context) SetClip(x, y, w, h int) error {
	r := clip.NewRect(x, y, w, h)
	if !c.clips.Set(r) {
		return fmt.Errorf("set clip %v: %w", r.Image(), ErrClipOutside)
	}
	return nil
}

// ResetClip clips to the whole render target.
func (c *Context) ResetClip() {
	c.clips.Reset()
}

// Clip returns the clip rectangle.
func (c *Context) Clip() image.Rectangle {
	return c.clips.Bounds().Image()
}

// BoxOnClip reports whether any pixel of the box is inside the clip
// rectangle.
func (c *Context) BoxOnClip(x, y, w, h int) bool {
	return c.clips.Bounds().Overlaps(x, y, w, h)
}

// BoxInsideClip reports whether the whole box is inside the clip
// rectangle.
func (c *Context) BoxInsideClip(x, y, w, h int) bool {
	return c.clips.Bounds().Contains(x, y, w, h)
}

// BoxOnScreen reports whether any pixel of the box is on the render
// target.
func (c *Context) BoxOnScreen(x, y, w, h int) bool {
	return c.clips.Target().Overlaps(x, y, w, h)
}

// BoxInsideScreen reports whether the whole box is on the render target.
func (c *Context) BoxInsideScreen(x, y, w, h int) bool {
	return c.clips.Target().Contains(x, y, w, h)
}

func (c *Context) dest() blitter.Dest {
	return blitter.Dest{
		Pix:   c.target.pix,
		Width: c.target.width,
		Clip:  c.clips.Bounds(),
	}
}
