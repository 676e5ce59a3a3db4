package blit

import (
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/blit/fix"
	"github.com/gogpu/blit/internal/blitter"
)

// Blit draws s at (x, y), anchored as set by SetAlign. Pixels equal to the
// surface's color key are skipped.
func (c *Context) Blit(s *Surface, x, y int) {
	if c.color.Invisible() {
		return
	}

	x -= c.align.x.offset(s.width)
	y -= c.align.y.offset(s.height)

	src := s.source(c.logger())
	dst := c.dest()
	params := c.color.Params()

	blitter.Blit(&dst, &src, x, y, c.color.Mode(), c.color.BlitFill(), &params)
	c.target.dirty = true
}

// BlitEx draws s scaled by scale and rotated counter-clockwise by angle,
// in fix.AnglesNum units per turn. The pivot, relative to the surface
// center with -fix.One and fix.One at the edges, lands on (x, y) and is
// the center of rotation.
func (c *Context) BlitEx(s *Surface, x, y int, scale fix.Fix, angle int, pivotX, pivotY fix.Fix) {
	if c.color.Invisible() {
		return
	}

	src := s.source(c.logger())
	dst := c.dest()
	params := c.color.Params()
	t := blitter.Transform{Scale: scale, Angle: angle, PivotX: pivotX, PivotY: pivotY}

	c.scanner.BlitEx(&dst, &src, x, y, t, c.color.Mode(), c.color.BlitFill(), &params)
	c.target.dirty = true
}

// BlitExAt is BlitEx about the surface center, at a 26.6 fixed-point
// position such as the ones golang.org/x/image/font reports. The position
// is rounded down to whole pixels.
func (c *Context) BlitExAt(s *Surface, at fixed.Point26_6, scale fix.Fix, angle int) {
	v := fix.FromPoint26_6(at)
	c.BlitEx(s, v.X.Int(), v.Y.Int(), scale, angle, 0, 0)
}

// BlitFrame draws frame i of sp like Blit.
func (c *Context) BlitFrame(sp *Sprite, i, x, y int) {
	c.Blit(sp.Frame(i), x, y)
}

// BlitFrameEx draws frame i of sp like BlitEx.
func (c *Context) BlitFrameEx(sp *Sprite, i, x, y int, scale fix.Fix, angle int, pivotX, pivotY fix.Fix) {
	c.BlitEx(sp.Frame(i), x, y, scale, angle, pivotX, pivotY)
}
