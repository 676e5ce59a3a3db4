package blit

import "github.com/gogpu/blit/internal/raster"

// painter returns a Painter for the current target, clip and color state,
// or nil when nothing drawn would be visible.
func (c *Context) painter() *raster.Painter {
	if c.color.Invisible() {
		return nil
	}

	c.target.dirty = true
	return raster.NewPainter(c.target.pix, c.target.width, c.clips.Bounds(), c.color.DrawMode(), c.color.Params())
}

// DrawPixel draws one pixel in the base color.
func (c *Context) DrawPixel(x, y int) {
	if p := c.painter(); p != nil {
		p.Pixel(x, y)
	}
}

// DrawLine draws a one pixel wide line, both endpoints included.
func (c *Context) DrawLine(x1, y1, x2, y2 int) {
	if p := c.painter(); p != nil {
		p.Line(x1, y1, x2, y2)
	}
}

// DrawHLine draws row y from x1 to x2 inclusive.
func (c *Context) DrawHLine(x1, x2, y int) {
	if p := c.painter(); p != nil {
		p.HLine(x1, x2, y)
	}
}

// DrawVLine draws column x from y1 to y2 inclusive.
func (c *Context) DrawVLine(x, y1, y2 int) {
	if p := c.painter(); p != nil {
		p.VLine(x, y1, y2)
	}
}

// DrawRectangle draws a w×h rectangle, filled or outlined as selected by
// SetFillDraw.
func (c *Context) DrawRectangle(x, y, w, h int) {
	if p := c.painter(); p != nil {
		p.Rect(x, y, w, h, c.color.FillDraw())
	}
}

// DrawRectangleFilled draws a filled w×h rectangle.
func (c *Context) DrawRectangleFilled(x, y, w, h int) {
	if p := c.painter(); p != nil {
		p.Rect(x, y, w, h, true)
	}
}

// DrawRectangleOutline draws the one pixel border of a w×h rectangle.
func (c *Context) DrawRectangleOutline(x, y, w, h int) {
	if p := c.painter(); p != nil {
		p.Rect(x, y, w, h, false)
	}
}

// DrawCircle draws a circle covering x-r..x+r-1 and y-r..y+r-1, filled
// or outlined as selected by SetFillDraw.
func (c *Context) DrawCircle(x, y, r int) {
	if p := c.painter(); p != nil {
		p.Circle(x, y, r, c.color.FillDraw())
	}
}

// DrawCircleFilled draws a filled circle.
func (c *Context) DrawCircleFilled(x, y, r int) {
	if p := c.painter(); p != nil {
		p.Circle(x, y, r, true)
	}
}

// DrawCircleOutline draws the one pixel outline of a circle.
func (c *Context) DrawCircleOutline(x, y, r int) {
	if p := c.painter(); p != nil {
		p.Circle(x, y, r, false)
	}
}

// Fill draws over the whole clip rectangle with the color state.
func (c *Context) Fill() {
	if p := c.painter(); p != nil {
		r := c.clips.Bounds()
		p.Rect(r.X, r.Y, r.W(), r.H(), true)
	}
}

// Clear sets every pixel of the render target to black, ignoring the clip
// rectangle and the color state.
func (c *Context) Clear() {
	c.target.Fill(0)
}
