package blit

// AlignX is the horizontal anchor of a straight blit.
type AlignX uint8

// Horizontal alignments. The blit position names the left edge, the
// center or the right edge of the surface.
const (
	AlignLeft AlignX = iota
	AlignCenter
	AlignRight
)

// AlignY is the vertical anchor of a straight blit.
type AlignY uint8

// Vertical alignments.
const (
	AlignTop AlignY = iota
	AlignMiddle
	AlignBottom
)

func (a AlignX) offset(w int) int {
	switch a {
	case AlignCenter:
		return w / 2
	case AlignRight:
		return w
	}
	return 0
}

func (a AlignY) offset(h int) int {
	switch a {
	case AlignMiddle:
		return h / 2
	case AlignBottom:
		return h
	}
	return 0
}

type alignment struct {
	x AlignX
	y AlignY
}

// SetAlign sets the anchor Blit positions refer to.
func (c *Context) SetAlign(x AlignX, y AlignY) {
	c.align = alignment{x, y}
}

// Align returns the current anchor.
func (c *Context) Align() (AlignX, AlignY) {
	return c.align.x, c.align.y
}

// PushAlign saves the current anchor.
func (c *Context) PushAlign() {
	c.aligns = append(c.aligns, c.align)
}

// PopAlign restores the anchor saved by the matching PushAlign.
func (c *Context) PopAlign() {
	if len(c.aligns) == 0 {
		c.unbalanced("PopAlign")
		return
	}

	last := len(c.aligns) - 1
	c.align = c.aligns[last]
	c.aligns = c.aligns[:last]
}
