package blit

import (
	"github.com/gogpu/blit/internal/blend"
	"github.com/gogpu/blit/pixel"
)

// Blend is a blend mode: the rule combining a drawn pixel with the pixel
// already in the render target.
type Blend = blend.Mode

// Blend modes.
const (
	BlendPlain     = blend.Plain     // replace
	BlendAlpha     = blend.Alpha     // mix at the current alpha
	BlendAlpha25   = blend.Alpha25   // mix at a quarter
	BlendAlpha50   = blend.Alpha50   // mix at a half
	BlendAlpha75   = blend.Alpha75   // mix at three quarters
	BlendAlphaMask = blend.AlphaMask // mix at alpha scaled by the source's blue channel
	BlendInverse   = blend.Inverse   // invert the destination
	BlendMod       = blend.Mod       // multiply
	BlendAdd       = blend.Add       // saturating add
)

// MaxAlpha is fully opaque.
const MaxAlpha = blend.MaxAlpha

// ColorState is a snapshot of the color state.
type ColorState struct {
	Blend    Blend
	Color    pixel.RGB // base color, 0..255 per channel
	Alpha    int       // 0..MaxAlpha
	FillBlit bool      // blits paint Color through the sprite shape
	FillDraw bool      // rectangles and circles are filled
}

// DefaultColorState returns the color state of a new Context: plain
// blending, black, fully opaque, sampled blits and filled shapes.
func DefaultColorState() ColorState {
	return ColorState{
		Blend:    BlendPlain,
		Alpha:    MaxAlpha,
		FillDraw: true,
	}
}

func (cs ColorState) state() blend.State {
	s := blend.NewState()
	s.SetMode(cs.Blend)
	s.SetRGBA(cs.Color.R, cs.Color.G, cs.Color.B, cs.Alpha)
	s.SetFillBlit(cs.FillBlit)
	s.SetFillDraw(cs.FillDraw)
	return s
}

// ColorState returns the current color state. Blend is the mode last set,
// even when an equivalent faster mode runs.
func (c *Context) ColorState() ColorState {
	return ColorState{
		Blend:    c.color.Canonical(),
		Color:    c.color.RGB(),
		Alpha:    c.color.Alpha(),
		FillBlit: c.color.FillBlit(),
		FillDraw: c.color.FillDraw(),
	}
}

// PushColor saves the color state.
func (c *Context) PushColor() {
	c.colors = append(c.colors, c.color)
}

// PopColor restores the color state saved by the matching PushColor.
func (c *Context) PopColor() {
	if len(c.colors) == 0 {
		c.unbalanced("PopColor")
		return
	}

	last := len(c.colors) - 1
	c.color = c.colors[last]
	c.colors = c.colors[:last]
}

// ResetColor restores the color state the Context was created with.
// Saved states are kept.
func (c *Context) ResetColor() {
	c.color = c.resetColor.state()
}

// SetBlend sets the blend mode. Unknown modes select BlendPlain.
func (c *Context) SetBlend(b Blend) { c.color.SetMode(b) }

// SetAlpha sets the alpha level, clamped to 0..MaxAlpha.
func (c *Context) SetAlpha(a int) { c.color.SetAlpha(a) }

// SetColorRGB sets the base color from 8-bit channels.
func (c *Context) SetColorRGB(r, g, b int) { c.color.SetRGB(r, g, b) }

// SetColorRGBA sets the base color and the alpha level.
func (c *Context) SetColorRGBA(r, g, b, a int) { c.color.SetRGBA(r, g, b, a) }

// SetColorHex sets the base color from 0xRRGGBB.
func (c *Context) SetColorHex(hex uint32) { c.color.SetHex(hex) }

// SetColorPixel sets the base color from a packed pixel.
func (c *Context) SetColorPixel(p pixel.Pixel) { c.color.SetPixel(p) }

// SetFillBlit selects whether blits paint the base color through the
// sprite's shape (true) or copy its pixels (false).
func (c *Context) SetFillBlit(fill bool) { c.color.SetFillBlit(fill) }

// SetFillDraw selects filled (true) or outlined (false) rectangles and
// circles.
func (c *Context) SetFillDraw(fill bool) { c.color.SetFillDraw(fill) }

// Blend returns the blend mode last set.
func (c *Context) Blend() Blend { return c.color.Canonical() }

// Alpha returns the alpha level.
func (c *Context) Alpha() int { return c.color.Alpha() }

// Color returns the base color as a packed pixel.
func (c *Context) Color() pixel.Pixel { return c.color.Color() }
