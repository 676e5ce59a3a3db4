package blend

import "github.com/gogpu/blit/pixel"

// State is the color state every draw and blit reads: blend mode, base
// color, alpha and the two fill flags.
//
// The mode a caller asked for is kept as the canonical mode. The effective
// mode may differ: Alpha at exactly a quarter, half, three quarters or full
// alpha runs as Alpha25, Alpha50, Alpha75 or Plain.
type State struct {
	mode      Mode
	canonical Mode
	rgb       pixel.RGB
	color     pixel.Pixel
	alpha     int
	fillBlit  bool
	fillDraw  bool
}

// NewState returns a State in its reset configuration.
func NewState() State {
	var s State
	s.Reset()
	return s
}

// Reset restores Plain blending, black, full alpha, sampled blits and
// filled shapes.
func (s *State) Reset() {
	s.SetMode(Plain)
	s.SetRGBA(0, 0, 0, MaxAlpha)
	s.fillBlit = false
	s.fillDraw = true
}

// SetMode sets the canonical blend mode.
func (s *State) SetMode(m Mode) {
	if !m.IsValid() {
		m = Plain
	}
	s.mode = m
	s.canonical = m
	s.optimize()
}

// SetAlpha sets alpha, clamped to 0..MaxAlpha.
func (s *State) SetAlpha(a int) {
	s.alpha = min(max(a, 0), MaxAlpha)
	s.optimize()
}

// SetRGB sets the base color. Only the low 8 bits of each channel are used.
func (s *State) SetRGB(r, g, b int) {
	s.rgb = pixel.RGB{R: r & 0xff, G: g & 0xff, B: b & 0xff}
	s.color = pixel.FromRGB(r, g, b)
}

// SetRGBA sets the base color and alpha together.
func (s *State) SetRGBA(r, g, b, a int) {
	s.SetRGB(r, g, b)
	s.SetAlpha(a)
}

// SetHex sets the base color from 0xRRGGBB.
func (s *State) SetHex(hex uint32) {
	s.SetRGB(int(hex>>16), int(hex>>8), int(hex))
}

// SetPixel sets the base color from a packed pixel.
func (s *State) SetPixel(p pixel.Pixel) {
	s.rgb = pixel.ToRGB(p)
	s.color = p
}

// SetFillBlit makes blits paint the base color through the sprite's shape
// instead of sampling its pixels.
func (s *State) SetFillBlit(fill bool) {
	s.fillBlit = fill
}

// SetFillDraw selects filled (true) or outline (false) rectangles and
// circles.
func (s *State) SetFillDraw(fill bool) {
	s.fillDraw = fill
}

func (s *State) optimize() {
	if s.canonical != Alpha {
		return
	}

	switch s.alpha {
	case MaxAlpha / 4:
		s.mode = Alpha25
	case MaxAlpha / 2:
		s.mode = Alpha50
	case MaxAlpha * 3 / 4:
		s.mode = Alpha75
	case MaxAlpha:
		s.mode = Plain
	default:
		s.mode = Alpha
	}
}

// Mode returns the effective blend mode.
func (s *State) Mode() Mode { return s.mode }

// Canonical returns the mode last passed to SetMode.
func (s *State) Canonical() Mode { return s.canonical }

// Alpha returns the alpha level, 0..MaxAlpha.
func (s *State) Alpha() int { return s.alpha }

// RGB returns the base color, unpacked.
func (s *State) RGB() pixel.RGB { return s.rgb }

// Color returns the base color, packed.
func (s *State) Color() pixel.Pixel { return s.color }

// FillBlit reports whether blits paint the base color.
func (s *State) FillBlit() bool { return s.fillBlit }

// FillDraw reports whether shapes are filled.
func (s *State) FillDraw() bool { return s.fillDraw }

// BlitFill returns the fill used by blits.
func (s *State) BlitFill() Fill {
	if s.fillBlit {
		return Flat
	}
	return Data
}

// DrawMode returns the mode used by primitives. Primitives have no source
// pixels to read coverage from, so AlphaMask draws as Alpha.
func (s *State) DrawMode() Mode {
	if s.mode == AlphaMask {
		return Alpha
	}
	return s.mode
}

// Invisible reports whether every write under this state would leave the
// destination unchanged.
func (s *State) Invisible() bool {
	return s.alpha == 0 && (s.mode == Alpha || s.mode == AlphaMask)
}

// Params captures the values the inner loops read.
func (s *State) Params() Params {
	return Params{Color: s.color, RGB: s.rgb, Alpha: s.alpha}
}
