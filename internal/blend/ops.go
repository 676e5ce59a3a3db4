// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blend

import "github.com/gogpu/blit/pixel"

// Params are the blend inputs captured once before an inner loop runs.
type Params struct {
	// Color is the base color, packed.
	Color pixel.Pixel
	// RGB is the base color, unpacked.
	RGB pixel.RGB
	// Alpha is 0..MaxAlpha.
	Alpha int
}

// PointFunc writes one pixel. Flat functions ignore src except under
// AlphaMask, which reads its coverage from src.
type PointFunc func(dst *pixel.Pixel, src pixel.Pixel, p *Params)

// SpanFunc writes a run of pixels. For Data fills src has at least
// len(dst) pixels. Flat functions ignore src except under AlphaMask.
type SpanFunc func(dst, src []pixel.Pixel, p *Params)

// Ops is the pair of inner loops for one mode and fill.
type Ops struct {
	Point PointFunc
	Span  SpanFunc
}

var opsTable [NumModes][NumFills]Ops

func init() {
	opsTable = [NumModes][NumFills]Ops{
		Plain: {
			Data: {pointPlainData, spanPlainData},
			Flat: {pointPlainFlat, spanPlainFlat},
		},
		Alpha: {
			Data: {pointAlphaData, spanAlphaData},
			Flat: {pointAlphaFlat, spanAlphaFlat},
		},
		Alpha25: {
			Data: {point25Data, span25Data},
			Flat: {point25Flat, span25Flat},
		},
		Alpha50: {
			Data: {point50Data, span50Data},
			Flat: {point50Flat, span50Flat},
		},
		Alpha75: {
			Data: {point75Data, span75Data},
			Flat: {point75Flat, span75Flat},
		},
		AlphaMask: {
			Data: {pointMask, spanMask},
			Flat: {pointMask, spanMask},
		},
		Inverse: {
			Data: {pointInverse, spanInverse},
			Flat: {pointInverse, spanInverse},
		},
		Mod: {
			Data: {pointModData, spanModData},
			Flat: {pointModFlat, spanModFlat},
		},
		Add: {
			Data: {pointAddData, spanAddData},
			Flat: {pointAddFlat, spanAddFlat},
		},
	}
}

// Lookup returns the inner loops for mode and fill.
func Lookup(mode Mode, fill Fill) Ops {
	return opsTable[mode][fill]
}

// Plain

func pointPlainData(dst *pixel.Pixel, src pixel.Pixel, _ *Params) {
	*dst = src
}

func spanPlainData(dst, src []pixel.Pixel, _ *Params) {
	copy(dst, src[:len(dst)])
}

func pointPlainFlat(dst *pixel.Pixel, _ pixel.Pixel, p *Params) {
	*dst = p.Color
}

func spanPlainFlat(dst, _ []pixel.Pixel, p *Params) {
	c := p.Color
	for i := range dst {
		dst[i] = c
	}
}

// Alpha

func alpha(d, s pixel.RGB, a int) pixel.Pixel {
	return pixel.FromRGB(lerp(d.R, s.R, a), lerp(d.G, s.G, a), lerp(d.B, s.B, a))
}

func pointAlphaData(dst *pixel.Pixel, src pixel.Pixel, p *Params) {
	*dst = alpha(pixel.ToRGB(*dst), pixel.ToRGB(src), p.Alpha)
}

func spanAlphaData(dst, src []pixel.Pixel, p *Params) {
	a := p.Alpha
	src = src[:len(dst)]
	for i := range dst {
		dst[i] = alpha(pixel.ToRGB(dst[i]), pixel.ToRGB(src[i]), a)
	}
}

func pointAlphaFlat(dst *pixel.Pixel, _ pixel.Pixel, p *Params) {
	*dst = alpha(pixel.ToRGB(*dst), p.RGB, p.Alpha)
}

func spanAlphaFlat(dst, _ []pixel.Pixel, p *Params) {
	s, a := p.RGB, p.Alpha
	for i := range dst {
		dst[i] = alpha(pixel.ToRGB(dst[i]), s, a)
	}
}

// Alpha25

func alpha25(d, s pixel.RGB) pixel.Pixel {
	return pixel.FromRGB(quarter(d.R, s.R), quarter(d.G, s.G), quarter(d.B, s.B))
}

func point25Data(dst *pixel.Pixel, src pixel.Pixel, _ *Params) {
	*dst = alpha25(pixel.ToRGB(*dst), pixel.ToRGB(src))
}

func span25Data(dst, src []pixel.Pixel, _ *Params) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] = alpha25(pixel.ToRGB(dst[i]), pixel.ToRGB(src[i]))
	}
}

func point25Flat(dst *pixel.Pixel, _ pixel.Pixel, p *Params) {
	*dst = alpha25(pixel.ToRGB(*dst), p.RGB)
}

func span25Flat(dst, _ []pixel.Pixel, p *Params) {
	s := p.RGB
	for i := range dst {
		dst[i] = alpha25(pixel.ToRGB(dst[i]), s)
	}
}

// Alpha50

func alpha50(d, s pixel.RGB) pixel.Pixel {
	return pixel.FromRGB(half(d.R, s.R), half(d.G, s.G), half(d.B, s.B))
}

func point50Data(dst *pixel.Pixel, src pixel.Pixel, _ *Params) {
	*dst = alpha50(pixel.ToRGB(*dst), pixel.ToRGB(src))
}

func span50Data(dst, src []pixel.Pixel, _ *Params) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] = alpha50(pixel.ToRGB(dst[i]), pixel.ToRGB(src[i]))
	}
}

func point50Flat(dst *pixel.Pixel, _ pixel.Pixel, p *Params) {
	*dst = alpha50(pixel.ToRGB(*dst), p.RGB)
}

func span50Flat(dst, _ []pixel.Pixel, p *Params) {
	s := p.RGB
	for i := range dst {
		dst[i] = alpha50(pixel.ToRGB(dst[i]), s)
	}
}

// Alpha75

func alpha75(d, s pixel.RGB) pixel.Pixel {
	return pixel.FromRGB(threeQuarters(d.R, s.R), threeQuarters(d.G, s.G), threeQuarters(d.B, s.B))
}

func point75Data(dst *pixel.Pixel, src pixel.Pixel, _ *Params) {
	*dst = alpha75(pixel.ToRGB(*dst), pixel.ToRGB(src))
}

func span75Data(dst, src []pixel.Pixel, _ *Params) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] = alpha75(pixel.ToRGB(dst[i]), pixel.ToRGB(src[i]))
	}
}

func point75Flat(dst *pixel.Pixel, _ pixel.Pixel, p *Params) {
	*dst = alpha75(pixel.ToRGB(*dst), p.RGB)
}

func span75Flat(dst, _ []pixel.Pixel, p *Params) {
	s := p.RGB
	for i := range dst {
		dst[i] = alpha75(pixel.ToRGB(dst[i]), s)
	}
}

// AlphaMask reads coverage from src under both fills.

func pointMask(dst *pixel.Pixel, src pixel.Pixel, p *Params) {
	a := (p.Alpha * pixel.Blue(src)) >> 8
	*dst = alpha(pixel.ToRGB(*dst), p.RGB, a)
}

func spanMask(dst, src []pixel.Pixel, p *Params) {
	s, a := p.RGB, p.Alpha
	src = src[:len(dst)]
	for i := range dst {
		dst[i] = alpha(pixel.ToRGB(dst[i]), s, (a*pixel.Blue(src[i]))>>8)
	}
}

// Inverse ignores the source under both fills.

func pointInverse(dst *pixel.Pixel, _ pixel.Pixel, _ *Params) {
	*dst ^= pixel.RGBMask
}

func spanInverse(dst, _ []pixel.Pixel, _ *Params) {
	for i := range dst {
		dst[i] ^= pixel.RGBMask
	}
}

// Mod

func mod(d, s pixel.RGB) pixel.Pixel {
	return pixel.FromRGB(modulate(d.R, s.R), modulate(d.G, s.G), modulate(d.B, s.B))
}

func pointModData(dst *pixel.Pixel, src pixel.Pixel, _ *Params) {
	*dst = mod(pixel.ToRGB(*dst), pixel.ToRGB(src))
}

func spanModData(dst, src []pixel.Pixel, _ *Params) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] = mod(pixel.ToRGB(dst[i]), pixel.ToRGB(src[i]))
	}
}

func pointModFlat(dst *pixel.Pixel, _ pixel.Pixel, p *Params) {
	*dst = mod(pixel.ToRGB(*dst), p.RGB)
}

func spanModFlat(dst, _ []pixel.Pixel, p *Params) {
	s := p.RGB
	for i := range dst {
		dst[i] = mod(pixel.ToRGB(dst[i]), s)
	}
}

// Add

func add(d, s pixel.RGB) pixel.Pixel {
	return pixel.FromRGB(addClamp(d.R, s.R), addClamp(d.G, s.G), addClamp(d.B, s.B))
}

func pointAddData(dst *pixel.Pixel, src pixel.Pixel, _ *Params) {
	*dst = add(pixel.ToRGB(*dst), pixel.ToRGB(src))
}

func spanAddData(dst, src []pixel.Pixel, _ *Params) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] = add(pixel.ToRGB(dst[i]), pixel.ToRGB(src[i]))
	}
}

func pointAddFlat(dst *pixel.Pixel, _ pixel.Pixel, p *Params) {
	*dst = add(pixel.ToRGB(*dst), p.RGB)
}

func spanAddFlat(dst, _ []pixel.Pixel, p *Params) {
	s := p.RGB
	for i := range dst {
		dst[i] = add(pixel.ToRGB(dst[i]), s)
	}
}
