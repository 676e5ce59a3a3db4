// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pixel defines the packed pixel type shared by every surface and
// inner loop.
//
// The layout is chosen at build time with one of the tags pixel_rgb565,
// pixel_rgba5551, pixel_rgba8888 or pixel_abgr8888. Without a tag pixels
// are 32-bit ARGB8888. Channels are packed from 8-bit values by dropping
// low bits and unpacked by shifting them back up, so unpacked values are
// always in [0, 255]. Alpha bits, where the layout has them, are left zero:
// transparency is expressed through a per-surface color key instead.
package pixel

import (
	"errors"
	"fmt"
	"image/color"
	"math/bits"

	"golang.org/x/image/colornames"
)

// ErrInvalidLayout is the panic value raised at init when the layout
// compiled into the package is inconsistent.
var ErrInvalidLayout = errors.New("pixel: invalid layout")

const (
	packR = 8 - bitsR
	packG = 8 - bitsG
	packB = 8 - bitsB

	maskR Pixel = (1<<bitsR - 1) << shiftR
	maskG Pixel = (1<<bitsG - 1) << shiftG
	maskB Pixel = (1<<bitsB - 1) << shiftB
)

// RGBMask covers every color bit of a Pixel.
const RGBMask = maskR | maskG | maskB

// DefaultKey is the color key sprites use unless told otherwise.
var DefaultKey = FromHex(0xFF00FF)

func init() {
	if err := checkLayout(Active.Info()); err != nil {
		panic(err)
	}
}

// checkLayout verifies that info describes the constants compiled into this
// build and that its channels fit the pixel without overlapping.
func checkLayout(info FormatInfo) error {
	width := bits.OnesCount64(uint64(^Pixel(0)))
	if info.BitsPerPixel != width {
		return fmt.Errorf("%w: %d bits per pixel in a %d-bit Pixel", ErrInvalidLayout, info.BitsPerPixel, width)
	}
	if info.BitsR != bitsR || info.BitsG != bitsG || info.BitsB != bitsB ||
		info.ShiftR != shiftR || info.ShiftG != shiftG || info.ShiftB != shiftB {
		return fmt.Errorf("%w: format table disagrees with the compiled layout", ErrInvalidLayout)
	}

	var used uint64
	channels := [...][2]int{
		{info.BitsR, info.ShiftR},
		{info.BitsG, info.ShiftG},
		{info.BitsB, info.ShiftB},
		{info.BitsA, info.ShiftA},
	}
	for _, ch := range channels {
		n, shift := ch[0], ch[1]
		if n < 0 || n > 8 || shift < 0 || shift+n > width {
			return fmt.Errorf("%w: channel of %d bits at %d", ErrInvalidLayout, n, shift)
		}
		mask := (uint64(1)<<n - 1) << shift
		if used&mask != 0 {
			return fmt.Errorf("%w: overlapping channels", ErrInvalidLayout)
		}
		used |= mask
	}
	return nil
}

// RGB is an unpacked color with channels in [0, 255].
type RGB struct {
	R, G, B int
}

// Color returns c as an opaque color.NRGBA.
func (c RGB) Color() color.NRGBA {
	return color.NRGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 0xff}
}

// FromRGB packs three 8-bit channels. Only the low 8 bits of each argument
// are used.
func FromRGB(r, g, b int) Pixel {
	return Pixel(uint32(r&0xff)>>packR<<shiftR |
		uint32(g&0xff)>>packG<<shiftG |
		uint32(b&0xff)>>packB<<shiftB)
}

// ToRGB unpacks p.
func ToRGB(p Pixel) RGB {
	return RGB{
		R: int((p>>shiftR)<<packR) & 0xff,
		G: int((p>>shiftG)<<packG) & 0xff,
		B: int((p>>shiftB)<<packB) & 0xff,
	}
}

// Blue returns the blue channel of p. Alpha-mask blending reads it as the
// coverage of a grayscale mask.
func Blue(p Pixel) int {
	return int((p>>shiftB)<<packB) & 0xff
}

// FromHex packs a 0xRRGGBB value.
func FromHex(hex uint32) Pixel {
	return FromRGB(int(hex>>16), int(hex>>8), int(hex))
}

// ToHex returns p as 0xRRGGBB.
func ToHex(p Pixel) uint32 {
	c := ToRGB(p)
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// FromColor packs any color.Color, discarding alpha.
func FromColor(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromRGB(int(n.R), int(n.G), int(n.B))
}

// RGBA implements color.Color. Pixels are always opaque.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	c := ToRGB(p)
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xffff
}

// Model converts any color to a Pixel.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}
	return FromColor(c)
})

// Named looks up an SVG 1.1 color name such as "crimson".
func Named(name string) (Pixel, bool) {
	c, ok := colornames.Map[name]
	if !ok {
		return 0, false
	}
	return FromRGB(int(c.R), int(c.G), int(c.B)), true
}
