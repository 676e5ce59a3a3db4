// Package blit is the software rendering core of a 2D game framework.
//
// # Overview
//
// blit draws into packed pixel buffers. It provides integer primitives
// (pixels, lines, rectangles, circles), straight sprite blits with color
// key transparency, and rotated and scaled sprite blits, all confined to a
// clip rectangle and composited through one of several blend modes.
//
// # Quick Start
//
//	import "github.com/gogpu/blit"
//
//	screen, _ := blit.NewSurface(320, 240)
//	ctx := blit.NewContext(screen)
//
//	ctx.SetColorHex(0x3050A0)
//	ctx.DrawCircleFilled(160, 120, 40)
//
//	ctx.PushColor()
//	ctx.SetBlend(blit.BlendAlpha)
//	ctx.SetAlpha(blit.MaxAlpha / 3)
//	ctx.Blit(sprite, 10, 10)
//	ctx.PopColor()
//
// # Architecture
//
// The library is organized into:
//   - Public API: Context, Surface, Sprite
//   - fix: 16.16 fixed-point arithmetic and lookup table trigonometry
//   - pixel: the packed pixel layout, selected by build tag
//   - Internal: clip (clip stack), blend (inner loops), raster
//     (primitives), span (span tables), blitter (sprite blits)
//
// Every drawing call picks one specialized inner loop from a table indexed
// by blend mode, fill mode, color key and clipping, so no pixel loop
// branches on the blend mode.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in fix.AnglesNum units per turn, 0 is right, increases
//     counter-clockwise
//
// # Pixel Layouts
//
// The default layout is 32-bit ARGB8888. Build with one of the tags
// pixel_rgb565, pixel_rgba5551, pixel_rgba8888 or pixel_abgr8888 to select
// another one.
//
// # Span Tables
//
// A Surface with a color key carries a span table listing the opaque and
// transparent runs of each row. Changes made through this package mark the
// table stale and it is rebuilt on the next blit. Writes through Pix must
// be followed by Invalidate.
package blit

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
