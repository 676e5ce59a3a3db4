package blit

import "errors"

var (
	// ErrInvalidDimensions is returned for surfaces or frames without area.
	ErrInvalidDimensions = errors.New("blit: invalid dimensions")

	// ErrDataTooSmall is returned when a pixel slice cannot hold the
	// requested surface.
	ErrDataTooSmall = errors.New("blit: data buffer too small")

	// ErrClipOutside is returned by SetClip for rectangles that leave the
	// render target.
	ErrClipOutside = errors.New("blit: clip rectangle outside target")

	// ErrNoFrames is returned when a sprite sheet holds no whole frame.
	ErrNoFrames = errors.New("blit: no frames")

	// ErrStackEmpty reports a pop without a matching push. Contexts
	// created WithDebug(true) panic with it.
	ErrStackEmpty = errors.New("blit: pop from empty stack")
)
