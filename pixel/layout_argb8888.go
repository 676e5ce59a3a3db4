//go:build !pixel_rgb565 && !pixel_rgba5551 && !pixel_rgba8888 && !pixel_abgr8888

package pixel

// Pixel is a packed color in the Active layout.
type Pixel uint32

// Active is the layout selected for this build.
const Active = ARGB8888

const (
	bitsR, bitsG, bitsB = 8, 8, 8
	shiftR              = 16
	shiftG              = 8
	shiftB              = 0
)
