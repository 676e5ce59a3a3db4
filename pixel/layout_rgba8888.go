//go:build pixel_rgba8888

package pixel

// Pixel is a packed color in the Active layout.
type Pixel uint32

// Active is the layout selected for this build.
const Active = RGBA8888

const (
	bitsR, bitsG, bitsB = 8, 8, 8
	shiftR              = 24
	shiftG              = 16
	shiftB              = 8
)
