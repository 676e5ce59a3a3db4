//go:build pixel_rgba5551

package pixel

// Pixel is a packed color in the Active layout.
type Pixel uint16

// Active is the layout selected for this build.
const Active = RGBA5551

const (
	bitsR, bitsG, bitsB = 5, 5, 5
	shiftR              = 11
	shiftG              = 6
	shiftB              = 1
)
