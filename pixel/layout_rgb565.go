//go:build pixel_rgb565

package pixel

// Pixel is a packed color in the Active layout.
type Pixel uint16

// Active is the layout selected for this build.
const Active = RGB565

const (
	bitsR, bitsG, bitsB = 5, 6, 5
	shiftR              = 11
	shiftG              = 5
	shiftB              = 0
)
