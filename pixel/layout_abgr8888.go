//go:build pixel_abgr8888

package pixel

// Pixel is a packed color in the Active layout.
type Pixel uint32

// Active is the layout selected for this build.
const Active = ABGR8888

const (
	bitsR, bitsG, bitsB = 8, 8, 8
	shiftR              = 0
	shiftG              = 8
	shiftB              = 16
)
