package pixel

// Format identifies a packed pixel layout.
type Format uint8

const (
	// RGB565 is 16-bit red, green, blue with no alpha bits.
	RGB565 Format = iota

	// RGBA5551 is 16-bit with 5 bits per color and one alpha bit at the bottom.
	RGBA5551

	// RGBA8888 is 32-bit with red in the top byte and alpha in the bottom byte.
	RGBA8888

	// ARGB8888 is 32-bit with alpha in the top byte and blue in the bottom byte.
	// This is the default layout.
	ARGB8888

	// ABGR8888 is 32-bit with alpha in the top byte and red in the bottom byte.
	ABGR8888

	formatCount
)

// FormatInfo describes the bit layout of a Format.
type FormatInfo struct {
	// BitsPerPixel is 16 or 32.
	BitsPerPixel int

	// Channel widths in bits.
	BitsR, BitsG, BitsB, BitsA int

	// Channel positions, counted from the least significant bit.
	ShiftR, ShiftG, ShiftB, ShiftA int
}

var formatInfoTable = [formatCount]FormatInfo{
	RGB565: {
		BitsPerPixel: 16,
		BitsR:        5,
		BitsG:        6,
		BitsB:        5,
		BitsA:        0,
		ShiftR:       11,
		ShiftG:       5,
		ShiftB:       0,
		ShiftA:       0,
	},
	RGBA5551: {
		BitsPerPixel: 16,
		BitsR:        5,
		BitsG:        5,
		BitsB:        5,
		BitsA:        1,
		ShiftR:       11,
		ShiftG:       6,
		ShiftB:       1,
		ShiftA:       0,
	},
	RGBA8888: {
		BitsPerPixel: 32,
		BitsR:        8,
		BitsG:        8,
		BitsB:        8,
		BitsA:        8,
		ShiftR:       24,
		ShiftG:       16,
		ShiftB:       8,
		ShiftA:       0,
	},
	ARGB8888: {
		BitsPerPixel: 32,
		BitsR:        8,
		BitsG:        8,
		BitsB:        8,
		BitsA:        8,
		ShiftR:       16,
		ShiftG:       8,
		ShiftB:       0,
		ShiftA:       24,
	},
	ABGR8888: {
		BitsPerPixel: 32,
		BitsR:        8,
		BitsG:        8,
		BitsB:        8,
		BitsA:        8,
		ShiftR:       0,
		ShiftG:       8,
		ShiftB:       16,
		ShiftA:       24,
	},
}

// Info returns the layout of f, or the zero FormatInfo for unknown formats.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns 2 or 4.
func (f Format) BytesPerPixel() int {
	return f.Info().BitsPerPixel / 8
}

// HasAlpha reports whether the layout reserves alpha bits. Pixels produced
// by this package always leave them zero.
func (f Format) HasAlpha() bool {
	return f.Info().BitsA > 0
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case RGB565:
		return "RGB565"
	case RGBA5551:
		return "RGBA5551"
	case RGBA8888:
		return "RGBA8888"
	case ARGB8888:
		return "ARGB8888"
	case ABGR8888:
		return "ABGR8888"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}
