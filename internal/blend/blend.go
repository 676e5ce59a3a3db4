// Package blend holds the per-pixel arithmetic of every blend mode and the
// table that selects a specialized inner loop for each mode and fill.
//
// Every entry of the table is its own function containing only the math for
// that exact combination. Callers resolve an Ops value once per draw or
// blit and then run its Span function over whole runs of pixels, so no
// inner loop ever branches on the blend mode.
package blend

// Mode is a blend mode.
type Mode uint8

const (
	// Plain copies the source over the destination.
	Plain Mode = iota

	// Alpha composites the source at State.Alpha, 0 to MaxAlpha.
	Alpha

	// Alpha25 composites the source at a quarter, using shifts only.
	Alpha25

	// Alpha50 averages source and destination.
	Alpha50

	// Alpha75 composites the source at three quarters.
	Alpha75

	// AlphaMask composites the base color using the source pixel's blue
	// channel, scaled by State.Alpha, as coverage.
	AlphaMask

	// Inverse complements the destination color bits.
	Inverse

	// Mod multiplies the destination by the source per channel.
	Mod

	// Add adds the source to the destination per channel, saturating.
	Add

	// NumModes is the number of blend modes.
	NumModes
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case Plain:
		return "Plain"
	case Alpha:
		return "Alpha"
	case Alpha25:
		return "Alpha25"
	case Alpha50:
		return "Alpha50"
	case Alpha75:
		return "Alpha75"
	case AlphaMask:
		return "AlphaMask"
	case Inverse:
		return "Inverse"
	case Mod:
		return "Mod"
	case Add:
		return "Add"
	default:
		return "Unknown"
	}
}

// IsValid reports whether m is a known mode.
func (m Mode) IsValid() bool {
	return m < NumModes
}

// Fill selects where the source color of a pixel write comes from.
type Fill uint8

const (
	// Data samples the source pixel for every destination pixel.
	Data Fill = iota

	// Flat uses the state's base color for every destination pixel.
	Flat

	// NumFills is the number of fill modes.
	NumFills
)

// String returns the name of the fill.
func (f Fill) String() string {
	switch f {
	case Data:
		return "Data"
	case Flat:
		return "Flat"
	default:
		return "Unknown"
	}
}

// MaxAlpha is fully opaque. It is 256 rather than 255 so that compositing
// divides with a shift.
const MaxAlpha = 256
