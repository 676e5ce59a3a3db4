package fix

import "math"

// AnglesNum is the number of discrete angles in a full turn.
// It must be a power of two so angles can wrap with a mask.
const AnglesNum = 4096

const angleMask = AnglesNum - 1

// Angle constants in AnglesNum units. Angles grow counter-clockwise on
// screen, so Deg90 points up.
const (
	Deg1   = AnglesNum / 360
	Deg22  = AnglesNum / 16
	Deg45  = AnglesNum / 8
	Deg67  = Deg45 + Deg22
	Deg90  = 2 * Deg45
	Deg112 = Deg90 + Deg22
	Deg135 = 3 * Deg45
	Deg157 = Deg135 + Deg22
	Deg180 = 4 * Deg45
	Deg202 = Deg180 + Deg22
	Deg225 = 5 * Deg45
	Deg247 = Deg225 + Deg22
	Deg270 = 6 * Deg45
	Deg292 = Deg270 + Deg22
	Deg315 = 7 * Deg45
	Deg337 = Deg315 + Deg22
	Deg360 = 8 * Deg45
)

// sinTable holds one half-turn. The other half is its negation.
var sinTable [AnglesNum / 2]Fix

var cscTable [AnglesNum]Fix

func init() {
	initSin()
	initAtan()
}

func initSin() {
	// The second quarter mirrors the first so the table is exactly symmetric.
	for a := 0; a <= Deg90; a++ {
		rad := math.Pi * float64(a) / (AnglesNum / 2)
		v := FromDouble(math.Sin(rad))
		sinTable[a] = v
		if a > 0 {
			sinTable[Deg180-a] = v
		}
	}

	for a := range cscTable {
		s := Sin(a)
		if s == 0 {
			cscTable[a] = MaxInt * One
		} else {
			cscTable[a] = Div(One, s)
		}
	}
}

// AngleWrap reduces any angle, including negative ones, to [0, AnglesNum).
func AngleWrap(angle int) int {
	return angle & angleMask
}

// AngleFromDeg converts whole degrees to AnglesNum units.
func AngleFromDeg(degrees int) int {
	return AnglesNum * degrees / 360
}

// Sin returns the sine of angle.
func Sin(angle int) Fix {
	angle = AngleWrap(angle)
	if angle >= AnglesNum/2 {
		return -sinTable[angle-AnglesNum/2]
	}
	return sinTable[angle]
}

// Cos returns the cosine of angle, read from the sine table a quarter turn
// ahead.
func Cos(angle int) Fix {
	return Sin(angle + Deg90)
}

// Csc returns the cosecant of angle. Angles with a zero sine return
// MaxInt as a Fix.
func Csc(angle int) Fix {
	return cscTable[AngleWrap(angle)]
}

// Sec returns the secant of angle.
func Sec(angle int) Fix {
	return cscTable[AngleWrap(angle+Deg90)]
}

// Vec is a 2D vector of fixed-point coordinates.
type Vec struct {
	X, Y Fix
}

// RotateCounter rotates (x, y) counter-clockwise on screen by angle.
func RotateCounter(x, y Fix, angle int) Vec {
	sin := Sin(angle)
	cos := Cos(angle)

	return Vec{
		X: Mul(x, cos) + Mul(y, sin),
		Y: Mul(x, -sin) + Mul(y, cos),
	}
}

// RotateClockwise rotates (x, y) clockwise on screen by angle.
func RotateClockwise(x, y Fix, angle int) Vec {
	sin := Sin(angle)
	cos := Cos(angle)

	return Vec{
		X: Mul(x, cos) + Mul(y, -sin),
		Y: Mul(x, sin) + Mul(y, cos),
	}
}
