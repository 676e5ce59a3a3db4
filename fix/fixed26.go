package fix

import "golang.org/x/image/math/fixed"

// fixed26Shift is the difference between Fix and fixed.Int26_6 precision.
const fixed26Shift = Shift - 6

// FromInt26_6 converts a 26.6 value, as produced by font and layout code
// built on golang.org/x/image, to Fix.
func FromInt26_6(v fixed.Int26_6) Fix {
	return Fix(v) << fixed26Shift
}

// Int26_6 converts f to a 26.6 value, dropping the extra fractional bits.
func (f Fix) Int26_6() fixed.Int26_6 {
	return fixed.Int26_6(f >> fixed26Shift)
}

// FromPoint26_6 converts a 26.6 point to a Vec.
func FromPoint26_6(p fixed.Point26_6) Vec {
	return Vec{X: FromInt26_6(p.X), Y: FromInt26_6(p.Y)}
}

// Point26_6 converts v to a 26.6 point.
func (v Vec) Point26_6() fixed.Point26_6 {
	return fixed.Point26_6{X: v.X.Int26_6(), Y: v.Y.Int26_6()}
}
