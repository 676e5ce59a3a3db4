// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fix implements 16.16 fixed-point arithmetic and table driven
// trigonometry for the blit and draw routines.
//
// Everything in this package is integer math at call time. The sine,
// cosecant and arctangent tables are computed once during package
// initialization and are read-only afterwards, so results are identical
// on every platform and do not drift between frames.
package fix

import "math"

// Fix is a signed 16.16 fixed-point number.
type Fix int32

// Fixu is an unsigned 16.16 fixed-point number.
type Fixu uint32

// Fixed-point constants.
const (
	// Shift is the number of fractional bits.
	Shift = 16
	// One represents 1.0.
	One Fix = 1 << Shift
	// Half represents 0.5.
	Half Fix = One / 2
	// FractionMask extracts the fractional bits.
	FractionMask Fix = One - 1

	// MinInt is the smallest integer representable as a Fix.
	MinInt = math.MinInt32 >> Shift
	// MaxInt is the largest integer representable as a Fix.
	MaxInt = math.MaxInt32 >> Shift
	// MaxIntu is the largest integer representable as a Fixu.
	MaxIntu = math.MaxUint32 >> Shift
)

// FromInt converts an integer in [MinInt, MaxInt] to Fix.
func FromInt(x int) Fix {
	return Fix(x * int(One))
}

// FromFloat converts a float32 to Fix, truncating extra precision.
func FromFloat(x float32) Fix {
	return Fix(x * float32(One))
}

// FromDouble converts a float64 to Fix, truncating extra precision.
func FromDouble(x float64) Fix {
	return Fix(x * float64(One))
}

// Int returns the integer part of f, rounded towards negative infinity.
func (f Fix) Int() int {
	return int(f >> Shift)
}

// Float converts f to float32.
func (f Fix) Float() float32 {
	return float32(f) / float32(One)
}

// Double converts f to float64.
func (f Fix) Double() float64 {
	return float64(f) / float64(One)
}

// Mul multiplies two fixed-point values through a 64-bit intermediate.
func Mul(a, b Fix) Fix {
	return Fix((int64(a) * int64(b)) >> Shift)
}

// Div divides a by b through a 64-bit intermediate.
//
// Division by zero panics with the runtime's integer divide error, the same
// as dividing two plain integers.
func Div(a, b Fix) Fix {
	return Fix((int64(a) << Shift) / int64(b))
}

// Inverse returns 1/f. It panics if f is zero.
func Inverse(f Fix) Fix {
	return Fix(int64(One) * int64(One) / int64(f))
}

// Sqrt returns the square root of f. Negative inputs return 0.
func Sqrt(f Fix) Fix {
	if f <= 0 {
		return 0
	}
	return Fix(isqrt(uint64(f) << Shift))
}

// Round rounds f to the nearest integer, halves away from negative infinity.
func Round(f Fix) Fix {
	return (f + Half) &^ FractionMask
}

// Floor rounds f towards negative infinity.
func Floor(f Fix) Fix {
	return f &^ FractionMask
}

// Ceiling rounds f towards positive infinity.
func Ceiling(f Fix) Fix {
	return (f + One - 1) &^ FractionMask
}

// Truncate rounds f towards zero.
func Truncate(f Fix) Fix {
	if f >= 0 {
		return f &^ FractionMask
	}
	return -((-f) &^ FractionMask)
}

// Fraction returns the fractional part of f, carrying the sign of f.
func Fraction(f Fix) Fix {
	if f >= 0 {
		return f & FractionMask
	}
	return -((-f) & FractionMask)
}

// Abs returns the absolute value of f.
func Abs(f Fix) Fix {
	if f < 0 {
		return -f
	}
	return f
}

// FromIntu converts an unsigned integer in [0, MaxIntu] to Fixu.
func FromIntu(x uint) Fixu {
	return Fixu(x << Shift)
}

// Int returns the integer part of f.
func (f Fixu) Int() uint {
	return uint(f >> Shift)
}

// Double converts f to float64.
func (f Fixu) Double() float64 {
	return float64(f) / float64(One)
}

// Mulu multiplies two unsigned fixed-point values.
func Mulu(a, b Fixu) Fixu {
	return Fixu((uint64(a) * uint64(b)) >> Shift)
}

// Divu divides two unsigned fixed-point values. It panics if b is zero.
func Divu(a, b Fixu) Fixu {
	return Fixu((uint64(a) << Shift) / uint64(b))
}

// isqrt returns floor(sqrt(x)) using the bit-by-bit method.
func isqrt(x uint64) uint64 {
	var res uint64
	bit := uint64(1) << 62
	for bit > x {
		bit >>= 2
	}
	for bit != 0 {
		if x >= res+bit {
			x -= res + bit
			res = (res >> 1) + bit
		} else {
			res >>= 1
		}
		bit >>= 2
	}
	return res
}
