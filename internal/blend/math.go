package blend

// Channel arithmetic on unpacked 0..255 values. Every helper keeps its
// result in range so FromRGB never sees bits above the low byte.

// lerp moves d towards s by a/256, where a is 0..MaxAlpha.
func lerp(d, s, a int) int {
	return d + ((s-d)*a)>>8
}

// quarter is d at 75% plus s at 25%.
func quarter(d, s int) int {
	return d - d>>2 + s>>2
}

// half is the average of d and s.
func half(d, s int) int {
	return (d + s) >> 1
}

// threeQuarters is d at 25% plus s at 75%.
func threeQuarters(d, s int) int {
	return d>>2 + s - s>>2
}

// modulate multiplies two channels, normalized by 256.
func modulate(d, s int) int {
	return (d * s) >> 8
}

// addClamp adds two channels, saturating at 255.
func addClamp(d, s int) int {
	return min(d+s, 255)
}
