package fix

// atanAngles maps a ratio min(dx,dy)/max(dx,dy) in [0, One) to the nearest
// angle in [0, Deg45].
var atanAngles [One]uint16

func initAtan() {
	angle := 0
	var lastRatio Fix

	for ref := Fix(0); ref < One; ref++ {
		current := Div(Sin(angle), Cos(angle))

		for current < ref {
			angle++
			lastRatio = current
			current = Div(Sin(angle), Cos(angle))
		}

		if current-ref <= ref-lastRatio {
			atanAngles[ref] = uint16(angle)
		} else {
			atanAngles[ref] = uint16(angle - 1)
		}
	}
}

// Atan returns the angle of the vector from (x1, y1) to (x2, y2) in
// screen coordinates, where y grows downwards: a point straight above
// returns Deg90. Coincident points return Deg45.
func Atan(x1, y1, x2, y2 Fix) int {
	dx := Abs(x2 - x1)
	dy := Abs(y2 - y1)

	switch {
	case dx == dy:
		if x2 >= x1 {
			if y2 <= y1 {
				return Deg45
			}
			return Deg315
		}
		if y2 <= y1 {
			return Deg135
		}
		return Deg225
	case dx == 0:
		if y2 <= y1 {
			return Deg90
		}
		return Deg270
	case dy == 0:
		if x2 >= x1 {
			return 0
		}
		return Deg180
	}

	var ratio Fix
	if dy < dx {
		ratio = Div(dy, dx)
	} else {
		ratio = Div(dx, dy)
	}
	cached := int(atanAngles[ratio])

	if dy < dx {
		if x2 >= x1 {
			if y2 <= y1 {
				return cached
			}
			return AngleWrap(-cached)
		}
		if y2 <= y1 {
			return Deg180 - cached
		}
		return Deg180 + cached
	}

	if x2 >= x1 {
		if y2 <= y1 {
			return Deg90 - cached
		}
		return Deg270 + cached
	}
	if y2 <= y1 {
		return Deg90 + cached
	}
	return Deg270 - cached
}
