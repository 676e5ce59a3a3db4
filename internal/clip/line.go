package clip

const (
	outLeft = 1 << iota
	outRight
	outTop
	outBottom
)

func (r Rect) outcode(x, y int) int {
	code := 0

	if x < r.X {
		code |= outLeft
	} else if x >= r.X2 {
		code |= outRight
	}

	if y < r.Y {
		code |= outTop
	} else if y >= r.Y2 {
		code |= outBottom
	}

	return code
}

// Line clips the segment (x1, y1)-(x2, y2) against r with the
// Cohen-Sutherland algorithm. It returns the clipped endpoints and false
// if no part of the segment is inside r.
func (r Rect) Line(x1, y1, x2, y2 int) (int, int, int, int, bool) {
	if r.Empty() {
		return x1, y1, x2, y2, false
	}

	for {
		code1 := r.outcode(x1, y1)
		code2 := r.outcode(x2, y2)

		if code1|code2 == 0 {
			return x1, y1, x2, y2, true
		}
		if code1&code2 != 0 {
			return x1, y1, x2, y2, false
		}

		code := code1
		if code == 0 {
			code = code2
		}

		var x, y int
		switch {
		case code&outLeft != 0:
			x = r.X
			y = y1 + (y1-y2)*(x-x1)/(x1-x2)
		case code&outRight != 0:
			x = r.X2 - 1
			y = y1 + (y1-y2)*(x-x1)/(x1-x2)
		case code&outTop != 0:
			y = r.Y
			x = x1 + (x1-x2)*(y-y1)/(y1-y2)
		default:
			y = r.Y2 - 1
			x = x1 + (x1-x2)*(y-y1)/(y1-y2)
		}

		if code == code1 {
			x1, y1 = x, y
		} else {
			x2, y2 = x, y
		}
	}
}
