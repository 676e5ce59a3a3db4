package raster

// Line draws a one pixel wide line between two inclusive endpoints.
func (p *Painter) Line(x1, y1, x2, y2 int) {
	x := min(x1, x2)
	y := min(y1, y2)
	w := abs(x2-x1) + 1
	h := abs(y2-y1) + 1

	if !p.clip.Overlaps(x, y, w, h) {
		return
	}

	x1, y1, x2, y2, ok := p.clip.Line(x1, y1, x2, y2)
	if !ok {
		return
	}

	p.line(x1, y1, x2, y2)
}

// line walks from both endpoints towards the middle, so each step of the
// Bresenham error term places two pixels.
func (p *Painter) line(x1, y1, x2, y2 int) {
	switch {
	case x1 == x2:
		p.vline(x1, min(y1, y2), max(y1, y2))
		return
	case y1 == y2:
		p.hline(min(x1, x2), max(x1, x2), y1)
		return
	}

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	den := max(dx, dy)
	inc := min(dx, dy)
	num := den / 2

	xs := 1
	if x1 > x2 {
		xs = -1
	}
	ys := p.width
	if y1 > y2 {
		ys = -p.width
	}

	// major is the step taken every iteration, minor the one taken when
	// the error term overflows.
	major, minor := xs, ys
	if den != dx {
		major, minor = ys, xs
	}

	plot := p.ops.Point
	c := p.params.Color
	i1 := y1*p.width + x1
	i2 := y2*p.width + x2

	for n := (den + 1) / 2; n > 0; n-- {
		plot(&p.pix[i1], c, &p.params)
		plot(&p.pix[i2], c, &p.params)

		num += inc
		if num >= den {
			num -= den
			i1 += minor
			i2 -= minor
		}

		i1 += major
		i2 -= major
	}

	if den&1 == 0 {
		plot(&p.pix[i1], c, &p.params)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
