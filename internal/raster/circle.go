package raster

// A circle of radius R centered on (X, Y) covers the pixels X-R..X+R-1 and
// Y-R..Y+R-1. The midpoint walk runs over one octant with a primary
// coordinate p counting up from 0 and a secondary coordinate s counting
// down from R-1, and each octant maps (p, s) to a pixel relative to the
// origin of its quadrant.

type vec struct{ x, y int }

type octant struct {
	quadrant int
	p, s     vec // pixel offset per unit of p and of s
}

var octants = [8]octant{
	{0, vec{0, -1}, vec{1, 0}},
	{0, vec{1, 0}, vec{0, -1}},
	{1, vec{-1, 0}, vec{0, -1}},
	{1, vec{0, -1}, vec{-1, 0}},
	{2, vec{0, 1}, vec{-1, 0}},
	{2, vec{-1, 0}, vec{0, 1}},
	{3, vec{1, 0}, vec{0, 1}},
	{3, vec{0, 1}, vec{1, 0}},
}

func quadrants(x, y int) [4]vec {
	return [4]vec{
		{x, y - 1},
		{x - 1, y - 1},
		{x - 1, y},
		{x, y},
	}
}

func (o octant) at(q [4]vec, p, s int) vec {
	base := q[o.quadrant]
	return vec{
		base.x + o.p.x*p + o.s.x*s,
		base.y + o.p.y*p + o.s.y*s,
	}
}

// Circle draws a circle of radius r centered on (x, y), filled or as a one
// pixel outline.
func (p *Painter) Circle(x, y, r int, fill bool) {
	if !p.clip.Overlaps(x-r, y-r, 2*r, 2*r) {
		return
	}

	clipped := !p.clip.Contains(x-r, y-r, 2*r, 2*r)
	circleFuncs[b2i(clipped)][b2i(fill)](p, x, y, r)
}

var circleFuncs = [2][2]func(*Painter, int, int, int){
	{(*Painter).circle, (*Painter).circleFill},
	{(*Painter).circleClip, (*Painter).circleFillClip},
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// dot draws the 2×2 block a circle of radius 1 reduces to.
func (p *Painter) dot(x, y int) {
	p.Pixel(x-1, y-1)
	p.Pixel(x, y-1)
	p.Pixel(x-1, y)
	p.Pixel(x, y)
}

func (p *Painter) circle(x, y, r int) {
	r--
	if r < 0 {
		return
	}
	if r == 0 {
		p.dot(x, y)
		return
	}

	q := quadrants(x, y)
	w := p.width

	var idx, stepP, stepS [8]int
	for i, o := range octants {
		start := o.at(q, 0, r)
		idx[i] = start.y*w + start.x
		stepP[i] = o.p.x + o.p.y*w
		stepS[i] = o.s.x + o.s.y*w
	}

	plot := p.ops.Point
	c := p.params.Color
	s, pp, e := r, 0, -r/2

	for s > pp {
		for i := range idx {
			plot(&p.pix[idx[i]], c, &p.params)
			idx[i] += stepP[i]
		}

		e += 2*pp + 1
		pp++
		if e > 0 {
			e += -2*s + 1
			s--
			for i := range idx {
				idx[i] -= stepS[i]
			}
		}
	}

	if s == pp {
		for i := 0; i < len(idx); i += 2 {
			plot(&p.pix[idx[i]], c, &p.params)
		}
	}
}

// midpoint runs the walk for radius r without drawing. It returns the last
// (p, s) drawn inside the loop and the values left when the loop ends.
func midpoint(r int) (lastP, lastS, endP, endS int) {
	s, pp, e := r, 0, -r/2

	for s > pp {
		lastP, lastS = pp, s

		e += 2*pp + 1
		pp++
		if e > 0 {
			e += -2*s + 1
			s--
		}
	}

	return lastP, lastS, pp, s
}

// circleClip draws the same pixels as circle, restricted to the clip
// rectangle. Along the walk both coordinates of an octant move
// monotonically, so its visible pixels form one run: the walk skips
// ahead until the first visible pixel and stops after the last one.
func (p *Painter) circleClip(x, y, r int) {
	r--
	if r < 0 {
		return
	}
	if r == 0 {
		p.dot(x, y)
		return
	}

	q := quadrants(x, y)
	lastP, lastS, endP, endS := midpoint(r)

	for _, o := range octants {
		a := o.at(q, 0, r)
		b := o.at(q, lastP, lastS)
		bx, by := min(a.x, b.x), min(a.y, b.y)
		if !p.clip.Overlaps(bx, by, max(a.x, b.x)-bx+1, max(a.y, b.y)-by+1) {
			continue
		}

		s, pp, e := r, 0, -r/2
		seen := false

		for s > pp {
			at := o.at(q, pp, s)
			if p.clip.Contains(at.x, at.y, 1, 1) {
				p.point(at.x, at.y)
				seen = true
			} else if seen {
				break
			}

			e += 2*pp + 1
			pp++
			if e > 0 {
				e += -2*s + 1
				s--
			}
		}
	}

	if endS == endP {
		for i := 0; i < len(octants); i += 2 {
			at := octants[i].at(q, endP, endS)
			p.Pixel(at.x, at.y)
		}
	}
}

func (p *Painter) circleFill(x, y, r int) {
	p.filled(x, y, r, p.hline, p.rectFill)
}

func (p *Painter) circleFillClip(x, y, r int) {
	p.filled(x, y, r, p.HLine, func(x, y, w, h int) { p.Rect(x, y, w, h, true) })
}

// filled covers the circle with horizontal runs: the rows reached by the
// primary coordinate every step, and the rows reached by the secondary
// coordinate each time it moves.
func (p *Painter) filled(x, y, r int, hline func(int, int, int), rect func(int, int, int, int)) {
	r--
	if r < 0 {
		return
	}
	if r == 0 {
		rect(x-1, y-1, 2, 2)
		return
	}

	s, pp, e := r, 0, -r/2

	for s > pp {
		hline(x-1-s, x+s, y-1-pp)
		hline(x-1-s, x+s, y+pp)

		e += 2*pp + 1
		pp++
		if e > 0 {
			hline(x-1-pp, x+pp, y-1-s)
			hline(x-1-pp, x+pp, y+s)
			e += -2*s + 1
			s--
		}
	}

	if s == pp {
		hline(x-1-pp, x+pp, y-1-s)
		hline(x-1-pp, x+pp, y+s)
	}
}
