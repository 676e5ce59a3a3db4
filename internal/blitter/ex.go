package blitter

import (
	"github.com/gogpu/blit/fix"
	"github.com/gogpu/blit/internal/blend"
	"github.com/gogpu/blit/internal/clip"
	"github.com/gogpu/blit/pixel"
)

// Transform places a sprite for BlitEx.
type Transform struct {
	Scale fix.Fix // fix.One draws at original size
	Angle int     // counter-clockwise, fix.AnglesNum per turn

	// Pivot is the point the sprite rotates about and that lands on the
	// destination anchor, relative to the sprite center: -fix.One is the
	// left or top edge, fix.One the right or bottom edge.
	PivotX fix.Fix
	PivotY fix.Fix
}

const (
	edgeLeft = iota
	edgeRight
)

// scan is where one edge of the sprite crosses a destination row.
type scan struct {
	x      int
	sx, sy fix.Fix // sprite coordinates at x
}

// Scanner rasterizes rotated sprites. It keeps the per-row edge arrays
// and a sample buffer between calls, so it should live as long as the
// destination it draws into.
type Scanner struct {
	edges [2][]scan
	buf   []pixel.Pixel
}

// NewScanner returns a Scanner sized for a w×h destination. It grows on
// demand if used with a larger one.
func NewScanner(w, h int) *Scanner {
	sc := &Scanner{}
	sc.fit(w, h)
	return sc
}

func (sc *Scanner) fit(w, h int) {
	if len(sc.edges[edgeLeft]) < h {
		sc.edges[edgeLeft] = make([]scan, h)
		sc.edges[edgeRight] = make([]scan, h)
	}
	if len(sc.buf) < w {
		sc.buf = make([]pixel.Pixel, w)
	}
}

type vec struct{ x, y int }

type fvec struct{ x, y fix.Fix }

// rowFunc draws one destination row. dst and buf have the same length;
// (sx, sy) is the sprite coordinate of dst[0] and (ix, iy) the step per
// pixel.
type rowFunc func(dst, buf []pixel.Pixel, s *Source, sx, sy, ix, iy fix.Fix, p *blend.Params)

type rowWalker func(dst, buf []pixel.Pixel, s *Source, sx, sy, ix, iy fix.Fix, ops blend.Ops, p *blend.Params)

var rowFuncs [blend.NumModes][blend.NumFills][2]rowFunc

func init() {
	walkers := [2]rowWalker{rowBlock, rowKeyed}

	for m := range blend.NumModes {
		for f := range blend.NumFills {
			ops := blend.Lookup(m, f)
			for k, w := range walkers {
				rowFuncs[m][f][k] = func(dst, buf []pixel.Pixel, s *Source, sx, sy, ix, iy fix.Fix, p *blend.Params) {
					w(dst, buf, s, sx, sy, ix, iy, ops, p)
				}
			}
		}
	}
}

// BlitEx draws s scaled and rotated by t, with the pivot on (x, y).
//
// The corners of the sprite's pixel centers are rotated into destination
// space. Depending on the quarter turn the angle falls in, one corner is
// topmost, and the two paths from it down to the bottom corner form the
// left and right edges. Each edge is walked once to record, per row, its
// destination x and the sprite coordinate under it; each row is then
// filled by interpolating between its two edge samples.
func (sc *Scanner) BlitEx(d *Dest, s *Source, x, y int, t Transform, mode blend.Mode, fill blend.Fill, p *blend.Params) {
	c := d.Clip
	if c.Empty() || s.Width <= 0 || s.Height <= 0 || t.Scale <= 0 {
		return
	}
	sc.fit(c.X2, c.Y2)

	w := fix.Fix(s.Width) * t.Scale
	h := fix.Fix(s.Height) * t.Scale
	wLeft := w/2 + fix.Mul(t.PivotX, w/2)
	wRight := w - wLeft
	hTop := h/2 + fix.Mul(t.PivotY, h/2)
	hDown := h - hTop

	// An extent under one pixel would put the centers past each other;
	// collapse it to a single column or row instead.
	xMin, xMax := -wLeft+fix.Half, wRight-fix.Half
	yMin, yMax := -hTop+fix.Half, hDown-fix.Half
	xMax = max(xMax, xMin)
	yMax = max(yMax, yMin)

	angle := fix.AngleWrap(t.Angle)
	corner := func(cx, cy fix.Fix) vec {
		v := fix.RotateCounter(cx, cy, angle)
		return vec{x + v.X.Int(), y + v.Y.Int()}
	}

	// Corners in sprite order: top-left, top-right, bottom-right,
	// bottom-left.
	scr := [4]vec{
		corner(xMin, yMin),
		corner(xMax, yMin),
		corner(xMax, yMax),
		corner(xMin, yMax),
	}

	sw := fix.FromInt(s.Width) - 1
	sh := fix.FromInt(s.Height) - 1
	spr := [4]fvec{{0, 0}, {sw, 0}, {sw, sh}, {0, sh}}

	// Rotating counter-clockwise moves the top-right corner, then the
	// bottom-right one, and so on, to the top.
	q := angle / fix.Deg90
	top, bottom := (q+1)&3, (q+3)&3
	l, r := q, (q+2)&3

	if scr[top].y == scr[bottom].y {
		return
	}
	bx := scr[l].x
	by := scr[top].y
	if !c.Overlaps(bx, by, scr[r].x-bx+1, scr[bottom].y-by+1) {
		return
	}

	sc.scanLine(edgeLeft, scr[top], scr[l], spr[top], spr[l], c)
	sc.scanLine(edgeLeft, scr[l], scr[bottom], spr[l], spr[bottom], c)
	sc.scanLine(edgeRight, scr[top], scr[r], spr[top], spr[r], c)
	sc.scanLine(edgeRight, scr[r], scr[bottom], spr[r], spr[bottom], c)

	draw := rowFuncs[mode][fill][b2i(s.Spans != nil)]

	for row := max(scr[top].y, c.Y); row <= min(scr[bottom].y, c.Y2-1); row++ {
		e0 := sc.edges[edgeLeft][row]
		e1 := sc.edges[edgeRight][row]

		x0, x1 := e0.x, e1.x
		if x0 >= c.X2 || x1 < c.X || x1 < x0 {
			continue
		}

		n := fix.Fix(x1 - x0 + 1)
		ix := delta(e0.sx, e1.sx) / n
		iy := delta(e0.sy, e1.sy) / n
		sx, sy := e0.sx, e0.sy

		if x0 < c.X {
			k := fix.Fix(c.X - x0)
			sx += ix * k
			sy += iy * k
			x0 = c.X
		}
		x1 = min(x1, c.X2-1)

		i := row * d.Width
		draw(d.Pix[i+x0:i+x1+1], sc.buf[:x1-x0+1], s, sx, sy, ix, iy, p)
	}
}

// scanLine records the edge from p1 down to p2 into the left or right
// array, interpolating the sprite coordinate from s1 to s2. Zero-height
// edges, which quarter turns produce, are skipped.
func (sc *Scanner) scanLine(side int, p1, p2 vec, s1, s2 fvec, c clip.Rect) {
	if p2.y <= p1.y || p1.y >= c.Y2 || p2.y < c.Y {
		return
	}

	n := fix.Fix(p2.y - p1.y + 1)
	x := fix.FromInt(p1.x)
	ix := fix.FromInt(p2.x-p1.x+1) / n

	sx, sy := s1.x, s1.y
	isx := delta(s1.x, s2.x) / n
	isy := delta(s1.y, s2.y) / n

	y1, y2 := p1.y, min(p2.y, c.Y2-1)
	if y1 < c.Y {
		k := fix.Fix(c.Y - y1)
		x += ix * k
		sx += isx * k
		sy += isy * k
		y1 = c.Y
	}

	rows := sc.edges[side]
	for y := y1; y <= y2; y++ {
		rows[y] = scan{x: x.Int(), sx: sx, sy: sy}
		x += ix
		sx += isx
		sy += isy
	}
}

// delta is b-a widened by one unit away from zero, so that stepping
// delta/n n times from a covers every sprite pixel up to b.
func delta(a, b fix.Fix) fix.Fix {
	d := b - a
	switch {
	case b > a:
		d++
	case b < a:
		d--
	}
	return d
}

func rowBlock(dst, buf []pixel.Pixel, s *Source, sx, sy, ix, iy fix.Fix, ops blend.Ops, p *blend.Params) {
	for i := range buf {
		buf[i] = s.Pix[sy.Int()*s.Width+sx.Int()]
		sx += ix
		sy += iy
	}

	ops.Span(dst, buf, p)
}

func rowKeyed(dst, buf []pixel.Pixel, s *Source, sx, sy, ix, iy fix.Fix, ops blend.Ops, p *blend.Params) {
	for i := range buf {
		buf[i] = s.Pix[sy.Int()*s.Width+sx.Int()]
		sx += ix
		sy += iy
	}

	key := s.Key
	n := len(buf)

	for i := 0; i < n; {
		for i < n && buf[i] == key {
			i++
		}
		j := i
		for j < n && buf[j] != key {
			j++
		}
		if j > i {
			ops.Span(dst[i:j], buf[i:j], p)
		}
		i = j
	}
}
