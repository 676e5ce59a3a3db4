package raster

// Rect draws a w×h rectangle, filled or as a one pixel outline.
func (p *Painter) Rect(x, y, w, h int, fill bool) {
	if !p.clip.Overlaps(x, y, w, h) {
		return
	}

	if p.clip.Contains(x, y, w, h) {
		if fill {
			p.rectFill(x, y, w, h)
		} else {
			p.rectOutline(x, y, w, h)
		}
		return
	}

	if !fill {
		// Each border is clipped on its own so borders outside the clip
		// are not moved onto its edge.
		p.outline(x, y, w, h, p.HLine, p.VLine)
		return
	}

	x2 := min(x+w, p.clip.X2)
	y2 := min(y+h, p.clip.Y2)
	x = max(x, p.clip.X)
	y = max(y, p.clip.Y)

	p.rectFill(x, y, x2-x, y2-y)
}

func (p *Painter) rectFill(x, y, w, h int) {
	span := p.ops.Span

	for i := y*p.width + x; h > 0; h-- {
		span(p.pix[i:i+w], nil, &p.params)
		i += p.width
	}
}

func (p *Painter) rectOutline(x, y, w, h int) {
	p.outline(x, y, w, h, p.hline, p.vline)
}

// outline draws the top border, then the bottom one if h > 1, then the
// side borders between them if h > 2. A one pixel wide rectangle has only
// the left side.
func (p *Painter) outline(x, y, w, h int, hline, vline func(int, int, int)) {
	hline(x, x+w-1, y)

	if h <= 1 {
		return
	}
	hline(x, x+w-1, y+h-1)

	if h <= 2 {
		return
	}
	vline(x, y+1, y+h-2)

	if w > 1 {
		vline(x+w-1, y+1, y+h-2)
	}
}
