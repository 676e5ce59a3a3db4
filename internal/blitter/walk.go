package blitter

import (
	"github.com/gogpu/blit/internal/blend"
	"github.com/gogpu/blit/internal/span"
)

func block(d *Dest, s *Source, x, y int, ops blend.Ops, p *blend.Params) {
	w := s.Width

	for row := range s.Height {
		di := (y+row)*d.Width + x
		si := row * w
		ops.Span(d.Pix[di:di+w], s.Pix[si:si+w], p)
	}
}

func blockClip(d *Dest, s *Source, x, y int, ops blend.Ops, p *blend.Params) {
	c := d.Clip
	top, bottom := max(c.Y-y, 0), min(c.Y2-y, s.Height)
	left, right := max(c.X-x, 0), min(c.X2-x, s.Width)
	if left >= right || top >= bottom {
		return
	}

	for row := top; row < bottom; row++ {
		di := (y+row)*d.Width + x
		si := row * s.Width
		ops.Span(d.Pix[di+left:di+right], s.Pix[si+left:si+right], p)
	}
}

func keyed(d *Dest, s *Source, x, y int, ops blend.Ops, p *blend.Params) {
	words := s.Spans.Words()
	i := 0

	for row := range s.Height {
		opaque, runs := span.Header(words[i])
		i++

		di := (y+row)*d.Width + x
		si := row * s.Width

		for _, n := range words[i : i+runs] {
			if opaque {
				ops.Span(d.Pix[di:di+int(n)], s.Pix[si:si+int(n)], p)
			}
			di += int(n)
			si += int(n)
			opaque = !opaque
		}
		i += runs
	}
}

// keyedClip skips the rows above the clip by hopping over their headers,
// then walks each visible row's runs, drawing only the columns inside the
// clip. A run straddling a clip edge is drawn in part.
func keyedClip(d *Dest, s *Source, x, y int, ops blend.Ops, p *blend.Params) {
	c := d.Clip
	top, bottom := max(c.Y-y, 0), min(c.Y2-y, s.Height)
	left, right := max(c.X-x, 0), min(c.X2-x, s.Width)
	if left >= right || top >= bottom {
		return
	}

	words := s.Spans.Words()
	i := 0
	for range top {
		_, runs := span.Header(words[i])
		i += 1 + runs
	}

	for row := top; row < bottom; row++ {
		opaque, runs := span.Header(words[i])
		i++
		next := i + runs

		di := (y+row)*d.Width + x
		si := row * s.Width

		for pos := 0; i < next && pos < right; i++ {
			end := pos + int(words[i])
			if opaque {
				a, b := max(pos, left), min(end, right)
				if a < b {
					ops.Span(d.Pix[di+a:di+b], s.Pix[si+a:si+b], p)
				}
			}
			pos = end
			opaque = !opaque
		}

		i = next
	}
}
