package blitter

import (
	"slices"
	"testing"

	"github.com/gogpu/blit/internal/blend"
	"github.com/gogpu/blit/internal/clip"
	"github.com/gogpu/blit/internal/span"
	"github.com/gogpu/blit/pixel"
)

var (
	key   = pixel.DefaultKey
	white = pixel.FromHex(0xFFFFFF)
)

func newDest(w, h int, bg pixel.Pixel) *Dest {
	pix := make([]pixel.Pixel, w*h)
	for i := range pix {
		pix[i] = bg
	}
	return &Dest{Pix: pix, Width: w, Clip: clip.NewRect(0, 0, w, h)}
}

func newSource(w, h int, pix []pixel.Pixel) *Source {
	return &Source{
		Pix:    pix,
		Width:  w,
		Height: h,
		Spans:  span.Build(pix, w, h, key),
		Key:    key,
	}
}

// gradient returns a w×h sprite of distinct colors, with every pixel for
// which hole returns true set to the key.
func gradient(w, h int, hole func(x, y int) bool) *Source {
	pix := make([]pixel.Pixel, w*h)
	for y := range h {
		for x := range w {
			if hole != nil && hole(x, y) {
				pix[y*w+x] = key
				continue
			}
			pix[y*w+x] = pixel.FromRGB(16+x*24, 16+y*24, 100)
		}
	}
	return newSource(w, h, pix)
}

func plainParams() *blend.Params {
	c := pixel.FromRGB(0, 128, 255)
	return &blend.Params{Color: c, RGB: pixel.ToRGB(c), Alpha: blend.MaxAlpha}
}

func TestKeyedBlit(t *testing.T) {
	c1 := pixel.FromRGB(255, 0, 0)
	c2 := pixel.FromRGB(0, 255, 0)
	s := newSource(4, 1, []pixel.Pixel{key, c1, c2, key})

	if want := []int32{3<<1 | 0, 1, 2, 1}; !slices.Equal(s.Spans.Words(), want) {
		t.Fatalf("span table = %v, want %v", s.Spans.Words(), want)
	}

	d := newDest(4, 1, white)
	Blit(d, s, 0, 0, blend.Plain, blend.Data, plainParams())

	if want := []pixel.Pixel{white, c1, c2, white}; !slices.Equal(d.Pix, want) {
		t.Errorf("dest = %#x, want %#x", d.Pix, want)
	}
}

func TestFlatBlitPaintsShape(t *testing.T) {
	s := gradient(3, 3, func(x, y int) bool { return x == 1 })
	d := newDest(3, 3, 0)
	p := plainParams()

	Blit(d, s, 0, 0, blend.Plain, blend.Flat, p)

	for y := range 3 {
		for x := range 3 {
			want := p.Color
			if x == 1 {
				want = 0
			}
			if got := d.Pix[y*3+x]; got != want {
				t.Errorf("(%d, %d) = %#x, want %#x", x, y, got, want)
			}
		}
	}
}

// TestClipEquivalence draws sprites that lie inside the clip through both
// the clipped and unclipped walkers of every combination.
func TestClipEquivalence(t *testing.T) {
	sprites := map[string]*Source{
		"block": gradient(5, 4, nil),
		"keyed": gradient(5, 4, func(x, y int) bool { return (x+y)%3 == 0 }),
	}
	p := plainParams()
	p.Alpha = 100

	for name, s := range sprites {
		for m := range blend.NumModes {
			for f := range blend.NumFills {
				fast := newDest(12, 10, pixel.FromRGB(40, 80, 120))
				slow := newDest(12, 10, pixel.FromRGB(40, 80, 120))

				Lookup(m, f, s.Spans != nil, false)(fast, s, 3, 2, p)
				Lookup(m, f, s.Spans != nil, true)(slow, s, 3, 2, p)

				if !slices.Equal(fast.Pix, slow.Pix) {
					t.Errorf("%s %v/%v: clipped and unclipped walkers differ", name, m, f)
				}
			}
		}
	}
}

// TestClippedBlit compares blits through a small clip rectangle with the
// same blit through the full buffer.
func TestClippedBlit(t *testing.T) {
	sprites := map[string]*Source{
		"block": gradient(6, 5, nil),
		"keyed": gradient(6, 5, func(x, y int) bool { return x == 0 || x == 3 || y == 2 }),
	}
	cr := clip.NewRect(4, 3, 5, 4)
	positions := [][2]int{{1, 1}, {6, 5}, {2, 4}, {7, 0}, {4, 3}, {0, 0}, {9, 7}}

	for name, s := range sprites {
		for _, pos := range positions {
			ref := newDest(16, 12, 0)
			Blit(ref, s, pos[0], pos[1], blend.Add, blend.Data, plainParams())

			d := newDest(16, 12, 0)
			d.Clip = cr
			Blit(d, s, pos[0], pos[1], blend.Add, blend.Data, plainParams())

			for y := range 12 {
				for x := range 16 {
					want := pixel.Pixel(0)
					if cr.Contains(x, y, 1, 1) {
						want = ref.Pix[y*16+x]
					}
					if got := d.Pix[y*16+x]; got != want {
						t.Fatalf("%s at %v: (%d, %d) = %#x, want %#x", name, pos, x, y, got, want)
					}
				}
			}
		}
	}
}

func TestBlitOutside(t *testing.T) {
	s := gradient(4, 4, nil)
	d := newDest(8, 8, 0)

	for _, pos := range [][2]int{{-4, 0}, {8, 0}, {0, -4}, {0, 8}} {
		Blit(d, s, pos[0], pos[1], blend.Plain, blend.Data, plainParams())
	}

	for i, v := range d.Pix {
		if v != 0 {
			t.Fatalf("pixel %d painted by an invisible blit", i)
		}
	}
}

// TestClippedWalkersOutside calls the clipped walkers directly with
// sprites that miss the clip rectangle on every side.
func TestClippedWalkersOutside(t *testing.T) {
	sprites := map[bool]*Source{
		false: gradient(4, 4, nil),
		true:  gradient(4, 4, func(x, y int) bool { return x == y }),
	}
	positions := [][2]int{{2, -6}, {2, -20}, {-20, 2}, {12, 2}, {2, 12}, {-20, -20}, {30, 30}}

	for keyed, s := range sprites {
		walk := Lookup(blend.Plain, blend.Data, keyed, true)
		for _, pos := range positions {
			d := newDest(16, 16, 0)
			d.Clip = clip.NewRect(2, 2, 4, 4)
			walk(d, s, pos[0], pos[1], plainParams())

			for i, v := range d.Pix {
				if v != 0 {
					t.Fatalf("keyed %v at %v: pixel %d painted", keyed, pos, i)
				}
			}
		}
	}
}

func TestPlainBlitIdempotent(t *testing.T) {
	s := gradient(5, 5, nil)

	once := newDest(9, 9, white)
	Blit(once, s, 2, 3, blend.Plain, blend.Data, plainParams())

	twice := newDest(9, 9, white)
	Blit(twice, s, 2, 3, blend.Plain, blend.Data, plainParams())
	Blit(twice, s, 2, 3, blend.Plain, blend.Data, plainParams())

	if !slices.Equal(once.Pix, twice.Pix) {
		t.Error("blitting twice differs from blitting once")
	}
}
