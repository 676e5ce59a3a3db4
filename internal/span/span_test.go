package span

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/gogpu/blit/pixel"
)

var (
	key = pixel.DefaultKey
	c1  = pixel.FromRGB(10, 20, 30)
	c2  = pixel.FromRGB(200, 100, 50)
)

func TestBuildRow(t *testing.T) {
	tests := []struct {
		name string
		row  []pixel.Pixel
		want []int32
	}{
		{"keyed ends", []pixel.Pixel{key, c1, c2, key}, []int32{3<<1 | 0, 1, 2, 1}},
		{"opaque start", []pixel.Pixel{c1, key, key, c2}, []int32{3<<1 | 1, 1, 2, 1}},
		{"all key", []pixel.Pixel{key, key, key}, []int32{1<<1 | 0, 3}},
		{"alternating", []pixel.Pixel{c1, key, c2, key, c1}, []int32{5<<1 | 1, 1, 1, 1, 1, 1}},
		{"single", []pixel.Pixel{key}, []int32{1<<1 | 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab := Build(tt.row, len(tt.row), 1, key)
			if tab == nil {
				t.Fatal("Build returned nil for a keyed row")
			}
			if !slices.Equal(tab.Words(), tt.want) {
				t.Errorf("words = %v, want %v", tab.Words(), tt.want)
			}
		})
	}
}

func TestBuildNoKey(t *testing.T) {
	pix := []pixel.Pixel{c1, c2, c1, c2, c1, c2}
	if tab := Build(pix, 3, 2, key); tab != nil {
		t.Errorf("Build = %v, want nil for an opaque image", tab.Words())
	}
	if n := Size(pix, 3, 2, key); n != 0 {
		t.Errorf("Size = %d, want 0", n)
	}
}

func TestBuildEmpty(t *testing.T) {
	if tab := Build(nil, 0, 0, key); tab != nil {
		t.Error("Build of an empty image returned a table")
	}
}

func TestRowAccess(t *testing.T) {
	pix := []pixel.Pixel{
		c1, c1, c1, c1,
		key, c1, c2, key,
		key, key, key, key,
	}
	tab := Build(pix, 4, 3, key)

	if tab.Width() != 4 || tab.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", tab.Width(), tab.Height())
	}

	tests := []struct {
		y      int
		opaque bool
		runs   []int32
	}{
		{0, true, []int32{4}},
		{1, false, []int32{1, 2, 1}},
		{2, false, []int32{4}},
	}

	for _, tt := range tests {
		r := tab.Row(tt.y)
		if r.Opaque != tt.opaque || !slices.Equal(r.Runs, tt.runs) {
			t.Errorf("row %d = %+v, want {%v %v}", tt.y, r, tt.opaque, tt.runs)
		}

		opaque, runs := Header(tab.Words()[tab.Offset(tt.y)])
		if opaque != tt.opaque || runs != len(tt.runs) {
			t.Errorf("row %d header = (%v, %d)", tt.y, opaque, runs)
		}
	}
}

// TestRoundTrip replays every row of random keyed images and compares it
// with the pixels.
func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))

	for range 200 {
		w := 1 + rng.IntN(40)
		h := 1 + rng.IntN(10)
		pix := make([]pixel.Pixel, w*h)
		density := rng.Float64()
		for i := range pix {
			if rng.Float64() < density {
				pix[i] = key
			} else {
				pix[i] = c1
			}
		}
		pix[rng.IntN(len(pix))] = key

		tab := Build(pix, w, h, key)
		if tab == nil {
			t.Fatal("Build returned nil for a keyed image")
		}
		if got, want := len(tab.Words()), Size(pix, w, h, key); got != want {
			t.Fatalf("len(words) = %d, Size = %d", got, want)
		}

		flags := make([]bool, w)
		for y := range h {
			r := tab.Row(y)
			if r.Len() != w {
				t.Fatalf("%dx%d row %d: runs sum to %d", w, h, y, r.Len())
			}

			r.Replay(flags)
			for x, opaque := range flags {
				if want := pix[y*w+x] != key; opaque != want {
					t.Fatalf("%dx%d row %d col %d: opaque = %v, want %v", w, h, y, x, opaque, want)
				}
			}
		}
	}
}

func TestRebuildReusesBuffer(t *testing.T) {
	big := []pixel.Pixel{key, c1, key, c1, key, c1, key, c1}
	tab := Build(big, 8, 1, key)
	first := &tab.Words()[0]

	small := []pixel.Pixel{key, c1, c1, c1, c1, c1, c1, key}
	got := Rebuild(tab, small, 8, 1, key)
	if got != tab {
		t.Fatal("Rebuild returned a new table")
	}
	if &got.Words()[0] != first {
		t.Error("Rebuild reallocated a large enough buffer")
	}
	if want := []int32{3<<1 | 0, 1, 6, 1}; !slices.Equal(got.Words(), want) {
		t.Errorf("words = %v, want %v", got.Words(), want)
	}

	tall := make([]pixel.Pixel, 8*4)
	for i := range tall {
		if i%2 == 0 {
			tall[i] = key
		}
	}
	got = Rebuild(tab, tall, 8, 4, key)
	if got.Height() != 4 || got.Row(3).Len() != 8 {
		t.Errorf("grown table is %d rows, last row length %d", got.Height(), got.Row(3).Len())
	}
}

func TestRebuildDropsTable(t *testing.T) {
	tab := Build([]pixel.Pixel{key, c1}, 2, 1, key)
	if got := Rebuild(tab, []pixel.Pixel{c1, c2}, 2, 1, key); got != nil {
		t.Error("Rebuild kept a table for an opaque image")
	}
}
