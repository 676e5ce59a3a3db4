// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package span builds run-length tables of the opaque and transparent
// pixels of color keyed images.
//
// Each row of a Table is one header word followed by the row's run
// lengths. The header packs the run count and whether the first run is
// opaque:
//
//	header = runs<<1 | opaque
//
// Runs alternate between opaque and transparent and sum to the width, so
// a blit can skip whole transparent runs without comparing pixels to the
// key.
package span

import (
	"slices"

	"github.com/gogpu/blit/pixel"
)

// Table is the span table of one image revision. It is read-only once
// built.
type Table struct {
	words   []int32
	offsets []int
	width   int
	height  int
}

// Header unpacks a row header word.
func Header(w int32) (opaque bool, runs int) {
	return w&1 != 0, int(w >> 1)
}

// Build returns the span table of a w×h image whose transparent pixels
// equal key. It returns nil if no pixel equals key, in which case the
// image is fully opaque and blits need no table.
func Build(pix []pixel.Pixel, w, h int, key pixel.Pixel) *Table {
	return Rebuild(nil, pix, w, h, key)
}

// Rebuild is like Build but reuses the buffers of t when they are large
// enough. t may be nil. When the result is non-nil and t was non-nil, the
// result is t.
func Rebuild(t *Table, pix []pixel.Pixel, w, h int, key pixel.Pixel) *Table {
	size := Size(pix, w, h, key)
	if size == 0 {
		return nil
	}

	if t == nil {
		t = &Table{}
	}
	if cap(t.words) >= size {
		t.words = t.words[:size]
	} else {
		t.words = make([]int32, size)
	}
	if cap(t.offsets) >= h {
		t.offsets = t.offsets[:h]
	} else {
		t.offsets = make([]int, h)
	}
	t.width = w
	t.height = h

	t.fill(pix, key)
	return t
}

// Size returns the number of words the table of the image needs, or 0 if
// no pixel equals key.
func Size(pix []pixel.Pixel, w, h int, key pixel.Pixel) int {
	if w <= 0 || h <= 0 {
		return 0
	}

	n := 0
	keyed := false

	for y := range h {
		row := pix[y*w : (y+1)*w]
		if !keyed && slices.Contains(row, key) {
			keyed = true
		}

		n += 2 // header and the first run
		for x := 1; x < w; x++ {
			if (row[x] == key) != (row[x-1] == key) {
				n++
			}
		}
	}

	if !keyed {
		return 0
	}
	return n
}

func (t *Table) fill(pix []pixel.Pixel, key pixel.Pixel) {
	i := 0

	for y := range t.height {
		row := pix[y*t.width : (y+1)*t.width]
		t.offsets[y] = i

		hdr := i
		i++

		opaque := row[0] != key
		cur := opaque
		runs := int32(0)
		n := int32(0)

		for _, v := range row {
			if (v != key) != cur {
				t.words[i] = n
				i++
				runs++
				n = 0
				cur = !cur
			}
			n++
		}
		t.words[i] = n
		i++
		runs++

		t.words[hdr] = runs << 1
		if opaque {
			t.words[hdr] |= 1
		}
	}
}

// Width returns the width of the image the table was built from.
func (t *Table) Width() int { return t.width }

// Height returns the number of rows.
func (t *Table) Height() int { return t.height }

// Words returns the packed table. Rows are stored back to back.
func (t *Table) Words() []int32 { return t.words }

// Offset returns the index in Words of the header of row y.
func (t *Table) Offset(y int) int { return t.offsets[y] }

// Row is the decoded span list of one row.
type Row struct {
	Opaque bool    // first run is opaque
	Runs   []int32 // alternating run lengths
}

// Row returns row y.
func (t *Table) Row(y int) Row {
	i := t.offsets[y]
	opaque, runs := Header(t.words[i])
	return Row{Opaque: opaque, Runs: t.words[i+1 : i+1+runs]}
}

// Len returns the sum of the run lengths.
func (r Row) Len() int {
	n := 0
	for _, v := range r.Runs {
		n += int(v)
	}
	return n
}

// Replay expands the row into one opaque flag per column. dst must hold
// at least Len elements.
func (r Row) Replay(dst []bool) {
	x := 0
	opaque := r.Opaque

	for _, n := range r.Runs {
		for end := x + int(n); x < end; x++ {
			dst[x] = opaque
		}
		opaque = !opaque
	}
}
