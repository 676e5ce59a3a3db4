package blit

import "fmt"

// Sprite is an ordered list of animation frames.
type Sprite struct {
	frames []*Surface
}

// NewSprite returns a sprite with the given frames.
func NewSprite(frames ...*Surface) (*Sprite, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	return &Sprite{frames: frames}, nil
}

// NewSpriteSheet slices sheet into frameW×frameH frames, left to right
// and top to bottom. Cells cut off by the sheet edge are dropped. Frames
// are copies that keep the sheet's color key.
func NewSpriteSheet(sheet *Surface, frameW, frameH int) (*Sprite, error) {
	if frameW <= 0 || frameH <= 0 {
		return nil, fmt.Errorf("%w: frame %dx%d", ErrInvalidDimensions, frameW, frameH)
	}

	cols := sheet.width / frameW
	rows := sheet.height / frameH
	if cols == 0 || rows == 0 {
		return nil, fmt.Errorf("%w: %dx%d sheet, %dx%d frames",
			ErrNoFrames, sheet.width, sheet.height, frameW, frameH)
	}

	frames := make([]*Surface, 0, cols*rows)
	for r := range rows {
		for c := range cols {
			f, _ := NewSurface(frameW, frameH)
			for y := range frameH {
				src := (r*frameH+y)*sheet.width + c*frameW
				copy(f.pix[y*frameW:(y+1)*frameW], sheet.pix[src:src+frameW])
			}
			f.key = sheet.key
			f.keyed = sheet.keyed
			f.dirty = true
			frames = append(frames, f)
		}
	}

	return &Sprite{frames: frames}, nil
}

// Len returns the number of frames.
func (s *Sprite) Len() int { return len(s.frames) }

// Frame returns frame i, wrapping around in both directions.
func (s *Sprite) Frame(i int) *Surface {
	n := len(s.frames)
	return s.frames[((i%n)+n)%n]
}

// Frames returns all frames.
func (s *Sprite) Frames() []*Surface { return s.frames }

// Commit rebuilds the span tables of every frame.
func (s *Sprite) Commit() {
	for _, f := range s.frames {
		f.Commit()
	}
}
