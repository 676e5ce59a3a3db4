package pixel

import (
	"errors"
	"image/color"
	"testing"
)

// quantize drops the low bits a channel of n bits cannot store.
func quantize(v, n int) int {
	return v &^ (1<<(8-n) - 1)
}

func TestRGBRoundTrip(t *testing.T) {
	for _, v := range []int{0, 1, 7, 8, 100, 127, 128, 200, 254, 255} {
		p := FromRGB(v, 255-v, v/2)
		got := ToRGB(p)
		want := RGB{quantize(v, bitsR), quantize(255-v, bitsG), quantize(v/2, bitsB)}
		if got != want {
			t.Errorf("ToRGB(FromRGB(%d, %d, %d)) = %+v, want %+v", v, 255-v, v/2, got, want)
		}
	}
}

func TestFromRGBMasksInput(t *testing.T) {
	if FromRGB(0x1ff, 0x100, -1) != FromRGB(0xff, 0, 0xff) {
		t.Error("FromRGB used bits above the low byte")
	}
}

func TestChannelsStayInRange(t *testing.T) {
	for _, p := range []Pixel{0, RGBMask, ^Pixel(0)} {
		c := ToRGB(p)
		for _, v := range []int{c.R, c.G, c.B} {
			if v < 0 || v > 255 {
				t.Errorf("ToRGB(%#x) = %+v, channel out of range", p, c)
			}
		}
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		hex  uint32
		want RGB
	}{
		{0x000000, RGB{0, 0, 0}},
		{0xFF0000, RGB{quantize(0xff, bitsR), 0, 0}},
		{0x00FF00, RGB{0, quantize(0xff, bitsG), 0}},
		{0x0000FF, RGB{0, 0, quantize(0xff, bitsB)}},
		{0xFF00FF, RGB{quantize(0xff, bitsR), 0, quantize(0xff, bitsB)}},
	}

	for _, tt := range tests {
		p := FromHex(tt.hex)
		if got := ToRGB(p); got != tt.want {
			t.Errorf("ToRGB(FromHex(%06x)) = %+v, want %+v", tt.hex, got, tt.want)
		}
		if p&^RGBMask != 0 {
			t.Errorf("FromHex(%06x) = %#x sets bits outside RGBMask", tt.hex, p)
		}
	}

	if Active.Info().BitsR == 8 {
		if got := ToHex(FromHex(0x123456)); got != 0x123456 {
			t.Errorf("ToHex(FromHex(0x123456)) = %06x", got)
		}
	}
}

func TestBlue(t *testing.T) {
	p := FromRGB(10, 20, 0xff)
	if got := Blue(p); got != ToRGB(p).B {
		t.Errorf("Blue = %d, want %d", got, ToRGB(p).B)
	}
}

func TestColorInterop(t *testing.T) {
	p := FromColor(color.RGBA{R: 0xff, A: 0xff})
	if p != FromHex(0xFF0000) {
		t.Errorf("FromColor(red) = %#x, want %#x", p, FromHex(0xFF0000))
	}

	// Pixel itself is a color.Color.
	if got := FromColor(p); got != p {
		t.Errorf("FromColor(Pixel) = %#x, want %#x", got, p)
	}
	if _, _, _, a := p.RGBA(); a != 0xffff {
		t.Errorf("Pixel alpha = %#x, want opaque", a)
	}

	if got := Model.Convert(color.White); got != FromHex(0xFFFFFF) {
		t.Errorf("Model.Convert(white) = %v", got)
	}

	if got := (RGB{R: 1, G: 2, B: 3}).Color(); got != (color.NRGBA{R: 1, G: 2, B: 3, A: 0xff}) {
		t.Errorf("RGB.Color() = %v", got)
	}
}

func TestNamed(t *testing.T) {
	p, ok := Named("red")
	if !ok || p != FromHex(0xFF0000) {
		t.Errorf(`Named("red") = %#x, %v`, p, ok)
	}
	if _, ok := Named("no-such-color"); ok {
		t.Error("Named accepted an unknown name")
	}
}

func TestDefaultKey(t *testing.T) {
	if DefaultKey != FromHex(0xFF00FF) {
		t.Errorf("DefaultKey = %#x", DefaultKey)
	}
}

func TestCheckLayout(t *testing.T) {
	if err := checkLayout(Active.Info()); err != nil {
		t.Fatalf("active layout rejected: %v", err)
	}

	bad := Active.Info()
	bad.ShiftA = bad.ShiftR
	bad.BitsA = 1
	if err := checkLayout(bad); !errors.Is(err, ErrInvalidLayout) {
		t.Errorf("overlapping alpha: err = %v, want ErrInvalidLayout", err)
	}

	bad = Active.Info()
	bad.BitsPerPixel = 24
	if err := checkLayout(bad); !errors.Is(err, ErrInvalidLayout) {
		t.Errorf("wrong width: err = %v, want ErrInvalidLayout", err)
	}

	bad = Active.Info()
	bad.ShiftG++
	if err := checkLayout(bad); !errors.Is(err, ErrInvalidLayout) {
		t.Errorf("mismatched shift: err = %v, want ErrInvalidLayout", err)
	}
}

func TestFormatInfo(t *testing.T) {
	tests := []struct {
		f     Format
		bpp   int
		alpha bool
		name  string
	}{
		{RGB565, 2, false, "RGB565"},
		{RGBA5551, 2, true, "RGBA5551"},
		{RGBA8888, 4, true, "RGBA8888"},
		{ARGB8888, 4, true, "ARGB8888"},
		{ABGR8888, 4, true, "ABGR8888"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.f.IsValid() {
				t.Fatal("IsValid = false")
			}
			if got := tt.f.BytesPerPixel(); got != tt.bpp {
				t.Errorf("BytesPerPixel = %d, want %d", got, tt.bpp)
			}
			if got := tt.f.HasAlpha(); got != tt.alpha {
				t.Errorf("HasAlpha = %v, want %v", got, tt.alpha)
			}
			if got := tt.f.String(); got != tt.name {
				t.Errorf("String = %q, want %q", got, tt.name)
			}
		})
	}

	if formatCount.IsValid() || formatCount.String() != "Unknown" {
		t.Error("formatCount reported as a valid format")
	}
	if (formatCount.Info() != FormatInfo{}) {
		t.Error("unknown format has a non-zero FormatInfo")
	}
}
