package blend

import "testing"

func TestChannelMath(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"lerp none", lerp(10, 200, 0), 10},
		{"lerp full", lerp(10, 200, MaxAlpha), 200},
		{"lerp half", lerp(0, 200, 128), 100},
		{"lerp down", lerp(200, 0, 128), 100},
		{"quarter", quarter(200, 0), 150},
		{"quarter up", quarter(0, 200), 50},
		{"half", half(100, 201), 150},
		{"three quarters", threeQuarters(0, 200), 150},
		{"three quarters down", threeQuarters(200, 0), 50},
		{"modulate white", modulate(255, 255), 254},
		{"modulate black", modulate(0, 255), 0},
		{"modulate half", modulate(128, 128), 64},
		{"addClamp", addClamp(100, 50), 150},
		{"addClamp saturates", addClamp(200, 100), 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestChannelMathStaysInRange(t *testing.T) {
	for d := 0; d <= 255; d += 5 {
		for s := 0; s <= 255; s += 5 {
			for _, v := range []int{
				lerp(d, s, 0), lerp(d, s, 100), lerp(d, s, MaxAlpha),
				quarter(d, s), half(d, s), threeQuarters(d, s),
				modulate(d, s), addClamp(d, s),
			} {
				if v < 0 || v > 255 {
					t.Fatalf("d=%d s=%d produced %d", d, s, v)
				}
			}
		}
	}
}
