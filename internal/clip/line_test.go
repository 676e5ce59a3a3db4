package clip

import "testing"

func TestRect_Line(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		want           [4]int
		ok             bool
	}{
		{"inside", 1, 1, 8, 8, [4]int{1, 1, 8, 8}, true},
		{"horizontal through", -5, 3, 20, 3, [4]int{0, 3, 9, 3}, true},
		{"vertical through", 4, -3, 4, 15, [4]int{4, 0, 4, 9}, true},
		{"diagonal through", -5, -5, 15, 15, [4]int{0, 0, 9, 9}, true},
		{"reversed diagonal", 15, 15, -5, -5, [4]int{9, 9, 0, 0}, true},
		{"entirely left", -5, 0, -1, 9, [4]int{}, false},
		{"entirely below", 0, 10, 9, 12, [4]int{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x1, y1, x2, y2, ok := r.Line(tt.x1, tt.y1, tt.x2, tt.y2)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if got := [4]int{x1, y1, x2, y2}; got != tt.want {
				t.Errorf("Line = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_LineEndpointsInside(t *testing.T) {
	r := NewRect(3, 4, 17, 11)

	for x1 := -10; x1 <= 30; x1 += 7 {
		for y2 := -10; y2 <= 30; y2 += 5 {
			a, b, c, d, ok := r.Line(x1, -8, 25, y2)
			if !ok {
				continue
			}
			if !r.Contains(a, b, 1, 1) || !r.Contains(c, d, 1, 1) {
				t.Fatalf("Line(%d, -8, 25, %d) = (%d,%d)-(%d,%d) outside %v", x1, y2, a, b, c, d, r)
			}
		}
	}
}

func TestRect_LineEmpty(t *testing.T) {
	if _, _, _, _, ok := (Rect{}).Line(0, 0, 0, 0); ok {
		t.Error("empty rect accepted a line")
	}
}
