package gamemath

import "testing"

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 30, H: 30}

	tests := []struct {
		name string
		o    Rect
		want bool
	}{
		{"same box", base, true},
		{"contained", Rect{X: 5, Y: 5, W: 5, H: 5}, true},
		{"partial overlap", Rect{X: 20, Y: 20, W: 20, H: 20}, true},
		{"touching right edge", Rect{X: 30, Y: 0, W: 20, H: 20}, false},
		{"touching bottom edge", Rect{X: 0, Y: 30, W: 20, H: 20}, false},
		{"touching left edge", Rect{X: -20, Y: 5, W: 20, H: 20}, false},
		{"touching corner", Rect{X: 30, Y: 30, W: 20, H: 20}, false},
		{"overlap x only", Rect{X: 10, Y: 40, W: 20, H: 20}, false},
		{"overlap y only", Rect{X: 40, Y: 10, W: 20, H: 20}, false},
		{"one unit inside", Rect{X: 29, Y: 29, W: 20, H: 20}, true},
		{"negative coords", Rect{X: -10, Y: -10, W: 11, H: 11}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.o); got != tt.want {
				t.Fatalf("Intersects(%+v) = %v, want %v", tt.o, got, tt.want)
			}
			if got := tt.o.Intersects(base); got != tt.want {
				t.Fatalf("symmetric Intersects(%+v) = %v, want %v", tt.o, got, tt.want)
			}
		})
	}
}
