package netcomponents

import (
	"math"
	"testing"
)

func TestPlayerMove(t *testing.T) {
	tests := []struct {
		dir          Direction
		wantX, wantY float64
		wantOK       bool
	}{
		{DirUp, 0, -10, true},
		{DirDown, 0, 10, true},
		{DirLeft, -10, 0, true},
		{DirRight, 10, 0, true},
		{Direction("north"), 0, 0, false},
		{Direction(""), 0, 0, false},
	}

	for _, tt := range tests {
		p := NewPlayer(PlayerAttrs{ID: "a"})
		ok := p.Move(tt.dir, 10)
		if ok != tt.wantOK {
			t.Fatalf("Move(%q) ok = %v, want %v", tt.dir, ok, tt.wantOK)
		}
		if p.X != tt.wantX || p.Y != tt.wantY {
			t.Fatalf("Move(%q) = (%v,%v), want (%v,%v)", tt.dir, p.X, p.Y, tt.wantX, tt.wantY)
		}
	}
}

func TestPlayerMoveIsUnbounded(t *testing.T) {
	p := NewPlayer(PlayerAttrs{ID: "a", X: 5, Y: 5})
	for i := 0; i < 100; i++ {
		p.Move(DirLeft, 10)
	}
	if p.X != -995 {
		t.Fatalf("X = %v, want -995", p.X)
	}
}

func TestPlayerMoveRefusesNonFiniteResult(t *testing.T) {
	p := NewPlayer(PlayerAttrs{ID: "a", X: 1e308, Y: 7})
	if p.Move(DirRight, 1e308) {
		t.Fatal("Move overflowing to +Inf reported success")
	}
	if p.X != 1e308 || p.Y != 7 {
		t.Fatalf("position changed to (%v,%v)", p.X, p.Y)
	}
	if p.Move(DirUp, math.NaN()) {
		t.Fatal("Move by NaN reported success")
	}
}

func TestNewPlayerClampsNegativeScore(t *testing.T) {
	p := NewPlayer(PlayerAttrs{ID: "a", Score: -3})
	if p.Score != 0 {
		t.Fatalf("Score = %d, want 0", p.Score)
	}
}

func TestPlayerIntersectsCollectible(t *testing.T) {
	coin := NewCollectible(CollectibleAttrs{ID: 1000, X: 50, Y: 50, Value: 1})

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"same origin", 50, 50, true},
		{"overlapping from top-left", 21, 21, true},
		{"touching from left", 20, 50, false},
		{"touching from above", 50, 20, false},
		{"touching coin right edge", 70, 50, false},
		{"far away", 300, 300, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(PlayerAttrs{ID: "a", X: tt.x, Y: tt.y})
			if got := p.Intersects(coin); got != tt.want {
				t.Fatalf("Intersects = %v, want %v", got, tt.want)
			}
			if got := Intersects(coin, p); got != tt.want {
				t.Fatalf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlayersIntersectEachOther(t *testing.T) {
	a := NewPlayer(PlayerAttrs{ID: "a"})
	b := NewPlayer(PlayerAttrs{ID: "b", X: 29})
	c := NewPlayer(PlayerAttrs{ID: "c", X: 30})
	if !a.Intersects(b) {
		t.Fatal("expected a and b to overlap")
	}
	if a.Intersects(c) {
		t.Fatal("expected a and c to only touch")
	}
}
