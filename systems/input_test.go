package systems

import "testing"

func TestRepeatFires(t *testing.T) {
	const delay, interval = 15, 4
	tests := []struct {
		held int
		want bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{15, false},
		{16, false},
		{19, true},
		{20, false},
		{23, true},
		{27, true},
	}
	for _, tt := range tests {
		if got := repeatFires(tt.held, delay, interval); got != tt.want {
			t.Errorf("repeatFires(%d) = %v, want %v", tt.held, got, tt.want)
		}
	}
}

func TestRepeatFiresWithoutInterval(t *testing.T) {
	for held := 2; held < 100; held++ {
		if repeatFires(held, 0, 0) {
			t.Fatalf("repeatFires(%d) fired with repeat disabled", held)
		}
	}
	if !repeatFires(1, 0, 0) {
		t.Fatal("first tick of a press must fire")
	}
}
