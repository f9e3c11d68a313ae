package systems

import "testing"

func TestResolveAddr(t *testing.T) {
	const fallback = "localhost:3000"
	tests := []struct {
		name  string
		flag  string
		saved *SavedSettings
		want  string
	}{
		{"nothing set", "", nil, fallback},
		{"empty saved settings", "", &SavedSettings{}, fallback},
		{"saved address", "", &SavedSettings{LastAddr: "arena:4000"}, "arena:4000"},
		{"flag wins over saved", "other:5000", &SavedSettings{LastAddr: "arena:4000"}, "other:5000"},
		{"flag without saved", "ws://host/ws", nil, "ws://host/ws"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveAddr(tt.flag, tt.saved, fallback); got != tt.want {
				t.Fatalf("ResolveAddr = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSettingsWithoutPersistence(t *testing.T) {
	// InitPersistence was never called in this test binary.
	s, err := LoadSettings()
	if s != nil || err != nil {
		t.Fatalf("LoadSettings = %+v, %v; want nil, nil", s, err)
	}
	if err := SaveSettings(&SavedSettings{LastAddr: "x:1"}); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
}
