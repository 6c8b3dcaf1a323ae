package version

import "testing"

func TestInfo_String(t *testing.T) {
	tests := []struct {
		name     string
		info     Info
		expected string
	}{
		{
			name:     "release build",
			info:     Info{Commit: "a1b2c3d", SaveMarker: "RLG327-S2017", SaveVersion: 0, MapWidth: 160, MapHeight: 105},
			expected: "rlg327 a1b2c3d, save RLG327-S2017 v0, map 160x105",
		},
		{
			name:     "local build",
			info:     Info{SaveMarker: "RLG327-S2017", SaveVersion: 1, MapWidth: 80, MapHeight: 21},
			expected: "rlg327 dev, save RLG327-S2017 v1, map 80x21",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestString(t *testing.T) {
	old := Commit
	defer func() { Commit = old }()

	Commit = "feedbee"
	want := "rlg327 feedbee, save RLG327-S2017 v0, map 160x105"
	if got := String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
