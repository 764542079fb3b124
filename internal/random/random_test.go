package random

import "testing"

func TestLetters(t *testing.T) {
	tests := []struct {
		name    string
		length  uint
		wantErr bool
	}{
		{
			name:    "zero length",
			length:  0,
			wantErr: false,
		},
		{
			name:    "32 length",
			length:  32,
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Letters(tt.length)
			if (err != nil) != tt.wantErr {
				t.Errorf("Letters() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if uint(len(got)) != tt.length {
				t.Errorf("Letters() got length = %v, want length %v", len(got), tt.length)
			}
		})
	}
}

func TestIntBetween(t *testing.T) {
	tests := []struct {
		name string
		low  int
		high int
	}{
		{name: "negative interval", low: -25000, high: -10000},
		{name: "positive interval", low: 5, high: 15},
		{name: "single value", low: 7, high: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				got := IntBetween(tt.low, tt.high)
				if got < tt.low || got > tt.high {
					t.Errorf("IntBetween(%d, %d) = %d, out of range", tt.low, tt.high, got)
				}
			}
		})
	}
}

func TestSample(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	got := Sample(items, 3)
	if len(got) != 3 {
		t.Errorf("Sample() got length = %v, want 3", len(got))
	}
	seen := make(map[string]bool)
	for _, item := range got {
		if seen[item] {
			t.Errorf("Sample() returned duplicate %q", item)
		}
		seen[item] = true
	}

	// Requesting more than available returns everything.
	got = Sample(items, 10)
	if len(got) != len(items) {
		t.Errorf("Sample() got length = %v, want %v", len(got), len(items))
	}
}
