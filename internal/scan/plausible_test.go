package scan

import "testing"

func TestLooksLikeReceipt(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty text", "", false},
		{"price-shaped token", "Bananas 3.99", true},
		{"currency symbol only", "lunch $", true},
		{"euro symbol", "Brötchen €", true},
		{"total keyword", "TOTAL DUE", true},
		{"merchant name", "WALMART SUPERCENTER", true},
		{"payment vocabulary", "paid by visa", true},
		{"food term", "corner coffee shop", true},
		{"unrelated prose", "meeting notes from Monday standup", false},
		{"random characters", "qwpoeiruty zxcvbnm", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooksLikeReceipt(tt.text); got != tt.want {
				t.Errorf("LooksLikeReceipt(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestLooksLikeReceiptNeverPanics(t *testing.T) {
	// Pure heuristic gate: any input must produce a boolean, never a panic.
	inputs := []string{"", "\x00\xff", "\n\n\n", "$$$$", "....", "1.2.3.4"}
	for _, in := range inputs {
		_ = LooksLikeReceipt(in)
	}
}
