package engine

import "testing"

func TestIsValidInitial(t *testing.T) {
	tests := []struct {
		s        string
		expected bool
	}{
		{"", true},
		{"ng", true},
		{"ngh", true},
		{"nh", true},
		{"đ", true},
		{"d", true},
		{"qu", true},
		{"x", true},
		{"w", false},
		{"ngg", false},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			if got := IsValidInitial(tt.s); got != tt.expected {
				t.Errorf("IsValidInitial(%q) = %v, want %v", tt.s, got, tt.expected)
			}
		})
	}
}

func TestIsValidNucleus(t *testing.T) {
	tests := []struct {
		s           string
		wantOK      bool
		wantMedial  bool
	}{
		{"a", true, false},
		{"oa", true, true},
		{"uy", true, true},
		{"uyê", true, false},
		{"ion", false, false},
		{"xyz", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			p, ok := IsValidNucleus(tt.s)
			if ok != tt.wantOK {
				t.Fatalf("IsValidNucleus(%q) ok = %v, want %v", tt.s, ok, tt.wantOK)
			}
			if ok && p.medialGlide != tt.wantMedial {
				t.Errorf("IsValidNucleus(%q) medialGlide = %v, want %v", tt.s, p.medialGlide, tt.wantMedial)
			}
		})
	}
}

func TestFinalCompatibleWithNucleus(t *testing.T) {
	tests := []struct {
		final        string
		nucleusLast  rune
		expected     bool
	}{
		{"ch", 'a', true},
		{"ch", 'o', false},
		{"nh", 'i', true},
		{"ng", 'e', false},
		{"ng", 'a', true},
		{"t", 'a', true},
	}
	for _, tt := range tests {
		if got := FinalCompatibleWithNucleus(tt.final, tt.nucleusLast); got != tt.expected {
			t.Errorf("FinalCompatibleWithNucleus(%q, %c) = %v, want %v", tt.final, tt.nucleusLast, got, tt.expected)
		}
	}
}

func TestIsToneCompatible(t *testing.T) {
	tests := []struct {
		tone     Tone
		final    string
		expected bool
	}{
		{ToneAcute, "t", true},
		{ToneDot, "c", true},
		{ToneGrave, "p", false},
		{ToneHook, "ch", false},
		{ToneGrave, "n", true},
		{ToneNone, "t", true},
	}
	for _, tt := range tests {
		if got := IsToneCompatible(tt.tone, tt.final); got != tt.expected {
			t.Errorf("IsToneCompatible(%v, %q) = %v, want %v", tt.tone, tt.final, got, tt.expected)
		}
	}
}

func TestFrontBackInitialOK(t *testing.T) {
	tests := []struct {
		initial  string
		vowel    rune
		expected bool
	}{
		{"k", 'i', true},
		{"k", 'a', false},
		{"c", 'a', true},
		{"c", 'e', false},
		{"gh", 'e', true},
		{"g", 'e', false},
		{"qu", 'a', true},
	}
	for _, tt := range tests {
		if got := frontBackInitialOK(tt.initial, tt.vowel); got != tt.expected {
			t.Errorf("frontBackInitialOK(%q, %c) = %v, want %v", tt.initial, tt.vowel, got, tt.expected)
		}
	}
}
