package engine

import (
	"testing"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// assertPrecomposedNFC fails t if s is not already in NFC form, or contains
// any combining-mark rune — Render must only ever emit single precomposed
// scalars, never a base letter followed by a combining accent.
func assertPrecomposedNFC(t *testing.T, s string) {
	t.Helper()
	if !norm.NFC.IsNormalString(s) {
		t.Errorf("%q is not NFC-normalized", s)
	}
	for _, r := range s {
		switch unicode.In(r, unicode.Mn, unicode.Mc, unicode.Me) {
		case true:
			t.Errorf("%q contains combining-mark rune %U", s, r)
		}
	}
}

func TestRenderIsPrecomposedNFC(t *testing.T) {
	words := []string{"vieets", "ddoongf", "nghieeng", "xoaif", "quys", "cuar", "hoaf"}
	for _, w := range words {
		buf := typeWord([]rune(w), MethodTelex, true)
		assertPrecomposedNFC(t, buf.Render())
	}
}

func TestRenderEmptyBufferIsNFC(t *testing.T) {
	assertPrecomposedNFC(t, NewBuffer().Render())
}
