package engine

import "strings"

// This file enumerates the closed sets that define a legal Vietnamese
// syllable: initial consonants, vowel nuclei (mono-/di-/triphthongs), and
// final consonants, plus the orthographic and tone-final restrictions that
// constrain how they combine. The validator and analyser consult these
// tables for set membership; the few spelling tie-breaks they apply
// themselves (the "gi"/"q" initial scan and glide finals in analyser.go, the
// -ng exception in validator.go) are written inline there.

// initials are the valid Vietnamese initial consonant clusters, lower-case.
var initials = map[string]bool{
	"b": true, "c": true, "ch": true, "d": true, "đ": true, "g": true,
	"gh": true, "gi": true, "h": true, "k": true, "kh": true, "l": true,
	"m": true, "n": true, "ng": true, "ngh": true, "nh": true, "p": true,
	"ph": true, "qu": true, "r": true, "s": true, "t": true, "th": true,
	"tr": true, "v": true, "x": true,
}

// frontVowels are the vowels that force the front-vowel initial variant
// (k/gh/ngh rather than c/g/ng).
var frontVowels = map[rune]bool{
	'e': true, 'ê': true, 'i': true, 'y': true,
}

// nucleusPattern describes one entry in the closed nuclei list.
type nucleusPattern struct {
	letters     string // lower-case canonical form, 1-3 runes
	medialGlide bool   // member of the medial-glide nucleus set (oa, oă, oe, uâ, uê, uy)
}

// nuclei is the closed list of valid vowel clusters: 12 monophthongs,
// ~27 diphthongs (rising, falling, medial-glide), and 10 triphthongs.
var nuclei = []nucleusPattern{
	// 12 monophthongs
	{letters: "a"}, {letters: "ă"}, {letters: "â"}, {letters: "e"}, {letters: "ê"},
	{letters: "i"}, {letters: "o"}, {letters: "ô"}, {letters: "ơ"}, {letters: "u"},
	{letters: "ư"}, {letters: "y"},

	// rising diphthongs (6)
	{letters: "ia"}, {letters: "iê"}, {letters: "ua"}, {letters: "uô"},
	{letters: "ưa"}, {letters: "ươ"},

	// falling diphthongs, ending in -i/-y/-u/-o (15)
	{letters: "ai"}, {letters: "ay"}, {letters: "ao"}, {letters: "au"},
	{letters: "âu"}, {letters: "ây"}, {letters: "eo"}, {letters: "êu"},
	{letters: "iu"}, {letters: "oi"}, {letters: "ôi"}, {letters: "ơi"},
	{letters: "ui"}, {letters: "ưi"}, {letters: "ưu"},

	// medial-glide set (6)
	{letters: "oa", medialGlide: true}, {letters: "oă", medialGlide: true},
	{letters: "oe", medialGlide: true}, {letters: "uâ", medialGlide: true},
	{letters: "uê", medialGlide: true}, {letters: "uy", medialGlide: true},

	// triphthongs (10)
	{letters: "iêu"}, {letters: "yêu"}, {letters: "oai"}, {letters: "oay"},
	{letters: "oeo"}, {letters: "uây"}, {letters: "uôi"}, {letters: "ươi"},
	{letters: "ươu"}, {letters: "uyê"},
}

// nucleiByLetters indexes nuclei by canonical lower-case letters for O(1)
// lookup; built once at init.
var nucleiByLetters = func() map[string]nucleusPattern {
	m := make(map[string]nucleusPattern, len(nuclei))
	for _, n := range nuclei {
		m[n.letters] = n
	}
	return m
}()

// finals are the valid Vietnamese final consonants/glides, lower-case.
var finals = map[string]bool{
	"c": true, "ch": true, "m": true, "n": true, "ng": true, "nh": true,
	"p": true, "t": true,
	// glide finals, only reached when the nucleus does not already end in
	// a glide (a nucleus ending in i/y/o/u absorbs what would otherwise be
	// a glide final, so the two never stack).
	"i": true, "y": true, "o": true, "u": true,
}

// chNhAfter is the set of nucleus-final vowels after which -ch/-nh are legal.
var chNhAfter = map[rune]bool{'a': true, 'ă': true, 'ê': true, 'i': true, 'y': true}

// ngBlockedAfter is the set of nucleus-final vowels after which -ng is illegal.
// Validate applies it to a one-letter nucleus only, so iêng/yêng pass.
var ngBlockedAfter = map[rune]bool{'e': true, 'ê': true}

// acuteOrDotOnlyFinals are finals after which only the acute and dot-below
// tones are legal (Vietnamese entering/checked syllables).
var acuteOrDotOnlyFinals = map[string]bool{"p": true, "t": true, "c": true, "ch": true}

// IsValidInitial reports whether s (case-folded) is a legal initial, empty
// being legal (no initial).
func IsValidInitial(s string) bool {
	if s == "" {
		return true
	}
	return initials[strings.ToLower(normalizeD(s))]
}

// normalizeD folds đ/Đ to d/D purely for set-membership lookups that index
// on the plain-d spelling of an initial such as "d" or "đ".
func normalizeD(s string) string {
	return strings.NewReplacer("đ", "d", "Đ", "D").Replace(s)
}

// IsValidNucleus reports whether s (case-folded) is one of the enumerated
// nuclei, and returns the matching pattern.
func IsValidNucleus(s string) (nucleusPattern, bool) {
	p, ok := nucleiByLetters[strings.ToLower(s)]
	return p, ok
}

// IsValidFinal reports whether s (case-folded) is a legal final.
func IsValidFinal(s string) bool {
	if s == "" {
		return true
	}
	return finals[strings.ToLower(s)]
}

// FinalCompatibleWithNucleus enforces the -ch/-nh and -ng restrictions
// against the last nucleus letter.
func FinalCompatibleWithNucleus(finalLower string, nucleusLastLower rune) bool {
	switch finalLower {
	case "ch", "nh":
		return chNhAfter[nucleusLastLower]
	case "ng":
		return !ngBlockedAfter[nucleusLastLower]
	default:
		return true
	}
}

// IsToneCompatible enforces the tone-final restriction: finals in
// {p, t, c, ch} only accept the acute and dot-below tones.
func IsToneCompatible(tone Tone, finalLower string) bool {
	if !acuteOrDotOnlyFinals[finalLower] {
		return true
	}
	return tone == ToneNone || tone == ToneAcute || tone == ToneDot
}

// frontBackInitialOK enforces the c/k/q, g/gh, ng/ngh disjoint-on-vowel
// orthographic rule: front-vowel variants (k, gh, ngh) before e/ê/i/y,
// back-vowel variants (c, g, ng) otherwise. "qu" is indivisible and always
// legal regardless of the following vowel.
func frontBackInitialOK(initialLower string, firstNucleusLetter rune) bool {
	front := frontVowels[firstNucleusLetter]
	switch initialLower {
	case "c", "g", "ng":
		return !front
	case "k", "gh", "ngh":
		return front
	case "qu":
		return true
	default:
		return true
	}
}
