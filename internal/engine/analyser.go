package engine

import (
	"strings"
	"unicode"
)

// Span is a half-open [start, end) range of buffer slot indices.
type Span [2]int

// Len reports the number of slots the span covers.
func (s Span) Len() int { return s[1] - s[0] }

// Empty reports whether the span covers no slots.
func (s Span) Empty() bool { return s[1] <= s[0] }

// Analysis is the (initial, medial, nucleus, final) partition of a buffer,
// plus the computed tone-bearing slot.
type Analysis struct {
	Initial     Span
	Medial      Span // structurally present for ABI symmetry; always empty, see SPEC_FULL.md §9
	Nucleus     Span
	Final       Span
	NucleusKind nucleusPattern
	ToneSlot    int // index into the buffer; -1 if there is no nucleus to carry a tone
	// Unparseable is true when some trailing slots could not be assigned to
	// any span at all (garbage input, not merely an incomplete-but-legal
	// prefix of a syllable still being typed).
	Unparseable bool
}

// Analyse partitions buf into the four phonological spans and locates the
// tone-bearing slot, honoring the old/new tone-placement style via modern.
func Analyse(buf *Buffer, modern bool) Analysis {
	slots := buf.Slots()
	n := len(slots)
	letters := make([]rune, n)
	for i, s := range slots {
		letters[i] = letterWithMark(s)
	}

	initialEnd := scanInitial(letters)
	nucleusEnd, pattern, foundNucleus := scanNucleus(letters, initialEnd)

	var nucleusLastLower rune
	if foundNucleus && nucleusEnd > initialEnd {
		nucleusLastLower = unicode.ToLower(letters[nucleusEnd-1])
	}

	finalEnd := initialEnd
	if foundNucleus {
		finalEnd = scanFinal(letters, nucleusEnd, n, nucleusLastLower)
	}

	a := Analysis{
		Initial:     Span{0, initialEnd},
		Medial:      Span{initialEnd, initialEnd},
		Nucleus:     Span{initialEnd, initialEnd},
		Final:       Span{initialEnd, initialEnd},
		ToneSlot:    -1,
	}
	if foundNucleus {
		a.Nucleus = Span{initialEnd, nucleusEnd}
		a.Final = Span{nucleusEnd, finalEnd}
		a.NucleusKind = pattern
	}

	consumedEnd := initialEnd
	if foundNucleus {
		consumedEnd = finalEnd
	}
	if consumedEnd != n {
		a.Unparseable = true
		return a
	}

	if foundNucleus && a.Nucleus.Len() > 0 {
		a.ToneSlot = placeToneSlot(slots, a, modern)
	}
	return a
}

// letterWithMark returns a slot's base letter with its vowel mark applied
// (but not its tone), the form phonology tables are keyed on. 'đ' is
// returned for any slot toggled to đ.
func letterWithMark(s Slot) rune {
	if s.IsD {
		if unicode.IsUpper(s.Base) {
			return 'Đ'
		}
		return 'đ'
	}
	if marks, ok := vowelMarkTable[s.Base]; ok {
		if marked, ok := marks[s.Mark]; ok {
			return marked
		}
	}
	return s.Base
}

// scanInitial greedily matches the longest valid initial (3, then 2, then 1
// letters) from the head of letters, with "gi" and lone-"q" tie-breaks: "gi"
// counts as the digraph initial unless followed by "i" (gi+i would leave no
// nucleus), and a lone "q" is tentatively consumed pending a following "u".
func scanInitial(letters []rune) int {
	n := len(letters)
	maxLen := 3
	if n < maxLen {
		maxLen = n
	}
	for l := maxLen; l >= 1; l-- {
		cand := strings.ToLower(normalizeD(string(letters[:l])))
		if l == 2 && cand == "gi" {
			if l == n || unicode.ToLower(letters[l]) != 'i' {
				return l
			}
			continue
		}
		if initials[cand] {
			return l
		}
	}
	if n >= 1 && unicode.ToLower(letters[0]) == 'q' {
		return 1 // tentative lone 'q', pending a following 'u'
	}
	return 0
}

// scanNucleus finds the longest enumerated nucleus cluster starting at start.
func scanNucleus(letters []rune, start int) (end int, pat nucleusPattern, ok bool) {
	n := len(letters)
	maxLen := 3
	if start+maxLen > n {
		maxLen = n - start
	}
	for l := maxLen; l >= 1; l-- {
		cand := string(letters[start : start+l])
		if p, found := IsValidNucleus(cand); found {
			return start + l, p, true
		}
	}
	return start, nucleusPattern{}, false
}

// scanFinal finds the final consonant/glide cluster starting at start,
// skipping a glide final that the nucleus already ends with.
func scanFinal(letters []rune, start, n int, nucleusLastLower rune) int {
	if start >= n {
		return start
	}
	maxLen := 2
	if start+maxLen > n {
		maxLen = n - start
	}
	for l := maxLen; l >= 1; l-- {
		cand := strings.ToLower(string(letters[start : start+l]))
		if !finals[cand] {
			continue
		}
		if isGlideFinal(cand) && isGlideVowel(nucleusLastLower) {
			continue
		}
		return start + l
	}
	return start
}

func isGlideFinal(s string) bool {
	switch s {
	case "i", "y", "o", "u":
		return true
	}
	return false
}

func isGlideVowel(r rune) bool {
	switch r {
	case 'i', 'y', 'o', 'u':
		return true
	}
	return false
}

// hasMarkedNucleusVowel reports whether any nucleus slot already carries a
// vowel mark (ă/â/ê/ô/ơ/ư) — rule 1 of the tone-placement priority list.
func hasMarkedNucleusVowel(slots []Slot, nucleus Span) (int, bool) {
	for i := nucleus[0]; i < nucleus[1]; i++ {
		if slots[i].Mark != MarkNone {
			return i, true
		}
	}
	return -1, false
}

// placeToneSlot implements the five-rule tone placement priority: a vowel
// already carrying a mark wins outright; otherwise a final pulls the tone
// onto the last nucleus slot; otherwise a medial-glide nucleus follows the
// old/modern style switch; otherwise a triphthong takes its middle slot and
// a monophthong its only slot, falling back to the first slot for a falling
// diphthong with no final.
func placeToneSlot(slots []Slot, a Analysis, modern bool) int {
	if i, ok := hasMarkedNucleusVowel(slots, a.Nucleus); ok {
		return i // rule 1
	}
	hasFinal := !a.Final.Empty()
	if hasFinal {
		return a.Nucleus[1] - 1 // rule 2: last vowel slot of the nucleus
	}
	if a.NucleusKind.medialGlide {
		// rule 3: modern places tone on the nucleus (second) slot; old-style
		// places it on the first slot instead.
		if modern {
			return a.Nucleus[1] - 1
		}
		return a.Nucleus[0]
	}
	if a.Nucleus.Len() == 1 {
		return a.Nucleus[0] // rule 5: monophthong
	}
	if a.Nucleus.Len() == 3 {
		// rule 4, triphthong case: every triphthong with no marked vowel
		// (oai, oay, oeo) resolves to the middle slot in practice, e.g.
		// "xoài" and "ngoèo" carry the tone on the middle vowel.
		return a.Nucleus[0] + 1
	}
	return a.Nucleus[0] // rule 4: falling diphthong, no final
}
