package engine

import "unicode"

// applyModifier attempts to apply ev to buf, returning the resulting buffer
// and whether the modifier was accepted. It never mutates buf; callers swap
// their working buffer for the returned one only on success. On rejection
// the caller is expected to fall back to treating ev's raw Letter as a
// literal keystroke instead.
func applyModifier(buf *Buffer, ev ModifierEvent, modern bool) (*Buffer, bool) {
	if last, ok := buf.LastModifier(); ok && sameModifier(last, ev) {
		return undoModifier(buf, ev), true
	}

	switch ev.Kind {
	case EventTone:
		return applyTone(buf, ev, modern)
	case EventVowelMark:
		return applyVowelMark(buf, ev, modern)
	case EventToggleDJ:
		return applyToggleDJ(buf, ev)
	case EventRemoveDiacritics:
		return applyRemoveDiacritics(buf, ev), true
	default:
		return buf, false
	}
}

// sameModifier reports whether ev repeats the buffer's last accepted
// modifier, triggering undo-on-repeat rather than a fresh application.
func sameModifier(last, ev ModifierEvent) bool {
	if last.Kind != ev.Kind {
		return false
	}
	switch ev.Kind {
	case EventTone:
		return last.Tone == ev.Tone
	case EventVowelMark:
		return last.Mark == ev.Mark
	case EventToggleDJ:
		return true
	default:
		return false
	}
}

// undoModifier reverts the effect of the buffer's last modifier and then
// commits the raw keystroke that triggered the repeat as a new literal
// slot: "ass" -> "as" (revert the acute, append literal 's'), "aaa" -> "aa"
// (revert the circumflex, append literal 'a').
func undoModifier(buf *Buffer, ev ModifierEvent) *Buffer {
	nb := buf.Clone()
	switch ev.Kind {
	case EventTone:
		for i := nb.Len() - 1; i >= 0; i-- {
			if nb.At(i).Tone == ev.Tone {
				s := nb.At(i)
				s.Tone = ToneNone
				nb.Replace(i, s)
				break
			}
		}
	case EventVowelMark:
		// Horn can land on two adjacent slots at once (duoc+w -> duo*c with
		// both u and o horned, forming "dươc"); undo reverts every slot
		// carrying the mark, not just the most recent one.
		for i := nb.Len() - 1; i >= 0; i-- {
			if nb.At(i).Mark == ev.Mark {
				s := nb.At(i)
				s.Mark = MarkNone
				nb.Replace(i, s)
			}
		}
	case EventToggleDJ:
		for i := nb.Len() - 1; i >= 0; i-- {
			if nb.At(i).IsD {
				s := nb.At(i)
				s.IsD = false
				nb.Replace(i, s)
				break
			}
		}
	}
	nb.ClearLastModifier()
	nb.Append(literalSlot(ev.Letter))
	return nb
}

func literalSlot(r rune) Slot {
	return Slot{Base: r}
}

// appendLiteral appends letter as a plain slot and resolves the one
// obligatory-mark gap literal typing alone cannot reach (autoMarkNucleus).
func appendLiteral(buf *Buffer, letter rune, modern bool) *Buffer {
	nb := buf.Clone()
	nb.Append(literalSlot(letter))
	nb.ClearLastModifier()
	return autoMarkNucleus(nb, modern)
}

// autoMarkNucleus fixes up the one nucleus that cannot be completed by
// longest-match scanning alone: "uy" is already a complete, valid two-letter
// nucleus, so a bare 'e' typed right after it just sits unconsumed (khuyen,
// nguyen, chuyen...) until the whole buffer reads as unparseable and a tone
// key has nothing legal to land on. There is no bare three-letter "uye"
// spelling to fall back to the way there is for ia/iê, ua/uô, ưa/ươ — so the
// circumflex on that 'e' has to be inferred rather than requested.
//
// The fix only ever extends an already-matched two-letter nucleus. A
// one-letter nucleus (the "i" in "vie", the "u" in "cuo") is deliberately
// left alone: those pairs are reachable through the ordinary circumflex key
// (doubling in Telex, a digit in VNI), and marking them here would land the
// mark before that keystroke arrives, making it look like a no-op repeat and
// rejecting it — breaking "viết", typed "vieets" with an explicit double e.
func autoMarkNucleus(buf *Buffer, modern bool) *Buffer {
	a := Analyse(buf, modern)
	if !a.Unparseable || a.Nucleus.Len() != 2 {
		return buf
	}
	next := a.Nucleus[1]
	if next >= buf.Len() {
		return buf
	}
	s := buf.At(next)
	if s.Mark != MarkNone || !IsVowelBase(s.Base) {
		return buf
	}
	if _, ok := vowelMarkTable[s.Base][MarkCircumflex]; !ok {
		return buf
	}
	marked := s
	marked.Mark = MarkCircumflex
	letters := make([]rune, 0, 3)
	for i := a.Nucleus[0]; i < a.Nucleus[1]; i++ {
		letters = append(letters, letterWithMark(buf.At(i)))
	}
	letters = append(letters, letterWithMark(marked))
	if _, ok := IsValidNucleus(string(letters)); !ok {
		return buf
	}
	nb := buf.Clone()
	nb.Replace(next, marked)
	return nb
}

// applyTone finds the tone-bearing slot under the hypothetical new tone and
// commits it only if the resulting buffer still analyses as valid; this is
// the validation gate.
func applyTone(buf *Buffer, ev ModifierEvent, modern bool) (*Buffer, bool) {
	nb := buf.Clone()
	a := Analyse(nb, modern)
	if a.Unparseable || a.Nucleus.Empty() {
		return buf, false
	}
	// clear any existing tone in the nucleus first, so re-tagging a
	// differently-toned syllable does not stack tones.
	for i := a.Nucleus[0]; i < a.Nucleus[1]; i++ {
		s := nb.At(i)
		if s.Tone != ToneNone {
			s.Tone = ToneNone
			nb.Replace(i, s)
		}
	}
	a = Analyse(nb, modern)
	if a.ToneSlot < 0 {
		return buf, false
	}
	s := nb.At(a.ToneSlot)
	s.Tone = ev.Tone
	nb.Replace(a.ToneSlot, s)

	a = Analyse(nb, modern)
	if ok, _ := Validate(nb, a); !ok {
		return buf, false
	}
	nb.SetLastModifier(ev)
	return nb, true
}

// applyVowelMark applies a circumflex/breve/horn, gated by re-validation of
// the whole buffer. Horn is special-cased: unlike circumflex/breve, which
// always land on a single slot, horn sometimes has to land on two adjacent
// slots at once to spell a legal nucleus (see applyHornMark).
func applyVowelMark(buf *Buffer, ev ModifierEvent, modern bool) (*Buffer, bool) {
	if ev.Mark == MarkHorn {
		return applyHornMark(buf, ev, modern)
	}
	nb := buf.Clone()
	target := -1
	for i := nb.Len() - 1; i >= 0; i-- {
		s := nb.At(i)
		if !IsVowelBase(s.Base) {
			continue
		}
		if _, ok := vowelMarkTable[s.Base][ev.Mark]; ok {
			target = i
			break
		}
	}
	if target < 0 {
		return buf, false
	}
	s := nb.At(target)
	if s.Mark == ev.Mark {
		return buf, false
	}
	s.Mark = ev.Mark
	nb.Replace(target, s)

	a := Analyse(nb, modern)
	if ok, _ := Validate(nb, a); !ok {
		return buf, false
	}
	nb.SetLastModifier(ev)
	return nb, true
}

// applyHornMark handles 'w' (Telex) / '7' (VNI horn on u/o). A lone u or
// o takes the horn on its own slot, but a horn-eligible run of consecutive
// u/o letters sometimes needs its leading 1 or 2 slots marked together to
// spell an enumerated nucleus: typing d-u-o-c then the horn key needs both
// the u and the o horned, typing l-u-u then the horn key needs only the
// first u horned, and typing h-u-o-u then the horn key needs the first two
// of its three u/o letters horned with the trailing u left bare. Candidates
// are tried shortest-prefix-first and the first one that analyses as a
// valid syllable wins.
func applyHornMark(buf *Buffer, ev ModifierEvent, modern bool) (*Buffer, bool) {
	end := -1
	for i := buf.Len() - 1; i >= 0; i-- {
		if IsVowelBase(buf.At(i).Base) {
			end = i
			break
		}
	}
	if end < 0 {
		return buf, false
	}
	start := end
	for start > 0 && IsVowelBase(buf.At(start-1).Base) {
		start--
	}

	for k := 1; k <= end-start+1; k++ {
		nb := buf.Clone()
		feasible := true
		for i := start; i < start+k; i++ {
			s := nb.At(i)
			if _, ok := vowelMarkTable[s.Base][MarkHorn]; !ok {
				feasible = false
				break
			}
			if s.Mark == MarkHorn {
				feasible = false
				break
			}
			s.Mark = MarkHorn
			nb.Replace(i, s)
		}
		if !feasible {
			continue
		}
		a := Analyse(nb, modern)
		if ok, _ := Validate(nb, a); ok {
			nb.SetLastModifier(ev)
			return nb, true
		}
	}
	return buf, false
}

// applyToggleDJ flips the most recent 'd'/'D' slot to đ/Đ, or reverts it if
// already toggled (the repeat-detection above only fires for an identical
// event following an accepted one, so this also serves a same-turn toggle).
func applyToggleDJ(buf *Buffer, ev ModifierEvent) (*Buffer, bool) {
	nb := buf.Clone()
	for i := nb.Len() - 1; i >= 0; i-- {
		s := nb.At(i)
		if unicode.ToLower(s.Base) != 'd' {
			continue
		}
		s.IsD = !s.IsD
		nb.Replace(i, s)
		nb.SetLastModifier(ev)
		return nb, true
	}
	return buf, false
}

// applyRemoveDiacritics strips every tone and vowel mark from the buffer
// (Telex 'z'/VNI '0'), always succeeding since the bare-letter form is
// always a valid (if plain) rendering.
func applyRemoveDiacritics(buf *Buffer, ev ModifierEvent) *Buffer {
	nb := buf.Clone()
	for i := 0; i < nb.Len(); i++ {
		s := nb.At(i)
		if s.Tone != ToneNone || s.Mark != MarkNone {
			s.Tone = ToneNone
			s.Mark = MarkNone
			nb.Replace(i, s)
		}
	}
	nb.SetLastModifier(ev)
	return nb
}
