package engine

import "unicode"

// BufferCapacity bounds a Buffer's length; no Vietnamese syllable comes
// close to using it.
const BufferCapacity = 64

// Buffer is an ordered, fixed-capacity sequence of Slots holding at most
// one syllable in progress.
type Buffer struct {
	slots        []Slot
	lastModifier ModifierEvent
	hasLast      bool
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{slots: make([]Slot, 0, BufferCapacity)}
}

// Len reports the number of slots currently held.
func (b *Buffer) Len() int { return len(b.slots) }

// Slots returns the underlying slots for read-only iteration.
func (b *Buffer) Slots() []Slot { return b.slots }

// At returns the slot at i.
func (b *Buffer) At(i int) Slot { return b.slots[i] }

// Append adds a slot if capacity allows; returns false if the buffer is full.
func (b *Buffer) Append(s Slot) bool {
	if len(b.slots) >= BufferCapacity {
		return false
	}
	b.slots = append(b.slots, s)
	return true
}

// Pop removes the last slot, if any.
func (b *Buffer) Pop() {
	if len(b.slots) == 0 {
		return
	}
	b.slots = b.slots[:len(b.slots)-1]
}

// Replace overwrites the slot at i.
func (b *Buffer) Replace(i int, s Slot) {
	b.slots[i] = s
}

// Clear empties the buffer and the undo-on-repeat memory.
func (b *Buffer) Clear() {
	b.slots = b.slots[:0]
	b.hasLast = false
	b.lastModifier = ModifierEvent{}
}

// Clone returns a deep copy, used by the transformer to build a hypothetical
// post-transform buffer before committing it.
func (b *Buffer) Clone() *Buffer {
	nb := &Buffer{
		slots:        make([]Slot, len(b.slots), BufferCapacity),
		lastModifier: b.lastModifier,
		hasLast:      b.hasLast,
	}
	copy(nb.slots, b.slots)
	return nb
}

// LastModifier returns the last accepted modifier event and whether one is
// recorded, used for undo-on-repeat.
func (b *Buffer) LastModifier() (ModifierEvent, bool) {
	return b.lastModifier, b.hasLast
}

// SetLastModifier records the most recently accepted modifier.
func (b *Buffer) SetLastModifier(ev ModifierEvent) {
	b.lastModifier = ev
	b.hasLast = true
}

// ClearLastModifier forgets the recorded modifier, e.g. after a literal
// letter is accepted or on a word boundary.
func (b *Buffer) ClearLastModifier() {
	b.hasLast = false
	b.lastModifier = ModifierEvent{}
}

// Render composes the buffer into precomposed Vietnamese Unicode text.
func (b *Buffer) Render() string {
	out := make([]rune, 0, len(b.slots))
	for _, s := range b.slots {
		out = append(out, renderSlot(s))
	}
	return string(out)
}

// renderSlot composes a single slot's base+mark+tone into one precomposed
// scalar. Every reachable (base, mark, tone) combination here has an entry
// because the validator rejects any buffer state that would not.
func renderSlot(s Slot) rune {
	if s.IsD {
		if unicode.IsUpper(s.Base) {
			return 'Đ'
		}
		return 'đ'
	}
	base := s.Base
	if marks, ok := vowelMarkTable[base]; ok {
		if marked, ok := marks[s.Mark]; ok {
			base = marked
		}
	}
	if tones, ok := vowelToneTable[base]; ok {
		if toned, ok := tones[s.Tone]; ok {
			return toned
		}
	}
	return base
}

// vowelMarkTable: base vowel -> mark -> marked vowel (tone-less).
var vowelMarkTable = map[rune]map[VowelMark]rune{
	'a': {MarkNone: 'a', MarkBreve: 'ă', MarkCircumflex: 'â'},
	'A': {MarkNone: 'A', MarkBreve: 'Ă', MarkCircumflex: 'Â'},
	'e': {MarkNone: 'e', MarkCircumflex: 'ê'},
	'E': {MarkNone: 'E', MarkCircumflex: 'Ê'},
	'o': {MarkNone: 'o', MarkCircumflex: 'ô', MarkHorn: 'ơ'},
	'O': {MarkNone: 'O', MarkCircumflex: 'Ô', MarkHorn: 'Ơ'},
	'u': {MarkNone: 'u', MarkHorn: 'ư'},
	'U': {MarkNone: 'U', MarkHorn: 'Ư'},
	'i': {MarkNone: 'i'}, 'I': {MarkNone: 'I'},
	'y': {MarkNone: 'y'}, 'Y': {MarkNone: 'Y'},
}

// vowelToneTable: marked (or plain) vowel -> tone -> precomposed code point.
// Every combination reachable through vowelMarkTable above has a full row
// here, so rendering never has to fall back to combining marks.
var vowelToneTable = map[rune]map[Tone]rune{
	'a': {ToneNone: 'a', ToneAcute: 'á', ToneGrave: 'à', ToneHook: 'ả', ToneTilde: 'ã', ToneDot: 'ạ'},
	'A': {ToneNone: 'A', ToneAcute: 'Á', ToneGrave: 'À', ToneHook: 'Ả', ToneTilde: 'Ã', ToneDot: 'Ạ'},
	'ă': {ToneNone: 'ă', ToneAcute: 'ắ', ToneGrave: 'ằ', ToneHook: 'ẳ', ToneTilde: 'ẵ', ToneDot: 'ặ'},
	'Ă': {ToneNone: 'Ă', ToneAcute: 'Ắ', ToneGrave: 'Ằ', ToneHook: 'Ẳ', ToneTilde: 'Ẵ', ToneDot: 'Ặ'},
	'â': {ToneNone: 'â', ToneAcute: 'ấ', ToneGrave: 'ầ', ToneHook: 'ẩ', ToneTilde: 'ẫ', ToneDot: 'ậ'},
	'Â': {ToneNone: 'Â', ToneAcute: 'Ấ', ToneGrave: 'Ầ', ToneHook: 'Ẩ', ToneTilde: 'Ẫ', ToneDot: 'Ậ'},
	'e': {ToneNone: 'e', ToneAcute: 'é', ToneGrave: 'è', ToneHook: 'ẻ', ToneTilde: 'ẽ', ToneDot: 'ẹ'},
	'E': {ToneNone: 'E', ToneAcute: 'É', ToneGrave: 'È', ToneHook: 'Ẻ', ToneTilde: 'Ẽ', ToneDot: 'Ẹ'},
	'ê': {ToneNone: 'ê', ToneAcute: 'ế', ToneGrave: 'ề', ToneHook: 'ể', ToneTilde: 'ễ', ToneDot: 'ệ'},
	'Ê': {ToneNone: 'Ê', ToneAcute: 'Ế', ToneGrave: 'Ề', ToneHook: 'Ể', ToneTilde: 'Ễ', ToneDot: 'Ệ'},
	'i': {ToneNone: 'i', ToneAcute: 'í', ToneGrave: 'ì', ToneHook: 'ỉ', ToneTilde: 'ĩ', ToneDot: 'ị'},
	'I': {ToneNone: 'I', ToneAcute: 'Í', ToneGrave: 'Ì', ToneHook: 'Ỉ', ToneTilde: 'Ĩ', ToneDot: 'Ị'},
	'o': {ToneNone: 'o', ToneAcute: 'ó', ToneGrave: 'ò', ToneHook: 'ỏ', ToneTilde: 'õ', ToneDot: 'ọ'},
	'O': {ToneNone: 'O', ToneAcute: 'Ó', ToneGrave: 'Ò', ToneHook: 'Ỏ', ToneTilde: 'Õ', ToneDot: 'Ọ'},
	'ô': {ToneNone: 'ô', ToneAcute: 'ố', ToneGrave: 'ồ', ToneHook: 'ổ', ToneTilde: 'ỗ', ToneDot: 'ộ'},
	'Ô': {ToneNone: 'Ô', ToneAcute: 'Ố', ToneGrave: 'Ồ', ToneHook: 'Ổ', ToneTilde: 'Ỗ', ToneDot: 'Ộ'},
	'ơ': {ToneNone: 'ơ', ToneAcute: 'ớ', ToneGrave: 'ờ', ToneHook: 'ở', ToneTilde: 'ỡ', ToneDot: 'ợ'},
	'Ơ': {ToneNone: 'Ơ', ToneAcute: 'Ớ', ToneGrave: 'Ờ', ToneHook: 'Ở', ToneTilde: 'Ỡ', ToneDot: 'Ợ'},
	'u': {ToneNone: 'u', ToneAcute: 'ú', ToneGrave: 'ù', ToneHook: 'ủ', ToneTilde: 'ũ', ToneDot: 'ụ'},
	'U': {ToneNone: 'U', ToneAcute: 'Ú', ToneGrave: 'Ù', ToneHook: 'Ủ', ToneTilde: 'Ũ', ToneDot: 'Ụ'},
	'ư': {ToneNone: 'ư', ToneAcute: 'ứ', ToneGrave: 'ừ', ToneHook: 'ử', ToneTilde: 'ữ', ToneDot: 'ự'},
	'Ư': {ToneNone: 'Ư', ToneAcute: 'Ứ', ToneGrave: 'Ừ', ToneHook: 'Ử', ToneTilde: 'Ữ', ToneDot: 'Ự'},
	'y': {ToneNone: 'y', ToneAcute: 'ý', ToneGrave: 'ỳ', ToneHook: 'ỷ', ToneTilde: 'ỹ', ToneDot: 'ỵ'},
	'Y': {ToneNone: 'Y', ToneAcute: 'Ý', ToneGrave: 'Ỳ', ToneHook: 'Ỷ', ToneTilde: 'Ỹ', ToneDot: 'Ỵ'},
}

// HasPrecomposedForm reports whether (base, mark, tone) has a precomposed
// Unicode scalar, used by the validator's rule (f).
func HasPrecomposedForm(base rune, mark VowelMark, tone Tone) bool {
	marks, ok := vowelMarkTable[base]
	if !ok {
		return tone == ToneNone // consonants never carry tone/mark
	}
	marked, ok := marks[mark]
	if !ok {
		return false
	}
	tones, ok := vowelToneTable[marked]
	if !ok {
		return tone == ToneNone
	}
	_, ok = tones[tone]
	return ok
}

// IsVowelBase reports whether r (case-folded) is one of a/e/i/o/u/y, the
// only letters that may carry a tone or vowel mark.
func IsVowelBase(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
