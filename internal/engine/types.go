// Package engine implements the Vietnamese keystroke-transformation core:
// buffer, phonology validator, tone/vowel-mark transformer and shortcut
// expander behind a single process() entry point.
package engine

// Tone is one of the six Vietnamese tones, rendered as a diacritic on the
// tone-bearing vowel. ToneNone is the unmarked "level" tone.
type Tone int

const (
	ToneNone Tone = iota
	ToneAcute
	ToneGrave
	ToneHook
	ToneTilde
	ToneDot
)

// VowelMark modifies a vowel letter independently of tone.
type VowelMark int

const (
	MarkNone VowelMark = iota
	MarkCircumflex // â, ê, ô
	MarkBreve      // ă
	MarkHorn       // ơ, ư
)

// Slot is a single typed buffer position: a base Latin letter plus any
// applied tone and vowel mark.
type Slot struct {
	Base rune      // one Latin letter, case preserved
	Tone Tone      // at most one tone
	Mark VowelMark // at most one vowel mark; only valid when Base is a/e/o/u
	IsD  bool      // true once 'd'/'D' has been toggled to đ/Đ
}

// Letter reports the slot's logical letter before any đ toggling, used by
// callers that need to compare against the raw keystroke that produced it.
func (s Slot) Letter() rune {
	return s.Base
}

// EventKind classifies the meaning of a keypress.
type EventKind int

const (
	EventLiteral EventKind = iota
	EventTone
	EventVowelMark
	EventToggleDJ
	EventRemoveDiacritics
	EventPassthrough
	EventWordBoundary
)

// ModifierEvent is the classified meaning of a keypress. Letter always holds
// the raw keystroke that produced the event, regardless of Kind: the
// transformer's undo-on-repeat path needs the original character to commit
// as a literal when a modifier key is pressed twice in a row.
type ModifierEvent struct {
	Kind   EventKind
	Letter rune      // the raw keystroke, for every Kind
	Tone   Tone      // set when Kind == EventTone
	Mark   VowelMark // set when Kind == EventVowelMark
}

// Action distinguishes what the shell should do with an EditOperation.
type Action uint8

const (
	ActionNone    Action = 0
	ActionSend    Action = 1
	ActionRestore Action = 2
)

// EditOperation is returned to the shell: delete BackspaceCount trailing
// code points from the host document, then insert Insert.
type EditOperation struct {
	BackspaceCount uint8
	Insert         []rune
	Action         Action
}

// Method selects between the two static classification functions.
type Method int

const (
	MethodTelex Method = iota
	MethodVNI
)
