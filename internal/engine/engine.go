package engine

// Engine is the stateful keystroke-transformation facade: one Engine holds
// exactly one word's worth of in-progress buffer plus the current
// method/enabled/modern settings. It is not safe for concurrent use from
// multiple goroutines; callers serialize access (see internal/ffi).
//
// Plain letters are always appended to the buffer as-is — a syllable never
// splits mid-word just because the letters typed so far don't yet form a
// legal combination (iê only becomes legal once the second 'e' doubles
// into a circumflex; until then "ie" sits in the buffer unjudged). Only a
// modifier keystroke goes through applyModifier, where tone and vowel-mark
// keys pass the validation gate and a đ toggle needs a 'd' to act on; only
// a modifier can be rejected and fall back to a literal.
type Engine struct {
	method    Method
	enabled   bool
	modern    bool
	buf       *Buffer
	rendered  string
	shortcuts *ShortcutTable
}

// NewEngine returns a ready-to-use Engine: Telex, enabled, modern tone
// placement, empty buffer.
func NewEngine() *Engine {
	return &Engine{
		method:    MethodTelex,
		enabled:   true,
		modern:    true,
		buf:       NewBuffer(),
		shortcuts: NewShortcutTable(),
	}
}

// SetMethod switches the active input method, discarding any syllable in
// progress (a partially-typed Telex syllable has no sound VNI reading).
func (e *Engine) SetMethod(m Method) EditOperation {
	op := e.Clear()
	e.method = m
	return op
}

// SetEnabled toggles whether Process transforms keystrokes at all.
// Disabling clears the in-progress syllable so re-enabling starts clean.
func (e *Engine) SetEnabled(enabled bool) EditOperation {
	op := e.Clear()
	e.enabled = enabled
	return op
}

// SetModern switches between old-style and modern tone placement for
// medial-glide nuclei (oa/oă/oe/uâ/uê/uy); see Analyse.
func (e *Engine) SetModern(modern bool) {
	e.modern = modern
}

// Shortcuts exposes the engine's shortcut-expansion table for registration.
func (e *Engine) Shortcuts() *ShortcutTable {
	return e.shortcuts
}

// Preedit returns the rendered text of the word currently in progress.
func (e *Engine) Preedit() string {
	return e.rendered
}

// Clear discards the in-progress word, returning the edit needed to erase
// it from the host document.
func (e *Engine) Clear() EditOperation {
	backspace := len([]rune(e.rendered))
	e.buf = NewBuffer()
	e.rendered = ""
	if backspace == 0 {
		return EditOperation{Action: ActionNone}
	}
	return EditOperation{BackspaceCount: uint8(backspace), Action: ActionSend}
}

// Process classifies one keystroke and returns the edit the host should
// apply: delete BackspaceCount trailing code points, then insert Insert.
func (e *Engine) Process(code Keycode, caps, ctrl bool) EditOperation {
	if !e.enabled {
		return EditOperation{Action: ActionNone}
	}
	if ctrl {
		return e.flush()
	}
	switch code {
	case KeycodeBackspace:
		return e.backspace()
	case KeycodeSpace:
		return e.flushWithShortcut()
	case KeycodeReturn, KeycodeTab, KeycodeEscape, KeycodeDelete:
		return e.flush()
	}
	if IsNavigationKey(code) {
		return e.flush()
	}

	letter, ok := KeycodeToLetter(code, caps)
	if !ok {
		return e.flush()
	}

	ev := Classify(letter, e.buf, e.method)
	var nb *Buffer
	if ev.Kind == EventLiteral {
		nb = e.literalStep(ev.Letter)
	} else if applied, ok := applyModifier(e.buf, ev, e.modern); ok {
		nb = applied
	} else {
		nb = e.literalStep(ev.Letter)
	}
	return e.commit(nb)
}

// literalStep appends letter to the buffer unconditionally: whether the
// result reads as a legal Vietnamese syllable is irrelevant here, only the
// modifier keys are gated by validation. The one exception is the
// obligatory "uyê" nucleus mark, inferred rather than requested; see
// autoMarkNucleus.
func (e *Engine) literalStep(letter rune) *Buffer {
	return appendLiteral(e.buf, letter, e.modern)
}

// commit swaps in nb as the active buffer and diffs its rendering against
// what was last sent to the host, producing the minimal backspace+insert.
func (e *Engine) commit(nb *Buffer) EditOperation {
	oldRendered := e.rendered
	newRendered := nb.Render()
	e.buf = nb
	e.rendered = newRendered

	backspace, insert := diffRender(oldRendered, newRendered)
	if backspace == 0 && len(insert) == 0 {
		return EditOperation{Action: ActionNone}
	}
	return EditOperation{BackspaceCount: uint8(backspace), Insert: insert, Action: ActionSend}
}

// diffRender computes the shortest backspace+insert that turns old into new,
// by stripping their common rune prefix.
func diffRender(old, new string) (int, []rune) {
	oldR := []rune(old)
	newR := []rune(new)
	common := 0
	for common < len(oldR) && common < len(newR) && oldR[common] == newR[common] {
		common++
	}
	return len(oldR) - common, newR[common:]
}

// backspace removes the last typed slot, re-analysing and re-rendering the
// remainder; an empty buffer lets the host apply its own native backspace.
func (e *Engine) backspace() EditOperation {
	if e.buf.Len() == 0 {
		return EditOperation{Action: ActionNone}
	}
	nb := e.buf.Clone()
	nb.Pop()
	nb.ClearLastModifier()
	return e.commit(nb)
}

// flush ends the current word without touching the host document: the
// buffer's content is already on screen and simply stops being editable.
func (e *Engine) flush() EditOperation {
	e.buf = NewBuffer()
	e.rendered = ""
	return EditOperation{Action: ActionNone}
}

// flushWithShortcut is flush, but first checks whether the completed word
// is a registered shortcut key and, if so, replaces it in place. This
// differs from a literal per-keystroke lookup in two ways: it only runs at
// the word boundary (space), not after every transformer step, and it
// matches against e.rendered — the already-transformed text — rather than
// the raw untransformed keys. A shortcut key containing letters the
// transformer would otherwise mark or tone (e.g. typed "dd", which renders
// as "đ") only matches if its entry is registered in rendered form.
func (e *Engine) flushWithShortcut() EditOperation {
	word := e.rendered
	if word == "" {
		return EditOperation{Action: ActionNone}
	}
	if expansion, ok := e.shortcuts.Lookup(word); ok {
		backspace := len([]rune(word))
		e.buf = NewBuffer()
		e.rendered = ""
		return EditOperation{BackspaceCount: uint8(backspace), Insert: []rune(expansion), Action: ActionSend}
	}
	return e.flush()
}
