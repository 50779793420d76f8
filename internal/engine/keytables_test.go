package engine

import "testing"

func TestClassifyTelexTones(t *testing.T) {
	buf := bufOf("ba")
	tests := []struct {
		key  rune
		tone Tone
	}{
		{'s', ToneAcute}, {'f', ToneGrave}, {'r', ToneHook},
		{'x', ToneTilde}, {'j', ToneDot},
	}
	for _, tt := range tests {
		ev := classifyTelex(tt.key, buf)
		if ev.Kind != EventTone || ev.Tone != tt.tone {
			t.Errorf("classifyTelex(%c) = %+v, want tone %v", tt.key, ev, tt.tone)
		}
		if ev.Letter != tt.key {
			t.Errorf("classifyTelex(%c).Letter = %c, want raw key preserved", tt.key, ev.Letter)
		}
	}
}

func TestClassifyTelexDoubling(t *testing.T) {
	tests := []struct {
		buf  *Buffer
		key  rune
		kind EventKind
		mark VowelMark
	}{
		{bufOf("a"), 'a', EventVowelMark, MarkCircumflex},
		{bufOf("e"), 'e', EventVowelMark, MarkCircumflex},
		{bufOf("o"), 'o', EventVowelMark, MarkCircumflex},
		{bufOf("a"), 'w', EventVowelMark, MarkBreve},
		{bufOf("o"), 'w', EventVowelMark, MarkHorn},
		{bufOf("u"), 'w', EventVowelMark, MarkHorn},
	}
	for _, tt := range tests {
		ev := classifyTelex(tt.key, tt.buf)
		if ev.Kind != tt.kind || ev.Mark != tt.mark {
			t.Errorf("classifyTelex(%c) after %q = %+v, want kind %v mark %v",
				tt.key, tt.buf.Render(), ev, tt.kind, tt.mark)
		}
	}
}

func TestClassifyTelexToggleDJ(t *testing.T) {
	buf := bufOf("d")
	ev := classifyTelex('d', buf)
	if ev.Kind != EventToggleDJ {
		t.Errorf("classifyTelex('d') after \"d\" = %+v, want EventToggleDJ", ev)
	}
}

func TestClassifyTelexLiteral(t *testing.T) {
	buf := bufOf("b")
	ev := classifyTelex('c', buf)
	if ev.Kind != EventLiteral || ev.Letter != 'c' {
		t.Errorf("classifyTelex('c') = %+v, want literal 'c'", ev)
	}
}

func TestClassifyVNI(t *testing.T) {
	tests := []struct {
		key  rune
		kind EventKind
	}{
		{'1', EventTone}, {'2', EventTone}, {'3', EventTone},
		{'4', EventTone}, {'5', EventTone}, {'0', EventRemoveDiacritics},
		{'6', EventVowelMark}, {'7', EventVowelMark}, {'8', EventVowelMark},
		{'9', EventToggleDJ}, {'a', EventLiteral},
	}
	for _, tt := range tests {
		ev := classifyVNI(tt.key, nil)
		if ev.Kind != tt.kind {
			t.Errorf("classifyVNI(%c) kind = %v, want %v", tt.key, ev.Kind, tt.kind)
		}
	}
}

func TestKeycodeToLetter(t *testing.T) {
	r, ok := KeycodeToLetter(Keycode('a'), false)
	if !ok || r != 'a' {
		t.Errorf("KeycodeToLetter('a', false) = %c, %v, want a, true", r, ok)
	}
	r, ok = KeycodeToLetter(Keycode('a'), true)
	if !ok || r != 'A' {
		t.Errorf("KeycodeToLetter('a', true) = %c, %v, want A, true", r, ok)
	}
	if _, ok := KeycodeToLetter(KeycodeBackspace, false); ok {
		t.Error("KeycodeToLetter(KeycodeBackspace) ok = true, want false")
	}
}

func TestIsNavigationKey(t *testing.T) {
	if !IsNavigationKey(KeycodeLeft) {
		t.Error("IsNavigationKey(KeycodeLeft) = false, want true")
	}
	if IsNavigationKey(KeycodeSpace) {
		t.Error("IsNavigationKey(KeycodeSpace) = true, want false")
	}
}
