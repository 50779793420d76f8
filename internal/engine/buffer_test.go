package engine

import "testing"

func TestBufferAppendAndRender(t *testing.T) {
	b := NewBuffer()
	b.Append(Slot{Base: 'v'})
	b.Append(Slot{Base: 'i', Tone: ToneAcute})
	b.Append(Slot{Base: 'e', Mark: MarkCircumflex, Tone: ToneDot})
	b.Append(Slot{Base: 't'})

	got := b.Render()
	want := "víệt" // not a real syllable, just exercising independent slot rendering
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestBufferRenderDJ(t *testing.T) {
	b := NewBuffer()
	b.Append(Slot{Base: 'd', IsD: true})
	b.Append(Slot{Base: 'a', Tone: ToneHook})
	if got, want := b.Render(), "đả"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestBufferCapacity(t *testing.T) {
	b := NewBuffer()
	for i := 0; i < BufferCapacity; i++ {
		if !b.Append(Slot{Base: 'a'}) {
			t.Fatalf("Append failed before reaching capacity at i=%d", i)
		}
	}
	if b.Append(Slot{Base: 'a'}) {
		t.Fatal("Append succeeded past capacity")
	}
}

func TestBufferClone(t *testing.T) {
	b := NewBuffer()
	b.Append(Slot{Base: 'a'})
	clone := b.Clone()
	clone.Append(Slot{Base: 'n'})

	if b.Len() != 1 {
		t.Errorf("original buffer mutated: Len() = %d, want 1", b.Len())
	}
	if clone.Len() != 2 {
		t.Errorf("clone.Len() = %d, want 2", clone.Len())
	}
}

func TestBufferLastModifier(t *testing.T) {
	b := NewBuffer()
	if _, ok := b.LastModifier(); ok {
		t.Fatal("LastModifier() ok = true on empty buffer")
	}
	ev := ModifierEvent{Kind: EventTone, Tone: ToneAcute, Letter: 's'}
	b.SetLastModifier(ev)
	got, ok := b.LastModifier()
	if !ok || got != ev {
		t.Errorf("LastModifier() = %v, %v; want %v, true", got, ok, ev)
	}
	b.ClearLastModifier()
	if _, ok := b.LastModifier(); ok {
		t.Fatal("LastModifier() ok = true after ClearLastModifier")
	}
}

func TestHasPrecomposedForm(t *testing.T) {
	tests := []struct {
		base     rune
		mark     VowelMark
		tone     Tone
		expected bool
	}{
		{'a', MarkBreve, ToneAcute, true},
		{'o', MarkHorn, ToneGrave, true},
		{'e', MarkBreve, ToneNone, false}, // no ĕ
		{'b', MarkNone, ToneNone, true},
		{'b', MarkNone, ToneAcute, false},
	}
	for _, tt := range tests {
		if got := HasPrecomposedForm(tt.base, tt.mark, tt.tone); got != tt.expected {
			t.Errorf("HasPrecomposedForm(%c, %v, %v) = %v, want %v", tt.base, tt.mark, tt.tone, got, tt.expected)
		}
	}
}
