package ffi

import "testing"

func TestFFIBeforeInitIsNoop(t *testing.T) {
	Release() // in case an earlier test in this file left the singleton set
	if op := Process(uint16('a'), false, false); op.Action != 0 {
		t.Errorf("Process before Init: Action = %v, want 0", op.Action)
	}
	if op := Clear(); op.Action != 0 {
		t.Errorf("Clear before Init: Action = %v, want 0", op.Action)
	}
	if got := Preedit(); got != "" {
		t.Errorf("Preedit before Init = %q, want empty", got)
	}
	SetModern(false) // must not panic
}

func TestFFIProcessTransformsKeystrokes(t *testing.T) {
	Init()
	defer Release()

	for _, r := range "vieets" {
		Process(uint16(r), false, false)
	}
	if got, want := Preedit(), "viết"; got != want {
		t.Errorf("Preedit = %q, want %q", got, want)
	}
}

func TestFFISetMethodClearsInProgressSyllable(t *testing.T) {
	Init()
	defer Release()

	Process(uint16('v'), false, false)
	Process(uint16('i'), false, false)
	if Preedit() == "" {
		t.Fatal("expected non-empty preedit before SetMethod")
	}

	op := SetMethod(true)
	if op.Action == 0 {
		t.Errorf("SetMethod clearing a non-empty buffer: Action = %v, want non-zero", op.Action)
	}
	if got := Preedit(); got != "" {
		t.Errorf("Preedit after SetMethod = %q, want empty", got)
	}
}

func TestFFISetEnabledFalseStopsTransforming(t *testing.T) {
	Init()
	defer Release()

	SetEnabled(false)
	op := Process(uint16('s'), false, false)
	if op.Action != 0 {
		t.Errorf("Process while disabled: Action = %v, want 0", op.Action)
	}
	if got := Preedit(); got != "" {
		t.Errorf("Preedit while disabled = %q, want empty", got)
	}
}

func TestFFIReleaseThenProcessIsNoop(t *testing.T) {
	Init()
	Release()

	op := Process(uint16('a'), false, false)
	if op.Action != 0 {
		t.Errorf("Process after Release: Action = %v, want 0", op.Action)
	}
}
