// Package ffi is the concurrency and lifetime boundary between the pure Go
// engine package and a C ABI (or D-Bus) caller. The whole input pipeline is
// single-threaded by construction — one keystroke is fully processed before
// the next is accepted — but a foreign caller has no way to express that
// guarantee, so every entry point here takes a single package-level mutex
// around one process-wide engine singleton. Init/Release bracket the
// singleton's lifetime; the other six entry points operate within it and
// copy their EditOperation result out by value, so nothing here holds a Go
// pointer a C caller could retain past the call.
package ffi

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/levanduc/vicore/internal/engine"
)

var (
	mu  sync.Mutex
	eng *engine.Engine
)

// Init creates the singleton engine. Calling it again resets the pipeline
// as if the process had just started.
func Init() {
	mu.Lock()
	defer mu.Unlock()
	eng = engine.NewEngine()
	log.Debug().Msg("ffi: engine initialized")
}

// Release tears down the singleton. Calling any other entry point before
// the next Init is a no-op that reports ActionNone.
func Release() {
	mu.Lock()
	defer mu.Unlock()
	eng = nil
	log.Debug().Msg("ffi: engine released")
}

// SetMethod switches the active input method. vni selects VNI; false
// selects Telex.
func SetMethod(vni bool) engine.EditOperation {
	mu.Lock()
	defer mu.Unlock()
	if eng == nil {
		return engine.EditOperation{}
	}
	m := engine.MethodTelex
	if vni {
		m = engine.MethodVNI
	}
	return eng.SetMethod(m)
}

// SetEnabled toggles whether keystrokes are transformed at all.
func SetEnabled(enabled bool) engine.EditOperation {
	mu.Lock()
	defer mu.Unlock()
	if eng == nil {
		return engine.EditOperation{}
	}
	return eng.SetEnabled(enabled)
}

// SetModern switches old-style vs. modern tone placement for medial-glide
// nuclei. It never produces an edit: it only affects syllables typed after
// the call.
func SetModern(modern bool) {
	mu.Lock()
	defer mu.Unlock()
	if eng == nil {
		return
	}
	eng.SetModern(modern)
}

// Clear discards the in-progress syllable and returns the edit that erases
// it from the host document.
func Clear() engine.EditOperation {
	mu.Lock()
	defer mu.Unlock()
	if eng == nil {
		return engine.EditOperation{}
	}
	return eng.Clear()
}

// Process classifies one keystroke and returns the resulting edit
// operation. requestID is a uuid minted per call purely for structured-log
// correlation, so a multi-key-sequence bug can be traced through the log
// stream call by call.
func Process(keycode uint16, caps, ctrl bool) engine.EditOperation {
	mu.Lock()
	defer mu.Unlock()
	requestID := uuid.NewString()
	if eng == nil {
		log.Warn().Str("request_id", requestID).Msg("ffi: process called before init")
		return engine.EditOperation{}
	}
	op := eng.Process(engine.Keycode(keycode), caps, ctrl)
	log.Debug().
		Str("request_id", requestID).
		Uint16("keycode", keycode).
		Uint8("action", uint8(op.Action)).
		Uint8("backspace_count", op.BackspaceCount).
		Int("insert_len", len(op.Insert)).
		Msg("ffi: processed keystroke")
	return op
}

// Preedit returns the text of the syllable currently in progress. It has no
// counterpart in the fixed-size C ABI (a host driving that ABI tracks
// preedit itself from the edit stream) but is useful to a Go-native or
// D-Bus caller that wants to display composition state directly.
func Preedit() string {
	mu.Lock()
	defer mu.Unlock()
	if eng == nil {
		return ""
	}
	return eng.Preedit()
}
