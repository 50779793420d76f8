// Command libvicore builds a C-callable shared library exposing the
// keystroke engine over a fixed-size ABI: vicore_init, vicore_set_method,
// vicore_set_enabled, vicore_set_modern, vicore_clear, vicore_process and
// vicore_release. Build with `go build -buildmode=c-shared`.
package main

/*
#include <stdint.h>

typedef struct {
	uint8_t action;
	uint8_t backspace_count;
	uint8_t insert_len;
	uint8_t _reserved;
	uint32_t insert[32];
} vicore_edit_t;
*/
import "C"

import (
	"github.com/levanduc/vicore/internal/engine"
	"github.com/levanduc/vicore/internal/ffi"
)

// vicore_init must be called once before any other entry point.
//
//export vicore_init
func vicore_init() {
	ffi.Init()
}

// vicore_release tears down the engine. No other entry point is valid
// until vicore_init is called again.
//
//export vicore_release
func vicore_release() {
	ffi.Release()
}

//export vicore_set_method
func vicore_set_method(vni C.int, out *C.vicore_edit_t) {
	fill(ffi.SetMethod(vni != 0), out)
}

//export vicore_set_enabled
func vicore_set_enabled(enabled C.int, out *C.vicore_edit_t) {
	fill(ffi.SetEnabled(enabled != 0), out)
}

//export vicore_set_modern
func vicore_set_modern(modern C.int) {
	ffi.SetModern(modern != 0)
}

//export vicore_clear
func vicore_clear(out *C.vicore_edit_t) {
	fill(ffi.Clear(), out)
}

//export vicore_process
func vicore_process(keycode C.uint16_t, caps C.int, ctrl C.int, out *C.vicore_edit_t) {
	fill(ffi.Process(uint16(keycode), caps != 0, ctrl != 0), out)
}

// fill copies a Go EditOperation into the caller-allocated fixed-size C
// struct, truncating Insert to the struct's 32-codepoint capacity (no
// Vietnamese syllable under transformation ever needs more than a handful).
func fill(op engine.EditOperation, out *C.vicore_edit_t) {
	if out == nil {
		return
	}
	*out = C.vicore_edit_t{}
	out.action = C.uint8_t(op.Action)
	out.backspace_count = C.uint8_t(op.BackspaceCount)

	n := len(op.Insert)
	if n > 32 {
		n = 32
	}
	out.insert_len = C.uint8_t(n)
	for i := 0; i < n; i++ {
		out.insert[i] = C.uint32_t(op.Insert[i])
	}
}

func main() {}
