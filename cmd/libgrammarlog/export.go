//go:build cgo

package main

/*
#include <stdbool.h>
#include <stdint.h>
#include <stdlib.h>

typedef void (*grammar_log_callback)(int32_t level, const char *message);

extern void grammar_call_log_callback(grammar_log_callback cb, int32_t level, const char *message);
*/
import "C"

import (
	"strings"
	"unsafe"

	"github.com/textwarden/grammarbridge/logbridge"
)

// targetPrefix is trimmed from engine targets before they reach the host.
const targetPrefix = "grammar_engine::"

// initializer runs initialize_logging once per process.
var initializer = logbridge.DefaultInitializer()

//export register_rust_log_callback
func register_rust_log_callback(callback C.grammar_log_callback) {
	if callback == nil {
		logbridge.Register(nil)
		return
	}
	logbridge.Register(cCallback(callback))
}

//export has_rust_log_callback
func has_rust_log_callback() C.bool {
	return C.bool(logbridge.HasCallback())
}

//export initialize_logging
func initialize_logging(level *C.char) {
	var name string
	if level != nil {
		name = C.GoString(level)
	}
	initializer.Init(logbridge.InitOptions{Level: name, TrimPrefix: targetPrefix})
}

// cCallback adapts a C function pointer to a logbridge.Callback. The C string
// is freed as soon as the callback returns.
func cCallback(callback C.grammar_log_callback) logbridge.Callback {
	return func(level logbridge.Level, message string) {
		if strings.IndexByte(message, 0) >= 0 {
			return
		}

		cmsg := C.CString(message)
		defer C.free(unsafe.Pointer(cmsg))
		C.grammar_call_log_callback(callback, C.int32_t(level), cmsg)
	}
}
