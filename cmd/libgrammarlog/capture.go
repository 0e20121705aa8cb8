//go:build cgo

package main

// A C callback that keeps a copy of the last record it received, so the
// delivery path can be checked from Go exactly as a native host sees it.

/*
#include <stdint.h>
#include <stdlib.h>
#include <string.h>

typedef void (*grammar_log_callback)(int32_t level, const char *message);

static int grammar_capture_calls;
static int32_t grammar_capture_level = -1;
static char *grammar_capture_message;

void grammar_capture(int32_t level, const char *message) {
	size_t n = strlen(message);
	char *copy = malloc(n + 1);
	memcpy(copy, message, n + 1);
	free(grammar_capture_message);
	grammar_capture_message = copy;
	grammar_capture_level = level;
	grammar_capture_calls++;
}

static void grammar_capture_reset(void) {
	free(grammar_capture_message);
	grammar_capture_message = NULL;
	grammar_capture_level = -1;
	grammar_capture_calls = 0;
}

static int grammar_capture_count(void) { return grammar_capture_calls; }
static int32_t grammar_capture_last_level(void) { return grammar_capture_level; }
static const char *grammar_capture_last_message(void) { return grammar_capture_message; }
*/
import "C"

import (
	"unsafe"

	"github.com/textwarden/grammarbridge/logbridge"
)

// capturedRecord is the last record seen by the capturing C callback.
type capturedRecord struct {
	Calls   int
	Level   logbridge.Level
	Message string
}

// registerCapture resets the capturing callback and registers it through the
// exported ABI.
func registerCapture() {
	C.grammar_capture_reset()
	register_rust_log_callback(C.grammar_log_callback(C.grammar_capture))
}

func lastCaptured() capturedRecord {
	rec := capturedRecord{
		Calls: int(C.grammar_capture_count()),
		Level: logbridge.Level(C.grammar_capture_last_level()),
	}
	if msg := C.grammar_capture_last_message(); msg != nil {
		rec.Message = C.GoString(msg)
	}
	return rec
}

// initializeLoggingWith calls initialize_logging with a C copy of level.
func initializeLoggingWith(level string) {
	clevel := C.CString(level)
	defer C.free(unsafe.Pointer(clevel))
	initialize_logging(clevel)
}
