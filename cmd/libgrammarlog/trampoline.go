//go:build cgo

package main

// Go cannot call a C function pointer directly, and a file with //export may
// only declare C functions, so the call lives here.

/*
#include <stdint.h>

typedef void (*grammar_log_callback)(int32_t level, const char *message);

void grammar_call_log_callback(grammar_log_callback cb, int32_t level, const char *message) {
	cb(level, message);
}
*/
import "C"
