package logbridge

import (
	"sync/atomic"
	"unicode/utf8"
)

const (
	// MaxMessageBytes is the longest message delivered unchanged.
	MaxMessageBytes = 4096

	// truncateAt is where oversized messages are cut before the marker is appended.
	truncateAt = 4000

	truncatedMarker = "... [truncated]"
)

// Callback receives one log record. It is called synchronously and may be
// called from several goroutines at once.
type Callback func(level Level, message string)

// Slot holds at most one Callback. The zero value is an empty slot ready for use.
type Slot struct {
	cb atomic.Pointer[Callback]
}

// Register replaces the current callback with cb. A nil cb empties the slot.
func (s *Slot) Register(cb Callback) {
	if cb == nil {
		s.cb.Store(nil)
		return
	}
	s.cb.Store(&cb)
}

// Registered reports whether a callback is currently held.
func (s *Slot) Registered() bool {
	return s.cb.Load() != nil
}

// Send delivers a record to the current callback. It returns false when the
// slot is empty or the level is not valid.
func (s *Slot) Send(level Level, message string) bool {
	cb := s.cb.Load()
	if cb == nil || !level.Valid() {
		return false
	}

	(*cb)(level, truncate(message))
	return true
}

// truncate shortens oversized messages, cutting on a rune boundary.
func truncate(message string) string {
	if len(message) <= MaxMessageBytes {
		return message
	}

	cut := truncateAt
	for cut > 0 && !utf8.RuneStart(message[cut]) {
		cut--
	}
	return message[:cut] + truncatedMarker
}

// defaultSlot is the process-wide slot shared by the engine and the host.
var defaultSlot Slot

// Register stores cb in the process-wide slot, replacing any earlier
// callback. Passing nil deregisters. Register must run before InitLogging
// for initialization records to reach the host.
func Register(cb Callback) { defaultSlot.Register(cb) }

// HasCallback reports whether the process-wide slot holds a callback.
func HasCallback() bool { return defaultSlot.Registered() }

// Send delivers a record through the process-wide slot.
func Send(level Level, message string) bool { return defaultSlot.Send(level, message) }

// Default returns the process-wide slot.
func Default() *Slot { return &defaultSlot }
