package hostmock

import (
	"sync"
	"time"

	"github.com/textwarden/grammarbridge/logbridge"
)

// Recorder is a host log callback that keeps every record it receives.
type Recorder struct {
	mu      sync.Mutex
	records []logbridge.Record
	changed chan struct{}
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{changed: make(chan struct{})}
}

// Callback stores the record. Its signature matches logbridge.Callback and it
// is safe for concurrent use.
func (r *Recorder) Callback(level logbridge.Level, message string) {
	r.mu.Lock()
	r.records = append(r.records, logbridge.Record{Level: level, Message: message})
	close(r.changed)
	r.changed = make(chan struct{})
	r.mu.Unlock()
}

// Records returns a copy of the received records in arrival order.
func (r *Recorder) Records() []logbridge.Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]logbridge.Record, len(r.records))
	copy(out, r.records)
	return out
}

// Messages returns only the message text of the received records.
func (r *Recorder) Messages() []string {
	records := r.Records()
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.Message
	}
	return out
}

// Len returns the number of received records.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// WaitFor blocks until at least n records arrived or timeout elapses and
// reports whether the count was reached.
func (r *Recorder) WaitFor(n int, timeout time.Duration) bool {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		r.mu.Lock()
		if len(r.records) >= n {
			r.mu.Unlock()
			return true
		}
		changed := r.changed
		r.mu.Unlock()

		select {
		case <-changed:
		case <-deadline.C:
			return false
		}
	}
}
