/*
Package hostmock provides pretend hosts for the two boundaries this module
crosses: waPC host calls made by the logging and metrics sinks, and the log
callback the engine invokes through logbridge.

Mock stands in for the waPC host. It validates routing, runs an optional
payload validator, returns scripted bytes or failures, and keeps a log of
every call so tests can assert what was sent and in which order.

Recorder stands in for the host's log callback. Register its Callback method
with a logbridge.Slot and read back the records it received.

Quick start

	m, _ := hostmock.New(hostmock.Config{
	  ExpectedNamespace:  "grammar",
	  ExpectedCapability: "logging",
	  PayloadValidator: func(p []byte) error {
	    if len(p) == 0 {
	      return errors.New("empty message")
	    }
	    return nil
	  },
	})
	client, _ := logging.New(logging.Config{HostCall: m.HostCall})

	rec := hostmock.NewRecorder()
	var slot logbridge.Slot
	slot.Register(rec.Callback)

Behavior

  - If Fail is true and Error is set, HostCall returns that error.
  - If Fail is true and Error is nil, HostCall returns ErrOperationFailed.
  - Otherwise, HostCall enforces the Expected* fields that are set and runs
    PayloadValidator when provided. Response (when set) provides the return
    bytes; otherwise it returns nil.
  - Every call is recorded before validation, including failing ones.

Tips

  - Leave Expected* fields blank when you want a wildcard.
  - Use Recorder.WaitFor when records are produced on other goroutines.
*/
package hostmock
