/*
Package logbridge forwards log records emitted by the grammar engine to the
host application through a single registered callback.

A host registers one Callback with Register before the engine initializes its
logging. Every record the engine emits afterwards is delivered synchronously
as a (Level, message) pair. There is exactly one slot: registering again
replaces the previous callback, and registering nil stops delivery. Records
emitted while nothing is registered are dropped; they are never queued or
replayed.

The callback may be invoked from any goroutine, including several at once.
Implementations guard their own state. A callback that blocks stalls the
emitting goroutine, and a callback that panics takes the engine down with it.

Engine code logs through log/slog. NewLogger and InitLogging build a logger
whose Handler formats records as "[target] message key=value" and sends them
through the slot, optionally mirroring them to a console writer.

Quick start

	logbridge.Register(func(level logbridge.Level, message string) {
	  fmt.Printf("%s %s\n", level, message)
	})

	logger := logbridge.InitLogging(logbridge.InitOptions{Level: "debug"})
	logger.Info("dictionary loaded", "words", 5120)
*/
package logbridge
