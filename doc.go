/*
Package grammarbridge connects the grammar engine's logging to a host
application.

New registers the host's log callback and then initializes engine logging, in
that order, so the records emitted during initialization reach the host. The
returned Bridge carries a RuntimeConfig that the waPC capability clients
(logging, metrics) share. DefaultNamespace is used when a namespace is not
explicitly provided.

Lower-level control lives in the logbridge package; sinks that forward records
elsewhere live in logging (waPC host), otelsink (OpenTelemetry) and the C ABI
under cmd/libgrammarlog.
*/
package grammarbridge
