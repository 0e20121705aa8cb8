/*
Package metrics reports grammar engine log volume from a waPC guest to its
host runtime.

LogMetrics increments one counter per level (grammar_log_<level>_total by
default) and observes each message's size in bytes on a histogram
(grammar_log_message_bytes). Payloads are protobuf messages sent over waPC
host calls.

Reporting is best-effort: Log does not return errors, and marshal or
host-call failures are swallowed so that metrics never interfere with log
delivery. LogMetrics.Log has the logbridge.Callback signature, so it can be
used directly as a bridge callback or wrapped by the logging client.
*/
package metrics
