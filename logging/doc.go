/*
Package logging forwards grammar engine log records to a waPC host.

When the engine runs as a WebAssembly guest, the host cannot hand it a native
function pointer. Instead the host registers capability functions, and a
Client's Log method is registered as the bridge callback:

	client, _ := logging.New(logging.Config{})
	logbridge.Register(client.Log)

By default each record calls the host function named after its level (Error,
Warn, Info, Debug, Trace) with the raw message bytes. With Structured set,
every record goes to the single Record function as an encoded
logbridge.Record. Host calls are best-effort and their errors are discarded,
matching the bridge's no-retry contract.

When Config.Metrics is set the client also counts records per level and
observes message sizes through the metrics capability.
*/
package logging
