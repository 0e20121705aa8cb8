// Command libgrammarlog builds the grammar engine log bridge as a C shared
// library for native hosts:
//
//	go build -buildmode=c-shared -o libgrammarlog.dylib ./cmd/libgrammarlog
//
// The generated header declares
//
//	typedef void (*grammar_log_callback)(int32_t level, const char *message);
//	void register_rust_log_callback(grammar_log_callback callback);
//	bool has_rust_log_callback(void);
//	void initialize_logging(const char *level);
//
// Hosts call register_rust_log_callback before initialize_logging. The
// message pointer is valid only during the callback; copy it to keep it.
// Passing NULL deregisters. Messages containing NUL bytes are dropped.
package main

func main() {}
