package grammarbridge

import (
	"log/slog"

	"github.com/textwarden/grammarbridge/logbridge"
)

// DefaultNamespace is used when no explicit namespace is provided.
const DefaultNamespace = "grammar"

// Config provides configuration options for bridge initialization.
type Config struct {
	// Namespace controls the waPC namespace used by capability clients.
	// If empty, DefaultNamespace is used.
	Namespace string

	// Callback receives every log record the engine emits.
	Callback logbridge.Callback

	// Logging configures the engine logger created during New.
	Logging logbridge.InitOptions

	// Initializer runs logging initialization. Nil means the process-wide
	// initializer, so only the first Bridge in a process initializes logging.
	Initializer *logbridge.Initializer
}

// RuntimeConfig carries configuration that is used during creation of capability clients.
type RuntimeConfig struct {
	// Namespace is the waPC namespace used to scope host interactions.
	Namespace string
}

// Bridge represents initialized engine logging with a registered host callback.
type Bridge struct {
	// runtime holds the current runtime configuration snapshot.
	runtime RuntimeConfig

	// logger is the engine logger returned by the initializer.
	logger *slog.Logger
}

// New registers the callback and initializes engine logging.
func New(config Config) (*Bridge, error) {
	// Validate Callback is not empty
	if config.Callback == nil {
		return nil, ErrCallbackNil
	}

	// Create runtime configuration with defaults
	cfg := RuntimeConfig{Namespace: DefaultNamespace}

	// Override defaults with provided configuration
	if config.Namespace != "" {
		cfg.Namespace = config.Namespace
	}

	// Register first; records emitted before registration are lost
	slot := config.Logging.Slot
	if slot == nil {
		slot = logbridge.Default()
	}
	slot.Register(config.Callback)

	initializer := config.Initializer
	if initializer == nil {
		initializer = logbridge.DefaultInitializer()
	}

	return &Bridge{
		runtime: cfg,
		logger:  initializer.Init(config.Logging),
	}, nil
}

// Config returns the current runtime configuration snapshot.
func (b *Bridge) Config() RuntimeConfig { return b.runtime }

// Logger returns the engine logger.
func (b *Bridge) Logger() *slog.Logger { return b.logger }
