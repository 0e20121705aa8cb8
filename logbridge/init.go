package logbridge

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	slogmulti "github.com/samber/slog-multi"
)

// EnvLevel overrides InitOptions.Level when set.
const EnvLevel = "GRAMMAR_ENGINE_LOG"

// InitOptions configures the engine logger.
type InitOptions struct {
	// Level is a level name such as "debug" or "warn". Unknown or empty
	// values fall back to info.
	Level string

	// Target is the default "[target] " rendered before each message.
	Target string

	// TrimPrefix is removed from the start of every target.
	TrimPrefix string

	// Console mirrors records as text for local debugging. Nil means os.Stderr.
	Console io.Writer

	// DisableConsole turns the console mirror off.
	DisableConsole bool

	// Slot receives the bridged records. Nil means the process-wide slot.
	Slot *Slot
}

// NewLogger builds a logger that forwards records through the bridge and,
// unless disabled, mirrors them to a console writer.
func NewLogger(opts InitOptions) *slog.Logger {
	level, _ := ParseLevel(opts.Level)

	bridge := NewHandler(&HandlerOptions{
		Level:      level,
		Target:     opts.Target,
		TrimPrefix: opts.TrimPrefix,
		Slot:       opts.Slot,
	})
	if opts.DisableConsole {
		return slog.New(bridge)
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	text := slog.NewTextHandler(console, &slog.HandlerOptions{
		Level:     level.Slog(),
		AddSource: true,
	})

	return slog.New(slogmulti.Fanout(bridge, text))
}

// Initializer runs engine logging initialization at most once. The zero
// value is ready to use.
type Initializer struct {
	once   sync.Once
	logger atomic.Pointer[slog.Logger]
}

// defaultInit backs InitLogging and Initialized.
var defaultInit Initializer

// DefaultInitializer returns the process-wide Initializer used by InitLogging.
func DefaultInitializer() *Initializer { return &defaultInit }

// Init builds the logger on the first call, installs it as the slog default
// and emits the initialization record. Later calls return the first logger
// and ignore opts.
//
// When GRAMMAR_ENGINE_LOG is set it replaces opts.Level for both the bridge
// and the console, and the initialization record reports that value rather
// than the level the caller asked for.
func (i *Initializer) Init(opts InitOptions) *slog.Logger {
	i.once.Do(func() {
		if env := strings.TrimSpace(os.Getenv(EnvLevel)); env != "" {
			opts.Level = env
		}

		logger := NewLogger(opts)
		slog.SetDefault(logger)
		i.logger.Store(logger)

		logger.Info(fmt.Sprintf("Grammar Engine logging initialized at level: %s", opts.Level))
	})
	return i.logger.Load()
}

// Initialized reports whether Init has run.
func (i *Initializer) Initialized() bool {
	return i.logger.Load() != nil
}

// InitLogging initializes engine logging once per process through the
// default Initializer. Callbacks registered after InitLogging only see
// records emitted after their registration. GRAMMAR_ENGINE_LOG replaces the
// requested level outright, see Initializer.Init.
func InitLogging(opts InitOptions) *slog.Logger {
	return defaultInit.Init(opts)
}

// Initialized reports whether InitLogging has run.
func Initialized() bool {
	return defaultInit.Initialized()
}
