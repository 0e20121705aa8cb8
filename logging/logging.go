package logging

import (
	grammarbridge "github.com/textwarden/grammarbridge"
	"github.com/textwarden/grammarbridge/logbridge"
	"github.com/textwarden/grammarbridge/metrics"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

const (
	capabilityName = "logging"
	fnRecord       = "Record"
)

// HostCall defines the waPC host function signature used by logging operations.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Config controls how a Client instance interacts with the host runtime.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig grammarbridge.RuntimeConfig

	// HostCall overrides the waPC host function used for logging operations.
	HostCall HostCall

	// Structured sends every record to the host "Record" function as an
	// encoded logbridge.Record instead of calling one function per level.
	Structured bool

	// Metrics, when set, counts records per level and observes message sizes.
	Metrics *metrics.LogMetrics
}

// Client forwards bridge records to the waPC host. Its Log method is a
// logbridge.Callback.
type Client struct {
	runtime    grammarbridge.RuntimeConfig
	hostCall   HostCall
	structured bool
	metrics    *metrics.LogMetrics
}

// New creates a Client that emits logs through the configured host capability.
func New(cfg Config) (*Client, error) {
	runtimeCfg := cfg.SDKConfig
	if runtimeCfg.Namespace == "" {
		runtimeCfg.Namespace = grammarbridge.DefaultNamespace
	}

	hostCall := cfg.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	c := &Client{
		runtime:    runtimeCfg,
		hostCall:   hostCall,
		structured: cfg.Structured,
		metrics:    cfg.Metrics,
	}

	return c, nil
}

// Error sends an ERROR record to the host.
func (c *Client) Error(message string) { c.Log(logbridge.LevelError, message) }

// Warn sends a WARN record to the host.
func (c *Client) Warn(message string) { c.Log(logbridge.LevelWarn, message) }

// Info sends an INFO record to the host.
func (c *Client) Info(message string) { c.Log(logbridge.LevelInfo, message) }

// Debug sends a DEBUG record to the host.
func (c *Client) Debug(message string) { c.Log(logbridge.LevelDebug, message) }

// Trace sends a TRACE record to the host.
func (c *Client) Trace(message string) { c.Log(logbridge.LevelTrace, message) }

// Log sends one record to the host as a best-effort call. Invalid levels are
// dropped.
func (c *Client) Log(level logbridge.Level, message string) {
	if !level.Valid() {
		return
	}

	if c.structured {
		rec := logbridge.Record{Level: level, Message: message}
		_, _ = c.hostCall(c.runtime.Namespace, capabilityName, fnRecord, rec.Marshal())
	} else {
		_, _ = c.hostCall(c.runtime.Namespace, capabilityName, functionName(level), []byte(message))
	}

	if c.metrics != nil {
		c.metrics.Log(level, message)
	}
}

// functionName maps a level onto the host function that receives it.
func functionName(level logbridge.Level) string {
	switch level {
	case logbridge.LevelError:
		return "Error"
	case logbridge.LevelWarn:
		return "Warn"
	case logbridge.LevelInfo:
		return "Info"
	case logbridge.LevelDebug:
		return "Debug"
	default:
		return "Trace"
	}
}
