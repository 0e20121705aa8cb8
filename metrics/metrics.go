package metrics

import (
	"errors"
	"fmt"
	"regexp"

	proto "github.com/tarmac-project/protobuf-go/sdk/metrics"
	grammarbridge "github.com/textwarden/grammarbridge"
	"github.com/textwarden/grammarbridge/logbridge"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

const (
	capabilityName = "metrics"
	fnCounter      = "counter"
	fnHistogram    = "histogram"

	// DefaultPrefix starts every metric name when Config.Prefix is empty.
	DefaultPrefix = "grammar_log"
)

var (
	// ErrInvalidMetricName indicates a prefix the host would reject as part of a metric name.
	ErrInvalidMetricName = errors.New("metric name is invalid")

	isMetricNameValid = regexp.MustCompile(`^[a-zA-Z0-9_:]+$`)
)

// HostCall defines the waPC host function signature used by metrics operations.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Config controls how LogMetrics reports to the host runtime.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig grammarbridge.RuntimeConfig

	// HostCall overrides the waPC host function used for metrics operations.
	HostCall HostCall

	// Prefix starts every metric name. Defaults to DefaultPrefix.
	Prefix string
}

// LogMetrics reports log volume to the host: one counter per level and a
// histogram of message sizes in bytes.
type LogMetrics struct {
	namespace string
	hostCall  HostCall

	counters [logbridge.LevelTrace + 1]string
	sizes    string
}

type vtMessage interface {
	MarshalVT() ([]byte, error)
}

// New creates LogMetrics and derives its metric names from the prefix.
func New(config Config) (*LogMetrics, error) {
	prefix := config.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if !isMetricNameValid.MatchString(prefix) {
		return nil, fmt.Errorf("%w: prefix %q", ErrInvalidMetricName, prefix)
	}

	namespace := config.SDKConfig.Namespace
	if namespace == "" {
		namespace = grammarbridge.DefaultNamespace
	}

	hostCall := config.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	m := &LogMetrics{
		namespace: namespace,
		hostCall:  hostCall,
		sizes:     prefix + "_message_bytes",
	}
	for l := logbridge.LevelError; l <= logbridge.LevelTrace; l++ {
		m.counters[l] = fmt.Sprintf("%s_%s_total", prefix, lowerName(l))
	}
	return m, nil
}

// CounterName returns the counter incremented for records at level, or ""
// for an invalid level.
func (m *LogMetrics) CounterName(level logbridge.Level) string {
	if !level.Valid() {
		return ""
	}
	return m.counters[level]
}

// SizeName returns the histogram that observes message sizes.
func (m *LogMetrics) SizeName() string { return m.sizes }

// Log counts one record and observes its size. It matches logbridge.Callback
// so LogMetrics can also be registered on its own. Invalid levels are ignored
// and host failures are swallowed.
func (m *LogMetrics) Log(level logbridge.Level, message string) {
	if !level.Valid() {
		return
	}
	m.send(fnCounter, &proto.MetricsCounter{Name: m.counters[level]})
	m.send(fnHistogram, &proto.MetricsHistogram{Name: m.sizes, Value: float64(len(message))})
}

func (m *LogMetrics) send(function string, msg vtMessage) {
	payload, err := msg.MarshalVT()
	if err != nil {
		return
	}
	_, _ = m.hostCall(m.namespace, capabilityName, function, payload)
}

func lowerName(level logbridge.Level) string {
	switch level {
	case logbridge.LevelError:
		return "error"
	case logbridge.LevelWarn:
		return "warn"
	case logbridge.LevelInfo:
		return "info"
	case logbridge.LevelDebug:
		return "debug"
	default:
		return "trace"
	}
}
