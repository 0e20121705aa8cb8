// Package otelsink forwards grammar engine log records into an OpenTelemetry
// logger so a host that already exports telemetry gets engine logs with the
// rest of its signals.
package otelsink

import (
	"context"
	"strings"
	"time"

	"github.com/textwarden/grammarbridge/logbridge"
	otellog "go.opentelemetry.io/otel/log"
	logglobal "go.opentelemetry.io/otel/log/global"
)

const (
	// ScopeName is the instrumentation scope used when no Logger is supplied.
	ScopeName = "github.com/textwarden/grammarbridge"

	// AttrSource marks every record as coming from the engine.
	AttrSource = "log.source"

	// AttrTarget carries the "[target]" prefix parsed off the message.
	AttrTarget = "engine.target"

	sourceValue = "grammar-engine"
)

// Config controls where a Sink emits records.
type Config struct {
	// Logger receives the records. When nil, a logger is taken from
	// LoggerProvider.
	Logger otellog.Logger

	// LoggerProvider supplies the logger when Logger is nil. When both are
	// nil the global provider is used.
	LoggerProvider otellog.LoggerProvider

	// Scope overrides ScopeName.
	Scope string
}

// Sink converts bridge records into OpenTelemetry log records.
type Sink struct {
	logger otellog.Logger
}

// New creates a Sink.
func New(cfg Config) *Sink {
	logger := cfg.Logger
	if logger == nil {
		provider := cfg.LoggerProvider
		if provider == nil {
			provider = logglobal.GetLoggerProvider()
		}
		scope := cfg.Scope
		if scope == "" {
			scope = ScopeName
		}
		logger = provider.Logger(scope)
	}
	return &Sink{logger: logger}
}

// Log emits one record. Its signature matches logbridge.Callback.
func (s *Sink) Log(level logbridge.Level, message string) {
	if !level.Valid() {
		return
	}

	ctx := context.Background()
	severity := Severity(level)
	if !s.logger.Enabled(ctx, otellog.EnabledParameters{Severity: severity}) {
		return
	}

	target, body := splitTarget(message)
	now := time.Now().UTC()

	var record otellog.Record
	record.SetTimestamp(now)
	record.SetObservedTimestamp(now)
	record.SetSeverity(severity)
	record.SetSeverityText(level.String())
	record.SetBody(otellog.StringValue(body))
	record.AddAttributes(otellog.String(AttrSource, sourceValue))
	if target != "" {
		record.AddAttributes(otellog.String(AttrTarget, target))
	}
	s.logger.Emit(ctx, record)
}

// Severity maps a bridge level onto the OpenTelemetry severity number.
func Severity(level logbridge.Level) otellog.Severity {
	switch level {
	case logbridge.LevelError:
		return otellog.SeverityError
	case logbridge.LevelWarn:
		return otellog.SeverityWarn
	case logbridge.LevelInfo:
		return otellog.SeverityInfo
	case logbridge.LevelDebug:
		return otellog.SeverityDebug
	default:
		return otellog.SeverityTrace
	}
}

// splitTarget separates a leading "[target] " from the message.
func splitTarget(message string) (string, string) {
	if !strings.HasPrefix(message, "[") {
		return "", message
	}
	end := strings.Index(message, "] ")
	if end <= 1 {
		return "", message
	}
	target := message[1:end]
	if strings.ContainsAny(target, "[\n") {
		return "", message
	}
	return target, message[end+2:]
}
