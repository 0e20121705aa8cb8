package logbridge

import (
	"context"
	"log/slog"
	"strings"
)

// TargetKey is the attribute key that overrides the handler's target for a
// record or for a derived logger.
const TargetKey = "target"

// HandlerOptions configures a Handler.
type HandlerOptions struct {
	// Level is the most verbose level forwarded. The zero value forwards
	// ERROR only.
	Level Level

	// Target names the emitting component and is rendered as "[target] ".
	Target string

	// TrimPrefix is removed from the start of every target.
	TrimPrefix string

	// Slot receives the formatted records. Nil means the process-wide slot.
	Slot *Slot
}

type field struct {
	key   string
	value string
}

// Handler is a slog.Handler that formats records into a single message line
// and sends them through a Slot.
type Handler struct {
	slot       *Slot
	min        Level
	target     string
	trimPrefix string
	prefix     string
	fields     []field
}

// Ensure Handler always satisfies slog.Handler at compile time.
var _ slog.Handler = (*Handler)(nil)

// NewHandler creates a Handler. A nil opts behaves like the zero HandlerOptions.
func NewHandler(opts *HandlerOptions) *Handler {
	if opts == nil {
		opts = &HandlerOptions{}
	}

	slot := opts.Slot
	if slot == nil {
		slot = Default()
	}

	return &Handler{
		slot:       slot,
		min:        opts.Level,
		target:     opts.Target,
		trimPrefix: opts.TrimPrefix,
	}
}

// Enabled reports whether records at level pass the handler's minimum.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return FromSlog(level).Enabled(h.min)
}

// Handle formats r and sends it. Records are dropped silently when no
// callback is registered.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	if !h.slot.Registered() {
		return nil
	}

	target := h.target
	fields := make([]field, 0, len(h.fields)+r.NumAttrs())
	fields = append(fields, h.fields...)
	r.Attrs(func(a slog.Attr) bool {
		fields, target = appendAttr(fields, target, h.prefix, a)
		return true
	})

	h.slot.Send(FromSlog(r.Level), h.format(target, r.Message, fields))
	return nil
}

// WithAttrs returns a Handler that adds attrs to every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	h2 := *h
	h2.fields = make([]field, 0, len(h.fields)+len(attrs))
	h2.fields = append(h2.fields, h.fields...)
	for _, a := range attrs {
		h2.fields, h2.target = appendAttr(h2.fields, h2.target, h.prefix, a)
	}
	return &h2
}

// WithGroup returns a Handler that qualifies later attribute keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

func (h *Handler) format(target, message string, fields []field) string {
	var b strings.Builder
	b.Grow(len(target) + len(message) + 16*len(fields) + 3)

	if t := strings.TrimPrefix(target, h.trimPrefix); t != "" {
		b.WriteByte('[')
		b.WriteString(t)
		b.WriteString("] ")
	}
	b.WriteString(message)

	for _, f := range fields {
		if s := b.String(); s != "" && s[len(s)-1] != ' ' {
			b.WriteByte(' ')
		}
		b.WriteString(f.key)
		b.WriteByte('=')
		b.WriteString(f.value)
	}
	return b.String()
}

// appendAttr flattens a into fields. A top-level TargetKey attribute replaces
// target instead of becoming a field.
func appendAttr(fields []field, target, prefix string, a slog.Attr) ([]field, string) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields, target
	}

	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		if len(group) == 0 {
			return fields, target
		}
		next := prefix
		if a.Key != "" {
			next = prefix + a.Key + "."
		}
		for _, ga := range group {
			fields, target = appendAttr(fields, target, next, ga)
		}
		return fields, target
	}

	if prefix == "" && a.Key == TargetKey {
		return fields, a.Value.String()
	}

	return append(fields, field{key: prefix + a.Key, value: a.Value.String()}), target
}
