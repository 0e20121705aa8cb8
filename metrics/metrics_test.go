package metrics

import (
	"errors"
	"reflect"
	"testing"

	proto "github.com/tarmac-project/protobuf-go/sdk/metrics"
	grammarbridge "github.com/textwarden/grammarbridge"
	"github.com/textwarden/grammarbridge/hostmock"
	"github.com/textwarden/grammarbridge/logbridge"
)

func TestNew(t *testing.T) {
	t.Parallel()

	customHostCall := func(string, string, string, []byte) ([]byte, error) {
		return nil, nil
	}

	tt := []struct {
		name        string
		namespace   string
		prefix      string
		hostCall    HostCall
		wantNS      string
		wantErr     error
		wantSizes   string
		wantHostPtr uintptr
	}{
		{
			name:      "defaults",
			wantNS:    grammarbridge.DefaultNamespace,
			wantSizes: "grammar_log_message_bytes",
		},
		{
			name:        "custom namespace, prefix and host call",
			namespace:   "custom",
			prefix:      "engine:log",
			hostCall:    customHostCall,
			wantNS:      "custom",
			wantSizes:   "engine:log_message_bytes",
			wantHostPtr: reflect.ValueOf(customHostCall).Pointer(),
		},
		{name: "dashed prefix", prefix: "grammar-log", wantErr: ErrInvalidMetricName},
		{name: "whitespace prefix", prefix: " \n\t ", wantErr: ErrInvalidMetricName},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m, err := New(Config{
				SDKConfig: grammarbridge.RuntimeConfig{Namespace: tc.namespace},
				HostCall:  tc.hostCall,
				Prefix:    tc.prefix,
			})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("unexpected error: want %v got %v", tc.wantErr, err)
			}
			if err != nil {
				return
			}

			if m.namespace != tc.wantNS {
				t.Fatalf("namespace mismatch: want %q, got %q", tc.wantNS, m.namespace)
			}
			if m.SizeName() != tc.wantSizes {
				t.Fatalf("size metric mismatch: want %q, got %q", tc.wantSizes, m.SizeName())
			}
			if tc.wantHostPtr != 0 {
				if got := reflect.ValueOf(m.hostCall).Pointer(); got != tc.wantHostPtr {
					t.Fatalf("hostcall pointer mismatch: want %v, got %v", tc.wantHostPtr, got)
				}
			}
		})
	}
}

func TestCounterNames(t *testing.T) {
	t.Parallel()

	m, err := New(Config{HostCall: func(string, string, string, []byte) ([]byte, error) { return nil, nil }})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	tt := []struct {
		level logbridge.Level
		want  string
	}{
		{logbridge.LevelError, "grammar_log_error_total"},
		{logbridge.LevelWarn, "grammar_log_warn_total"},
		{logbridge.LevelInfo, "grammar_log_info_total"},
		{logbridge.LevelDebug, "grammar_log_debug_total"},
		{logbridge.LevelTrace, "grammar_log_trace_total"},
		{logbridge.Level(5), ""},
		{logbridge.Level(-1), ""},
	}
	for _, tc := range tt {
		if got := m.CounterName(tc.level); got != tc.want {
			t.Fatalf("CounterName(%s): want %q, got %q", tc.level, tc.want, got)
		}
	}
}

func TestLogReportsCounterAndSize(t *testing.T) {
	t.Parallel()

	mock, err := hostmock.New(hostmock.Config{
		ExpectedNamespace:  "engine",
		ExpectedCapability: capabilityName,
	})
	if err != nil {
		t.Fatalf("failed to create hostmock: %v", err)
	}

	m, err := New(Config{SDKConfig: grammarbridge.RuntimeConfig{Namespace: "engine"}, HostCall: mock.HostCall})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	// Four bytes of UTF-8 for two runes.
	m.Log(logbridge.LevelWarn, "äö")

	calls := mock.Calls()
	if len(calls) != 2 {
		t.Fatalf("expected counter and histogram calls, got %d", len(calls))
	}

	if calls[0].Function != fnCounter {
		t.Fatalf("expected counter call first, got %q", calls[0].Function)
	}
	var counter proto.MetricsCounter
	if err := counter.UnmarshalVT(calls[0].Payload); err != nil {
		t.Fatalf("failed to decode counter payload: %v", err)
	}
	if counter.GetName() != "grammar_log_warn_total" {
		t.Fatalf("counter name mismatch: got %q", counter.GetName())
	}

	if calls[1].Function != fnHistogram {
		t.Fatalf("expected histogram call second, got %q", calls[1].Function)
	}
	var histogram proto.MetricsHistogram
	if err := histogram.UnmarshalVT(calls[1].Payload); err != nil {
		t.Fatalf("failed to decode histogram payload: %v", err)
	}
	if histogram.GetName() != "grammar_log_message_bytes" || histogram.GetValue() != 4 {
		t.Fatalf("unexpected histogram %q=%v", histogram.GetName(), histogram.GetValue())
	}
}

func TestLogAsBridgeCallback(t *testing.T) {
	t.Parallel()

	mock, err := hostmock.New(hostmock.Config{ExpectedCapability: capabilityName})
	if err != nil {
		t.Fatalf("failed to create hostmock: %v", err)
	}

	m, err := New(Config{HostCall: mock.HostCall, Prefix: "guest"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	var slot logbridge.Slot
	slot.Register(m.Log)
	slot.Send(logbridge.LevelError, "index corrupt")
	slot.Send(logbridge.LevelTrace, "")
	m.Log(logbridge.Level(9), "ignored")

	var names []string
	for _, c := range mock.Calls() {
		if c.Function != fnCounter {
			continue
		}
		var counter proto.MetricsCounter
		if err := counter.UnmarshalVT(c.Payload); err != nil {
			t.Fatalf("failed to decode counter payload: %v", err)
		}
		names = append(names, counter.GetName())
	}

	want := []string{"guest_error_total", "guest_trace_total"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("want counters %q, got %q", want, names)
	}
}

func TestHostFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	mock, err := hostmock.New(hostmock.Config{Fail: true, Error: errors.New("host down")})
	if err != nil {
		t.Fatalf("failed to create hostmock: %v", err)
	}

	m, err := New(Config{HostCall: mock.HostCall})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	m.Log(logbridge.LevelInfo, "still delivered elsewhere")

	if got := len(mock.Calls()); got != 2 {
		t.Fatalf("expected both failed calls to be attempted once, got %d", got)
	}
}
