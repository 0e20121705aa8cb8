package hostmock

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrUnexpectedNamespace is returned when the namespace is not as expected.
	ErrUnexpectedNamespace = errors.New("unexpected namespace")

	// ErrUnexpectedCapability is returned when the capability is not as expected.
	ErrUnexpectedCapability = errors.New("unexpected capability")

	// ErrUnexpectedFunction is returned when the function is not as expected.
	ErrUnexpectedFunction = errors.New("unexpected function")

	// ErrOperationFailed is returned when Fail is set without a custom error.
	ErrOperationFailed = errors.New("operation failed")
)

// Call is one host invocation as seen by the Mock.
type Call struct {
	Namespace  string
	Capability string
	Function   string
	Payload    []byte
}

// Mock simulates a waPC host with validation, scripted responses and a call log.
type Mock struct {
	// ExpectedNamespace defines the namespace expected in the host call.
	ExpectedNamespace string

	// ExpectedCapability defines the capability expected in the host call.
	ExpectedCapability string

	// ExpectedFunction defines the function name expected in the host call.
	ExpectedFunction string

	// Error is the error to return if the mock is configured to fail.
	Error error

	// PayloadValidator validates the payload passed to the host call.
	PayloadValidator func([]byte) error

	// Response defines the response to return for the host call.
	Response func() []byte

	// Fail indicates whether the mock should return an error.
	Fail bool

	mu    sync.Mutex
	calls []Call
}

// Config represents the configuration for creating a Mock instance.
// Empty Expected* fields match any value.
type Config struct {
	// ExpectedNamespace defines the namespace expected in the host call.
	ExpectedNamespace string

	// ExpectedCapability defines the capability expected in the host call.
	ExpectedCapability string

	// ExpectedFunction defines the function name expected in the host call.
	ExpectedFunction string

	// Error is the error to return if the mock is configured to fail.
	Error error

	// PayloadValidator validates the payload passed to the host call.
	PayloadValidator func([]byte) error

	// Response defines the response to return for the host call.
	Response func() []byte

	// Fail indicates whether the mock should return an error.
	Fail bool
}

// New creates a new instance of the Mock based on the provided Config.
func New(config Config) (*Mock, error) {
	return &Mock{
		ExpectedNamespace:  config.ExpectedNamespace,
		ExpectedCapability: config.ExpectedCapability,
		ExpectedFunction:   config.ExpectedFunction,
		Error:              config.Error,
		Fail:               config.Fail,
		PayloadValidator:   config.PayloadValidator,
		Response:           config.Response,
	}, nil
}

// HostCall records the invocation, validates it and returns the scripted response.
// It is safe for concurrent use.
func (m *Mock) HostCall(namespace, capability, function string, payload []byte) ([]byte, error) {
	m.mu.Lock()
	m.calls = append(m.calls, Call{
		Namespace:  namespace,
		Capability: capability,
		Function:   function,
		Payload:    append([]byte(nil), payload...),
	})
	m.mu.Unlock()

	if m.Fail && m.Error != nil {
		return nil, m.Error
	}
	if m.Fail {
		return nil, ErrOperationFailed
	}

	if m.ExpectedNamespace != "" && m.ExpectedNamespace != namespace {
		return nil, fmt.Errorf(
			"%w: expected namespace %s, got %s",
			ErrUnexpectedNamespace,
			m.ExpectedNamespace,
			namespace,
		)
	}

	if m.ExpectedCapability != "" && m.ExpectedCapability != capability {
		return nil, fmt.Errorf(
			"%w: expected capability %s, got %s",
			ErrUnexpectedCapability,
			m.ExpectedCapability,
			capability,
		)
	}

	if m.ExpectedFunction != "" && m.ExpectedFunction != function {
		return nil, fmt.Errorf("%w: expected function %s, got %s", ErrUnexpectedFunction, m.ExpectedFunction, function)
	}

	if m.PayloadValidator != nil {
		if err := m.PayloadValidator(payload); err != nil {
			return nil, err
		}
	}

	if m.Response != nil {
		return m.Response(), nil
	}
	return nil, nil
}

// Calls returns a copy of every invocation seen so far, in arrival order.
func (m *Mock) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// Reset forgets recorded calls.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}
