package grammarbridge

import "errors"

var (
	// ErrCallbackNil is returned when New is called without a log callback.
	ErrCallbackNil = errors.New("log callback cannot be nil")
)
