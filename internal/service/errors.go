package service

import "errors"

var (
	// ErrInvalid marks a request missing a required field.
	ErrInvalid = errors.New("invalid")
	// ErrForbidden marks a file operation outside the caller's namespace.
	ErrForbidden = errors.New("forbidden")
)

// UpstreamError wraps a failure from the object store, the mail transport
// or the identity provider. The wrapped message reaches the client as-is;
// nothing upstream is retried.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func upstream(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}
