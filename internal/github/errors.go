package github

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is wrapped by errors for operations the API does not offer.
	ErrUnsupported = errors.New("unsupported operation")
	// ErrNoNumber is returned when an operation needs a persisted issue.
	ErrNoNumber = errors.New("issue has no number")
)

// ErrorKind classifies a service failure.
type ErrorKind int

const (
	KindTransport ErrorKind = iota
	KindStatus
	KindPermissionDenied
	KindDecode
	KindUnexpectedResponse
	KindUnsupported
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport error"
	case KindStatus:
		return "unexpected status"
	case KindPermissionDenied:
		return "permission denied"
	case KindDecode:
		return "failed to deserialize"
	case KindUnexpectedResponse:
		return "unexpected server response"
	case KindUnsupported:
		return "unsupported operation"
	default:
		return "service failure"
	}
}

// ServiceError is returned by every failing service call.
type ServiceError struct {
	Kind   ErrorKind
	Op     string // e.g. "issues/show"
	Status string // HTTP status line, when a response was received
	Err    error
}

func (e *ServiceError) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Status != "" {
		msg += " (" + e.Status + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// PermissionDeniedError reports that the server rejected the credentials
// (HTTP 401 or 403). It unwraps to the ServiceError it specializes.
type PermissionDeniedError struct {
	Op     string
	Status string
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("%s: permission denied (%s)", e.Op, e.Status)
}

func (e *PermissionDeniedError) Unwrap() error {
	return &ServiceError{Kind: KindPermissionDenied, Op: e.Op, Status: e.Status}
}

// IsPermissionDenied reports whether err is, or wraps, a PermissionDeniedError.
func IsPermissionDenied(err error) bool {
	_, ok := errors.AsType[*PermissionDeniedError](err)
	return ok
}

// IsServiceError reports whether err is, or wraps, a ServiceError of any kind.
func IsServiceError(err error) bool {
	_, ok := errors.AsType[*ServiceError](err)
	return ok
}

// KindOf returns the kind of the outermost ServiceError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	if se, ok := errors.AsType[*ServiceError](err); ok {
		return se.Kind, true
	}
	return 0, false
}

func unsupported(op string) error {
	return &ServiceError{Kind: KindUnsupported, Op: op, Err: ErrUnsupported}
}
