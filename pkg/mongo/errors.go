package mongo

import (
	"errors"
	"fmt"
)

// Kind classifies a provider failure.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindConfiguration
	KindConnect
	KindDisconnect
	KindHealthcheck
	KindClosed
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindConnect:
		return "connect"
	case KindDisconnect:
		return "disconnect"
	case KindHealthcheck:
		return "healthcheck"
	case KindClosed:
		return "closed"
	default:
		return "unknown"
	}
}

var (
	// Kind sentinels, matched by errors.Is against any *Error of the same Kind.
	ErrConfiguration     = errors.New("mongo configuration error")
	ErrConnect           = errors.New("failed to connect to mongo")
	ErrDisconnect        = errors.New("failed to disconnect from mongo")
	ErrHealthcheckFailed = errors.New("mongo healthcheck failed")

	ErrMissingConnectionURL     = errors.New("environment variable MONGODB_URL is not set")
	ErrEmptyDatabaseName        = errors.New("database name cannot be blank")
	ErrInvalidCertificateBundle = errors.New("certificate bundle contains no usable certificates")
	ErrProviderClosed           = errors.New("mongo provider is closed")
	ErrNilClient                = errors.New("mongo driver returned nil client")
)

// Error is returned by every Provider operation. Err holds the original cause
// and Op names the operation that failed.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("mongo %s: %s failed", e.Op, e.Kind)
	}
	return fmt.Sprintf("mongo %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindConfiguration:
		return target == ErrConfiguration
	case KindConnect:
		return target == ErrConnect
	case KindDisconnect:
		return target == ErrDisconnect
	case KindHealthcheck:
		return target == ErrHealthcheckFailed
	case KindClosed:
		return target == ErrProviderClosed
	}
	return false
}

// IsConfigurationError reports whether err was caused by missing or invalid configuration.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}
