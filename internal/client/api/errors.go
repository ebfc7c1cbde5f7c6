package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/iudanet/depotsync/internal/models"
)

var (
	// ErrTransient retry-eligible failure: network, timeout, 5xx
	ErrTransient = errors.New("transient remote failure")

	// ErrPermanent non-retryable failure: the remote rejected the data
	ErrPermanent = errors.New("permanent remote failure")

	// ErrNotConfigured remote URL or key is missing
	ErrNotConfigured = errors.New("remote credentials not configured")
)

// ErrorKind classification of a remote failure
type ErrorKind int

const (
	KindTransient ErrorKind = iota + 1
	KindPermanent
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransient:
		return "transient"
	case KindPermanent:
		return "permanent"
	}
	return "unknown"
}

// RemoteError failure of one remote call.
// errors.Is matches ErrTransient or ErrPermanent according to Kind.
type RemoteError struct {
	Err        error
	Table      string
	Op         string
	Message    string
	StatusCode int
	Kind       ErrorKind
}

func (e *RemoteError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s: %s (%d): %s", e.Op, e.Table, e.Kind, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s %s: %s: %s", e.Op, e.Table, e.Kind, msg)
}

func (e *RemoteError) Unwrap() []error {
	sentinel := ErrTransient
	if e.Kind == KindPermanent {
		sentinel = ErrPermanent
	}
	if e.Err == nil {
		return []error{sentinel}
	}
	return []error{sentinel, e.Err}
}

// IsTransient reports whether err should leave the entry pending.
// Unclassified errors count as transient: they must never drop data.
func IsTransient(err error) bool {
	return err != nil && !IsPermanent(err)
}

// IsPermanent reports whether the entry can never succeed as stored.
func IsPermanent(err error) bool {
	return errors.Is(err, ErrPermanent) || errors.Is(err, models.ErrMalformedPayload)
}

// classifyStatus maps a non-2xx status code onto a failure kind.
// 401/403 stay transient: stale credentials get fixed by the operator and
// the queue must survive until then.
func classifyStatus(code int) ErrorKind {
	switch {
	case code == http.StatusRequestTimeout,
		code == http.StatusTooManyRequests,
		code == http.StatusUnauthorized,
		code == http.StatusForbidden,
		code >= 500:
		return KindTransient
	case code >= 400:
		return KindPermanent
	}
	return KindTransient
}

// Reachable reports whether err still proves the remote answered.
// Any HTTP response below 500 means the backend is up.
func Reachable(err error) bool {
	if err == nil {
		return true
	}
	var re *RemoteError
	if errors.As(err, &re) {
		return re.StatusCode > 0 && re.StatusCode < 500
	}
	return false
}
