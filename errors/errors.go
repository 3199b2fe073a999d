package errors

import "fmt"

var (
	// ErrIdentityUnavailable blocks outbound actions when the profile
	// fetch failed or the user is unauthenticated. Inbound display is
	// unaffected.
	ErrIdentityUnavailable = fmt.Errorf("chat identity unavailable")

	// ErrHistoryAlreadyLoaded marks the caller error of requesting a
	// room's history page twice in one room lifetime.
	ErrHistoryAlreadyLoaded = fmt.Errorf("history already loaded for this room")

	// ErrHistoryLoad flags a failed history fetch; live messages keep
	// accumulating while it is set.
	ErrHistoryLoad = fmt.Errorf("history load failed")

	// ErrNotConnected is returned when a room session is constructed
	// without a connected transport.
	ErrNotConnected = fmt.Errorf("transport not connected")

	// ErrSessionClosed is returned by operations on a closed room session.
	ErrSessionClosed = fmt.Errorf("room session closed")
)

// ValidationError rejects an outgoing message before any network call.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid message: %s", e.Reason)
}

// NewValidationError builds a ValidationError with a short reason.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// TransportError wraps a connect/send/subscribe failure. Reported to the
// caller, never left to crash the process.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// NewTransportError wraps err with the failing transport operation.
func NewTransportError(op string, err error) *TransportError {
	return &TransportError{Op: op, Err: err}
}
