package store

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotFound is returned when a referenced user, review, or catalog
// entity does not exist in the store.
var ErrNotFound = errors.New("store: not found")

// InvalidArgumentError reports a request the store refuses to apply:
// a missing id, an out-of-range rating, a self-follow.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "store: invalid argument: " + e.Reason
}

func invalidArgf(format string, args ...any) error {
	return &InvalidArgumentError{Reason: fmt.Sprintf(format, args...)}
}

// IsInvalidArgument reports whether err is an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var ia *InvalidArgumentError
	return errors.As(err, &ia)
}

// ExternalServiceError wraps a failure of the underlying document store.
// Write failures are always surfaced through this type, never swallowed.
type ExternalServiceError struct {
	Op  string
	Err error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}

// wrapStoreErr translates a Firestore error into the store taxonomy,
// mapping the SDK's NotFound code onto ErrNotFound.
func wrapStoreErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return &ExternalServiceError{Op: op, Err: err}
}
