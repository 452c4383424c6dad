package spotify

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the catalog has no entity for the given id.
var ErrNotFound = errors.New("spotify: not found")

// APIError marks a Spotify request that failed for a reason other than a
// missing entity: exhausted retries, an unrecoverable client error, or a
// token fetch failure. Callers can use errors.As to tell upstream faults
// apart from their own.
type APIError struct {
	URL string
	Err error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("spotify: request to %s failed: %v", e.URL, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}
