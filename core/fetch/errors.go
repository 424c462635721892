package fetch

import "errors"

var (
	// ErrNoProducer is returned by Fetch when no producer has been set.
	ErrNoProducer = errors.New("no producer set")
	// ErrUnexpectedPayload is returned when a producer's (possibly
	// unwrapped) result is not assignable to the fetcher's data type.
	ErrUnexpectedPayload = errors.New("unexpected response payload type")
)

// fallbackMessage is stored as the error state when a failure carries no
// message of its own.
const fallbackMessage = "request failed"
