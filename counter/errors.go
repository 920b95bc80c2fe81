package counter

import (
	"fmt"
)

// TransportError means the request never completed: it could not be built,
// sent, or its body could not be read.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NetworkError means the endpoint answered with a status outside 2xx. The
// status is only carried in StatusCode.
type NetworkError struct {
	StatusCode int
}

func (e *NetworkError) Error() string {
	return "Network response was not ok"
}

// ParseError means the body was not JSON or did not carry a numeric new_count.
type ParseError struct {
	Body []byte
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
