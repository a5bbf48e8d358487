package httpx

import (
	"errors"
	"fmt"
)

var (
	// ErrBadRequest is returned for any request that does not satisfy the
	// request grammar.
	ErrBadRequest = errors.New("httpx: bad request")
	// ErrNoRoute is returned by RouteTable.Lookup when nothing matches.
	ErrNoRoute = errors.New("httpx: no route")
	// ErrUnknownStatus marks a status code missing from the status table.
	ErrUnknownStatus = errors.New("httpx: unknown status code")
	// ErrServerClosed is returned by Serve after Shutdown.
	ErrServerClosed = errors.New("httpx: server closed")
)

// StatusError reports a status code that cannot be serialized. NewResponse
// panics with a *StatusError.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("httpx: unknown status code %d", e.Code)
}

func (e *StatusError) Unwrap() error { return ErrUnknownStatus }
