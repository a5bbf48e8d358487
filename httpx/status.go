package httpx

import "dqx0.com/go/zoli/httpx/internal/http1"

const (
	StatusContinue            = 100
	StatusOK                  = 200
	StatusCreated             = 201
	StatusNoContent           = 204
	StatusMovedPermanently    = 301
	StatusFound               = 302
	StatusNotModified         = 304
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusMethodNotAllowed    = 405
	StatusInternalServerError = 500
	StatusNotImplemented      = 501
	StatusServiceUnavailable  = 503
)

// StatusText returns the reason phrase for code, or "" if the table
// does not know it.
func StatusText(code int) string {
	s, _ := http1.Reason(code)
	return s
}

// CheckStatus returns a *StatusError when code is not in the status table.
func CheckStatus(code int) error {
	if _, ok := http1.Reason(code); !ok {
		return &StatusError{Code: code}
	}
	return nil
}
