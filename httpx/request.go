package httpx

import (
	"context"
	"errors"
	"fmt"
	"io"

	"dqx0.com/go/zoli/httpx/internal/http1"
)

// Request is a parsed HTTP request. It is only produced by ParseRequest
// and ReadRequest and cannot be modified afterwards.
type Request struct {
	method  Method
	uri     string
	version Version
	header  Header
	body    string
	ctx     context.Context
}

// Method is one of the eight methods the parser accepts.
func (r *Request) Method() Method { return r.method }

// URI is the request target exactly as sent; no query or fragment split.
func (r *Request) URI() string { return r.uri }

// Version is HTTP/1.0 or HTTP/1.1.
func (r *Request) Version() Version { return r.version }

// Header returns a copy of the header fields.
func (r *Request) Header() Header { return r.header.clone() }

// Body is everything after the blank line, without the final CRLF.
func (r *Request) Body() string { return r.body }

// Context returns the request's context. If nil, returns Background.
func (r *Request) Context() context.Context {
	if r == nil || r.ctx == nil {
		return context.Background()
	}
	return r.ctx
}

// WithContext returns a shallow copy of r with its context changed to ctx.
func WithContext(r *Request, ctx context.Context) *Request {
	if r == nil {
		return nil
	}
	r2 := *r
	r2.ctx = ctx
	return &r2
}

// ParseRequest parses a complete request buffer. Every grammar violation
// yields an error matching ErrBadRequest.
func ParseRequest(text string) (*Request, error) {
	pr, err := http1.ParseRequest(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	return fromParsed(pr), nil
}

// ReadRequest reads one request from r with a single read of at most
// limit bytes (4096 when limit <= 0). Invalid UTF-8 is replaced, never
// rejected. Errors from r are returned as is; grammar errors match
// ErrBadRequest.
func ReadRequest(r io.Reader, limit int) (*Request, error) {
	rr := &http1.Reader{R: r, MaxRequestBytes: limit}
	pr, err := rr.ReadRequest()
	if err != nil {
		if errors.Is(err, http1.ErrMalformed) {
			return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
		}
		return nil, err
	}
	return fromParsed(pr), nil
}

func fromParsed(pr *http1.ParsedRequest) *Request {
	return &Request{
		method:  Method(pr.Method),
		uri:     pr.RequestURI,
		version: Version(pr.Proto),
		header:  Header(pr.Header),
		body:    pr.Body,
	}
}
