package http1

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// DefaultMaxRequestBytes is the size of the single read a connection gets.
const DefaultMaxRequestBytes = 4096

// ErrMalformed reports any violation of the request grammar. The wrapped
// message says which check failed; callers should only test with errors.Is.
var ErrMalformed = errors.New("http1: malformed request")

var methods = map[string]struct{}{
	"OPTIONS": {},
	"GET":     {},
	"HEAD":    {},
	"POST":    {},
	"PUT":     {},
	"DELETE":  {},
	"TRACE":   {},
	"CONNECT": {},
}

var versions = map[string]struct{}{
	"HTTP/1.0": {},
	"HTTP/1.1": {},
}

// ValidMethod reports whether m is one of the eight request methods.
func ValidMethod(m string) bool {
	_, ok := methods[m]
	return ok
}

// ValidVersion reports whether v is HTTP/1.0 or HTTP/1.1.
func ValidVersion(v string) bool {
	_, ok := versions[v]
	return ok
}

// ParsedRequest is a minimal representation parsed from the wire.
type ParsedRequest struct {
	Method     string
	RequestURI string
	Proto      string
	Header     map[string]string
	Body       string
}

// Reader reads exactly one request from R with a single read call.
// Read errors other than io.EOF are returned as is.
type Reader struct {
	R               io.Reader
	MaxRequestBytes int
}

func (r *Reader) ReadRequest() (*ParsedRequest, error) {
	limit := r.MaxRequestBytes
	if limit <= 0 {
		limit = DefaultMaxRequestBytes
	}
	buf := make([]byte, limit)
	n, err := r.R.Read(buf)
	if n == 0 && err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	// A peer that closes without sending gives an empty buffer, which
	// fails to parse like any other malformed request.
	return ParseRequest(DecodeLossy(buf[:n]))
}

// DecodeLossy turns b into text, replacing every byte that is not part of
// a valid UTF-8 sequence with U+FFFD. It never fails.
func DecodeLossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	sb.Grow(len(b) + 8)
	for len(b) > 0 {
		c, size := utf8.DecodeRune(b)
		if c == utf8.RuneError && size == 1 {
			sb.WriteRune(utf8.RuneError)
		} else {
			sb.Write(b[:size])
		}
		b = b[size:]
	}
	return sb.String()
}

// ParseRequest parses a whole decoded request buffer. The buffer must end
// with CRLF and contain a blank line after the headers; the body is
// everything between that blank line and the final CRLF.
func ParseRequest(text string) (*ParsedRequest, error) {
	lines := strings.Split(text, "\r\n")
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty buffer", ErrMalformed)
	}

	parts := strings.Split(lines[0], " ")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: request line has %d tokens", ErrMalformed, len(parts))
	}
	method, uri, proto := parts[0], parts[1], parts[2]
	if !ValidMethod(method) {
		return nil, fmt.Errorf("%w: unknown method %q", ErrMalformed, method)
	}
	if !ValidVersion(proto) {
		return nil, fmt.Errorf("%w: unsupported version %q", ErrMalformed, proto)
	}

	hdr := make(map[string]string)
	i := 1
	for ; i < len(lines) && lines[i] != ""; i++ {
		k, v, err := splitHeaderLine(lines[i])
		if err != nil {
			return nil, err
		}
		hdr[k] = v
	}
	if i >= len(lines) || lines[len(lines)-1] != "" {
		return nil, fmt.Errorf("%w: missing blank line terminator", ErrMalformed)
	}

	var body string
	if start, end := i+1, len(lines)-1; start < end {
		body = strings.Join(lines[start:end], "\r\n")
	}
	return &ParsedRequest{
		Method:     method,
		RequestURI: uri,
		Proto:      proto,
		Header:     hdr,
		Body:       body,
	}, nil
}

// splitHeaderLine splits on the first colon. The name is kept verbatim,
// the value keeps any further colons and is trimmed.
func splitHeaderLine(line string) (string, string, error) {
	i := strings.IndexByte(line, ':')
	if i < 0 {
		return "", "", fmt.Errorf("%w: header line without colon", ErrMalformed)
	}
	return line[:i], strings.TrimSpace(line[i+1:]), nil
}
