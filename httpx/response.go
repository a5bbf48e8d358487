package httpx

import (
	"bufio"
	"bytes"
	"io"
	"time"

	"dqx0.com/go/zoli/httpx/internal/http1"
)

const (
	// ServerName is sent in the Server header of every response.
	ServerName = "ZOLI/1.0"
	// DefaultContentType is sent in the Content-Type header.
	DefaultContentType = "text/html"
)

// DateFormat is the layout of the Date header, always rendered in UTC.
const DateFormat = time.RFC1123

// Field is one response header line.
type Field = http1.Field

// Response is a status, an ordered set of header fields and a text body.
// Build one with NewResponse.
type Response struct {
	code    int
	version Version
	fields  []Field
	body    string
}

// ResponseOption adjusts a Response during NewResponse.
type ResponseOption func(*Response)

// WithVersion sets the protocol version of the status line.
func WithVersion(v Version) ResponseOption {
	return func(r *Response) { r.version = v }
}

// WithDate stamps the Date header with t instead of the current time.
func WithDate(t time.Time) ResponseOption {
	return func(r *Response) { r.setField("Date", t.UTC().Format(DateFormat)) }
}

// NewResponse returns a response seeded with the Server, Date and
// Content-Type headers. It panics with a *StatusError if code is not in
// the status table; an unknown code is a programming error.
func NewResponse(code int, body string, opts ...ResponseOption) *Response {
	if err := CheckStatus(code); err != nil {
		panic(err)
	}
	r := &Response{
		code:    code,
		version: HTTP11,
		body:    body,
		fields: []Field{
			{Name: "Server", Value: ServerName},
			{Name: "Date", Value: time.Now().UTC().Format(DateFormat)},
			{Name: "Content-Type", Value: DefaultContentType},
		},
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// StatusCode is always a code from the status table.
func (r *Response) StatusCode() int { return r.code }

// Version is the status line version, HTTP/1.1 unless WithVersion set it.
func (r *Response) Version() Version { return r.version }

// Body is written between the blank line and the trailing blank line.
func (r *Response) Body() string { return r.body }

// Fields returns a copy of the header fields in send order.
func (r *Response) Fields() []Field {
	return append([]Field(nil), r.fields...)
}

// Get returns the value of the named header field, or "".
func (r *Response) Get(name string) string {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

func (r *Response) setField(name, value string) {
	for i := range r.fields {
		if r.fields[i].Name == name {
			r.fields[i].Value = value
			return
		}
	}
}

// WriteTo writes the wire form of r to w.
func (r *Response) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	err := http1.WriteResponse(bw, string(r.version), r.code, r.fields, r.body)
	return cw.n, err
}

// Bytes returns the wire form of r.
func (r *Response) Bytes() []byte {
	var buf bytes.Buffer
	if _, err := r.WriteTo(&buf); err != nil {
		// Only an unknown status can fail, and NewResponse rejects those.
		panic(err)
	}
	return buf.Bytes()
}

func (r *Response) String() string { return string(r.Bytes()) }

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
