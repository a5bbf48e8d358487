package http1

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"
	"unicode/utf8"
)

func readReq(t *testing.T, raw string, limit int) (*ParsedRequest, error) {
	t.Helper()
	r := &Reader{R: strings.NewReader(raw), MaxRequestBytes: limit}
	return r.ReadRequest()
}

func TestReader_HeadersAndVersion(t *testing.T) {
	raw := "GET /index.html HTTP/1.0\r\nHost: example.com\r\nUser-Agent:   curl/8.0  \r\n\r\n"
	pr, err := readReq(t, raw, 0)
	if err != nil {
		t.Fatalf("ReadRequest error: %v", err)
	}
	if pr.Method != "GET" || pr.RequestURI != "/index.html" || pr.Proto != "HTTP/1.0" {
		t.Fatalf("request line = %q %q %q", pr.Method, pr.RequestURI, pr.Proto)
	}
	if len(pr.Header) != 2 {
		t.Fatalf("len(Header)=%d", len(pr.Header))
	}
	if got := pr.Header["User-Agent"]; got != "curl/8.0" {
		t.Fatalf("User-Agent=%q", got)
	}
	if pr.Body != "" {
		t.Fatalf("body=%q", pr.Body)
	}
}

func TestReader_SingleReadLimit(t *testing.T) {
	// Only "GET / HTTP/1.1\r\nHost: " fits, so the terminator is never seen.
	raw := "GET / HTTP/1.1\r\nHost: x\r\n\r\n"
	if _, err := readReq(t, raw, 22); !errors.Is(err, ErrMalformed) {
		t.Fatalf("err=%v, want ErrMalformed", err)
	}
}

func TestReader_EmptyConnection(t *testing.T) {
	if _, err := readReq(t, "", 0); !errors.Is(err, ErrMalformed) {
		t.Fatalf("err=%v, want ErrMalformed", err)
	}
}

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestReader_ReadErrorPassesThrough(t *testing.T) {
	r := &Reader{R: failingReader{err: io.ErrClosedPipe}}
	_, err := r.ReadRequest()
	if !errors.Is(err, io.ErrClosedPipe) || errors.Is(err, ErrMalformed) {
		t.Fatalf("err=%v, want io.ErrClosedPipe", err)
	}
}

func TestParse_Body(t *testing.T) {
	pr, err := ParseRequest("POST /form HTTP/1.1\r\nContent-Type: text/plain\r\n\r\nline one\r\nline two\r\n")
	if err != nil {
		t.Fatalf("ParseRequest error: %v", err)
	}
	if pr.Body != "line one\r\nline two" {
		t.Fatalf("body=%q", pr.Body)
	}
}

func TestParse_DuplicateHeaderLastWins(t *testing.T) {
	pr, err := ParseRequest("GET / HTTP/1.1\r\nX-A: first\r\nX-A: second\r\n\r\n")
	if err != nil {
		t.Fatalf("ParseRequest error: %v", err)
	}
	if got := pr.Header["X-A"]; got != "second" {
		t.Fatalf("X-A=%q", got)
	}
}

func TestParse_ColonInValue(t *testing.T) {
	pr, err := ParseRequest("GET / HTTP/1.1\r\nX-Foo: a:b:c\r\n\r\n")
	if err != nil {
		t.Fatalf("ParseRequest error: %v", err)
	}
	if got := pr.Header["X-Foo"]; got != "a:b:c" {
		t.Fatalf("X-Foo=%q", got)
	}
}

func TestParse_HeaderNamesAreCaseSensitive(t *testing.T) {
	pr, err := ParseRequest("GET / HTTP/1.1\r\nhost: a\r\nHost: b\r\n\r\n")
	if err != nil {
		t.Fatalf("ParseRequest error: %v", err)
	}
	if pr.Header["host"] != "a" || pr.Header["Host"] != "b" {
		t.Fatalf("header=%v", pr.Header)
	}
}

func TestParse_TerminatorOnlyIsValid(t *testing.T) {
	pr, err := ParseRequest("GET / HTTP/1.1\r\n")
	if err != nil {
		t.Fatalf("ParseRequest error: %v", err)
	}
	if pr.Body != "" || len(pr.Header) != 0 {
		t.Fatalf("parsed=%+v", pr)
	}
}

func TestParse_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":              "",
		"missing terminator": "GET / HTTP/1.1\r\nHost: x",
		"body not closed":    "GET / HTTP/1.1\r\n\r\nbody",
		"two tokens":         "GET /\r\n\r\n",
		"four tokens":        "GET / HTTP/1.1 extra\r\n\r\n",
		"double space":       "GET  / HTTP/1.1\r\n\r\n",
		"unknown method":     "FETCH / HTTP/1.1\r\n\r\n",
		"lowercase method":   "get / HTTP/1.1\r\n\r\n",
		"http2":              "GET / HTTP/2.0\r\n\r\n",
		"no colon":           "GET / HTTP/1.1\r\nNoColonHere\r\n\r\n",
		"whitespace header":  "GET / HTTP/1.1\r\n   \r\n\r\n",
	}
	for name, raw := range cases {
		if _, err := ParseRequest(raw); !errors.Is(err, ErrMalformed) {
			t.Fatalf("%s: err=%v, want ErrMalformed", name, err)
		}
	}
}

func TestDecodeLossy(t *testing.T) {
	got := DecodeLossy([]byte("GET /\xff\xfe HTTP/1.1"))
	if !utf8.ValidString(got) {
		t.Fatalf("result not valid UTF-8: %q", got)
	}
	if want := "GET /\uFFFD\uFFFD HTTP/1.1"; got != want {
		t.Fatalf("got=%q, want %q", got, want)
	}
	if got := DecodeLossy([]byte("héllo")); got != "héllo" {
		t.Fatalf("valid text changed: %q", got)
	}
}

func TestWriteResponse(t *testing.T) {
	var sb strings.Builder
	bw := bufio.NewWriter(&sb)
	hdr := []Field{{Name: "Server", Value: "test"}, {Name: "X-Evil", Value: "a\r\nInjected: 1"}}
	if err := WriteResponse(bw, "HTTP/1.0", 404, hdr, "gone"); err != nil {
		t.Fatalf("WriteResponse error: %v", err)
	}
	want := "HTTP/1.0 404 Not Found\r\nServer: test\r\nX-Evil: aInjected: 1\r\n\r\ngone\r\n\r\n"
	if sb.String() != want {
		t.Fatalf("wire=%q, want %q", sb.String(), want)
	}
}

func TestWriteResponse_UnknownStatus(t *testing.T) {
	var sb strings.Builder
	bw := bufio.NewWriter(&sb)
	if err := WriteResponse(bw, "HTTP/1.1", 999, nil, ""); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("err=%v, want ErrUnknownStatus", err)
	}
	if sb.Len() != 0 {
		t.Fatalf("wrote %q before failing", sb.String())
	}
}

func TestReason(t *testing.T) {
	for code, want := range map[int]string{200: "OK", 400: "Bad Request", 403: "Forbidden", 404: "Not Found"} {
		if got, ok := Reason(code); !ok || got != want {
			t.Fatalf("Reason(%d)=%q,%v", code, got, ok)
		}
	}
	if _, ok := Reason(999); ok {
		t.Fatal("Reason(999) should be missing")
	}
}
