package httpx

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func TestParseRequest_RoundTrip(t *testing.T) {
	r, err := ParseRequest("PUT /a/b?x=1 HTTP/1.1\r\nHost: example.com\r\nAccept:\t*/*  \r\n\r\n")
	if err != nil {
		t.Fatalf("ParseRequest: %v", err)
	}
	if r.Method() != MethodPut || r.URI() != "/a/b?x=1" || r.Version() != HTTP11 {
		t.Fatalf("request line = %s %s %s", r.Method(), r.URI(), r.Version())
	}
	h := r.Header()
	if len(h) != 2 || h.Get("Host") != "example.com" || h.Get("Accept") != "*/*" {
		t.Fatalf("header=%v", h)
	}
}

func TestParseRequest_HeaderIsCopied(t *testing.T) {
	r, err := ParseRequest("GET / HTTP/1.1\r\nHost: x\r\n\r\n")
	if err != nil {
		t.Fatalf("ParseRequest: %v", err)
	}
	h := r.Header()
	h["Host"] = "changed"
	if got := r.Header().Get("Host"); got != "x" {
		t.Fatalf("request mutated through copy: Host=%q", got)
	}
}

func TestParseRequest_DuplicateAndColon(t *testing.T) {
	r, err := ParseRequest("GET / HTTP/1.1\r\nX-Foo: a:b:c\r\nX-Dup: 1\r\nX-Dup: 2\r\n\r\n")
	if err != nil {
		t.Fatalf("ParseRequest: %v", err)
	}
	if got := r.Header().Get("X-Foo"); got != "a:b:c" {
		t.Fatalf("X-Foo=%q", got)
	}
	if got := r.Header().Get("X-Dup"); got != "2" {
		t.Fatalf("X-Dup=%q", got)
	}
}

func TestParseRequest_Malformed(t *testing.T) {
	for _, raw := range []string{
		"GET / HTTP/1.1\r\nHost: x",
		"GET /\r\n\r\n",
		"GET / HTTP/1.1 x\r\n\r\n",
		"FETCH / HTTP/1.1\r\n\r\n",
		"GET / HTTP/2.0\r\n\r\n",
		"GET / HTTP/1.1\r\nNoColonHere\r\n\r\n",
	} {
		if _, err := ParseRequest(raw); !errors.Is(err, ErrBadRequest) {
			t.Fatalf("ParseRequest(%q) err=%v, want ErrBadRequest", raw, err)
		}
	}
}

func TestReadRequest_InvalidUTF8(t *testing.T) {
	r, err := ReadRequest(strings.NewReader("POST /u HTTP/1.0\r\n\r\nab\xffcd\r\n"), 0)
	if err != nil {
		t.Fatalf("ReadRequest: %v", err)
	}
	if r.Body() != "ab\uFFFDcd" {
		t.Fatalf("body=%q", r.Body())
	}
}

func TestReadRequest_EmptyIsBadRequest(t *testing.T) {
	if _, err := ReadRequest(strings.NewReader(""), 0); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("err=%v, want ErrBadRequest", err)
	}
}

func TestReadRequest_IOErrorPassesThrough(t *testing.T) {
	_, err := ReadRequest(iotest.ErrReader(io.ErrClosedPipe), 0)
	if !errors.Is(err, io.ErrClosedPipe) || errors.Is(err, ErrBadRequest) {
		t.Fatalf("err=%v, want io.ErrClosedPipe", err)
	}
}
