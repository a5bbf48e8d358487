package http1

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStatus is returned when a status code has no reason phrase.
var ErrUnknownStatus = errors.New("http1: unknown status code")

// Field is one response header line.
type Field struct {
	Name  string
	Value string
}

// WriteResponse writes a complete response: status line, one line per
// field in order, a blank line, the body and a trailing blank line.
func WriteResponse(bw *bufio.Writer, proto string, status int, hdr []Field, body string) error {
	reason, ok := Reason(status)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownStatus, status)
	}
	if _, err := fmt.Fprintf(bw, "%s %d %s\r\n", proto, status, reason); err != nil {
		return err
	}
	for _, f := range hdr {
		if _, err := fmt.Fprintf(bw, "%s: %s\r\n", f.Name, sanitizeHeaderValue(f.Value)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(bw, "\r\n"); err != nil {
		return err
	}
	if _, err := bw.WriteString(body); err != nil {
		return err
	}
	if _, err := fmt.Fprint(bw, "\r\n\r\n"); err != nil {
		return err
	}
	return bw.Flush()
}

func sanitizeHeaderValue(v string) string {
	if v == "" {
		return v
	}
	// Remove CR/LF and other control chars except HTAB
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c == '\r' || c == '\n' || c == 0x7f {
			continue
		}
		if c < 0x20 && c != '\t' {
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
