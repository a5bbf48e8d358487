package httpx

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// newRequestID returns 16 hex characters identifying one connection.
func newRequestID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err == nil {
		return hex.EncodeToString(b[:])
	}
	t := time.Now().UnixNano()
	for i := range b {
		b[i] = byte(t >> (uint(i) * 8))
	}
	return hex.EncodeToString(b[:])
}
