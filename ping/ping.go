// Package ping measures UDP latency between a client and an echo server.
//
// The client sends its send time as decimal Unix seconds. The server
// answers right away with the time it received the datagram (the
// turnpoint). From the three instants the client derives both one-way
// latencies and the round trip. One-way figures assume the two clocks
// agree.
package ping

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultTimeout bounds how long Probe waits for the echo.
	DefaultTimeout = time.Second
	// MaxPayload is the largest datagram either side reads.
	MaxPayload = 4096
)

var (
	ErrTimeout    = errors.New("ping: request timed out")
	ErrBadPayload = errors.New("ping: payload is not a timestamp")
)

// EncodeTime renders t as Unix seconds with a fractional part.
func EncodeTime(t time.Time) []byte {
	s := float64(t.UnixNano()) / float64(time.Second)
	return strconv.AppendFloat(nil, s, 'f', 6, 64)
}

// DecodeTime parses a payload written by EncodeTime or any decimal
// seconds value.
func DecodeTime(b []byte) (time.Time, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(b)), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadPayload, b)
	}
	sec, frac := math.Modf(f)
	return time.Unix(int64(sec), int64(math.Round(frac*1e9))), nil
}

// Result holds the instants of one probe.
type Result struct {
	Start     time.Time // client send
	Turnpoint time.Time // server receive, as reported by the server
	End       time.Time // client receive
}

func (r Result) ClientToServer() time.Duration { return r.Turnpoint.Sub(r.Start) }

func (r Result) ServerToClient() time.Duration { return r.End.Sub(r.Turnpoint) }

func (r Result) RTT() time.Duration { return r.End.Sub(r.Start) }

func (r Result) String() string {
	return fmt.Sprintf("client2server=%.2f, server2client=%.2f ms, total RTT=%.2f ms",
		Millis(r.ClientToServer()), Millis(r.ServerToClient()), Millis(r.RTT()))
}

// Millis converts d to fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
