package ping

import (
	"context"
	"errors"
	"net"
	"time"
)

// Probe sends one timestamp to addr and waits up to timeout (DefaultTimeout
// when zero) for the echo. A missing reply yields ErrTimeout.
func Probe(ctx context.Context, addr string, timeout time.Duration) (Result, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	var d net.Dialer
	c, err := d.DialContext(ctx, "udp", addr)
	if err != nil {
		return Result{}, err
	}
	defer c.Close()
	stop := context.AfterFunc(ctx, func() { _ = c.SetDeadline(time.Now()) })
	defer stop()

	start := time.Now()
	if err := c.SetDeadline(start.Add(timeout)); err != nil {
		return Result{}, err
	}
	if _, err := c.Write(EncodeTime(start)); err != nil {
		return Result{}, err
	}

	buf := make([]byte, MaxPayload)
	n, err := c.Read(buf)
	end := time.Now()
	if err != nil {
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			return Result{}, ErrTimeout
		}
		return Result{}, err
	}
	turnpoint, err := DecodeTime(buf[:n])
	if err != nil {
		return Result{}, err
	}
	return Result{Start: start, Turnpoint: turnpoint, End: end}, nil
}
