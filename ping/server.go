package ping

import (
	"context"
	"errors"
	"net"
	"time"

	"dqx0.com/go/zoli/internal/obs"
)

// Server echoes its receive time back to every datagram.
type Server struct {
	Addr   string
	Logger obs.Logger
	Meter  obs.Meter
	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := s.Addr
	if addr == "" {
		addr = ":6969"
	}
	pc, err := net.ListenPacket("udp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, pc)
}

// Serve answers datagrams on pc until ctx ends or pc fails. It closes pc.
// When ctx ends it returns ctx.Err().
func (s *Server) Serve(ctx context.Context, pc net.PacketConn) error {
	defer pc.Close()
	stop := context.AfterFunc(ctx, func() { pc.Close() })
	defer stop()

	s.logger().Logf(obs.Info, "ping server on %s", pc.LocalAddr())
	buf := make([]byte, MaxPayload)
	for {
		n, peer, err := pc.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil && errors.Is(err, net.ErrClosed) {
				return ctx.Err()
			}
			return err
		}
		turnpoint := s.now()
		if _, err := pc.WriteTo(EncodeTime(turnpoint), peer); err != nil {
			s.logger().Logf(obs.Warn, "echo to %s: %v", peer, err)
			continue
		}
		s.meter().Counter("ping.probes", 1)

		start, err := DecodeTime(buf[:n])
		if err != nil {
			s.logger().Logf(obs.Warn, "from %s: %v", peer, err)
			continue
		}
		arrival := turnpoint.Sub(start)
		s.meter().Histogram("ping.arrival_ms", Millis(arrival))
		s.logger().Logf(obs.Info, "message from %s arrived in %.2f ms", peer, Millis(arrival))
	}
}

func (s *Server) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Server) logger() obs.Logger {
	if s.Logger == nil {
		return obs.NopLogger{}
	}
	return s.Logger
}

func (s *Server) meter() obs.Meter {
	if s.Meter == nil {
		return obs.NopMeter{}
	}
	return s.Meter
}
