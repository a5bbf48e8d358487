package httpx

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"

	"dqx0.com/go/zoli/httpx/internal/http1"
	"dqx0.com/go/zoli/internal/obs"
)

// Server accepts connections and answers exactly one request on each
// before closing it. Connections are served one after another unless
// Concurrent is set.
type Server struct {
	Addr   string
	Routes *RouteTable

	// ReadTimeout and WriteTimeout bound the single read and the single
	// write of a connection. Zero means no deadline.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MaxRequestBytes caps the one read a request gets. Default 4096.
	MaxRequestBytes int

	// Concurrent serves each connection on its own goroutine.
	Concurrent bool

	Logger obs.Logger
	Meter  obs.Meter

	mu     sync.Mutex
	ln     net.Listener
	closed bool
	active sync.WaitGroup
}

func (s *Server) ListenAndServe() error {
	addr := s.Addr
	if addr == "" {
		addr = ":8080"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on l until l fails or Shutdown is called.
// After Shutdown it returns ErrServerClosed.
func (s *Server) Serve(l net.Listener) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		l.Close()
		return ErrServerClosed
	}
	s.ln = l
	s.mu.Unlock()
	defer l.Close()

	s.logger().Logf(obs.Info, "listening on %s", l.Addr())
	for {
		c, err := l.Accept()
		if err != nil {
			if s.shuttingDown() {
				return ErrServerClosed
			}
			return err
		}
		if !s.track() {
			c.Close()
			return ErrServerClosed
		}
		if s.Concurrent {
			go s.serveConn(c)
		} else {
			s.serveConn(c)
		}
	}
}

// Shutdown stops accepting and waits for connections in flight, or for
// ctx to end.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	var err error
	if s.ln != nil {
		err = s.ln.Close()
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		// No Add can follow: track refuses once closed is set.
		s.active.Wait()
		close(done)
	}()
	select {
	case <-done:
		if errors.Is(err, net.ErrClosed) {
			err = nil
		}
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// track counts one more connection in flight. It refuses once Shutdown
// has started.
func (s *Server) track() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.active.Add(1)
	return true
}

func (s *Server) shuttingDown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// serveConn walks one connection through read, parse, dispatch,
// serialize and send, then closes it.
func (s *Server) serveConn(c net.Conn) {
	defer s.active.Done()
	defer c.Close()

	start := time.Now()
	id := newRequestID()
	log := obs.With(obs.With(s.logger(), "req_id", id), "remote", c.RemoteAddr().String())

	defer func() {
		if v := recover(); v != nil {
			log.Logf(obs.Error, "internal error, closing without response: %v", v)
			s.meter().Counter("httpx.requests", 1, obs.Label{Key: "status", Value: "internal"})
		}
	}()

	if s.ReadTimeout > 0 {
		_ = c.SetReadDeadline(time.Now().Add(s.ReadTimeout))
	}
	req, err := ReadRequest(c, s.requestLimit())
	if err != nil && !errors.Is(err, ErrBadRequest) {
		log.Logf(obs.Warn, "read: %v", err)
		return
	}
	if err != nil {
		log.Logf(obs.Debug, "parse: %v", err)
	} else {
		ctx := WithRequestID(context.Background(), id)
		if cid, ok := req.header.Lookup("X-Request-Id"); ok && cid != "" {
			ctx = WithCorrelationID(ctx, cid)
		}
		req = WithContext(req, WithLogger(ctx, log))
	}

	d := &Dispatcher{Routes: s.Routes, Logger: log}
	res := d.Dispatch(req, err)

	if s.WriteTimeout > 0 {
		_ = c.SetWriteDeadline(time.Now().Add(s.WriteTimeout))
	}
	n, werr := res.WriteTo(c)
	if werr != nil {
		log.Logf(obs.Warn, "write: %v", werr)
	}

	elapsed := time.Since(start)
	status := strconv.Itoa(res.StatusCode())
	s.meter().Counter("httpx.requests", 1, obs.Label{Key: "status", Value: status})
	s.meter().Histogram("httpx.duration_ms", float64(elapsed.Microseconds())/1000)
	log.Logf(obs.Info, "%s -> %d (%d bytes, %s)", describe(req), res.StatusCode(), n, elapsed)
}

func describe(r *Request) string {
	if r == nil {
		return "malformed request"
	}
	return fmt.Sprintf("%s %s %s", r.method, r.uri, r.version)
}

func (s *Server) requestLimit() int {
	if s.MaxRequestBytes <= 0 {
		return http1.DefaultMaxRequestBytes
	}
	return s.MaxRequestBytes
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
