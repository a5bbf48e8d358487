// Package httpx is a small HTTP/1.x engine that answers exactly one
// request per connection.
//
// A connection goes through a fixed sequence: one read of at most
// MaxRequestBytes, parsing into an immutable Request, dispatch through an
// ordered RouteTable, serialization of a Response, one write, close. There
// is no keep-alive, pipelining, chunked encoding or TLS.
//
// Parsing is strict. The request line must have exactly three tokens, the
// method must be one of OPTIONS, GET, HEAD, POST, PUT, DELETE, TRACE or
// CONNECT, and the version HTTP/1.0 or HTTP/1.1. Headers split on the
// first colon. The buffer must end with CRLF and contain a blank line
// before the body. Any violation is answered with 400.
//
// Routes match on exact URI and a method set; the first matching route
// wins and a request no route accepts gets 404.
//
// Quick start:
//
//	routes := httpx.NewRouteTable(
//	    httpx.NewRoute("/", func(r *httpx.Request) *httpx.Response {
//	        return httpx.NewResponse(httpx.StatusOK, "<p>hello</p>")
//	    }, httpx.MethodGet),
//	)
//	s := &httpx.Server{Addr: ":8080", Routes: routes}
//	if err := s.ListenAndServe(); err != nil { log.Fatal(err) }
//
// Every response carries Server, Date and Content-Type: text/html headers.
// NewResponse panics on a status code outside the status table; the
// server recovers that panic per connection and closes it without a
// response.
package httpx
