package httpx

// Method is a request method. Only the eight methods below parse.
type Method string

const (
	MethodOptions Method = "OPTIONS"
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodTrace   Method = "TRACE"
	MethodConnect Method = "CONNECT"
)

var allMethods = []Method{
	MethodOptions, MethodGet, MethodHead, MethodPost,
	MethodPut, MethodDelete, MethodTrace, MethodConnect,
}

// Version is the protocol version of a request or response.
type Version string

const (
	HTTP10 Version = "HTTP/1.0"
	HTTP11 Version = "HTTP/1.1"
)

// MethodSet is the set of methods a Route accepts.
type MethodSet map[Method]struct{}

// Methods builds a set from ms. With no arguments it holds every method.
func Methods(ms ...Method) MethodSet {
	if len(ms) == 0 {
		ms = allMethods
	}
	s := make(MethodSet, len(ms))
	for _, m := range ms {
		s[m] = struct{}{}
	}
	return s
}

func (s MethodSet) Has(m Method) bool {
	_, ok := s[m]
	return ok
}

func (s MethodSet) clone() MethodSet {
	c := make(MethodSet, len(s))
	for m := range s {
		c[m] = struct{}{}
	}
	return c
}

// Header holds request header fields. Keys are case-sensitive and a
// repeated field keeps its last value.
type Header map[string]string

// Get returns the value for key, or "" when absent.
func (h Header) Get(key string) string {
	return h[key]
}

// Lookup returns the value for key and whether it was sent.
func (h Header) Lookup(key string) (string, bool) {
	v, ok := h[key]
	return v, ok
}

func (h Header) clone() Header {
	c := make(Header, len(h))
	for k, v := range h {
		c[k] = v
	}
	return c
}
