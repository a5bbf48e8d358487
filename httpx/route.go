package httpx

// HandlerFunc produces the response for a request its Route accepted.
// Returning nil means "no response" and lets dispatch try later routes.
type HandlerFunc func(*Request) *Response

// Route guards Handler with an exact URI match and a method set.
type Route struct {
	URI     string
	Methods MethodSet
	Handler HandlerFunc
}

// NewRoute binds h to uri. With no methods the route accepts all eight.
func NewRoute(uri string, h HandlerFunc, methods ...Method) Route {
	return Route{URI: uri, Methods: Methods(methods...), Handler: h}
}

// Match reports whether the route owns r.
func (rt Route) Match(r *Request) bool {
	return r != nil && r.uri == rt.URI && rt.Methods.Has(r.method)
}

// Serve runs the handler when the guard matches. ok is false when the
// route does not own r; the handler is not called in that case.
func (rt Route) Serve(r *Request) (res *Response, ok bool) {
	if !rt.Match(r) {
		return nil, false
	}
	return rt.Handler(r), true
}

// RouteTable is an ordered, read-only list of routes. Earlier routes win.
type RouteTable struct {
	routes []Route
}

// NewRouteTable copies routes into a table. It panics on a route with a
// nil handler. Duplicate URIs are allowed; the later ones are unreachable
// for the methods the earlier ones accept.
func NewRouteTable(routes ...Route) *RouteTable {
	t := &RouteTable{routes: make([]Route, 0, len(routes))}
	for _, rt := range routes {
		if rt.Handler == nil {
			panic("httpx: nil handler for route " + rt.URI)
		}
		rt.Methods = rt.Methods.clone()
		t.routes = append(t.routes, rt)
	}
	return t
}

func (t *RouteTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.routes)
}

// Routes returns a copy of the routes in registration order.
func (t *RouteTable) Routes() []Route {
	if t == nil {
		return nil
	}
	out := make([]Route, len(t.routes))
	for i, rt := range t.routes {
		rt.Methods = rt.Methods.clone()
		out[i] = rt
	}
	return out
}

// Lookup returns the first route whose guard matches r, or ErrNoRoute.
func (t *RouteTable) Lookup(r *Request) (Route, error) {
	if t != nil {
		for _, rt := range t.routes {
			if rt.Match(r) {
				return rt, nil
			}
		}
	}
	return Route{}, ErrNoRoute
}
