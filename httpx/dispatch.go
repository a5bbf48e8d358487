package httpx

import "dqx0.com/go/zoli/internal/obs"

// Dispatcher turns a parse outcome into exactly one response.
type Dispatcher struct {
	Routes *RouteTable
	Logger obs.Logger
}

// Dispatch answers 400 when err is non-nil without consulting any route.
// Otherwise the first route that matches and returns a response wins;
// when none does the answer is 404.
func (d *Dispatcher) Dispatch(r *Request, err error) *Response {
	if err != nil || r == nil {
		return NewResponse(StatusBadRequest, "")
	}
	if d.Routes != nil {
		for _, rt := range d.Routes.routes {
			res, ok := rt.Serve(r)
			if !ok || res == nil {
				continue
			}
			d.logger().Logf(obs.Debug, "route %s handled %s %s", rt.URI, r.method, r.uri)
			return res
		}
	}
	return NewResponse(StatusNotFound, "")
}

func (d *Dispatcher) logger() obs.Logger {
	if d.Logger == nil {
		return obs.NopLogger{}
	}
	return d.Logger
}
