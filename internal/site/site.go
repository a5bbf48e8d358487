// Package site holds the pages served by zoli-web.
package site

import (
	"dqx0.com/go/zoli/httpx"
	"dqx0.com/go/zoli/internal/obs"
)

const indexHTML = `<!DOCTYPE html>
<html>
<head>
  <title>My little website!</title>
</head>
<body>
  <h1>Greetings! :D</h1>
  <p> Great little site, isn't it? </p>
  <a href="/cats">Kittens!</a>
</body>
</html>
`

const catsHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Hi, mom!</title>
</head>
<body>
  <h1>Cute cats!</h1>
  <img src="https://http.cat/200" alt="cutie" />
  <a href="/">Go back!</a>
</body>
</html>
`

const helloHTML = "<html><body>Hello, World!</body></html>"

// Routes is the table zoli-web serves, in match order.
func Routes() *httpx.RouteTable {
	return httpx.NewRouteTable(
		httpx.NewRoute("/", Index, httpx.MethodGet),
		httpx.NewRoute("/cats", Cats, httpx.MethodGet),
		httpx.NewRoute("/hello", Hello, httpx.MethodGet),
	)
}

func Index(r *httpx.Request) *httpx.Response {
	return httpx.NewResponse(httpx.StatusOK, indexHTML)
}

func Cats(r *httpx.Request) *httpx.Response {
	return httpx.NewResponse(httpx.StatusOK, catsHTML)
}

// Hello repeats the method and path checks its route already does. Behind
// the route guard the 403 and 404 branches never run; they only apply
// when Hello is called directly.
func Hello(r *httpx.Request) *httpx.Response {
	if r.Method() != httpx.MethodGet {
		httpx.LoggerFrom(r.Context()).Logf(obs.Debug, "hello: method %s refused", r.Method())
		return httpx.NewResponse(httpx.StatusForbidden, "")
	}
	if r.URI() != "/hello" {
		return httpx.NewResponse(httpx.StatusNotFound, "")
	}
	return httpx.NewResponse(httpx.StatusOK, helloHTML)
}
