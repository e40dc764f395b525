// Package router dispatches requests on an exact (method, path) match.
//
// Unlike http.ServeMux it never answers 405 and never redirects: a request
// that does not hit a registered route gets the plain net/http 404. Paths
// are compared as sent on the wire, so "/%75sers" is not "/users".
package router

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Route binds a method and exact path to a handler.
type Route struct {
	Method  string
	Path    string
	Handler http.HandlerFunc
}

type routeKey struct {
	method string
	path   string
}

type mount struct {
	prefix  string
	handler http.Handler
}

// Router is a static route table. It is built once and is safe for concurrent use afterwards.
type Router struct {
	routes map[routeKey]http.HandlerFunc
	mounts []mount
}

// New returns a router serving the given routes. It panics on a duplicate or malformed route.
func New(routes ...Route) *Router {
	rt := &Router{routes: make(map[routeKey]http.HandlerFunc, len(routes))}
	for _, route := range routes {
		rt.Handle(route)
	}
	return rt
}

// Handle registers a route. It panics on a duplicate or malformed route.
func (rt *Router) Handle(route Route) {
	if route.Method == "" || !strings.HasPrefix(route.Path, "/") || route.Handler == nil {
		panic(fmt.Sprintf("router: invalid route %q %q", route.Method, route.Path))
	}
	key := routeKey{method: route.Method, path: route.Path}
	if _, ok := rt.routes[key]; ok {
		panic(fmt.Sprintf("router: duplicate route %s %s", route.Method, route.Path))
	}
	rt.routes[key] = route.Handler
}

// Mount serves every path under prefix (which must end in "/") with h, for any method.
// Exact routes take precedence over mounts.
func (rt *Router) Mount(prefix string, h http.Handler) {
	if !strings.HasPrefix(prefix, "/") || !strings.HasSuffix(prefix, "/") || h == nil {
		panic(fmt.Sprintf("router: invalid mount %q", prefix))
	}
	rt.mounts = append(rt.mounts, mount{prefix: prefix, handler: h})
}

// Routes returns the registered method/path pairs sorted by path then method, e.g. "GET /".
func (rt *Router) Routes() []string {
	keys := make([]routeKey, 0, len(rt.routes))
	for key := range rt.routes {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].path != keys[j].path {
			return keys[i].path < keys[j].path
		}
		return keys[i].method < keys[j].method
	})
	out := make([]string, len(keys))
	for i, key := range keys {
		out[i] = key.method + " " + key.path
	}
	return out
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.EscapedPath()
	if h, ok := rt.routes[routeKey{method: r.Method, path: path}]; ok {
		h(w, r)
		return
	}
	for _, m := range rt.mounts {
		if strings.HasPrefix(path, m.prefix) {
			m.handler.ServeHTTP(w, r)
			return
		}
	}
	http.NotFound(w, r)
}
