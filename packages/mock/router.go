package mock

import (
	"strings"
)

// Route represents a mock route
type Route struct {
	Method      string // empty matches any method
	PathPattern string
	Response    *MockResponse
	Echo        bool // reply with the request body and content type
}

// MockResponse represents a mock HTTP response
type MockResponse struct {
	StatusCode  int
	ContentType string
	Headers     map[string]string
	Body        string
}

// Router matches incoming requests to routes
type Router struct {
	routes []*Route
}

// NewRouter creates a new router
func NewRouter() *Router {
	return &Router{
		routes: make([]*Route, 0),
	}
}

// AddRoute adds a route to the router
func (r *Router) AddRoute(route *Route) {
	route.PathPattern = normalizePath(route.PathPattern)
	r.routes = append(r.routes, route)
}

// Match finds the first route matching the given method and path
func (r *Router) Match(method, path string) *Route {
	path = normalizePath(path)

	for _, route := range r.routes {
		if route.Method != "" && !strings.EqualFold(route.Method, method) {
			continue
		}
		if route.PathPattern == path {
			return route
		}
	}

	return nil
}

func normalizePath(path string) string {
	// Ensure path starts with /
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	// Remove trailing slash (except for root)
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}
	return path
}
