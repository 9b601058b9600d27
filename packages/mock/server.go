// Package mock provides an in-process HTTP server with canned and echo routes.
package mock

import (
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// RecordedRequest is a request the server received.
type RecordedRequest struct {
	Method      string
	Path        string
	ContentType string
	Body        []byte
}

// Server is a mock HTTP server. It implements http.Handler so it can be
// mounted on httptest.NewServer.
type Server struct {
	router *Router
	logger *zap.Logger

	mu       sync.Mutex
	requests []RecordedRequest
}

// Option is a functional option for Server
type Option func(*Server)

// WithLogger logs every handled request at debug level
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates a new mock server
func NewServer(opts ...Option) *Server {
	s := &Server{
		router: NewRouter(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle registers a route
func (s *Server) Handle(route *Route) *Server {
	s.router.AddRoute(route)
	return s
}

// Respond registers a canned response for any method on path
func (s *Server) Respond(path string, resp *MockResponse) *Server {
	return s.Handle(&Route{PathPattern: path, Response: resp})
}

// Echo registers a route on path that replies with the request body
func (s *Server) Echo(path string) *Server {
	return s.Handle(&Route{PathPattern: path, Echo: true})
}

// Requests returns a copy of every request received so far
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request, if any
func (s *Server) LastRequest() (RecordedRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return RecordedRequest{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method:      r.Method,
		Path:        r.URL.Path,
		ContentType: r.Header.Get("Content-Type"),
		Body:        body,
	})
	s.mu.Unlock()

	route := s.router.Match(r.Method, r.URL.Path)
	if route == nil {
		s.logger.Debug("no route",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path))
		http.NotFound(w, r)
		return
	}

	status := http.StatusOK
	switch {
	case route.Echo:
		if ct := r.Header.Get("Content-Type"); ct != "" {
			w.Header().Set("Content-Type", ct)
		}
		w.WriteHeader(status)
		_, _ = w.Write(body)
	case route.Response != nil:
		resp := route.Response
		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}
		if resp.ContentType != "" {
			w.Header().Set("Content-Type", resp.ContentType)
		}
		if resp.StatusCode != 0 {
			status = resp.StatusCode
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(resp.Body))
	default:
		w.WriteHeader(status)
	}

	s.logger.Debug("handled request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Duration("duration", time.Since(start)))
}
