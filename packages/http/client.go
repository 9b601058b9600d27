package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/abdul-hamid-achik/httpie/packages/core/parser"
	"go.uber.org/zap"
)

const (
	// DefaultMaxRedirects is the maximum number of redirects to follow
	DefaultMaxRedirects = 10
	// DefaultMaxIdleConns is the maximum number of idle connections in the pool
	DefaultMaxIdleConns = 100
	// DefaultIdleConnTimeout is how long idle connections stay in the pool
	DefaultIdleConnTimeout = 90 * time.Second
)

type Client struct {
	httpClient     *http.Client
	timeout        time.Duration
	followRedirect bool
	maxRedirects   int
	logger         *zap.Logger
}

type ClientOption func(*Client)

// NewClient builds a client with platform-default TLS, redirects followed
// and no timeout.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		followRedirect: true,
		maxRedirects:   DefaultMaxRedirects,
		logger:         zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = DefaultMaxIdleConns
	transport.IdleConnTimeout = DefaultIdleConnTimeout

	redirectPolicy := func(req *http.Request, via []*http.Request) error {
		if !c.followRedirect {
			return http.ErrUseLastResponse
		}
		if len(via) >= c.maxRedirects {
			return fmt.Errorf("stopped after %d redirects", c.maxRedirects)
		}
		c.logger.Debug("following redirect",
			zap.String("url", req.URL.String()),
			zap.Int("hop", len(via)))
		return nil
	}

	c.httpClient = &http.Client{
		Transport:     transport,
		Timeout:       c.timeout,
		CheckRedirect: redirectPolicy,
	}

	return c
}

// WithTimeout bounds the whole exchange. Zero disables the limit.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

func WithFollowRedirects(follow bool) ClientOption {
	return func(c *Client) {
		c.followRedirect = follow
	}
}

func WithMaxRedirects(max int) ClientOption {
	return func(c *Client) {
		c.maxRedirects = max
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(l *zap.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// Execute sends the request described by opts and reads the whole response.
func (c *Client) Execute(ctx context.Context, opts parser.Options) (*Response, error) {
	var req *Request
	switch o := opts.(type) {
	case *parser.Get:
		req = NewRequest(http.MethodGet, o.URL)
	case *parser.Post:
		body, err := BuildJSONBody(o.Body)
		if err != nil {
			return nil, err
		}
		req = NewRequest(http.MethodPost, o.URL).
			SetBody(body).
			SetHeader("Content-Type", "application/json")
	default:
		return nil, fmt.Errorf("unsupported options type %T", opts)
	}

	return c.Do(ctx, req)
}

func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}

	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	c.logger.Debug("sending request",
		zap.String("method", req.Method),
		zap.String("url", req.URL),
		zap.Int("body_bytes", len(req.Body)))

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	duration := time.Since(start)

	resp := newResponse(httpResp, respBody, duration)

	c.logger.Debug("received response",
		zap.String("proto", resp.Proto),
		zap.Int("status", resp.StatusCode),
		zap.String("content_type", resp.ContentType),
		zap.Int("body_bytes", len(respBody)),
		zap.Int64("duration_ms", resp.DurationMs()))

	return resp, nil
}

func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	return c.Execute(ctx, &parser.Get{URL: url})
}

func (c *Client) Post(ctx context.Context, url string, pairs []parser.KvPair) (*Response, error) {
	return c.Execute(ctx, &parser.Post{URL: url, Body: pairs})
}
