package http

import (
	"mime"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
)

// Header is one header line as received. A header with several values
// appears once per value.
type Header struct {
	Name  string
	Value string
}

type Response struct {
	Proto       string
	StatusCode  int
	Status      string
	Headers     []Header
	ContentType string
	MediaType   string
	Body        string
	Duration    time.Duration
}

func newResponse(httpResp *http.Response, body []byte, duration time.Duration) *Response {
	contentType := httpResp.Header.Get("Content-Type")
	mediaType, params := ParseMediaType(contentType)

	return &Response{
		Proto:       httpResp.Proto,
		StatusCode:  httpResp.StatusCode,
		Status:      statusText(httpResp.StatusCode),
		Headers:     collectHeaders(httpResp.Header),
		ContentType: contentType,
		MediaType:   mediaType,
		Body:        DecodeBody(body, params["charset"]),
		Duration:    duration,
	}
}

// statusText renders the code with its canonical reason phrase, e.g. "200 OK".
func statusText(code int) string {
	reason := http.StatusText(code)
	if reason == "" {
		reason = "<unknown status code>"
	}
	return strconv.Itoa(code) + " " + reason
}

// collectHeaders flattens h into lower-case name/value lines. net/http keeps
// headers in a map, so names are sorted to give a stable order; values of a
// repeated header keep the order they arrived in.
func collectHeaders(h http.Header) []Header {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})

	headers := make([]Header, 0, len(names))
	for _, name := range names {
		lower := strings.ToLower(name)
		for _, value := range h[name] {
			headers = append(headers, Header{Name: lower, Value: value})
		}
	}
	return headers
}

// ParseMediaType returns the lower-case media type of a Content-Type value
// without its parameters. An empty or malformed value yields "".
func ParseMediaType(contentType string) (string, map[string]string) {
	if contentType == "" {
		return "", nil
	}
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", nil
	}
	return mediaType, params
}

// DecodeBody converts body to UTF-8 using the named charset. An empty or
// unknown label means UTF-8; invalid sequences become U+FFFD.
func DecodeBody(body []byte, label string) string {
	if label != "" {
		if enc, name := charset.Lookup(label); enc != nil && name != "utf-8" {
			if decoded, err := enc.NewDecoder().Bytes(body); err == nil {
				return string(decoded)
			}
		}
	}
	if utf8.Valid(body) {
		return string(body)
	}
	return strings.ToValidUTF8(string(body), string(utf8.RuneError))
}

func (r *Response) IsJSON() bool {
	return r.MediaType == "application/json"
}

func (r *Response) IsHTML() bool {
	return r.MediaType == "text/html"
}

func (r *Response) DurationMs() int64 {
	return r.Duration.Milliseconds()
}
