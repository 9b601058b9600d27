package http

import (
	"encoding/json"

	"github.com/abdul-hamid-achik/httpie/packages/core/parser"
)

type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

func NewRequest(method, requestURL string) *Request {
	return &Request{
		Method:  method,
		URL:     requestURL,
		Headers: make(map[string]string),
	}
}

func (r *Request) SetHeader(key, value string) *Request {
	r.Headers[key] = value
	return r
}

func (r *Request) SetBody(body []byte) *Request {
	r.Body = body
	return r
}

// BodyMap collects pairs into a map. A key given more than once keeps its
// last value.
func BodyMap(pairs []parser.KvPair) map[string]string {
	body := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		body[pair.K] = pair.V
	}
	return body
}

// BuildJSONBody encodes pairs as a flat JSON object of strings.
func BuildJSONBody(pairs []parser.KvPair) ([]byte, error) {
	return json.Marshal(BodyMap(pairs))
}
