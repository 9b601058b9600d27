package parser

import "net/http"

// Options is the parsed command line. It is implemented by *Get and *Post only.
type Options interface {
	Method() string
	Target() string
	options()
}

// Get requests a URL.
type Get struct {
	URL string
}

func (g *Get) Method() string { return http.MethodGet }
func (g *Get) Target() string { return g.URL }
func (*Get) options()         {}

// Post sends Body to URL as a JSON object.
type Post struct {
	URL  string
	Body []KvPair
}

func (p *Post) Method() string { return http.MethodPost }
func (p *Post) Target() string { return p.URL }
func (*Post) options()         {}

// KvPair is a key=value token from the command line.
type KvPair struct {
	K string
	V string
}

type ParseError struct {
	Input   string
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}
