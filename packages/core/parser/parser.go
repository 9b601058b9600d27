package parser

import (
	"fmt"
	neturl "net/url"
	"strings"
)

// ParseURL checks that s is an absolute URL with a scheme and a host and
// returns it unchanged.
func ParseURL(s string) (string, error) {
	u, err := neturl.Parse(s)
	if err != nil {
		return "", &ParseError{Input: s, Message: fmt.Sprintf("invalid URL %q: %v", s, unwrapURLError(err))}
	}
	if u.Scheme == "" {
		return "", &ParseError{Input: s, Message: fmt.Sprintf("invalid URL %q: relative URL without a base", s)}
	}
	if u.Host == "" {
		return "", &ParseError{Input: s, Message: fmt.Sprintf("invalid URL %q: empty host", s)}
	}
	return s, nil
}

// ParseKvPair parses a key=value token. Only the text between the first and
// second '=' becomes the value, so "a=b=c" yields {a b}.
func ParseKvPair(s string) (KvPair, error) {
	parts := strings.Split(s, "=")
	if len(parts) < 2 {
		return KvPair{}, &ParseError{Input: s, Message: "Failed to parse " + s}
	}
	return KvPair{K: parts[0], V: parts[1]}, nil
}

// ParseGet builds Get options from the positional arguments of `get`.
func ParseGet(args []string) (*Get, error) {
	if len(args) != 1 {
		return nil, &ParseError{Message: fmt.Sprintf("get takes exactly one URL, got %d arguments", len(args))}
	}
	url, err := ParseURL(args[0])
	if err != nil {
		return nil, err
	}
	return &Get{URL: url}, nil
}

// ParsePost builds Post options from the positional arguments of `post`.
// Pairs keep their command-line order.
func ParsePost(args []string) (*Post, error) {
	if len(args) < 1 {
		return nil, &ParseError{Message: "post requires a URL"}
	}
	url, err := ParseURL(args[0])
	if err != nil {
		return nil, err
	}

	body := make([]KvPair, 0, len(args)-1)
	for _, arg := range args[1:] {
		pair, err := ParseKvPair(arg)
		if err != nil {
			return nil, err
		}
		body = append(body, pair)
	}

	return &Post{URL: url, Body: body}, nil
}

// unwrapURLError drops the `parse "..."` prefix net/url adds, since the
// caller already quotes the input.
func unwrapURLError(err error) error {
	if uerr, ok := err.(*neturl.Error); ok {
		return uerr.Err
	}
	return err
}
