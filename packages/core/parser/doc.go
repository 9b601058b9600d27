// Package parser turns the positional arguments of the get and post
// subcommands into typed Options.
//
// It validates:
//   - URLs, which must be absolute with a scheme and a host
//   - key=value tokens, which become KvPair values for a JSON request body
package parser
