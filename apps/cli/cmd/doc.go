// Package cmd implements the httpie CLI commands using Cobra.
//
// Available commands:
//   - get: Send a GET request to a URL
//   - post: Send key=value pairs to a URL as a JSON object
//
// Exit status is 0 once a response has been printed (whatever its HTTP
// status), 1 for network or output failures and 2 for invalid arguments.
package cmd
