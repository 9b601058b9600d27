// Package output renders an HTTP response for the terminal.
//
// The status line is blue, header names are green, and bodies are
// highlighted by media type:
//   - application/json: JSON syntax highlighting
//   - text/html: HTML syntax highlighting
//   - anything else: printed verbatim
//
// Highlighting uses chroma with a 24-bit terminal formatter.
package output
