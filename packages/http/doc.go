// Package http sends the single request an httpie invocation describes.
//
// It wraps the standard library's http package with:
//   - Dispatch on parsed get/post options
//   - JSON request bodies built from key=value pairs
//   - Redirect handling without a default timeout
//   - A response snapshot with decoded body text and parsed media type
//
// net/http keeps response headers in a map, so the snapshot cannot know the
// order the server sent them in. Headers are listed sorted by lower-case
// name instead; the values of a repeated header keep their arrival order.
package http
