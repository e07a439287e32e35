// Package static serves a directory tree for frontend development.
//
// # Resolution
//
//   - "/" maps to the index document (index.html by default).
//   - A directory path without a trailing slash is redirected (301) to the
//     same path with the slash, so relative links resolve inside it.
//   - A directory path with a trailing slash serves its index document; if
//     there is none it is not found, or listed when ListDirectories is set.
//   - Paths escaping the root, through ".." or symlinks, are not found.
//
// Files are streamed with a Content-Type inferred from the extension
// (application/octet-stream when unknown) and an exact Content-Length.
//
// # HTTP Endpoints
//
//   - GET, HEAD /* : Serves the resolved file.
//   - OPTIONS /* : Empty 200 for CORS preflight.
//   - Any other method: 405 with an Allow header.
package static
