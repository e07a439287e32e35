// Package storage provides read-only access to the directory tree being served.
//
// The Client interface hides the local filesystem behind a small set of
// operations, which keeps the file-serving feature easy to test with the mock
// in core/storage/mocks.
//
// # Confinement
//
// Every name is cleaned, joined to the root and resolved through symlinks
// before use. A result that is not a descendant of the root fails with
// ErrOutsideRoot, so neither "../" segments nor symlinks can reach files
// outside the served tree.
//
// # Operations
//
//   - Stat: Describes a file or directory.
//   - Open: Opens a file as a stream.
//   - ReadDir: Lists a directory.
//
// # Usage
//
//	client, err := storage.NewClient(storage.Config{Root: "./frontend"})
//	f, err := client.Open("/app.js")
package storage
