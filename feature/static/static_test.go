package static

import (
	"os"
	"path/filepath"
	"testing"

	"devserver/core/storage"

	"github.com/stretchr/testify/require"
)

// newTree builds a small frontend directory:
//
//	index.html
//	app.js
//	style.css
//	LICENSE
//	blob.unknownext
//	docs/index.html
//	empty/
//	assets/logo.svg
func newTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"index.html":      "<h1>Notes</h1>",
		"app.js":          "console.log(1)",
		"style.css":       "body{}",
		"LICENSE":         "MIT",
		"blob.unknownext": "\x00\x01",
		"docs/index.html": "<h1>Docs</h1>",
		"assets/logo.svg": "<svg/>",
	}
	for name, data := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o755))
	return root
}

func newClient(t *testing.T, root string) storage.Client {
	t.Helper()
	client, err := storage.NewClient(storage.Config{Root: root})
	require.NoError(t, err)
	return client
}
