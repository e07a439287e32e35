package static

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderListing(t *testing.T) {
	body, err := renderListing("/assets", []Entry{
		{Name: "zeta.png"},
		{Name: "fonts", IsDir: true},
		{Name: "<script>.js"},
		{Name: "my file.txt"},
	})
	require.NoError(t, err)
	html := string(body)

	assert.Contains(t, html, "Directory listing for /assets")
	assert.Contains(t, html, `href="/assets/fonts/"`)
	assert.Contains(t, html, ">fonts/<")
	assert.Contains(t, html, `href="/assets/my%20file.txt"`)
	assert.Contains(t, html, "&lt;script&gt;.js")
	assert.NotContains(t, html, "<script>")

	// Sorted by name.
	assert.Less(t, strings.Index(html, "fonts/"), strings.Index(html, "zeta.png"))
}
