package static

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"devserver/core/middleware/cors"
	"devserver/core/server"
	"devserver/core/storage"
	"devserver/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, client storage.Client, cfg Config) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: server.ErrorHandler(zap.NewNop())})
	app.Use(cors.New(cors.ConfigDefault))
	NewHandler(NewService(client, cfg, zap.NewNop())).RegisterRoutes(app)
	return app
}

func do(t *testing.T, app *fiber.App, method, target string) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, string(body)
}

func assertCORS(t *testing.T, resp *http.Response) {
	t.Helper()
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization", resp.Header.Get("Access-Control-Allow-Headers"))
}

func TestHandleFile_RootServesIndex(t *testing.T) {
	app := setupTestApp(t, newClient(t, newTree(t)), Config{})

	resp, body := do(t, app, "GET", "/")
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "<h1>Notes</h1>", body)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assertCORS(t, resp)
}

func TestHandleFile_KnownFile(t *testing.T) {
	app := setupTestApp(t, newClient(t, newTree(t)), Config{})

	resp, body := do(t, app, "GET", "/app.js")
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "console.log(1)", body)
	assert.Contains(t, resp.Header.Get("Content-Type"), "javascript")
	assert.EqualValues(t, len("console.log(1)"), resp.ContentLength)
	assert.NotEmpty(t, resp.Header.Get("Last-Modified"))
	assertCORS(t, resp)
}

func TestHandleFile_Head(t *testing.T) {
	app := setupTestApp(t, newClient(t, newTree(t)), Config{})

	resp, body := do(t, app, "HEAD", "/app.js")
	assert.Equal(t, 200, resp.StatusCode)
	assert.Empty(t, body)
	assertCORS(t, resp)
}

func TestHandleFile_NotFound(t *testing.T) {
	app := setupTestApp(t, newClient(t, newTree(t)), Config{})

	for _, target := range []string{
		"/does-not-exist.txt",
		"/empty/",
		"/../../etc/passwd",
		"/%2e%2e/%2e%2e/etc/passwd",
		"/..%2f..%2fetc%2fpasswd",
	} {
		t.Run(target, func(t *testing.T) {
			resp, body := do(t, app, "GET", target)
			assert.Equal(t, 404, resp.StatusCode)
			assert.Equal(t, "Not Found", body)
			assert.NotContains(t, body, "root:")
			assertCORS(t, resp)
		})
	}
}

func TestHandleFile_DirectoryRedirect(t *testing.T) {
	app := setupTestApp(t, newClient(t, newTree(t)), Config{})

	tests := []struct {
		target   string
		location string
	}{
		{"/docs", "/docs/"},
		{"/docs?tab=intro", "/docs/?tab=intro"},
		{"/assets", "/assets/"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			resp, _ := do(t, app, "GET", tt.target)
			assert.Equal(t, 301, resp.StatusCode)
			assert.Equal(t, tt.location, resp.Header.Get("Location"))
			assertCORS(t, resp)
		})
	}

	resp, body := do(t, app, "GET", "/docs/")
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "<h1>Docs</h1>", body)
}

func TestHandleFile_Listing(t *testing.T) {
	client := newClient(t, newTree(t))

	resp, _ := do(t, setupTestApp(t, client, Config{}), "GET", "/assets/")
	assert.Equal(t, 404, resp.StatusCode)

	resp, body := do(t, setupTestApp(t, client, Config{ListDirectories: true}), "GET", "/assets/")
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, `href="/assets/logo.svg"`)
	assertCORS(t, resp)
}

func TestHandlePreflight(t *testing.T) {
	app := setupTestApp(t, newClient(t, newTree(t)), Config{})

	for _, target := range []string{"/", "/app.js", "/does-not-exist.txt", "/api/notes"} {
		t.Run(target, func(t *testing.T) {
			resp, body := do(t, app, "OPTIONS", target)
			assert.Equal(t, 200, resp.StatusCode)
			assert.Empty(t, body)
			assertCORS(t, resp)
		})
	}
}

func TestDispatch_MethodNotAllowed(t *testing.T) {
	app := setupTestApp(t, newClient(t, newTree(t)), Config{})

	for _, method := range []string{"POST", "PUT", "DELETE", "PATCH"} {
		t.Run(method, func(t *testing.T) {
			resp, _ := do(t, app, method, "/app.js")
			assert.Equal(t, 405, resp.StatusCode)
			assert.Equal(t, "GET, HEAD, OPTIONS", resp.Header.Get("Allow"))
			assertCORS(t, resp)
		})
	}
}

func TestHandleFile_InternalError(t *testing.T) {
	client := new(mocks.Client)
	client.On("Stat", "/app.js").Return(fileInfo(t), nil)
	client.On("Open", "/app.js").Return(nil, errors.New("open /home/dev/frontend/app.js: input/output error"))

	app := setupTestApp(t, client, Config{})
	resp, body := do(t, app, "GET", "/app.js")

	assert.Equal(t, 500, resp.StatusCode)
	assert.Equal(t, "Internal Server Error", body)
	assert.NotContains(t, body, "/home/dev")
	assertCORS(t, resp)

	// The server stays available after a failed request.
	client.On("Stat", "/other.js").Return(nil, storage.ErrOutsideRoot)
	resp, _ = do(t, app, "GET", "/other.js")
	assert.Equal(t, 404, resp.StatusCode)
}
