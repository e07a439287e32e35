package static

import (
	"errors"
	"net/http"

	"devserver/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// allowedMethods is sent in the Allow header of 405 responses.
const allowedMethods = "GET, HEAD, OPTIONS"

// Handler handles HTTP requests for static files.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catch-all route. Method selection happens in
// Dispatch rather than in the router.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.All("/*", h.Dispatch)
}

// Dispatch routes a request to the handler for its method.
func (h *Handler) Dispatch(c *fiber.Ctx) error {
	switch c.Method() {
	case fiber.MethodGet, fiber.MethodHead:
		return h.HandleFile(c)
	case fiber.MethodOptions:
		return h.HandlePreflight(c)
	default:
		c.Set(fiber.HeaderAllow, allowedMethods)
		return fiber.ErrMethodNotAllowed
	}
}

// HandlePreflight answers CORS preflight requests with an empty 200. The
// CORS headers themselves come from the cors middleware.
func (h *Handler) HandlePreflight(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAllow, allowedMethods)
	c.Status(fiber.StatusOK)
	return nil
}

// HandleFile serves the file, redirect or listing the path resolves to.
func (h *Handler) HandleFile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	asset, err := h.service.Lookup(c.Path())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			l.Debug("File not found", zap.String("path", c.Path()), zap.Error(err))
			return fiber.ErrNotFound
		}
		l.Error("Failed to read file", zap.String("path", c.Path()), zap.Error(err))
		return fiber.ErrInternalServerError
	}

	switch asset.Kind {
	case KindRedirect:
		location := asset.Location
		if q := c.Context().QueryArgs().QueryString(); len(q) > 0 {
			location += "?" + string(q)
		}
		return c.Redirect(location, fiber.StatusMovedPermanently)
	case KindListing:
		body, err := renderListing(asset.Name, asset.Entries)
		if err != nil {
			l.Error("Failed to render listing", zap.String("path", asset.Name), zap.Error(err))
			return fiber.ErrInternalServerError
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(body)
	}

	c.Set(fiber.HeaderContentType, asset.ContentType)
	c.Set(fiber.HeaderLastModified, asset.ModTime.UTC().Format(http.TimeFormat))
	// The stream is closed by fasthttp once the response is written.
	return c.SendStream(asset.Body, int(asset.Size))
}
