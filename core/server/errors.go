package server

import (
	"errors"

	"devserver/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// BindError reports a failure to open the listening socket.
type BindError struct {
	// Addr is the host:port that was attempted.
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return "failed to bind " + e.Addr + ": " + e.Err.Error()
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// ErrorHandler maps handler errors to plain status responses. Only the status
// text is written to the client; the error itself goes to the log.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		if code >= fiber.StatusInternalServerError {
			logger.WithRayID(log, c).Error("Unhandled request error",
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(code).SendString(utils.StatusMessage(code))
	}
}
