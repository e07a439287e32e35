package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"

	"devserver/core/browser"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// Server owns the Fiber application and its listening socket.
type Server struct {
	cfg    Config
	logger *zap.Logger
	app    *fiber.App
	ln     net.Listener

	opener browser.Opener
	out    io.Writer
	root   string
}

// Option customises a Server.
type Option func(*Server)

// WithOpener sets the browser launcher. It defaults to the system browser.
func WithOpener(o browser.Opener) Option {
	return func(s *Server) { s.opener = o }
}

// WithOutput sets where the banner is written. It defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Server) { s.out = w }
}

// WithRoot sets the serving root shown in the banner.
func WithRoot(root string) Option {
	return func(s *Server) { s.root = root }
}

// New creates a server for cfg. Routes and middleware are added through App
// before Run is called.
func New(cfg Config, logger *zap.Logger, opts ...Option) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger,
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.opener == nil {
		s.opener = browser.NewSystem()
	}

	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true, // We print our own banner
		ErrorHandler:          ErrorHandler(logger),
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           cfg.IdleTimeout,
	})
	s.app.Use(recover.New())

	return s
}

// App returns the underlying Fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen binds the listening socket. Failures are returned as *BindError.
func (s *Server) Listen() error {
	if err := s.cfg.Validate(); err != nil {
		return err
	}
	addr := s.cfg.Address()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return &BindError{Addr: addr, Err: err}
	}
	s.ln = ln
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// URL returns the URL the server is reachable at. After Listen it reflects the
// actual port, which matters when the configured port is 0.
func (s *Server) URL() string {
	if addr, ok := s.Addr().(*net.TCPAddr); ok {
		cfg := s.cfg
		cfg.Port = addr.Port
		return cfg.URL()
	}
	return s.cfg.URL()
}

// Run binds the socket and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}

// Serve accepts connections on the bound socket until ctx is cancelled, then
// shuts down gracefully. The listener is closed when Serve returns.
func (s *Server) Serve(ctx context.Context) error {
	if s.ln == nil {
		return errors.New("server is not listening")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listener(s.ln)
	}()

	url := s.URL()
	s.logger.Info("Server started", zap.String("url", url), zap.String("root", s.root))
	printBanner(s.out, s.root, url, s.cfg.BackendURL)
	if s.cfg.OpenBrowser {
		s.launchBrowser(url)
	}

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")
	shutdownCtx := context.Background()
	if s.cfg.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		shutdownCtx, cancel = context.WithTimeout(shutdownCtx, s.cfg.ShutdownTimeout)
		defer cancel()
	}
	shutdownErr := s.app.ShutdownWithContext(shutdownCtx)
	// Serve may not have registered the listener yet; closing it here
	// guarantees the accept loop ends and the port is released.
	_ = s.ln.Close()
	if shutdownErr != nil {
		return fmt.Errorf("failed to shut down: %w", shutdownErr)
	}
	if err := <-errCh; err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	s.logger.Info("Server stopped")
	return nil
}

func (s *Server) launchBrowser(url string) {
	err := s.opener.Open(url)
	if err != nil {
		s.logger.Warn("Could not open browser", zap.String("url", url), zap.Error(err))
	}
	printBrowserResult(s.out, url, err)
}
