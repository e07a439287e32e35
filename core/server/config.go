package server

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface address to listen on.
	Host string `mapstructure:"host" default:"127.0.0.1"`
	// Port is the TCP port to listen on. 0 picks a free port.
	Port int `mapstructure:"port" default:"3000"`
	// BackendURL is where the operator is told to run the backend API.
	BackendURL string `mapstructure:"backend_url" default:"http://localhost:8000"`
	// OpenBrowser launches the default browser once the server is listening.
	OpenBrowser bool `mapstructure:"open_browser" default:"true"`
	// ReadTimeout bounds reading a full request.
	ReadTimeout time.Duration `mapstructure:"read_timeout" default:"30s"`
	// WriteTimeout bounds writing a full response.
	WriteTimeout time.Duration `mapstructure:"write_timeout" default:"30s"`
	// IdleTimeout bounds keep-alive connections between requests.
	IdleTimeout time.Duration `mapstructure:"idle_timeout" default:"60s"`
	// ShutdownTimeout bounds how long in-flight requests may finish on exit.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" default:"5s"`
}

// Address returns the host:port pair to bind.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// URL returns the base URL for the configured address.
func (c Config) URL() string {
	return "http://" + c.Address()
}

// Validate checks the invariants of the configuration.
func (c Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("server host must not be empty")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("server port %d out of range 0-65535", c.Port)
	}
	if c.ShutdownTimeout < 0 {
		return fmt.Errorf("server shutdown timeout must not be negative")
	}
	return nil
}
