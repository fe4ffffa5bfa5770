package config

import (
	"net"
	"strconv"
	"time"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// ServerConfig holds settings for the HTTP surface.
type ServerConfig struct {
	// Addr is the listen address (host:port). Empty disables the server.
	Addr string

	// ReadTimeout and WriteTimeout bound each request.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}

// Enabled reports whether a listen address was configured.
func (s *ServerConfig) Enabled() bool {
	return s.Addr != ""
}

// Validate checks the listen address and timeouts.
func (s *ServerConfig) Validate() error {
	if s.ReadTimeout < 0 || s.WriteTimeout < 0 {
		return errors.Wrap(errors.ErrInvalidConfig, "negative server timeout")
	}
	if !s.Enabled() {
		return nil
	}
	_, port, err := net.SplitHostPort(s.Addr)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "listen address %q", s.Addr)
	}
	if n, err := strconv.Atoi(port); err != nil || n < 0 || n > 65535 {
		return errors.Wrapf(errors.ErrInvalidConfig, "listen port %q", port)
	}
	return nil
}
