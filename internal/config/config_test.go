package config

import (
	"bytes"
	"errors"
	"testing"
	"time"

	cerrors "github.com/lgbarn/chessboard-go/internal/errors"
)

// TestConfig_Defaults verifies NewConfig has sensible defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Output.Format != Text {
		t.Errorf("Output.Format = %v, want %v", cfg.Output.Format, Text)
	}
	if cfg.Output.JSONIndent != "  " {
		t.Errorf("Output.JSONIndent = %q, want two spaces", cfg.Output.JSONIndent)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Server.Enabled() {
		t.Error("Server should be disabled by default")
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	if cfg.OutputFile == nil || cfg.LogFile == nil {
		t.Error("output and log streams should default to stdout/stderr")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    OutputFormat
		wantErr bool
	}{
		{"text", Text, false},
		{"JSON", JSON, false},
		{" fen ", FEN, false},
		{"pgn", Text, true},
		{"", Text, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, cerrors.ErrUnknownFormat) {
					t.Errorf("error %v should wrap ErrUnknownFormat", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestOutputFormat_String(t *testing.T) {
	for format, name := range formatNames {
		if got := format.String(); got != name {
			t.Errorf("%d.String() = %q, want %q", int(format), got, name)
		}
	}
	if got := OutputFormat(99).String(); got != "unknown" {
		t.Errorf("OutputFormat(99).String() = %q, want unknown", got)
	}
}

// TestConfig_Validate verifies config validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"defaults", func(*Config) {}, nil},
		{"debug level", func(c *Config) { c.LogLevel = "debug" }, nil},
		{"bad level", func(c *Config) { c.LogLevel = "chatty" }, cerrors.ErrInvalidConfig},
		{"nil output", func(c *Config) { c.OutputFile = nil }, cerrors.ErrInvalidConfig},
		{"bad format", func(c *Config) { c.Output.Format = OutputFormat(7) }, cerrors.ErrUnknownFormat},
		{"server addr", func(c *Config) { c.Server.Addr = "127.0.0.1:8080" }, nil},
		{"server any host", func(c *Config) { c.Server.Addr = ":0" }, nil},
		{"server no port", func(c *Config) { c.Server.Addr = "localhost" }, cerrors.ErrInvalidConfig},
		{"server bad port", func(c *Config) { c.Server.Addr = ":http-ish" }, cerrors.ErrInvalidConfig},
		{"server port range", func(c *Config) { c.Server.Addr = ":70000" }, cerrors.ErrInvalidConfig},
		{"negative timeout", func(c *Config) { c.Server.WriteTimeout = -time.Second }, cerrors.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithOutputFormat(JSON).
		WithJSONIndent("").
		WithListenAddr(":8080").
		WithLogLevel("warn").
		WithOutput(out).
		WithLog(logs).
		Build()

	if cfg.Output.Format != JSON {
		t.Errorf("Format = %v, want JSON", cfg.Output.Format)
	}
	if cfg.Output.JSONIndent != "" {
		t.Errorf("JSONIndent = %q, want empty", cfg.Output.JSONIndent)
	}
	if cfg.Server.Addr != ":8080" || !cfg.Server.Enabled() {
		t.Errorf("Server.Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if cfg.OutputFile != out || cfg.LogFile != logs {
		t.Error("builder did not set output streams")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
