// Package logging builds the structured logger shared by the CLI, the
// registry and the sweep driver. The entity packages never log.
package logging

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// New returns a zap-backed logr.Logger writing to stderr. Level accepts the
// zap names (debug, info, warn, error); format is console or json.
func New(level, format string) (logr.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return logr.Discard(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	switch format {
	case "", FormatConsole:
		cfg.Encoding = FormatConsole
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	case FormatJSON:
		cfg.Encoding = FormatJSON
	default:
		return logr.Discard(), fmt.Errorf("invalid log format %q", format)
	}

	z, err := cfg.Build()
	if err != nil {
		return logr.Discard(), err
	}
	return zapr.NewLogger(z), nil
}

// NewTestLogger returns a development logger for tests and examples.
func NewTestLogger() logr.Logger {
	z, err := zap.NewDevelopment()
	if err != nil {
		return logr.Discard()
	}
	return zapr.NewLogger(z)
}

func Discard() logr.Logger {
	return logr.Discard()
}
