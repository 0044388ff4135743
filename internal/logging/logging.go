// Package logging builds the zap loggers used by the ecsig tools and holds the
// redaction helpers used when a log entry would otherwise carry key material.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const redactedPlaceholder = "[redacted]"

// Encoding selects the format of log records.
type Encoding string

// Supported encodings.
const (
	CONSOLE = Encoding("console")
	JSON    = Encoding("json")
	LOGFMT  = Encoding("logfmt")
)

// Config selects the level, encoding and destination of a logger built by
// New.
type Config struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string

	// Format is console, json or logfmt. Empty means console.
	Format string

	// Writer receives encoded entries. Nil means stderr.
	Writer io.Writer
}

// New returns a zap logger for cfg.
func New(cfg Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		lvl, err := zapcore.ParseLevel(strings.TrimSpace(cfg.Level))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = lvl
	}

	encoder, err := newEncoder(cfg.Format)
	if err != nil {
		return nil, err
	}

	var out zapcore.WriteSyncer = os.Stderr
	if cfg.Writer != nil {
		out = zapcore.AddSync(cfg.Writer)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(out), level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

func newEncoder(format string) (zapcore.Encoder, error) {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.NameKey = "name"

	switch Encoding(strings.ToLower(strings.TrimSpace(format))) {
	case "", CONSOLE:
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(ec), nil
	case JSON:
		return zapcore.NewJSONEncoder(ec), nil
	case LOGFMT:
		return zaplogfmt.NewEncoder(ec), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (want console, json or logfmt)", format)
	}
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// Redacted returns a field that records that a sensitive value was left out
// of the entry on purpose.
func Redacted(key string) zap.Field {
	return zap.String(key, redactedPlaceholder)
}

// Placeholder returns the value Redacted writes in place of secrets.
func Placeholder() string {
	return redactedPlaceholder
}
