// Package logging builds the zap loggers used by the workflow and the
// command-line tool. Library packages below masw do not log.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrUnknownLevel is returned by [ParseLevel] for names zap does not know.
var ErrUnknownLevel = errors.New("logging: unknown level")

// Option configures a logger.
type Option func(*options)

type options struct {
	level   zapcore.Level
	console bool
	out     io.Writer
}

// WithLevel sets the minimum level. The default is info.
func WithLevel(level zapcore.Level) Option {
	return func(o *options) { o.level = level }
}

// WithConsole switches from JSON to the human-readable console encoder.
func WithConsole(on bool) Option {
	return func(o *options) { o.console = on }
}

// WithOutput redirects log output. The default is stderr.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// New returns a logger using the production encoder settings with ISO8601
// timestamps.
func New(opts ...Option) *zap.Logger {
	o := options{level: zapcore.InfoLevel, out: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if o.console {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(o.out), zap.NewAtomicLevelAt(o.level))
	return zap.New(core, zap.AddCaller())
}

// ParseLevel maps a level name ("debug", "info", "warn", "error", ...) to
// a zap level.
func ParseLevel(name string) (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(name)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
	return level, nil
}
