package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	cfg    zap.Config
	writer io.Writer
}

// Option customises the logger configuration before it is built.
type Option func(*options)

// WithJSON switches from the console encoder to JSON output.
func WithJSON() Option {
	return func(o *options) {
		o.cfg.Encoding = "json"
	}
}

// WithOutputPaths overrides where log entries are written (stderr by default).
func WithOutputPaths(paths ...string) Option {
	return func(o *options) {
		o.cfg.OutputPaths = paths
		o.cfg.ErrorOutputPaths = paths
	}
}

// WithWriter sends log entries to w instead of the configured output paths.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}

// New creates a structured logger for command-line use. Entries go to stderr
// so they never mix with command output. The level is shared with the caller,
// which raises it to debug once --debug has been resolved.
func New(level zap.AtomicLevel, opts ...Option) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.DisableStacktrace = true
	cfg.Sampling = nil

	o := options{cfg: cfg}
	for _, opt := range opts {
		opt(&o)
	}

	if o.writer != nil {
		encoder := zapcore.NewConsoleEncoder(o.cfg.EncoderConfig)
		if o.cfg.Encoding == "json" {
			encoder = zapcore.NewJSONEncoder(o.cfg.EncoderConfig)
		}
		return zap.New(zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(o.writer)), o.cfg.Level)), nil
	}

	logger, err := o.cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
