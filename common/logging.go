// Package common holds process-wide helpers shared by the registrar binaries.
package common

import (
	"io"
	"log/slog"
	"os"
)

type LoggingOpts struct {
	Debug bool
	JSON  bool

	// Service is added to every record as the "service" attribute when set
	Service string
	Version string

	// Output defaults to os.Stderr so that stdout only carries command results
	Output io.Writer
}

// SetupLogger builds the process logger from opts.
func SetupLogger(opts *LoggingOpts) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	logLevel := slog.LevelInfo
	if opts.Debug {
		logLevel = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(out, handlerOpts)
	} else {
		handler = slog.NewTextHandler(out, handlerOpts)
	}

	logger := slog.New(handler)
	if opts.Service != "" {
		logger = logger.With("service", opts.Service)
	}
	if opts.Version != "" {
		logger = logger.With("version", opts.Version)
	}
	return logger
}

// DiscardLogger is used by components constructed without a logger.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// LoggerOrDiscard returns log, or a discarding logger if log is nil.
func LoggerOrDiscard(log *slog.Logger) *slog.Logger {
	if log == nil {
		return DiscardLogger()
	}
	return log
}
