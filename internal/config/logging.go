package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Development reports whether DEVELOPMENT is set to anything but "0" or
// "false".
func Development() bool {
	switch os.Getenv("DEVELOPMENT") {
	case "", "0", "false":
		return false
	}
	return true
}

type Logging struct {
	Development bool
	Level       slog.Level
	File        string
}

// NewLogging reads DEVELOPMENT, LOG_LEVEL and LOG_FILE. The level defaults
// to debug in development and info otherwise.
func NewLogging() (*Logging, error) {
	l := &Logging{
		Development: Development(),
		Level:       slog.LevelInfo,
	}
	if l.Development {
		l.Level = slog.LevelDebug
	}

	if level, ok := os.LookupEnv("LOG_LEVEL"); ok && level != "" {
		if err := l.Level.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("unable to parse LOG_LEVEL: %w", err)
		}
	}

	l.File = os.Getenv("LOG_FILE")

	return l, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Logger builds the process logger. With a log file everything goes to a
// rotating JSON file and stderr stays untouched; otherwise development mode
// logs through tint, production through the JSON handler.
func (l Logging) Logger(stderr *os.File) (*slog.Logger, io.Closer) {
	if l.File != "" {
		file := &lumberjack.Logger{
			Filename:   l.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: l.Level})
		return slog.New(handler), file
	}

	var handler slog.Handler = slog.NewJSONHandler(
		stderr, &slog.HandlerOptions{Level: l.Level},
	)
	if l.Development {
		handler = tint.NewHandler(stderr, &tint.Options{
			Level:   l.Level,
			NoColor: !isatty.IsTerminal(stderr.Fd()),
		})
	}
	return slog.New(handler), nopCloser{}
}
