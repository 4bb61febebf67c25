// Package logging builds the zerolog root logger and its sinks
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Graylog2/go-gelf/gelf"
	"github.com/rs/zerolog"
)

const (
	FileName = "stardrift.log"

	// MaxFileSize rotates the log file on startup once exceeded
	MaxFileSize = 10 * 1024 * 1024
)

// Options configure Setup
type Options struct {
	Level string
	Dir   string
	// Console mirrors output to stderr, only usable before the terminal takes over
	Console bool
	// GraylogAddress enables a GELF UDP sink when set
	GraylogAddress string
}

// Sinks owns the writers opened by Setup
type Sinks struct {
	file *os.File
	gelf *gelf.Writer
}

func (s *Sinks) Close() error {
	var firstErr error
	if s.gelf != nil {
		if err := s.gelf.Close(); err != nil {
			firstErr = err
		}
	}
	if s.file != nil {
		if err := s.file.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// ParseLevel maps a level name to zerolog, unknown names select info
func ParseLevel(name string) zerolog.Level {
	switch strings.ToLower(name) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Setup opens the file sink, plus console and Graylog sinks when asked, and returns the root logger
// A Graylog failure degrades to file-only logging
func Setup(opts Options) (zerolog.Logger, *Sinks, error) {
	sinks := &Sinks{}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}
	path := filepath.Join(opts.Dir, FileName)
	if err := rotate(path, MaxFileSize); err != nil {
		return zerolog.Nop(), nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	sinks.file = f

	writers := []io.Writer{f}
	if opts.Console {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	var gelfErr error
	if opts.GraylogAddress != "" {
		sinks.gelf, gelfErr = gelf.NewWriter(opts.GraylogAddress)
		if gelfErr == nil {
			writers = append(writers, sinks.gelf)
		}
	}

	log := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(ParseLevel(opts.Level)).
		With().Timestamp().Logger()

	if gelfErr != nil {
		log.Warn().Err(gelfErr).Str("address", opts.GraylogAddress).Msg("Graylog sink unavailable")
	}
	return log, sinks, nil
}

// Component returns a child logger tagged with a component name
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// rotate moves an oversized log aside, keeping one previous generation
func rotate(path string, limit int64) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() < limit {
		return nil
	}
	if err := os.Rename(path, path+".1"); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}
