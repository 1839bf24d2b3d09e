// Package logging builds the zerolog logger shared by all hooks.
//
// Hooks write their diagnostics to stderr so that git shows them to the
// user. A rotating log file can be added with GITHOOKS_LOG_FILE.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mrz1836/githooks/internal/constants"
)

// Options controls logger construction.
type Options struct {
	// Verbose enables debug-level logging.
	Verbose bool
	// Quiet restricts output to warnings and errors.
	Quiet bool
	// FilePath adds a rotating log file when non-empty.
	FilePath string
}

// Logger is a configured zerolog.Logger plus the resources it owns.
type Logger struct {
	zerolog.Logger
	file io.Closer
}

// Close releases the log file, if one was opened.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// New creates a logger writing to stderr, plus the optional log file.
//
// Log levels are set as follows:
//   - Verbose: Debug level
//   - Quiet: Warn level
//   - default: Info level
//
// Stderr gets a console writer when it is a terminal and NO_COLOR is unset,
// JSON otherwise. If the log file cannot be created, the returned logger is
// still usable and the error describes what went wrong.
func New(opts Options) (*Logger, error) {
	return NewWithWriter(opts, selectOutput(os.Stderr))
}

// NewWithWriter is New with an explicit console writer.
// This is primarily intended for testing purposes.
func NewWithWriter(opts Options, console io.Writer) (*Logger, error) {
	l := &Logger{}
	writer := console

	var fileErr error
	if opts.FilePath != "" {
		fw, err := newFileWriter(opts.FilePath)
		if err != nil {
			fileErr = err
		} else {
			l.file = fw
			writer = zerolog.MultiLevelWriter(console, fw)
		}
	}

	l.Logger = zerolog.New(writer).Level(SelectLevel(opts.Verbose, opts.Quiet)).With().Timestamp().Logger()
	return l, fileErr
}

// SelectLevel determines the log level based on verbosity flags.
func SelectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// selectOutput returns a console writer for terminals and the raw file otherwise.
func selectOutput(f *os.File) io.Writer {
	if term.IsTerminal(int(f.Fd())) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{
			Out:        f,
			TimeFormat: time.Kitchen,
		}
	}
	return f
}

// newFileWriter creates a rotating file writer, creating the directory if needed.
func newFileWriter(path string) (*lumberjack.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    constants.LogMaxSizeMB,
		MaxBackups: constants.LogMaxBackups,
		MaxAge:     constants.LogMaxAgeDays,
		Compress:   constants.LogCompress,
	}, nil
}
