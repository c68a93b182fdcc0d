// Package logging provides the leveled diagnostic sink used to display
// errors and warnings. It wraps zerolog with an explicit per-logger level,
// keeps a bounded rolling history of emitted lines, and owns the process
// exit collaborator invoked by fatal displays.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/haywardlabs/groundwork/gw/config"
	"github.com/haywardlabs/groundwork/gw/ringbuf"
)

// Logger is a leveled sink over zerolog. It satisfies diagnostics.Sink.
// Each Logger carries its own level; there is no process-global level.
type Logger struct {
	zl   zerolog.Logger
	exit func(int)

	bufMu sync.Mutex
	buf   *ringbuf.RollingBuffer
}

// Option adjusts a Logger at construction time.
type Option func(*Logger)

// WithExitFunc replaces the process-exit collaborator, letting tests
// intercept fatal displays.
func WithExitFunc(f func(code int)) Option {
	return func(l *Logger) { l.exit = f }
}

// New builds a Logger writing to out, leveled and colored per cfg, with a
// rolling history of cfg.BufferCapacity lines.
func New(cfg config.LoggingConfig, out io.Writer, opts ...Option) *Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	console := zerolog.ConsoleWriter{Out: out, NoColor: cfg.NoColor}
	l := &Logger{
		zl:   zerolog.New(console).Level(level).With().Timestamp().Logger(),
		exit: os.Exit,
		buf:  ringbuf.New(cfg.BufferCapacity),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Logger) record(line string) {
	l.bufMu.Lock()
	defer l.bufMu.Unlock()
	l.buf.Push(line)
}

// Error emits one error-level line.
func (l *Logger) Error(msg string) {
	l.zl.Error().Msg(msg)
	l.record(msg)
}

// Warn emits one warn-level line.
func (l *Logger) Warn(msg string) {
	l.zl.Warn().Msg(msg)
	l.record(msg)
}

// Info emits one info-level line.
func (l *Logger) Info(msg string) {
	l.zl.Info().Msg(msg)
	l.record(msg)
}

// Debug emits one debug-level line.
func (l *Logger) Debug(msg string) {
	l.zl.Debug().Msg(msg)
	l.record(msg)
}

// Exit terminates the process with the given status. Fatal displays call it
// once after flushing every queued item.
func (l *Logger) Exit(code int) {
	l.exit(code)
}

// Recent returns the buffered history from oldest to newest.
func (l *Logger) Recent() []string {
	l.bufMu.Lock()
	defer l.bufMu.Unlock()
	return l.buf.Snapshot()
}
