package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileName is the rotating log file written under the logs directory.
const LogFileName = "portfolio.log"

// DefaultTailSize is how many formatted lines Lines keeps when Options.TailSize is zero.
const DefaultTailSize = 200

// Options configures New.
type Options struct {
	// Level is one of TRACE, DEBUG, INFO, WARN, ERROR; anything else means INFO.
	Level string
	// Dir is where LogFileName is written. Empty disables the file.
	Dir string
	// Console receives colored output. Nil means stdout.
	Console  io.Writer
	TailSize int
}

// Logger is a zerolog logger writing to the console, a rotating file and an in-memory tail.
type Logger struct {
	zerolog.Logger
	tail *tail
	file *lumberjack.Logger
}

// ParseLevel maps a config level name to a zerolog level.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToUpper(s) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New sets up the logger and makes sure the logs directory exists.
func New(opts Options) (*Logger, error) {
	console := opts.Console
	if console == nil {
		console = os.Stdout
	}
	size := opts.TailSize
	if size <= 0 {
		size = DefaultTailSize
	}
	l := &Logger{tail: &tail{max: size}}

	writers := []io.Writer{
		zerolog.ConsoleWriter{Out: console, TimeFormat: time.RFC3339},
		zerolog.ConsoleWriter{Out: l.tail, TimeFormat: time.TimeOnly, NoColor: true},
	}
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, err
		}
		l.file = &lumberjack.Logger{
			Filename:   filepath.Join(opts.Dir, LogFileName),
			MaxSize:    5,
			MaxBackups: 3,
			MaxAge:     7,
		}
		writers = append(writers, zerolog.ConsoleWriter{Out: l.file, TimeFormat: time.RFC3339, NoColor: true})
	}

	l.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(ParseLevel(opts.Level)).
		With().Timestamp().Logger()
	return l, nil
}

// Lines returns a copy of the most recent formatted lines, oldest first.
func (l *Logger) Lines() []string {
	return l.tail.lines()
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// tail keeps the last max lines written to it.
type tail struct {
	mu  sync.Mutex
	max int
	buf []string
}

func (t *tail) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line == "" {
			continue
		}
		t.buf = append(t.buf, line)
	}
	if over := len(t.buf) - t.max; over > 0 {
		t.buf = append(t.buf[:0:0], t.buf[over:]...)
	}
	return len(p), nil
}

func (t *tail) lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.buf))
	copy(out, t.buf)
	return out
}
