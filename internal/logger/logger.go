package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// LogFilePath is the default log file, relative to the working directory.
const LogFilePath = "logs/viewer.txt"

// maxLines bounds the in-memory history drawn by the on-screen console.
const maxLines = 200

const lineTimeFormat = "2006-01-02 15:04:05"

// Options configures New. A zero Options logs to memory only, at info level.
type Options struct {
	Console  io.Writer // human-readable output, usually os.Stdout
	FilePath string    // append-only log file; empty disables it
	Debug    bool
}

// Logger is a zerolog.Logger that also keeps recent lines in memory (for the on-screen
// console) and appends them to a file on disk.
type Logger struct {
	zerolog.Logger

	mem  *memory
	file *os.File
}

// memory collects formatted lines. zerolog's ConsoleWriter issues one Write per event.
type memory struct {
	mu    sync.Mutex
	lines []string
}

func (m *memory) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")
	m.mu.Lock()
	m.lines = append(m.lines, line)
	if len(m.lines) > maxLines {
		m.lines = m.lines[len(m.lines)-maxLines:]
	}
	m.mu.Unlock()
	return len(p), nil
}

// New builds a Logger. If the log file cannot be opened the logger still works without it.
func New(opts Options) *Logger {
	l := &Logger{mem: &memory{}}
	writers := []io.Writer{plain(l.mem)}

	if opts.Console != nil {
		writers = append(writers, zerolog.ConsoleWriter{Out: opts.Console, TimeFormat: "15:04:05"})
	}
	if opts.FilePath != "" {
		_ = os.MkdirAll(filepath.Dir(opts.FilePath), 0755)
		f, err := os.OpenFile(opts.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			l.file = f
			writers = append(writers, plain(f))
		}
	}

	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}
	l.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(level).With().Timestamp().Logger()
	if l.file == nil && opts.FilePath != "" {
		l.Warn().Str("path", opts.FilePath).Msg("log file unavailable")
	}
	return l
}

func plain(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: lineTimeFormat}
}

// Log records line at info level.
func (l *Logger) Log(line string) {
	l.Info().Msg(line)
}

// Lines returns a copy of the most recent lines, oldest first.
func (l *Logger) Lines() []string {
	l.mem.mu.Lock()
	defer l.mem.mu.Unlock()
	out := make([]string, len(l.mem.lines))
	copy(out, l.mem.lines)
	return out
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
