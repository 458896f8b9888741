// Package logging provides leveled, component-tagged logging for winspect.
// Entries go to a rotating file under the user cache dir, falling back to
// stderr when the file cannot be opened.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a config string to a Level. Unknown strings mean info.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Entry is a single log record.
type Entry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Component string         `json:"component,omitempty"`
	Fields    map[string]any `json:"fields,omitempty"`
	Caller    string         `json:"caller,omitempty"`
}

// Logger writes leveled entries to a single output.
type Logger struct {
	mu        sync.Mutex
	level     Level
	output    io.Writer
	file      *os.File
	filePath  string
	component string
	fields    map[string]any
	maxSize   int64
	jsonMode  bool
}

// Config holds logger configuration.
type Config struct {
	Level     Level
	FilePath  string
	MaxSizeMB int
	JSONMode  bool
	Component string
}

// DefaultConfig returns the standard winspect logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:     LevelInfo,
		FilePath:  filepath.Join(CacheDir(), "winspect.log"),
		MaxSizeMB: 5,
		Component: "winspect",
	}
}

// CacheDir returns the winspect cache directory.
func CacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "winspect")
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// Init initializes the default logger. Subsequent calls are no-ops.
func Init(cfg Config) error {
	var err error
	once.Do(func() {
		defaultLogger, err = New(cfg)
	})
	return err
}

// Default returns the default logger, initializing it if necessary.
func Default() *Logger {
	if defaultLogger == nil {
		Init(DefaultConfig())
	}
	return defaultLogger
}

// New creates a logger from cfg.
func New(cfg Config) (*Logger, error) {
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 5
	}

	l := &Logger{
		level:     cfg.Level,
		filePath:  cfg.FilePath,
		component: cfg.Component,
		maxSize:   int64(cfg.MaxSizeMB) * 1024 * 1024,
		jsonMode:  cfg.JSONMode,
		fields:    make(map[string]any),
	}

	if cfg.FilePath != "" {
		if err := l.openFile(); err != nil {
			l.output = os.Stderr
		}
	} else {
		l.output = os.Stderr
	}

	return l, nil
}

func (l *Logger) openFile() error {
	if err := os.MkdirAll(filepath.Dir(l.filePath), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(l.filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	l.file = f
	l.output = f
	return nil
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func (l *Logger) clone() *Logger {
	fields := make(map[string]any, len(l.fields))
	for k, v := range l.fields {
		fields[k] = v
	}
	return &Logger{
		level:     l.level,
		output:    l.output,
		file:      l.file,
		filePath:  l.filePath,
		component: l.component,
		fields:    fields,
		maxSize:   l.maxSize,
		jsonMode:  l.jsonMode,
	}
}

// WithComponent returns a copy of the logger tagged with component.
func (l *Logger) WithComponent(component string) *Logger {
	c := l.clone()
	c.component = component
	return c
}

// WithField returns a copy of the logger with key=value attached to every entry.
func (l *Logger) WithField(key string, value any) *Logger {
	c := l.clone()
	c.fields[key] = value
	return c
}

// WithFields returns a copy of the logger with fields attached to every entry.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	c := l.clone()
	for k, v := range fields {
		c.fields[k] = v
	}
	return c
}

// SetLevel sets the minimum level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// LogPath returns the path of the log file.
func (l *Logger) LogPath() string {
	return l.filePath
}

func (l *Logger) Debug(msg string)                  { l.log(LevelDebug, msg) }
func (l *Logger) Debugf(format string, args ...any) { l.log(LevelDebug, fmt.Sprintf(format, args...)) }
func (l *Logger) Info(msg string)                   { l.log(LevelInfo, msg) }
func (l *Logger) Infof(format string, args ...any)  { l.log(LevelInfo, fmt.Sprintf(format, args...)) }
func (l *Logger) Warn(msg string)                   { l.log(LevelWarn, msg) }
func (l *Logger) Warnf(format string, args ...any)  { l.log(LevelWarn, fmt.Sprintf(format, args...)) }
func (l *Logger) Error(msg string)                  { l.log(LevelError, msg) }
func (l *Logger) Errorf(format string, args ...any) { l.log(LevelError, fmt.Sprintf(format, args...)) }

func (l *Logger) log(level Level, msg string) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.rotateIfNeeded()

	entry := Entry{
		Timestamp: time.Now().UTC(),
		Level:     level.String(),
		Message:   msg,
		Component: l.component,
	}
	if len(l.fields) > 0 {
		entry.Fields = make(map[string]any, len(l.fields))
		for k, v := range l.fields {
			entry.Fields[k] = v
		}
	}

	// Caller info only where it helps a bug report.
	if level == LevelDebug || level == LevelError {
		if _, file, line, ok := runtime.Caller(2); ok {
			entry.Caller = fmt.Sprintf("%s:%d", filepath.Base(file), line)
		}
	}

	var out string
	if l.jsonMode {
		data, _ := json.Marshal(entry)
		out = string(data)
	} else {
		out = formatPlain(entry)
	}
	fmt.Fprintln(l.output, out)
}

func formatPlain(e Entry) string {
	s := fmt.Sprintf("[%s] [%s]", e.Timestamp.Format("2006-01-02 15:04:05"), e.Level)
	if e.Component != "" {
		s += " [" + e.Component + "]"
	}
	s += " " + e.Message
	for k, v := range e.Fields {
		s += fmt.Sprintf(" %s=%v", k, v)
	}
	if e.Caller != "" {
		s += " (" + e.Caller + ")"
	}
	return s
}

func (l *Logger) rotateIfNeeded() {
	if l.file == nil || l.maxSize <= 0 {
		return
	}
	stat, err := l.file.Stat()
	if err != nil || stat.Size() < l.maxSize {
		return
	}

	l.file.Close()
	for i := 2; i >= 1; i-- {
		os.Rename(fmt.Sprintf("%s.%d", l.filePath, i), fmt.Sprintf("%s.%d", l.filePath, i+1))
	}
	os.Rename(l.filePath, l.filePath+".1")
	l.openFile()
}

// Package-level helpers using the default logger.

func Debug(msg string)                  { Default().Debug(msg) }
func Debugf(format string, args ...any) { Default().Debugf(format, args...) }
func Info(msg string)                   { Default().Info(msg) }
func Infof(format string, args ...any)  { Default().Infof(format, args...) }
func Warn(msg string)                   { Default().Warn(msg) }
func Warnf(format string, args ...any)  { Default().Warnf(format, args...) }
func Error(msg string)                  { Default().Error(msg) }
func Errorf(format string, args ...any) { Default().Errorf(format, args...) }

// WithComponent returns the default logger tagged with component.
func WithComponent(component string) *Logger {
	return Default().WithComponent(component)
}

// WithFields returns the default logger with fields attached.
func WithFields(fields map[string]any) *Logger {
	return Default().WithFields(fields)
}
