package argsio

import (
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelSuccess
	LevelWarning
	LevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelSuccess:
		return "SUCCESS"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LogFormat defines the output format for log messages
type LogFormat int

const (
	LogFormatCircles LogFormat = iota // Default: 🔵 🟢 🟡 🔴 🟣
	LogFormatSymbols                  // ◆ ✓ ▲ ✗ ●
	LogFormatTagged                   // [INFO] [SUCCESS] [WARN] [ERROR] [DEBUG]
	LogFormatPlain                    // No prefix
)

// ParseLogFormat maps "circles", "symbols", "tagged" and "plain" to a LogFormat.
func ParseLogFormat(name string) (LogFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "circles":
		return LogFormatCircles, nil
	case "symbols":
		return LogFormatSymbols, nil
	case "tagged":
		return LogFormatTagged, nil
	case "plain":
		return LogFormatPlain, nil
	default:
		return LogFormatCircles, fmt.Errorf("unknown log format %q (want circles, symbols, tagged or plain)", name)
	}
}

// RotationConfig controls size-based rotation of the log file
type RotationConfig struct {
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// DefaultRotation keeps three 10MB backups for a week
func DefaultRotation() RotationConfig {
	return RotationConfig{MaxSize: 10, MaxBackups: 3, MaxAge: 7}
}

// Logger provides leveled logging with semantic colors. Errors and warnings
// go to stderr by default. With ToFile, every line is also written without
// ANSI sequences to a rotated file.
type Logger struct {
	io           *IOManager
	format       LogFormat
	prefixes     map[LogLevel]string
	minLevel     LogLevel
	withTime     bool
	timeFormat   string
	errorsStderr bool
	theme        Theme
	file         *lumberjack.Logger
}

// NewLogger creates a new logger bound to the given IOManager
func NewLogger(io *IOManager) *Logger {
	return &Logger{
		io:           io,
		format:       LogFormatCircles,
		errorsStderr: true,
		timeFormat:   "15:04:05",
		theme:        DefaultTheme(io),
		prefixes:     prefixesFor(LogFormatCircles),
	}
}

func prefixesFor(format LogFormat) map[LogLevel]string {
	switch format {
	case LogFormatSymbols:
		return map[LogLevel]string{
			LevelDebug:   "●",
			LevelInfo:    "◆",
			LevelSuccess: "✓",
			LevelWarning: "▲",
			LevelError:   "✗",
		}
	case LogFormatTagged:
		return map[LogLevel]string{
			LevelDebug:   "[DEBUG]",
			LevelInfo:    "[INFO]",
			LevelSuccess: "[SUCCESS]",
			LevelWarning: "[WARN]",
			LevelError:   "[ERROR]",
		}
	case LogFormatPlain:
		return map[LogLevel]string{}
	default:
		return map[LogLevel]string{
			LevelDebug:   "🟣",
			LevelInfo:    "🔵",
			LevelSuccess: "🟢",
			LevelWarning: "🟡",
			LevelError:   "🔴",
		}
	}
}

// WithFormat sets the log format and returns the logger for chaining
func (l *Logger) WithFormat(format LogFormat) *Logger {
	l.format = format
	l.prefixes = prefixesFor(format)
	return l
}

// SetPrefix sets a custom prefix for a specific log level
func (l *Logger) SetPrefix(level LogLevel, prefix string) *Logger {
	l.prefixes[level] = prefix
	return l
}

// WithLevel drops messages below level
func (l *Logger) WithLevel(level LogLevel) *Logger {
	l.minLevel = level
	return l
}

// WithTimestamp enables or disables timestamp in log output
func (l *Logger) WithTimestamp(enabled bool) *Logger {
	l.withTime = enabled
	return l
}

// WithTimeFormat sets the time format (Go time format string)
func (l *Logger) WithTimeFormat(format string) *Logger {
	l.timeFormat = format
	return l
}

// ErrorsToStderr controls whether errors and warnings go to stderr
func (l *Logger) ErrorsToStderr(enabled bool) *Logger {
	l.errorsStderr = enabled
	return l
}

// WithTheme sets a custom theme for semantic colors
func (l *Logger) WithTheme(theme Theme) *Logger {
	l.theme = theme
	return l
}

// ToFile tees every message into path, rotated per DefaultRotation.
// An empty path disables file output.
func (l *Logger) ToFile(path string) *Logger {
	return l.ToFileWithRotation(path, DefaultRotation())
}

// ToFileWithRotation is ToFile with explicit rotation settings
func (l *Logger) ToFileWithRotation(path string, rot RotationConfig) *Logger {
	_ = l.Close()
	if path == "" {
		return l
	}
	l.file = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    rot.MaxSize,
		MaxBackups: rot.MaxBackups,
		MaxAge:     rot.MaxAge,
		Compress:   rot.Compress,
	}
	return l
}

// Close releases the log file, if any
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Log outputs a log message at the specified level
func (l *Logger) Log(level LogLevel, format string, args ...any) {
	if level < l.minLevel {
		return
	}
	msg := fmt.Sprintf(format, args...)
	line := l.formatMessage(level, msg)

	fmt.Fprintln(l.selectWriter(level), l.colorizeByLevel(level, line))
	if l.file != nil {
		// files always get the tagged level and a full timestamp
		fmt.Fprintf(l.file, "%s [%s] %s\n", time.Now().Format(time.RFC3339), level, msg)
	}
}

// formatMessage builds the uncolored line for the configured format
func (l *Logger) formatMessage(level LogLevel, msg string) string {
	// blank messages pass through untouched
	if strings.TrimSpace(msg) == "" {
		return msg
	}

	parts := make([]string, 0, 3)
	if prefix := l.prefixes[level]; prefix != "" {
		parts = append(parts, prefix)
	}
	if l.withTime {
		stamp := time.Now().Format(l.timeFormat)
		if l.format != LogFormatPlain {
			stamp = "[" + stamp + "]"
		}
		parts = append(parts, stamp)
	}
	parts = append(parts, msg)
	return strings.Join(parts, " ")
}

// colorizeByLevel applies semantic color based on log level
func (l *Logger) colorizeByLevel(level LogLevel, text string) string {
	if strings.TrimSpace(text) == "" || !l.io.SupportsColor() {
		return text
	}

	var color ColorSpec
	switch level {
	case LevelDebug:
		color = l.theme.Debug
	case LevelInfo:
		color = l.theme.Info
	case LevelSuccess:
		color = l.theme.Success
	case LevelWarning:
		color = l.theme.Warning
	case LevelError:
		color = l.theme.Error
	default:
		return text
	}
	return NewStyle().Fg(color).Sprint(l.io, text)
}

// selectWriter chooses stdout or stderr based on log level and configuration
func (l *Logger) selectWriter(level LogLevel) io.Writer {
	if l.errorsStderr && (level == LevelError || level == LevelWarning) {
		return l.io.Err()
	}
	return l.io.Out()
}

// Debug logs a debug message (purple circle by default)
func (l *Logger) Debug(format string, args ...any) { l.Log(LevelDebug, format, args...) }

// Info logs an informational message (blue circle by default)
func (l *Logger) Info(format string, args ...any) { l.Log(LevelInfo, format, args...) }

// Success logs a success message (green circle by default)
func (l *Logger) Success(format string, args ...any) { l.Log(LevelSuccess, format, args...) }

// Warning logs a warning message (yellow circle by default)
func (l *Logger) Warning(format string, args ...any) { l.Log(LevelWarning, format, args...) }

// Error logs an error message (red circle by default)
func (l *Logger) Error(format string, args ...any) { l.Log(LevelError, format, args...) }
