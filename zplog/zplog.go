// Package zplog provides the five-level leveled logger used across the
// pass driver and core algorithmic packages. It wraps go-logr/logr (the
// structured-logging facade already present in the corpus's dependency
// set) with a small console sink, colorizing level prefixes when the
// sink is a terminal, in a plain banner/prefix style.
package zplog

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// Level is one of the five logging levels the core surfaces.
type Level int

const (
	Verbose Level = iota
	Debug
	Info
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Verbose:
		return "VERBOSE"
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) color() string {
	switch l {
	case Verbose:
		return "\x1b[90m"
	case Debug:
		return "\x1b[36m"
	case Info:
		return "\x1b[32m"
	case Warning:
		return "\x1b[33m"
	case Error:
		return "\x1b[31m"
	default:
		return ""
	}
}

const resetColor = "\x1b[0m"

// Logger is the process-wide leveled sink. The zero value is not usable;
// construct with New.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	colorize bool
	min      Level
	base     logr.Logger
}

// New creates a Logger writing to w at or above min. Colorization is
// enabled automatically when w is an *os.File attached to a terminal.
func New(w io.Writer, min Level) *Logger {
	l := &Logger{out: w, min: min}
	if f, ok := w.(*os.File); ok {
		if info, err := f.Stat(); err == nil {
			l.colorize = info.Mode()&os.ModeCharDevice != 0
		}
	}
	l.base = funcr.New(func(prefix, args string) {
		fmt.Fprintln(w, prefix, args)
	}, funcr.Options{})
	return l
}

// Default returns a Logger at Info level writing to stderr.
func Default() *Logger { return New(os.Stderr, Info) }

func (l *Logger) log(level Level, format string, args ...any) {
	if level < l.min {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	prefix := level.String()
	if l.colorize {
		fmt.Fprintf(l.out, "%s[%s]%s %s\n", level.color(), prefix, resetColor, msg)
		return
	}
	fmt.Fprintf(l.out, "[%s] %s\n", prefix, msg)
}

func (l *Logger) Verbosef(format string, args ...any) { l.log(Verbose, format, args...) }
func (l *Logger) Debugf(format string, args ...any)   { l.log(Debug, format, args...) }
func (l *Logger) Infof(format string, args ...any)    { l.log(Info, format, args...) }
func (l *Logger) Warningf(format string, args ...any) { l.log(Warning, format, args...) }
func (l *Logger) Errorf(format string, args ...any)   { l.log(Error, format, args...) }

// Logr returns a logr.Logger facade that writes to the same writer as
// this Logger, for packages that accept the standard structured-logging
// interface instead of the leveled printf methods above. Its output does
// not pass through this Logger's level filter, colorization or lock.
func (l *Logger) Logr() logr.Logger { return l.base }
