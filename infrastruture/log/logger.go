// Package log builds the named, colored loggers each component writes through.
package log

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the logging surface components depend on.
type Logger interface {
	Info(msg string)
	Error(msg string)
	Debug(msg string)
}

// ComponentLogger prefixes every entry with its component name in the given color.
type ComponentLogger struct {
	entry *logrus.Entry
}

// New creates a logger writing to out. prefix names the component, color is an ANSI
// color sequence for the prefix (see config).
func New(prefix, color string, out io.Writer) (*ComponentLogger, error) {
	if prefix == "" {
		return nil, fmt.Errorf("logger prefix must not be empty")
	}
	if out == nil {
		return nil, fmt.Errorf("logger %s has no output", prefix)
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableQuote:  true,
	})

	return &ComponentLogger{
		entry: l.WithField("component", fmt.Sprintf("%s%s%s", color, prefix, resetColor)),
	}, nil
}

const resetColor = "\033[0m"

// With returns a logger carrying an extra field on every entry.
func (c *ComponentLogger) With(key string, value any) *ComponentLogger {
	return &ComponentLogger{entry: c.entry.WithField(key, value)}
}

// Info implements Logger.
func (c *ComponentLogger) Info(msg string) {
	c.entry.Info(msg)
}

// Error implements Logger.
func (c *ComponentLogger) Error(msg string) {
	c.entry.Error(msg)
}

// Debug implements Logger.
func (c *ComponentLogger) Debug(msg string) {
	c.entry.Debug(msg)
}
