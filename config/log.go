package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// NamedLogger creates a named package logger.
func NamedLogger(name string) *logrus.Logger {
	return &logrus.Logger{
		Out: os.Stderr,
		Formatter: &prefixedTextFormatter{
			prefix:        name,
			TextFormatter: logrus.TextFormatter{ForceColors: true},
		},
		Hooks: make(logrus.LevelHooks),
		Level: logrus.InfoLevel,
	}
}

// SetLoggerLevel applies a textual logging level to a package logger.
func SetLoggerLevel(log *logrus.Logger, level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(parsed)
	return nil
}

type prefixedTextFormatter struct {
	prefix string
	logrus.TextFormatter
}

// Format renders a single log entry.
func (f *prefixedTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	entry.Message = fmt.Sprintf("[%-10s] %s", f.prefix, entry.Message)
	return f.TextFormatter.Format(entry)
}
