// Package logging provides the structured logger shared by the oracle and
// signer packages. The codec and key packages stay side-effect-free and
// never import it.
package logging

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/r3e-go/eosiogo/internal/config"
)

// Logger wraps logrus.Logger with a fixed "component" field.
type Logger struct {
	*logrus.Logger
	component string
}

// New builds a Logger for the given component at the given level
// ("debug", "info", "warn", "error") and format ("json" or "text").
func New(component, level, format string) *Logger {
	logger := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)

	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: time.RFC3339,
			FullTimestamp:   true,
		})
	}
	logger.SetOutput(os.Stdout)

	return &Logger{Logger: logger, component: component}
}

// NewFromEnv builds a Logger from LOG_LEVEL / LOG_FORMAT via
// internal/config's envdecode-based LoggingConfig, defaulting to
// info/json when unset.
func NewFromEnv(component string) *Logger {
	cfg := config.LoadLoggingConfig()
	return New(component, cfg.Level, cfg.Format)
}

// WithField returns an entry tagged with this logger's component.
func (l *Logger) WithField(key string, value interface{}) *logrus.Entry {
	if l == nil || l.Logger == nil {
		return logrus.NewEntry(logrus.StandardLogger()).WithField(key, value)
	}
	return l.Logger.WithField("component", l.component).WithField(key, value)
}

// Entry returns a bare entry tagged with this logger's component.
func (l *Logger) Entry() *logrus.Entry {
	if l == nil || l.Logger == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return l.Logger.WithField("component", l.component)
}
