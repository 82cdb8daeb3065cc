package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

// InitLogger sets up the shared logrus instance. Level comes from LOG_LEVEL
// (defaults to info), output is JSON so the lines can be shipped as-is.
func InitLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	Logger = l
	return l
}

// GetLogger returns the shared instance, initialising it on first use so
// tests and the processor binary do not need the full boot sequence.
func GetLogger() *logrus.Logger {
	if Logger == nil {
		return InitLogger()
	}
	return Logger
}
