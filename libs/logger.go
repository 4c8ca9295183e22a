package libs

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the service logger: JSON in production, text elsewhere.
func NewLogger(env, level string) *logrus.Logger {
	return newLogger(os.Stdout, env, level)
}

func newLogger(out io.Writer, env, level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	if env == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

// NopLogger discards everything; handy for tests and tooling.
func NopLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
