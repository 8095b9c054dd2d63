// README: Structured logger shared by services and HTTP middleware.
package infra

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a JSON logrus logger. Unknown levels fall back to info.
func NewLogger(level string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.JSONFormatter{})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}
