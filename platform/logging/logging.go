package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Init configures the process-wide logrus logger. LOG_LEVEL overrides the
// default info level.
func Init() {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logrus.SetLevel(lvl)
	}
}
