package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	Configure(os.Getenv("ENVIRONMENT"))
}

// Configure switches between human readable output for development and
// JSON lines everywhere else.
func Configure(environment string) {
	log.SetOutput(os.Stdout)
	if environment == "development" || environment == "" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		log.SetLevel(logrus.DebugLevel)
		return
	}
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// Logger exposes the underlying logrus instance for libraries that want an io.Writer or hook.
func Logger() *logrus.Logger {
	return log
}

func Info(format string, v ...interface{}) {
	log.Infof(format, v...)
}

func Error(format string, v ...interface{}) {
	log.Errorf(format, v...)
}

func Debug(format string, v ...interface{}) {
	log.Debugf(format, v...)
}

func Warn(format string, v ...interface{}) {
	log.Warnf(format, v...)
}

func WithFields(fields map[string]interface{}) *logrus.Entry {
	return log.WithFields(logrus.Fields(fields))
}

// LogActivityError records a failed activity-log append without failing the caller.
func LogActivityError(action string, err error) {
	WithFields(map[string]interface{}{
		"action": action,
		"error":  err.Error(),
	}).Warn("activity log append failed")
}
