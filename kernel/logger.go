package kernel

import "github.com/sirupsen/logrus"

// Logger is the small logging facade the scheduler and process
// lifecycle depend on, so call sites never import a concrete
// third-party logger directly. Adapted from the wrapper pattern this
// codebase uses elsewhere to bind a local interface to logrus.
type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields map[string]any) Logger
	WithError(err error) Logger
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// logrusLogger adapts *logrus.Entry to Logger.
type logrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger wraps a *logrus.Logger as a Logger.
func NewLogrusLogger(l *logrus.Logger) Logger {
	return logrusLogger{entry: logrus.NewEntry(l)}
}

func (x logrusLogger) WithField(key string, value any) Logger {
	return logrusLogger{entry: x.entry.WithField(key, value)}
}

func (x logrusLogger) WithFields(fields map[string]any) Logger {
	return logrusLogger{entry: x.entry.WithFields(fields)}
}

func (x logrusLogger) WithError(err error) Logger {
	return logrusLogger{entry: x.entry.WithError(err)}
}

func (x logrusLogger) Debugf(format string, args ...any) { x.entry.Debugf(format, args...) }
func (x logrusLogger) Infof(format string, args ...any)  { x.entry.Infof(format, args...) }
func (x logrusLogger) Warnf(format string, args ...any)  { x.entry.Warnf(format, args...) }
func (x logrusLogger) Errorf(format string, args ...any) { x.entry.Errorf(format, args...) }

// nopLogger discards everything; it is the default so a Scheduler
// constructed without WithLogger never nil-derefs.
type nopLogger struct{}

func (nopLogger) WithField(string, any) Logger          { return nopLogger{} }
func (nopLogger) WithFields(map[string]any) Logger      { return nopLogger{} }
func (nopLogger) WithError(error) Logger                { return nopLogger{} }
func (nopLogger) Debugf(string, ...any)                 {}
func (nopLogger) Infof(string, ...any)                  {}
func (nopLogger) Warnf(string, ...any)                  {}
func (nopLogger) Errorf(string, ...any)                 {}
