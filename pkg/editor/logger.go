package editor

// Logger is the controller's logging hook. *zap.SugaredLogger satisfies it;
// the default discards everything.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// NopLogger returns a Logger that discards everything
func NopLogger() Logger {
	return nopLogger{}
}
