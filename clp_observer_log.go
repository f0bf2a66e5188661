package clp

import "log/slog"

// logObserver writes a debug line for every lifecycle event. It never fails.
type logObserver struct {
	logger *slog.Logger
}

func newLogObserver(logger *slog.Logger) *logObserver {
	return &logObserver{logger: logger}
}

func (l *logObserver) OnRegistered(opt *Option) error {
	l.logger.Debug("Option registered.", "option", opt.name, "arity", opt.arity, "aliases", opt.Aliases())
	return nil
}

func (l *logObserver) OnProcessed(opt *Option) error {
	l.logger.Debug("Option processed.", "option", opt.name)
	return nil
}

func (l *logObserver) OnFinished() error {
	l.logger.Debug("Process finished.")
	return nil
}

func (l *logObserver) OnScanStarted() {
	l.logger.Debug("Process started.")
}
