package clp

import "log/slog"

type parserCfg struct {
	logger      *slog.Logger
	observers   []Observer
	suggestions bool
}

type ParserOpt func(*parserCfg)

// WithLogger adds an observer that logs every lifecycle event at debug level.
func WithLogger(logger *slog.Logger) ParserOpt {
	return func(c *parserCfg) {
		c.logger = logger
	}
}

// WithObserver subscribes o to registration and scan events. Caller observers
// are notified after the built-in ones, in the order given.
func WithObserver(o Observer) ParserOpt {
	return func(c *parserCfg) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

// WithSuggestions controls "did you mean" hints on unknown options. Enabled by default.
func WithSuggestions(enable bool) ParserOpt {
	return func(c *parserCfg) {
		c.suggestions = enable
	}
}
