package log

import (
	stdlog "log"
	"strings"
)

// Config is a declarative logger configuration, typically populated from the
// environment or the process config file.
type Config struct {
	// Level: debug|info|warn|error|fatal. Empty means info.
	Level string `json:"level" yaml:"level"`
	// Format: text|json. Empty means text.
	Format string `json:"format" yaml:"format"`
}

// ApplyConfig builds a Logger from cfg. Unknown level or format names are an
// error; callers generally fall back to NewLogger() defaults.
func ApplyConfig(cfg *Config) (Logger, error) {
	if cfg == nil {
		return NewLogger(), nil
	}
	level := InfoLevel
	if cfg.Level != "" {
		l, err := ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		level = l
	}
	format, err := ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	return NewLogger(WithLevel(level), WithFormat(format)), nil
}

// RedirectStdLog routes standard library log output through the given Logger
// at info level. Pebble and net/http emit through the stdlib logger; this
// keeps the process to a single log stream.
func RedirectStdLog(l Logger) {
	stdlog.SetFlags(0)
	stdlog.SetOutput(stdWriter{l: l})
}

type stdWriter struct{ l Logger }

func (w stdWriter) Write(p []byte) (int, error) {
	w.l.Info(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
