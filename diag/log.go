package diag

import (
	"github.com/charmbracelet/log"
)

// LogSink forwards events to a charmbracelet/log Logger.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink wraps l. A nil logger yields a sink that writes to log.Default().
func NewLogSink(l *log.Logger) *LogSink {
	if l == nil {
		l = log.Default()
	}
	return &LogSink{logger: l}
}

// Record writes e as a structured log line: the message is "<component>.<name>"
// and the attributes follow as key/value pairs in emission order.
func (s *LogSink) Record(e Event) {
	kv := make([]interface{}, 0, 2*len(e.Attrs))
	for _, a := range e.Attrs {
		kv = append(kv, a.Key, a.Value)
	}
	msg := e.Component + "." + e.Name
	switch e.Level {
	case LevelDebug:
		s.logger.Debug(msg, kv...)
	case LevelWarn:
		s.logger.Warn(msg, kv...)
	default:
		s.logger.Info(msg, kv...)
	}
}
