package diag

import "sync"

// Level is the severity of a diagnostic Event.
type Level int8

const (
	// LevelDebug is used for per-step detail (one event per elimination step).
	LevelDebug Level = iota
	// LevelInfo is used for per-run summaries.
	LevelInfo
	// LevelWarn flags inputs that are valid but suspicious (e.g. empty hyperedges).
	LevelWarn
)

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	default:
		return "unknown"
	}
}

// Attr is one key/value pair attached to an Event.
type Attr struct {
	Key   string
	Value any
}

// Int builds an integer Attr.
func Int(key string, v int) Attr { return Attr{Key: key, Value: v} }

// String builds a string Attr.
func String(key, v string) Attr { return Attr{Key: key, Value: v} }

// Float builds a float Attr.
func Float(key string, v float64) Attr { return Attr{Key: key, Value: v} }

// Any builds an Attr holding an arbitrary value.
func Any(key string, v any) Attr { return Attr{Key: key, Value: v} }

// Event is a single diagnostic record.
//
// Component names the emitting package ("frontier", "connectivity", ...),
// Name identifies the event within it ("step", "built", ...).
// Attrs keep their emission order so log output is stable.
type Event struct {
	Level     Level
	Component string
	Name      string
	Attrs     []Attr
}

// Lookup returns the value of the first Attr with the given key.
func (e Event) Lookup(key string) (any, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return nil, false
}

// Sink receives diagnostic events. Implementations must be safe to call
// from the goroutine that owns the emitting component; sinks shared across
// goroutines must synchronize internally.
type Sink interface {
	Record(e Event)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(e Event)

// Record calls f(e).
func (f SinkFunc) Record(e Event) { f(e) }

type nopSink struct{}

func (nopSink) Record(Event) {}

// Nop returns a Sink that discards every event.
func Nop() Sink { return nopSink{} }

// OrNop returns s, or Nop() when s is nil.
func OrNop(s Sink) Sink {
	if s == nil {
		return Nop()
	}
	return s
}

type multiSink []Sink

func (m multiSink) Record(e Event) {
	for _, s := range m {
		s.Record(e)
	}
}

// Multi returns a Sink that forwards each event to every non-nil sink in order.
func Multi(sinks ...Sink) Sink {
	out := make(multiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return Nop()
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}

// Recorder is an in-memory Sink. The zero value is ready to use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Record appends e.
func (r *Recorder) Record(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Named returns the recorded events matching component and name.
func (r *Recorder) Named(component, name string) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for _, e := range r.events {
		if e.Component == component && e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}
