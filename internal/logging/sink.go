package logging

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
)

// Sink is a slog.Handler that queues formatted lines for a passive reader
// such as the TUI log pane. Handle never blocks on the reader: lines are
// appended to an unbounded buffer and the reader is signalled through a
// one-slot channel that is written with a non-blocking send.
type Sink struct {
	state *sinkState
	level slog.Leveler
	attrs []slog.Attr // keys already qualified
	group string
}

type sinkState struct {
	mu     sync.Mutex
	lines  []string
	notify chan struct{}
}

// NewSink creates a sink accepting records at or above level
func NewSink(level slog.Leveler) *Sink {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Sink{
		state: &sinkState{notify: make(chan struct{}, 1)},
		level: level,
	}
}

// Notify is signalled whenever new lines are available
func (s *Sink) Notify() <-chan struct{} {
	return s.state.notify
}

// Drain returns and clears the queued lines
func (s *Sink) Drain() []string {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	lines := s.state.lines
	s.state.lines = nil
	return lines
}

// Enabled reports whether the sink accepts records at level
func (s *Sink) Enabled(_ context.Context, level slog.Level) bool {
	return level >= s.level.Level()
}

// Handle formats the record as "LEVEL message key=value ..." and queues it
func (s *Sink) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	if r.Level != slog.LevelInfo {
		b.WriteString(r.Level.String())
		b.WriteByte(' ')
	}
	b.WriteString(r.Message)

	write := func(group string, a slog.Attr) {
		if a.Equal(slog.Attr{}) {
			return
		}
		fmt.Fprintf(&b, " %s=%v", qualify(group, a.Key), a.Value.Resolve().Any())
	}
	for _, a := range s.attrs {
		write("", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		write(s.group, a)
		return true
	})

	s.state.mu.Lock()
	s.state.lines = append(s.state.lines, b.String())
	s.state.mu.Unlock()

	select {
	case s.state.notify <- struct{}{}:
	default:
	}
	return nil
}

// WithAttrs returns a sink that prefixes every record with attrs. Keys are
// qualified with the groups open at this call, not ones opened later.
func (s *Sink) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *s
	next.attrs = slices.Clone(s.attrs)
	for _, a := range attrs {
		if a.Equal(slog.Attr{}) {
			continue
		}
		a.Key = qualify(s.group, a.Key)
		next.attrs = append(next.attrs, a)
	}
	return &next
}

// WithGroup returns a sink that qualifies attribute keys with name
func (s *Sink) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	next := *s
	next.group = qualify(s.group, name)
	return &next
}

func qualify(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}
