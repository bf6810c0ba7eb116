package trace

import (
	"io"
	"sync"
	"time"
)

// Tracer is the sink for trace events.
type Tracer interface {
	// Emit records a trace event. Must be goroutine-safe.
	Emit(ev *Event)

	// Level returns the current tracing level.
	Level() Level

	// Enabled reports whether tracing is active (Level > LevelOff).
	Enabled() bool
}

// Debugf emits a debug-level point event with counters.
func Debugf(t Tracer, name string, attrs map[string]uint64) {
	if t == nil || !t.Level().ShouldEmit(LevelDebug) {
		return
	}
	t.Emit(&Event{Time: time.Now(), Level: LevelDebug, Name: name, Attrs: attrs})
}

// Phasef emits a phase-level point event.
func Phasef(t Tracer, name, note string) {
	if t == nil || !t.Level().ShouldEmit(LevelPhase) {
		return
	}
	t.Emit(&Event{Time: time.Now(), Level: LevelPhase, Name: name, Note: note})
}

// nopTracer is a no-op implementation for zero overhead when tracing is
// disabled.
type nopTracer struct{}

func (nopTracer) Emit(*Event)   {}
func (nopTracer) Level() Level  { return LevelOff }
func (nopTracer) Enabled() bool { return false }

// Nop is the package-level singleton nop tracer.
var Nop Tracer = nopTracer{}

// StreamTracer writes events immediately to an io.Writer as text lines.
type StreamTracer struct {
	mu    sync.Mutex
	w     io.Writer
	level Level
}

// NewStreamTracer creates a StreamTracer at the given level.
func NewStreamTracer(w io.Writer, level Level) *StreamTracer {
	return &StreamTracer{w: w, level: level}
}

// Emit writes the event. Write errors are swallowed: tracing must never
// disrupt scanning.
func (t *StreamTracer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Level) {
		return
	}
	data := ev.Format()

	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = t.w.Write(data) //nolint:errcheck
}

// Level returns the configured level.
func (t *StreamTracer) Level() Level { return t.level }

// Enabled reports whether the tracer emits anything.
func (t *StreamTracer) Enabled() bool { return t.level > LevelOff }
