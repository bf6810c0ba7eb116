package trace

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Event represents a single trace point.
type Event struct {
	Time  time.Time
	Level Level             // level this event requires
	Name  string            // e.g. "scan.begin"
	Attrs map[string]uint64 // counters (chars, tokens, files)
	Note  string
}

// Format renders an event as one key=value text line.
func (ev *Event) Format() []byte {
	var sb strings.Builder
	sb.WriteString(ev.Time.Format(time.RFC3339Nano))
	sb.WriteByte(' ')
	sb.WriteString(ev.Level.String())
	sb.WriteByte(' ')
	sb.WriteString(ev.Name)

	// Deterministic attribute order.
	keys := make([]string, 0, len(ev.Attrs))
	for k := range ev.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%d", k, ev.Attrs[k])
	}

	if ev.Note != "" {
		fmt.Fprintf(&sb, " note=%q", ev.Note)
	}
	sb.WriteByte('\n')
	return []byte(sb.String())
}
