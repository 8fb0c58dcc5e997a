package listing

import (
	"fmt"
	"strings"
)

// EventKind identifies which control produced an event.
type EventKind string

const (
	EventInput  EventKind = "input"
	EventSelect EventKind = "select"
	EventToggle EventKind = "toggle"
)

// Event is one user interaction with the filter bar controls.
type Event struct {
	Kind  EventKind
	Value string
}

// Dispatch routes an event to its handler. Events run to completion in order.
func (c *Controller) Dispatch(ev Event) error {
	switch ev.Kind {
	case EventInput:
		c.OnInput(ev.Value)
	case EventSelect:
		c.OnSelect(ev.Value)
	case EventToggle:
		c.OnToggle()
	default:
		return fmt.Errorf("unknown event kind %q", ev.Kind)
	}
	return nil
}

// ParseEvent reads "input=<text>", "select=<sorter>" or "toggle".
func ParseEvent(raw string) (Event, error) {
	kind, value, _ := strings.Cut(raw, "=")
	ev := Event{Kind: EventKind(strings.ToLower(strings.TrimSpace(kind))), Value: value}
	switch ev.Kind {
	case EventInput, EventSelect, EventToggle:
		return ev, nil
	default:
		return Event{}, fmt.Errorf("unknown event %q", raw)
	}
}
