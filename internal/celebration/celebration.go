// Package celebration detects progress items reaching completion and
// describes the one-shot acknowledgment shown for them.
package celebration

import (
	"fmt"
	"time"

	"github.com/thenoetrevino/dreamscape/internal/models"
)

// DefaultDuration is how long a celebration stays up before auto-dismissing
const DefaultDuration = 5 * time.Second

// Event is a one-shot notification that a tracked value reached 100%
type Event struct {
	ItemID  string
	Label   string
	Message string
}

// Sink consumes celebration events
type Sink func(Event)

// Message formats the acknowledgment text for a completed label
func Message(label string) string {
	return fmt.Sprintf("Congratulations! You've completed: %s", label)
}

// TaskMessage formats the acknowledgment text for a completed task
func TaskMessage(title string) string {
	return fmt.Sprintf("You completed: %s", title)
}

// Trigger watches content updates and fires a Sink when a progress item's
// decoded value is exactly 100. It keeps no memory of earlier firings, so an
// item that leaves 100 and returns fires again.
type Trigger struct {
	sink Sink
}

// NewTrigger creates a trigger that reports to sink. A nil sink disables it.
func NewTrigger(sink Sink) *Trigger {
	return &Trigger{sink: sink}
}

// Observe inspects an item after its content changed
func (t *Trigger) Observe(item models.BoardItem) {
	ev, ok := Check(item)
	if !ok || t == nil || t.sink == nil {
		return
	}
	t.sink(ev)
}

// Check returns the celebration for item if it is a completed progress item
func Check(item models.BoardItem) (Event, bool) {
	if item.Kind != models.KindProgress {
		return Event{}, false
	}
	p := models.ParseProgress(item.Content)
	if !p.Complete() {
		return Event{}, false
	}
	return Event{ItemID: item.ID, Label: p.Label, Message: Message(p.Label)}, true
}
