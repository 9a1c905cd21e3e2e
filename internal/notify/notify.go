// Package notify tells the team about new public submissions through an outgoing webhook.
package notify

import (
	"context"
	"time"
)

// Event types sent to the webhook.
const (
	EventLeadCreated        = "lead.created"
	EventApplicationCreated = "application.created"
	EventEnrollmentCreated  = "enrollment.created"
)

// Event is the JSON payload posted to the webhook.
type Event struct {
	Type       string            `json:"type"`
	ID         string            `json:"id"`
	Summary    string            `json:"summary"`
	Fields     map[string]string `json:"fields,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// Notifier delivers events. Implementations must honour ctx cancellation.
type Notifier interface {
	Notify(ctx context.Context, ev Event) error
}

// Noop discards every event.
type Noop struct{}

func (Noop) Notify(context.Context, Event) error { return nil }
