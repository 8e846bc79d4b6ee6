// Package ddd contains the building blocks aggregates use to record domain events.
// Events are collected while a unit of work runs and handed to a publisher only
// after the transaction commits.
package ddd

import (
	"time"

	"github.com/google/uuid"
)

// Event is a fact that happened to an aggregate.
type Event interface {
	EventID() uuid.UUID
	EventName() string
	AggregateID() string
	OccurredAt() time.Time
}

// AggregateRoot is implemented by aggregates that record events.
type AggregateRoot interface {
	DomainEvents() []Event
	ClearDomainEvents()
}

// BaseEvent carries the envelope fields shared by every event.
type BaseEvent struct {
	ID        uuid.UUID `json:"eventId"`
	Name      string    `json:"eventName"`
	Aggregate string    `json:"aggregateId"`
	At        time.Time `json:"occurredAt"`
}

func NewBaseEvent(name, aggregateID string, at time.Time) BaseEvent {
	return BaseEvent{
		ID:        uuid.New(),
		Name:      name,
		Aggregate: aggregateID,
		At:        at.UTC(),
	}
}

func (e BaseEvent) EventID() uuid.UUID    { return e.ID }
func (e BaseEvent) EventName() string     { return e.Name }
func (e BaseEvent) AggregateID() string   { return e.Aggregate }
func (e BaseEvent) OccurredAt() time.Time { return e.At }

// EventLog is embedded by value in aggregates. The zero value is ready to use.
type EventLog struct {
	events []Event
}

func (l *EventLog) Record(event Event) {
	l.events = append(l.events, event)
}

// Events returns a copy of the recorded events in recording order.
func (l *EventLog) Events() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

func (l *EventLog) Clear() {
	l.events = nil
}
