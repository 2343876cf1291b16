// Package event defines the messages that flow between a world and its
// observers: action events going in, result and update events coming out.
package event

import "github.com/google/uuid"

// Event is implemented by every message carried on a Stream.
type Event interface {
	// EventID returns the unique identifier assigned at creation.
	EventID() string
}

// Header carries the identity shared by all events. Embed it and create it
// with NewHeader so every event gets a fresh id.
type Header struct {
	ID string // Unique event identifier
}

// NewHeader returns a header with a newly generated id.
func NewHeader() Header {
	return Header{ID: uuid.NewString()}
}

// EventID returns the event's unique identifier.
func (h Header) EventID() string {
	return h.ID
}
