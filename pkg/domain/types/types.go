package types

import (
	"github.com/google/uuid"
)

// EventID represents a raw feed event identifier
type EventID string

// String returns the string representation
func (id EventID) String() string {
	return string(id)
}

// CaseID represents the upstream case identifier backing an incident.
// Resolve commands address the upstream by case ID, not event ID.
type CaseID string

// String returns the string representation
func (id CaseID) String() string {
	return string(id)
}

// IncidentID represents a normalized incident identifier.
// It is the event ID of the feed record the incident was derived from.
type IncidentID string

// String returns the string representation
func (id IncidentID) String() string {
	return string(id)
}

// ResponderID represents a responder identifier
type ResponderID string

// String returns the string representation
func (id ResponderID) String() string {
	return string(id)
}

// NewResponderID creates a new ResponderID
func NewResponderID() ResponderID {
	return ResponderID(uuid.New().String())
}

// RefreshSeq is a monotonically increasing feed refresh sequence number.
// A poll result carrying a stale sequence is discarded.
type RefreshSeq uint64
