package model

import (
	"time"

	"github.com/reliefops/kestrel/pkg/domain/types"
)

// ViewState is the operator-owned console state. It survives feed
// refreshes and changes only through the intent transitions below or the
// selection stabilizer. All transitions are copy-on-write: the receiver
// is never mutated, so the engine can hand snapshots out freely.
type ViewState struct {
	SelectedIncidentID types.IncidentID            `json:"selectedIncidentId,omitempty"`
	SelectedTypes      map[types.IncidentType]bool `json:"selectedTypes,omitempty"`
	ViewMode           types.ViewMode              `json:"viewMode"`

	// DispatchOverlay records responders the operator dispatched locally,
	// ahead of upstream confirmation. Set semantics per incident.
	DispatchOverlay map[types.IncidentID][]types.ResponderID `json:"dispatchOverlay,omitempty"`

	// RecentExpanded lifts the cap on the recent-arrivals shortcut list
	RecentExpanded bool `json:"recentExpanded"`

	// FlashID marks an incident for a transient highlight; it expires at
	// FlashExpiresAt independent of further state changes.
	FlashID        types.IncidentID `json:"flashId,omitempty"`
	FlashExpiresAt time.Time        `json:"flashExpiresAt,omitempty"`
}

// NewViewState creates the initial view state
func NewViewState() *ViewState {
	return &ViewState{
		ViewMode: types.ViewModeActive,
	}
}

// Clone returns a deep copy of the view state
func (s *ViewState) Clone() *ViewState {
	next := *s

	if s.SelectedTypes != nil {
		next.SelectedTypes = make(map[types.IncidentType]bool, len(s.SelectedTypes))
		for t, v := range s.SelectedTypes {
			next.SelectedTypes[t] = v
		}
	}

	if s.DispatchOverlay != nil {
		next.DispatchOverlay = make(map[types.IncidentID][]types.ResponderID, len(s.DispatchOverlay))
		for id, responders := range s.DispatchOverlay {
			next.DispatchOverlay[id] = append([]types.ResponderID(nil), responders...)
		}
	}

	return &next
}

// FilterEmpty reports whether no type filter is active. An empty filter
// means every type passes.
func (s *ViewState) FilterEmpty() bool {
	for _, selected := range s.SelectedTypes {
		if selected {
			return false
		}
	}
	return true
}

// TypePasses reports whether an incident type passes the current filter
func (s *ViewState) TypePasses(t types.IncidentType) bool {
	return s.FilterEmpty() || s.SelectedTypes[t]
}

// DispatchedResponders returns the responders locally recorded as
// dispatched to the incident
func (s *ViewState) DispatchedResponders(id types.IncidentID) []types.ResponderID {
	return s.DispatchOverlay[id]
}

// WithSelected sets the selected incident unconditionally
func (s *ViewState) WithSelected(id types.IncidentID) *ViewState {
	next := s.Clone()
	next.SelectedIncidentID = id
	return next
}

// WithTypeToggled symmetrically adds or removes a type from the filter.
// Applying it twice with the same type restores the original filter.
func (s *ViewState) WithTypeToggled(t types.IncidentType) *ViewState {
	next := s.Clone()
	if next.SelectedTypes == nil {
		next.SelectedTypes = make(map[types.IncidentType]bool)
	}
	if next.SelectedTypes[t] {
		delete(next.SelectedTypes, t)
	} else {
		next.SelectedTypes[t] = true
	}
	return next
}

// WithTypesCleared empties the type filter
func (s *ViewState) WithTypesCleared() *ViewState {
	next := s.Clone()
	next.SelectedTypes = nil
	return next
}

// WithViewMode sets the view mode
func (s *ViewState) WithViewMode(m types.ViewMode) *ViewState {
	next := s.Clone()
	next.ViewMode = m
	return next
}

// WithDispatch appends a responder to the incident's dispatch overlay.
// Idempotent: a responder already recorded for the incident is not
// duplicated.
func (s *ViewState) WithDispatch(incidentID types.IncidentID, responderID types.ResponderID) *ViewState {
	for _, existing := range s.DispatchOverlay[incidentID] {
		if existing == responderID {
			return s.Clone()
		}
	}

	next := s.Clone()
	if next.DispatchOverlay == nil {
		next.DispatchOverlay = make(map[types.IncidentID][]types.ResponderID)
	}
	next.DispatchOverlay[incidentID] = append(next.DispatchOverlay[incidentID], responderID)
	return next
}

// WithRecentExpanded sets the recent-arrivals expansion state
func (s *ViewState) WithRecentExpanded(expanded bool) *ViewState {
	next := s.Clone()
	next.RecentExpanded = expanded
	return next
}

// WithFlash marks an incident for a transient highlight until expiresAt
func (s *ViewState) WithFlash(id types.IncidentID, expiresAt time.Time) *ViewState {
	next := s.Clone()
	next.FlashID = id
	next.FlashExpiresAt = expiresAt
	return next
}

// WithFlashCleared removes the transient highlight
func (s *ViewState) WithFlashCleared() *ViewState {
	next := s.Clone()
	next.FlashID = ""
	next.FlashExpiresAt = time.Time{}
	return next
}
