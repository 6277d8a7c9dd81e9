package model

import (
	"github.com/reliefops/kestrel/pkg/domain/types"
)

// RecentCap is the default size of the recent-arrivals shortcut list
const RecentCap = 3

// DerivedViews is the projection of the incident set through the view
// state: every list the console renders, computed in one pass.
type DerivedViews struct {
	// Filtered is the incident set after the type filter
	Filtered []*Incident `json:"filtered"`

	// Priority holds active specialist incidents, severity desc then
	// timestamp desc
	Priority []*Incident `json:"priority"`

	// Peer holds active peer-coordination incidents, same ordering
	Peer []*Incident `json:"peer"`

	// Historical holds resolved incidents, completion time desc
	Historical []*Incident `json:"historical"`

	// Recent is the recent-arrivals shortcut: active incidents by
	// timestamp desc only, capped at RecentCap unless expanded
	Recent []*Incident `json:"recent"`

	// RecentTotal is the uncapped size of the recent list
	RecentTotal int `json:"recentTotal"`

	// TypeCounts counts every incident type over the unfiltered set,
	// zero-initialized for all enumerated types
	TypeCounts map[types.IncidentType]int `json:"typeCounts"`

	// SelectedIncidentID is the selection after stabilization; empty only
	// when the filtered set is empty
	SelectedIncidentID types.IncidentID `json:"selectedIncidentId,omitempty"`

	// FlashID carries the transient highlight while it is unexpired
	FlashID types.IncidentID `json:"flashId,omitempty"`
}

// Section identifies the console list a revealed incident lives in
type Section string

const (
	SectionPriority   Section = "priority"
	SectionPeer       Section = "peer"
	SectionHistorical Section = "historical"
)

// RevealDirective tells the presentation layer how to bring a selected
// incident into view: which section to expand and scroll, after the
// selection update has been applied and rendered.
type RevealDirective struct {
	IncidentID types.IncidentID `json:"incidentId"`
	Section    Section          `json:"section"`
}
