package usecase

import (
	"sort"
	"time"

	"github.com/reliefops/kestrel/pkg/domain/model"
	"github.com/reliefops/kestrel/pkg/domain/types"
)

// Project derives every console view from the incident set and the view
// state in one pass. It is a pure function: neither input is mutated,
// and calling it again with its own stabilized selection is a no-op.
func Project(incidents []*model.Incident, state *model.ViewState, now time.Time) *model.DerivedViews {
	counts := make(map[types.IncidentType]int, len(types.AllIncidentTypes()))
	for _, t := range types.AllIncidentTypes() {
		counts[t] = 0
	}
	for _, inc := range incidents {
		counts[inc.Type]++
	}

	var filtered []*model.Incident
	for _, inc := range incidents {
		if state.TypePasses(inc.Type) {
			filtered = append(filtered, inc)
		}
	}

	var priority, peer, historical, recent []*model.Incident
	for _, inc := range filtered {
		switch {
		case inc.IsHistorical():
			historical = append(historical, inc)
		case inc.P2P:
			peer = append(peer, inc)
		default:
			priority = append(priority, inc)
		}
		if inc.IsActive() {
			recent = append(recent, inc)
		}
	}

	sortByRanking(priority)
	sortByRanking(peer)

	sort.SliceStable(historical, func(i, j int) bool {
		return historical[i].ResolvedAt().After(historical[j].ResolvedAt())
	})

	// The recent shortcut orders purely by arrival, independent of severity
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Timestamp.After(recent[j].Timestamp)
	})
	recentTotal := len(recent)
	if !state.RecentExpanded && len(recent) > model.RecentCap {
		recent = recent[:model.RecentCap]
	}

	var flashID types.IncidentID
	if state.FlashID != "" && now.Before(state.FlashExpiresAt) {
		flashID = state.FlashID
	}

	return &model.DerivedViews{
		Filtered:           filtered,
		Priority:           priority,
		Peer:               peer,
		Historical:         historical,
		Recent:             recent,
		RecentTotal:        recentTotal,
		TypeCounts:         counts,
		SelectedIncidentID: Stabilize(filtered, state.SelectedIncidentID),
		FlashID:            flashID,
	}
}

// sortByRanking orders incidents by severity descending, ties broken by
// timestamp descending (most recent first), then by ID for determinism
func sortByRanking(incidents []*model.Incident) {
	sort.SliceStable(incidents, func(i, j int) bool {
		return rankBefore(incidents[i], incidents[j])
	})
}

func rankBefore(a, b *model.Incident) bool {
	if a.Severity.Rank() != b.Severity.Rank() {
		return a.Severity.Rank() > b.Severity.Rank()
	}
	if !a.Timestamp.Equal(b.Timestamp) {
		return a.Timestamp.After(b.Timestamp)
	}
	return a.ID < b.ID
}
