package repository

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reliefops/kestrel/pkg/domain/interfaces"
	"github.com/reliefops/kestrel/pkg/domain/model"
	"github.com/reliefops/kestrel/pkg/domain/types"
)

// Memory implements SnapshotRepository with in-memory storage.
// The feed contract is wholesale replacement: there is no incremental
// merge, so the store keeps exactly one snapshot and swaps it under the
// lock. Identity continuity across refreshes is by incident ID only.
type Memory struct {
	mu        sync.RWMutex
	events    []*model.RawEvent
	incidents []*model.Incident
	byID      map[types.IncidentID]*model.Incident
	cases     map[types.IncidentID]types.CaseID
	issued    types.RefreshSeq
	applied   types.RefreshSeq
}

// NewMemory creates a new memory snapshot repository
func NewMemory() *Memory {
	return &Memory{
		byID:  make(map[types.IncidentID]*model.Incident),
		cases: make(map[types.IncidentID]types.CaseID),
	}
}

var _ interfaces.SnapshotRepository = (*Memory)(nil)

// IssueSeq allocates the sequence number for a new refresh
func (m *Memory) IssueSeq(ctx context.Context) types.RefreshSeq {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.issued++
	return m.issued
}

// Replace installs a new snapshot atomically. A result from a refresh
// that has been superseded by a later IssueSeq call is discarded and
// Replace reports false.
func (m *Memory) Replace(ctx context.Context, seq types.RefreshSeq, events []*model.RawEvent, incidents []*model.Incident) (bool, error) {
	if seq == 0 {
		return false, goerr.New("refresh sequence must be issued via IssueSeq")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if seq != m.issued || seq <= m.applied {
		return false, nil
	}

	byID := make(map[types.IncidentID]*model.Incident, len(incidents))
	cases := make(map[types.IncidentID]types.CaseID, len(events))
	for _, inc := range incidents {
		byID[inc.ID] = inc
	}
	for _, ev := range events {
		cases[types.IncidentID(ev.EventID)] = ev.CaseID
	}

	m.events = events
	m.incidents = incidents
	m.byID = byID
	m.cases = cases
	m.applied = seq
	return true, nil
}

// Incidents returns the normalized incident set of the current snapshot.
// The returned slice is a copy; the incidents themselves are read-only
// by contract.
func (m *Memory) Incidents(ctx context.Context) []*model.Incident {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]*model.Incident(nil), m.incidents...)
}

// GetIncident retrieves one incident from the current snapshot
func (m *Memory) GetIncident(ctx context.Context, id types.IncidentID) (*model.Incident, error) {
	if id == "" {
		return nil, goerr.New("incident ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.applied == 0 {
		return nil, goerr.Wrap(model.ErrNoSnapshot, "get incident",
			goerr.V("id", id))
	}

	inc, exists := m.byID[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrIncidentNotFound, "get incident",
			goerr.V("id", id))
	}
	return inc, nil
}

// CaseID resolves an incident ID to its backing upstream case ID. The
// raw feed records retain the case identifier the Incident abstraction
// exposes through here for resolve commands.
func (m *Memory) CaseID(ctx context.Context, id types.IncidentID) (types.CaseID, error) {
	if id == "" {
		return "", goerr.New("incident ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.applied == 0 {
		return "", goerr.Wrap(model.ErrNoSnapshot, "resolve case ID",
			goerr.V("id", id))
	}

	caseID, exists := m.cases[id]
	if !exists {
		return "", goerr.Wrap(model.ErrIncidentNotFound, "resolve case ID",
			goerr.V("id", id))
	}
	return caseID, nil
}

// AppliedSeq returns the sequence of the currently visible snapshot
func (m *Memory) AppliedSeq(ctx context.Context) types.RefreshSeq {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.applied
}
