package interfaces

import (
	"context"

	"github.com/reliefops/kestrel/pkg/domain/model"
	"github.com/reliefops/kestrel/pkg/domain/types"
)

// SnapshotRepository owns the latest feed snapshot. A refresh replaces
// the snapshot wholesale and atomically; readers never observe a mix of
// old and new records.
type SnapshotRepository interface {
	// IssueSeq allocates the sequence number for a new refresh. Only the
	// most recently issued sequence may be applied.
	IssueSeq(ctx context.Context) types.RefreshSeq

	// Replace installs a new snapshot. It reports false without applying
	// when seq has been superseded by a later IssueSeq call.
	Replace(ctx context.Context, seq types.RefreshSeq, events []*model.RawEvent, incidents []*model.Incident) (bool, error)

	// Incidents returns the normalized incident set of the current snapshot
	Incidents(ctx context.Context) []*model.Incident

	// GetIncident retrieves one incident from the current snapshot
	GetIncident(ctx context.Context, id types.IncidentID) (*model.Incident, error)

	// CaseID resolves an incident ID to its backing upstream case ID
	CaseID(ctx context.Context, id types.IncidentID) (types.CaseID, error)

	// AppliedSeq returns the sequence of the currently visible snapshot
	AppliedSeq(ctx context.Context) types.RefreshSeq
}
