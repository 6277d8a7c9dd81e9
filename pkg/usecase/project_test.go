package usecase_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/reliefops/kestrel/pkg/domain/model"
	"github.com/reliefops/kestrel/pkg/domain/types"
	"github.com/reliefops/kestrel/pkg/usecase"
)

var baseTime = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

type incidentOpt func(*model.Incident)

func withP2P() incidentOpt {
	return func(inc *model.Incident) { inc.P2P = true }
}

func withCompletedAt(t time.Time) incidentOpt {
	return func(inc *model.Incident) { inc.CompletedAt = &t }
}

func withStatus(s types.IncidentStatus) incidentOpt {
	return func(inc *model.Incident) { inc.Status = s }
}

func withRegion(r string) incidentOpt {
	return func(inc *model.Incident) { inc.Region = r }
}

func makeIncident(id string, typ types.IncidentType, sev types.Severity, ts time.Time, opts ...incidentOpt) *model.Incident {
	inc := &model.Incident{
		ID:        types.IncidentID(id),
		CaseID:    types.CaseID("case-" + id),
		Type:      typ,
		Severity:  sev,
		Status:    types.IncidentStatusUnassigned,
		Timestamp: ts,
		Region:    "unknown",
	}
	for _, opt := range opts {
		opt(inc)
	}
	return inc
}

func TestProject(t *testing.T) {
	t.Run("empty filter passes everything", func(t *testing.T) {
		incidents := []*model.Incident{
			makeIncident("a", types.IncidentTypeFire, types.SeverityHigh, baseTime),
			makeIncident("b", types.IncidentTypeMedical, types.SeverityLow, baseTime),
		}

		views := usecase.Project(incidents, model.NewViewState(), baseTime)
		gt.Equal(t, len(views.Filtered), 2)
	})

	t.Run("type filter narrows and stays a subset", func(t *testing.T) {
		incidents := []*model.Incident{
			makeIncident("a", types.IncidentTypeFire, types.SeverityHigh, baseTime),
			makeIncident("b", types.IncidentTypeMedical, types.SeverityLow, baseTime),
			makeIncident("c", types.IncidentTypeFire, types.SeverityLow, baseTime),
		}
		state := model.NewViewState().WithTypeToggled(types.IncidentTypeFire)

		views := usecase.Project(incidents, state, baseTime)
		gt.Equal(t, len(views.Filtered), 2)
		for _, inc := range views.Filtered {
			gt.Equal(t, inc.Type, types.IncidentTypeFire)
		}
	})

	t.Run("partition law over filtered", func(t *testing.T) {
		done := baseTime.Add(-time.Hour)
		incidents := []*model.Incident{
			makeIncident("a", types.IncidentTypeFire, types.SeverityHigh, baseTime),
			makeIncident("b", types.IncidentTypeMedical, types.SeverityLow, baseTime, withP2P()),
			makeIncident("c", types.IncidentTypeRescue, types.SeverityLow, baseTime, withCompletedAt(done)),
			makeIncident("d", types.IncidentTypeOther, types.SeverityModerate, baseTime, withStatus(types.IncidentStatusAssigned)),
			makeIncident("e", types.IncidentTypeEmergency, types.SeverityCritical, baseTime, withStatus(types.IncidentStatusMatching)),
		}

		views := usecase.Project(incidents, model.NewViewState(), baseTime)
		gt.Equal(t, len(views.Priority)+len(views.Peer)+len(views.Historical), len(views.Filtered))

		seen := make(map[types.IncidentID]int)
		for _, inc := range views.Priority {
			seen[inc.ID]++
		}
		for _, inc := range views.Peer {
			seen[inc.ID]++
		}
		for _, inc := range views.Historical {
			seen[inc.ID]++
		}
		for _, inc := range views.Filtered {
			gt.Equal(t, seen[inc.ID], 1)
		}
	})

	t.Run("severity wins over recency in priority list", func(t *testing.T) {
		incidents := []*model.Incident{
			makeIncident("critical-one", types.IncidentTypeFire, types.SeverityCritical, baseTime),
			makeIncident("low-one", types.IncidentTypeFire, types.SeverityLow, baseTime.Add(time.Minute)),
		}

		views := usecase.Project(incidents, model.NewViewState(), baseTime)
		gt.Equal(t, len(views.Priority), 2)
		gt.Equal(t, views.Priority[0].ID, types.IncidentID("critical-one"))
		gt.Equal(t, views.Priority[1].ID, types.IncidentID("low-one"))
	})

	t.Run("equal severity breaks ties by recency", func(t *testing.T) {
		incidents := []*model.Incident{
			makeIncident("older", types.IncidentTypeFire, types.SeverityHigh, baseTime),
			makeIncident("newer", types.IncidentTypeFire, types.SeverityHigh, baseTime.Add(time.Minute)),
		}

		views := usecase.Project(incidents, model.NewViewState(), baseTime)
		gt.Equal(t, views.Priority[0].ID, types.IncidentID("newer"))
	})

	t.Run("historical ordered by completion time with timestamp fallback", func(t *testing.T) {
		incidents := []*model.Incident{
			makeIncident("old-done", types.IncidentTypeFire, types.SeverityHigh, baseTime.Add(-3*time.Hour), withCompletedAt(baseTime.Add(-2*time.Hour))),
			makeIncident("new-done", types.IncidentTypeFire, types.SeverityLow, baseTime.Add(-3*time.Hour), withCompletedAt(baseTime.Add(-time.Hour))),
			makeIncident("no-done", types.IncidentTypeFire, types.SeverityLow, baseTime.Add(-30*time.Minute), withStatus(types.IncidentStatusAssigned)),
		}

		views := usecase.Project(incidents, model.NewViewState(), baseTime)
		gt.Equal(t, len(views.Historical), 3)
		gt.Equal(t, views.Historical[0].ID, types.IncidentID("no-done"))
		gt.Equal(t, views.Historical[1].ID, types.IncidentID("new-done"))
		gt.Equal(t, views.Historical[2].ID, types.IncidentID("old-done"))
	})

	t.Run("recent orders by arrival only and caps at three", func(t *testing.T) {
		incidents := []*model.Incident{
			makeIncident("a", types.IncidentTypeFire, types.SeverityCritical, baseTime.Add(1*time.Minute)),
			makeIncident("b", types.IncidentTypeFire, types.SeverityLow, baseTime.Add(4*time.Minute)),
			makeIncident("c", types.IncidentTypeFire, types.SeverityHigh, baseTime.Add(2*time.Minute)),
			makeIncident("d", types.IncidentTypeFire, types.SeverityLow, baseTime.Add(3*time.Minute)),
		}

		views := usecase.Project(incidents, model.NewViewState(), baseTime)
		gt.Equal(t, len(views.Recent), model.RecentCap)
		gt.Equal(t, views.RecentTotal, 4)
		gt.Equal(t, views.Recent[0].ID, types.IncidentID("b"))
		gt.Equal(t, views.Recent[1].ID, types.IncidentID("d"))
		gt.Equal(t, views.Recent[2].ID, types.IncidentID("c"))

		expanded := usecase.Project(incidents, model.NewViewState().WithRecentExpanded(true), baseTime)
		gt.Equal(t, len(expanded.Recent), 4)
	})

	t.Run("type counts ignore the filter and cover every type", func(t *testing.T) {
		incidents := []*model.Incident{
			makeIncident("a", types.IncidentTypeFire, types.SeverityHigh, baseTime),
			makeIncident("b", types.IncidentTypeFire, types.SeverityLow, baseTime),
			makeIncident("c", types.IncidentTypeMedical, types.SeverityLow, baseTime),
		}
		state := model.NewViewState().WithTypeToggled(types.IncidentTypeMedical)

		views := usecase.Project(incidents, state, baseTime)
		gt.Equal(t, len(views.TypeCounts), len(types.AllIncidentTypes()))
		gt.Equal(t, views.TypeCounts[types.IncidentTypeFire], 2)
		gt.Equal(t, views.TypeCounts[types.IncidentTypeMedical], 1)
		gt.Equal(t, views.TypeCounts[types.IncidentTypeRescue], 0)
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		incidents := []*model.Incident{
			makeIncident("b", types.IncidentTypeFire, types.SeverityLow, baseTime.Add(time.Minute)),
			makeIncident("a", types.IncidentTypeFire, types.SeverityCritical, baseTime),
		}
		state := model.NewViewState()

		_ = usecase.Project(incidents, state, baseTime)
		gt.Equal(t, incidents[0].ID, types.IncidentID("b"))
		gt.Equal(t, incidents[1].ID, types.IncidentID("a"))
		gt.Equal(t, state.SelectedIncidentID, types.IncidentID(""))
	})

	t.Run("flash passes through only while unexpired", func(t *testing.T) {
		incidents := []*model.Incident{
			makeIncident("a", types.IncidentTypeFire, types.SeverityHigh, baseTime),
		}
		state := model.NewViewState().WithFlash("a", baseTime.Add(time.Second))

		live := usecase.Project(incidents, state, baseTime)
		gt.Equal(t, live.FlashID, types.IncidentID("a"))

		expired := usecase.Project(incidents, state, baseTime.Add(2*time.Second))
		gt.Equal(t, expired.FlashID, types.IncidentID(""))
	})
}
