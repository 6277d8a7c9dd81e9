package usecase_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/reliefops/kestrel/pkg/domain/model"
	"github.com/reliefops/kestrel/pkg/domain/types"
	"github.com/reliefops/kestrel/pkg/usecase"
)

func TestComputeAnalytics(t *testing.T) {
	now := baseTime

	t.Run("empty set yields absent aggregates", func(t *testing.T) {
		a := usecase.ComputeAnalytics(nil, now)
		gt.V(t, a.MeanTimeToResolve).Nil()
		gt.V(t, a.MeanTimeToResolvePeer).Nil()
		gt.V(t, a.MeanTimeToResolveSpecialist).Nil()
		gt.Equal(t, len(a.MeanTimeToResolveByType), 0)
		gt.Equal(t, a.ResolvedLastHour, 0)
		gt.Equal(t, a.ResolvedLast24Hours, 0)
		gt.Equal(t, a.HourlyAverage, 0.0)

		gt.Equal(t, len(a.SeverityDistribution), 4)
		for _, share := range a.SeverityDistribution {
			gt.Equal(t, share.Count, 0)
			gt.Equal(t, share.Percent, 0.0)
		}
		gt.Equal(t, len(a.TopRegions), 0)
	})

	t.Run("mean time to resolution overall and split", func(t *testing.T) {
		historical := []*model.Incident{
			// specialist, resolved in 1h
			makeIncident("a", types.IncidentTypeFire, types.SeverityHigh, now.Add(-3*time.Hour), withCompletedAt(now.Add(-2*time.Hour))),
			// specialist, resolved in 3h
			makeIncident("b", types.IncidentTypeFire, types.SeverityLow, now.Add(-5*time.Hour), withCompletedAt(now.Add(-2*time.Hour))),
			// peer, resolved in 30m
			makeIncident("c", types.IncidentTypeMedical, types.SeverityLow, now.Add(-time.Hour), withP2P(), withCompletedAt(now.Add(-30*time.Minute))),
			// assigned without completion time contributes nothing to means
			makeIncident("d", types.IncidentTypeRescue, types.SeverityLow, now.Add(-time.Hour), withStatus(types.IncidentStatusAssigned)),
		}

		a := usecase.ComputeAnalytics(historical, now)

		gt.V(t, a.MeanTimeToResolve).NotNil()
		gt.Equal(t, *a.MeanTimeToResolve, 90*time.Minute)

		gt.V(t, a.MeanTimeToResolveSpecialist).NotNil()
		gt.Equal(t, *a.MeanTimeToResolveSpecialist, 2*time.Hour)

		gt.V(t, a.MeanTimeToResolvePeer).NotNil()
		gt.Equal(t, *a.MeanTimeToResolvePeer, 30*time.Minute)

		gt.Equal(t, a.MeanTimeToResolveByType[types.IncidentTypeFire], 2*time.Hour)
		gt.Equal(t, a.MeanTimeToResolveByType[types.IncidentTypeMedical], 30*time.Minute)
	})

	t.Run("trailing windows and hourly average", func(t *testing.T) {
		historical := []*model.Incident{
			makeIncident("a", types.IncidentTypeFire, types.SeverityHigh, now.Add(-2*time.Hour), withCompletedAt(now.Add(-30*time.Minute))),
			makeIncident("b", types.IncidentTypeFire, types.SeverityLow, now.Add(-6*time.Hour), withCompletedAt(now.Add(-5*time.Hour))),
			makeIncident("c", types.IncidentTypeFire, types.SeverityLow, now.Add(-48*time.Hour), withCompletedAt(now.Add(-30*time.Hour))),
		}

		a := usecase.ComputeAnalytics(historical, now)
		gt.Equal(t, a.ResolvedLastHour, 1)
		gt.Equal(t, a.ResolvedLast24Hours, 2)
		gt.Equal(t, a.HourlyAverage, 2.0/24.0)
	})

	t.Run("severity distribution percentages", func(t *testing.T) {
		historical := []*model.Incident{
			makeIncident("a", types.IncidentTypeFire, types.SeverityCritical, now, withStatus(types.IncidentStatusAssigned)),
			makeIncident("b", types.IncidentTypeFire, types.SeverityCritical, now, withStatus(types.IncidentStatusAssigned)),
			makeIncident("c", types.IncidentTypeFire, types.SeverityLow, now, withStatus(types.IncidentStatusAssigned)),
			makeIncident("d", types.IncidentTypeFire, types.SeverityLow, now, withStatus(types.IncidentStatusAssigned)),
		}

		a := usecase.ComputeAnalytics(historical, now)
		gt.Equal(t, a.SeverityDistribution[0].Severity, types.SeverityCritical)
		gt.Equal(t, a.SeverityDistribution[0].Count, 2)
		gt.Equal(t, a.SeverityDistribution[0].Percent, 50.0)
		gt.Equal(t, a.SeverityDistribution[3].Severity, types.SeverityLow)
		gt.Equal(t, a.SeverityDistribution[3].Percent, 50.0)
	})

	t.Run("top regions capped at five", func(t *testing.T) {
		var historical []*model.Incident
		regions := []string{"north", "north", "north", "south", "south", "east", "west", "harbor", "old-town", "airport"}
		for i, region := range regions {
			historical = append(historical, makeIncident(
				string(rune('a'+i)), types.IncidentTypeFire, types.SeverityLow, now,
				withStatus(types.IncidentStatusAssigned), withRegion(region)))
		}

		a := usecase.ComputeAnalytics(historical, now)
		gt.Equal(t, len(a.TopRegions), 5)
		gt.Equal(t, a.TopRegions[0].Region, "north")
		gt.Equal(t, a.TopRegions[0].Count, 3)
		gt.Equal(t, a.TopRegions[1].Region, "south")
	})

	t.Run("hour histogram buckets raw timestamps", func(t *testing.T) {
		historical := []*model.Incident{
			makeIncident("a", types.IncidentTypeFire, types.SeverityLow, time.Date(2026, 8, 28, 9, 15, 0, 0, time.UTC), withStatus(types.IncidentStatusAssigned)),
			makeIncident("b", types.IncidentTypeFire, types.SeverityLow, time.Date(2026, 8, 28, 9, 45, 0, 0, time.UTC), withStatus(types.IncidentStatusAssigned)),
			makeIncident("c", types.IncidentTypeFire, types.SeverityLow, time.Date(2026, 8, 27, 23, 5, 0, 0, time.UTC), withStatus(types.IncidentStatusAssigned)),
		}

		a := usecase.ComputeAnalytics(historical, now)
		gt.Equal(t, a.HourHistogram[9], 2)
		gt.Equal(t, a.HourHistogram[23], 1)
		gt.Equal(t, a.HourHistogram[0], 0)
	})
}
