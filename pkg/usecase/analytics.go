package usecase

import (
	"sort"
	"time"

	"github.com/reliefops/kestrel/pkg/domain/model"
	"github.com/reliefops/kestrel/pkg/domain/types"
)

const topRegionLimit = 5

// ComputeAnalytics aggregates the historical incident set. Aggregates
// over an empty input degrade to nil means and zero counts; no division
// happens on an empty denominator.
func ComputeAnalytics(historical []*model.Incident, now time.Time) *model.Analytics {
	a := &model.Analytics{}

	var (
		totalResolution time.Duration
		resolvedCount   int
		byType          = make(map[types.IncidentType]time.Duration)
		byTypeCount     = make(map[types.IncidentType]int)
		peerTotal       time.Duration
		peerCount       int
		specTotal       time.Duration
		specCount       int
	)

	severityCounts := make(map[types.Severity]int)
	regionCounts := make(map[string]int)

	for _, inc := range historical {
		severityCounts[inc.Severity]++
		regionCounts[inc.Region]++
		a.HourHistogram[inc.Timestamp.Hour()]++

		if inc.CompletedAt == nil {
			continue
		}

		resolution := inc.CompletedAt.Sub(inc.Timestamp)
		totalResolution += resolution
		resolvedCount++
		byType[inc.Type] += resolution
		byTypeCount[inc.Type]++
		if inc.P2P {
			peerTotal += resolution
			peerCount++
		} else {
			specTotal += resolution
			specCount++
		}

		completed := *inc.CompletedAt
		if completed.After(now.Add(-time.Hour)) {
			a.ResolvedLastHour++
		}
		if completed.After(now.Add(-24 * time.Hour)) {
			a.ResolvedLast24Hours++
		}
	}

	if resolvedCount > 0 {
		mean := totalResolution / time.Duration(resolvedCount)
		a.MeanTimeToResolve = &mean
	}
	if len(byType) > 0 {
		a.MeanTimeToResolveByType = make(map[types.IncidentType]time.Duration, len(byType))
		for t, total := range byType {
			a.MeanTimeToResolveByType[t] = total / time.Duration(byTypeCount[t])
		}
	}
	if peerCount > 0 {
		mean := peerTotal / time.Duration(peerCount)
		a.MeanTimeToResolvePeer = &mean
	}
	if specCount > 0 {
		mean := specTotal / time.Duration(specCount)
		a.MeanTimeToResolveSpecialist = &mean
	}

	a.HourlyAverage = float64(a.ResolvedLast24Hours) / 24.0

	a.SeverityDistribution = make([]model.SeverityShare, 0, len(types.AllSeverities()))
	for _, sev := range types.AllSeverities() {
		share := model.SeverityShare{Severity: sev, Count: severityCounts[sev]}
		if len(historical) > 0 {
			share.Percent = float64(share.Count) / float64(len(historical)) * 100
		}
		a.SeverityDistribution = append(a.SeverityDistribution, share)
	}

	a.TopRegions = topRegions(regionCounts, topRegionLimit)

	return a
}

// topRegions returns the most frequent regions, count descending with
// name ascending as the tie break
func topRegions(counts map[string]int, limit int) []model.RegionCount {
	regions := make([]model.RegionCount, 0, len(counts))
	for region, count := range counts {
		regions = append(regions, model.RegionCount{Region: region, Count: count})
	}

	sort.Slice(regions, func(i, j int) bool {
		if regions[i].Count != regions[j].Count {
			return regions[i].Count > regions[j].Count
		}
		return regions[i].Region < regions[j].Region
	})

	if len(regions) > limit {
		regions = regions[:limit]
	}
	return regions
}
