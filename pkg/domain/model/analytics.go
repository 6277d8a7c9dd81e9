package model

import (
	"time"

	"github.com/reliefops/kestrel/pkg/domain/types"
)

// SeverityShare is one row of the severity distribution
type SeverityShare struct {
	Severity types.Severity `json:"severity"`
	Count    int            `json:"count"`
	Percent  float64        `json:"percent"`
}

// RegionCount is one row of the top-regions breakdown
type RegionCount struct {
	Region string `json:"region"`
	Count  int    `json:"count"`
}

// Analytics holds aggregates over the historical incident set. Every
// mean is nil when its input set is empty; counts degrade to zero.
type Analytics struct {
	// Mean time to resolution, overall and broken down. Only incidents
	// with a known completion time contribute.
	MeanTimeToResolve           *time.Duration                        `json:"meanTimeToResolve,omitempty"`
	MeanTimeToResolveByType     map[types.IncidentType]time.Duration  `json:"meanTimeToResolveByType,omitempty"`
	MeanTimeToResolvePeer       *time.Duration                        `json:"meanTimeToResolvePeer,omitempty"`
	MeanTimeToResolveSpecialist *time.Duration                        `json:"meanTimeToResolveSpecialist,omitempty"`

	// Resolution counts in trailing windows, plus the hourly average
	// derived from the 24 hour window
	ResolvedLastHour    int     `json:"resolvedLastHour"`
	ResolvedLast24Hours int     `json:"resolvedLast24Hours"`
	HourlyAverage       float64 `json:"hourlyAverage"`

	// SeverityDistribution covers every severity in descending order
	SeverityDistribution []SeverityShare `json:"severityDistribution"`

	// TopRegions holds at most the five most frequent regions
	TopRegions []RegionCount `json:"topRegions"`

	// HourHistogram buckets raw creation timestamps by hour of day
	HourHistogram [24]int `json:"hourHistogram"`
}
