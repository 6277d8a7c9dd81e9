package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/reliefops/kestrel/pkg/domain/types"
)

// Coordinates represents a geographic position
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Incident represents a normalized emergency incident derived from one
// raw feed record. Once constructed it is read-only; a feed refresh
// replaces the whole incident set rather than mutating members.
type Incident struct {
	ID          types.IncidentID     `json:"id"`
	CaseID      types.CaseID         `json:"caseId"`
	Type        types.IncidentType   `json:"type"`
	Description string               `json:"description"`
	Region      string               `json:"region"`
	Severity    types.Severity       `json:"severity"`
	Status      types.IncidentStatus `json:"status"`
	Timestamp   time.Time            `json:"timestamp"`
	CompletedAt *time.Time           `json:"completedAt,omitempty"`
	Location    Coordinates          `json:"location"`
	P2P         bool                 `json:"p2p"`

	// AI analysis fields, each independently optional. Absence means the
	// upstream pipeline produced nothing for this incident.
	Confidence         *int    `json:"confidence,omitempty"`
	RequiredCapability *string `json:"requiredCapability,omitempty"`
	ParsedNeedType     *string `json:"parsedNeedType,omitempty"`
	RecommendedAction  *string `json:"recommendedAction,omitempty"`
}

// IsHistorical reports whether the incident counts as resolved for list
// partitioning. A completion timestamp dominates the status bucket.
func (x *Incident) IsHistorical() bool {
	return x.CompletedAt != nil || x.Status == types.IncidentStatusAssigned
}

// IsActive reports whether the incident is still open
func (x *Incident) IsActive() bool {
	return !x.IsHistorical()
}

// ResolvedAt returns the instant used to order the historical list:
// the completion time when known, otherwise the creation time.
func (x *Incident) ResolvedAt() time.Time {
	if x.CompletedAt != nil {
		return *x.CompletedAt
	}
	return x.Timestamp
}

// NormalizeEvent maps one raw feed record into exactly one Incident.
// It is total: malformed fields are corrected to safe defaults instead of
// failing, and each correction is reported back so the caller can log it
// for data-quality monitoring. now supplies the substitute instant for
// unparseable timestamps.
func NormalizeEvent(raw *RawEvent, table *TypeTable, now time.Time) (*Incident, []string) {
	var notes []string

	ts, err := time.Parse(time.RFC3339, raw.Timestamp)
	if err != nil {
		ts = now
		notes = append(notes, fmt.Sprintf("unparseable timestamp %q substituted with current instant", raw.Timestamp))
	}

	var completedAt *time.Time
	if raw.CompletedAt != nil {
		if t, err := time.Parse(time.RFC3339, *raw.CompletedAt); err == nil {
			completedAt = &t
		} else {
			notes = append(notes, fmt.Sprintf("unparseable completion timestamp %q dropped", *raw.CompletedAt))
		}
	}

	region := "unknown"
	if raw.Location != nil && strings.TrimSpace(*raw.Location) != "" {
		region = strings.TrimSpace(*raw.Location)
	}

	incidentType := table.Lookup(raw.CaseCategory)
	if raw.CaseCategory != nil && incidentType == types.IncidentTypeOther &&
		!strings.EqualFold(strings.TrimSpace(*raw.CaseCategory), "other") {
		notes = append(notes, fmt.Sprintf("unmapped category %q bucketed as other", *raw.CaseCategory))
	}

	return &Incident{
		ID:          types.IncidentID(raw.EventID),
		CaseID:      raw.CaseID,
		Type:        incidentType,
		Description: raw.Description,
		Region:      region,
		Severity:    bucketSeverity(raw.CaseSeverity),
		Status:      bucketStatus(raw.CaseStatus),
		Timestamp:   ts,
		CompletedAt: completedAt,
		Location: Coordinates{
			Latitude:  raw.Latitude,
			Longitude: raw.Longitude,
		},
		P2P:                raw.P2P,
		Confidence:         raw.Confidence,
		RequiredCapability: raw.RequiredCapability,
		ParsedNeedType:     raw.ParsedNeedType,
		RecommendedAction:  raw.RecommendedAction,
	}, notes
}

// bucketSeverity maps the upstream 1-5 numeric scale into severity
// buckets. Out-of-range values pass through the same thresholds, so
// anything above 5 is still critical and anything below 3 is low.
func bucketSeverity(n int) types.Severity {
	switch {
	case n >= 5:
		return types.SeverityCritical
	case n >= 4:
		return types.SeverityHigh
	case n >= 3:
		return types.SeverityModerate
	default:
		return types.SeverityLow
	}
}

// bucketStatus classifies upstream free-text status by case-insensitive
// substring match. The matching is deliberately loose and reproduces the
// upstream contract: "In Progress (dispatched)" is matching, "Resolved"
// and "Closed - duplicate" are assigned, anything else is unassigned.
func bucketStatus(s string) types.IncidentStatus {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "progress"):
		return types.IncidentStatusMatching
	case strings.Contains(lower, "resolved"), strings.Contains(lower, "closed"):
		return types.IncidentStatusAssigned
	default:
		return types.IncidentStatusUnassigned
	}
}
