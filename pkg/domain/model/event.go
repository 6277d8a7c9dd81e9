package model

import (
	"github.com/reliefops/kestrel/pkg/domain/types"
)

// RawEvent represents one record of the upstream live event feed.
// Timestamps stay as strings here; parsing (with fallback) belongs to
// the normalizer so a bad value from the feed never aborts a refresh.
type RawEvent struct {
	EventID     types.EventID `json:"event_id"`
	CaseID      types.CaseID  `json:"case_id"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timestamp   string  `json:"timestamp"`

	CaseSeverity int     `json:"case_severity"`
	CaseStatus   string  `json:"case_status"`
	CaseCategory *string `json:"case_category,omitempty"`
	CaseTitle    *string `json:"case_title,omitempty"`
	Location     *string `json:"location,omitempty"`
	CompletedAt  *string `json:"completed_at,omitempty"`
	P2P          bool    `json:"p2p"`

	// AI analysis fields, each independently optional
	Confidence         *int    `json:"confidence,omitempty"`
	RequiredCapability *string `json:"required_capability,omitempty"`
	ParsedNeedType     *string `json:"parsed_need_type,omitempty"`
	RecommendedAction  *string `json:"recommended_action,omitempty"`
}
