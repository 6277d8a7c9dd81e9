package types

// IncidentType represents the canonical incident type bucket
type IncidentType string

const (
	IncidentTypeFire      IncidentType = "fire"
	IncidentTypeMedical   IncidentType = "medical"
	IncidentTypeRescue    IncidentType = "rescue"
	IncidentTypeDisaster  IncidentType = "disaster"
	IncidentTypeEmergency IncidentType = "emergency"
	IncidentTypeOther     IncidentType = "other"
)

// String returns the string representation of the type
func (t IncidentType) String() string {
	return string(t)
}

// IsValid checks if the incident type is valid
func (t IncidentType) IsValid() bool {
	switch t {
	case IncidentTypeFire, IncidentTypeMedical, IncidentTypeRescue,
		IncidentTypeDisaster, IncidentTypeEmergency, IncidentTypeOther:
		return true
	default:
		return false
	}
}

// AllIncidentTypes returns every incident type in display order.
// Type counts are zero-initialized over this list so the filter UI
// always sees every bucket.
func AllIncidentTypes() []IncidentType {
	return []IncidentType{
		IncidentTypeFire,
		IncidentTypeMedical,
		IncidentTypeRescue,
		IncidentTypeDisaster,
		IncidentTypeEmergency,
		IncidentTypeOther,
	}
}

// Severity represents a severity bucket
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityModerate Severity = "moderate"
	SeverityLow      Severity = "low"
)

// String returns the string representation of the severity
func (s Severity) String() string {
	return string(s)
}

// IsValid checks if the severity is valid
func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityModerate, SeverityLow:
		return true
	default:
		return false
	}
}

// Rank returns the severity order: critical > high > moderate > low.
// Unknown severities rank below low.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityModerate:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// AllSeverities returns every severity in descending order
func AllSeverities() []Severity {
	return []Severity{SeverityCritical, SeverityHigh, SeverityModerate, SeverityLow}
}

// IncidentStatus represents the status bucket of an incident
type IncidentStatus string

const (
	IncidentStatusUnassigned IncidentStatus = "unassigned"
	IncidentStatusMatching   IncidentStatus = "matching"
	IncidentStatusAssigned   IncidentStatus = "assigned"
)

// String returns the string representation of the status
func (s IncidentStatus) String() string {
	return string(s)
}

// IsValid checks if the status is valid
func (s IncidentStatus) IsValid() bool {
	switch s {
	case IncidentStatusUnassigned, IncidentStatusMatching, IncidentStatusAssigned:
		return true
	default:
		return false
	}
}
