package types

// ViewMode represents the operator console view mode
type ViewMode string

const (
	ViewModeActive     ViewMode = "active"
	ViewModeHistorical ViewMode = "historical"
	ViewModeAnalytics  ViewMode = "analytics"
)

// String returns the string representation of the view mode
func (m ViewMode) String() string {
	return string(m)
}

// IsValid checks if the view mode is valid
func (m ViewMode) IsValid() bool {
	switch m {
	case ViewModeActive, ViewModeHistorical, ViewModeAnalytics:
		return true
	default:
		return false
	}
}
