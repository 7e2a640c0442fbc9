package valueobject

import "fmt"

// AdvisoryType classifies a dashboard advisory.
type AdvisoryType struct {
	value string
}

var (
	AdvisoryInfo    = AdvisoryType{value: "info"}
	AdvisoryWarning = AdvisoryType{value: "warning"}
	AdvisoryAction  = AdvisoryType{value: "action"}
	AdvisoryInsight = AdvisoryType{value: "insight"}
)

// AdvisoryTypeFromString reconstructs an AdvisoryType from its string representation.
func AdvisoryTypeFromString(s string) (AdvisoryType, error) {
	switch s {
	case "info":
		return AdvisoryInfo, nil
	case "warning":
		return AdvisoryWarning, nil
	case "action":
		return AdvisoryAction, nil
	case "insight":
		return AdvisoryInsight, nil
	default:
		return AdvisoryType{}, fmt.Errorf("invalid advisory type: %s", s)
	}
}

// String returns the string representation.
func (t AdvisoryType) String() string {
	return t.value
}

// Equal checks equality with another AdvisoryType.
func (t AdvisoryType) Equal(other AdvisoryType) bool {
	return t.value == other.value
}

// AdvisoryPriority ranks how urgently an advisory needs attention.
type AdvisoryPriority struct {
	value string
}

var (
	PriorityLow    = AdvisoryPriority{value: "low"}
	PriorityMedium = AdvisoryPriority{value: "medium"}
	PriorityHigh   = AdvisoryPriority{value: "high"}
)

// AdvisoryPriorityFromString reconstructs an AdvisoryPriority from its string representation.
func AdvisoryPriorityFromString(s string) (AdvisoryPriority, error) {
	switch s {
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	default:
		return AdvisoryPriority{}, fmt.Errorf("invalid advisory priority: %s", s)
	}
}

// String returns the string representation.
func (p AdvisoryPriority) String() string {
	return p.value
}

// Equal checks equality with another AdvisoryPriority.
func (p AdvisoryPriority) Equal(other AdvisoryPriority) bool {
	return p.value == other.value
}
