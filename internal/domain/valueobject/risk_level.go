package valueobject

import "fmt"

// RiskLevel is an immutable value object representing the risk classification
// of a scored payment or project.
type RiskLevel struct {
	value string
}

var (
	RiskLevelLow      = RiskLevel{value: "low"}
	RiskLevelMedium   = RiskLevel{value: "medium"}
	RiskLevelHigh     = RiskLevel{value: "high"}
	RiskLevelCritical = RiskLevel{value: "critical"}
)

// RiskLevelFromString reconstructs a RiskLevel from its string representation.
func RiskLevelFromString(s string) (RiskLevel, error) {
	switch s {
	case "low":
		return RiskLevelLow, nil
	case "medium":
		return RiskLevelMedium, nil
	case "high":
		return RiskLevelHigh, nil
	case "critical":
		return RiskLevelCritical, nil
	default:
		return RiskLevel{}, fmt.Errorf("invalid risk level: %s", s)
	}
}

// RiskLevelFromScore derives the RiskLevel from a weighted risk score (0-100).
// Buckets: <=25 low, <=50 medium, <=75 high, above that critical.
func RiskLevelFromScore(score int) RiskLevel {
	switch {
	case score <= 25:
		return RiskLevelLow
	case score <= 50:
		return RiskLevelMedium
	case score <= 75:
		return RiskLevelHigh
	default:
		return RiskLevelCritical
	}
}

// String returns the string representation.
func (r RiskLevel) String() string {
	return r.value
}

// IsZero returns true if the RiskLevel has not been set.
func (r RiskLevel) IsZero() bool {
	return r.value == ""
}

// Equal checks equality with another RiskLevel.
func (r RiskLevel) Equal(other RiskLevel) bool {
	return r.value == other.value
}
