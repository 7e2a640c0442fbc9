package valueobject

import "fmt"

// FactorKind is an immutable value object identifying one risk factor in a
// scoring context. Recommendations and display names key off the kind rather
// than free-text factor names.
type FactorKind struct {
	value string
}

// Payment risk factors.
var (
	FactorBudgetUtilization  = FactorKind{value: "budget_utilization"}
	FactorCumulativeSpending = FactorKind{value: "cumulative_spending"}
	FactorRecipientHistory   = FactorKind{value: "recipient_history"}
	FactorAmountAnomaly      = FactorKind{value: "amount_anomaly"}
	FactorApproverHistory    = FactorKind{value: "approver_history"}
)

// Project risk factors.
var (
	FactorBudgetImpact         = FactorKind{value: "budget_impact"}
	FactorBudgetAvailability   = FactorKind{value: "budget_availability"}
	FactorSubmitterTrackRecord = FactorKind{value: "submitter_track_record"}
	FactorProjectSaturation    = FactorKind{value: "project_saturation"}
	FactorProjectComplexity    = FactorKind{value: "project_complexity"}
)

var factorDisplayNames = map[string]string{
	"budget_utilization":     "Budget Utilization",
	"cumulative_spending":    "Cumulative Spending",
	"recipient_history":      "Recipient History",
	"amount_anomaly":         "Amount Anomaly",
	"approver_history":       "Approver History",
	"budget_impact":          "Budget Impact",
	"budget_availability":    "Budget Availability",
	"submitter_track_record": "Submitter Track Record",
	"project_saturation":     "Project Saturation",
	"project_complexity":     "Project Complexity",
}

// FactorKindFromString reconstructs a FactorKind from its string representation.
func FactorKindFromString(s string) (FactorKind, error) {
	if _, ok := factorDisplayNames[s]; !ok {
		return FactorKind{}, fmt.Errorf("invalid factor kind: %s", s)
	}
	return FactorKind{value: s}, nil
}

// String returns the string representation.
func (k FactorKind) String() string {
	return k.value
}

// DisplayName returns the human-readable factor name shown to reviewers.
func (k FactorKind) DisplayName() string {
	return factorDisplayNames[k.value]
}

// IsZero returns true if the FactorKind has not been set.
func (k FactorKind) IsZero() bool {
	return k.value == ""
}

// Equal checks equality with another FactorKind.
func (k FactorKind) Equal(other FactorKind) bool {
	return k.value == other.value
}
