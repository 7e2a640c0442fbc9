package valueobject

// RiskFactor is one weighted component of a risk score. The score is always
// the output of exactly one scorer function for the kind, and the weight is
// fixed per scoring context.
type RiskFactor struct {
	Kind        FactorKind
	Weight      int
	Score       int
	Description string
}
