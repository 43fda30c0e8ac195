package domain

const (
	// MinSeverity and MaxSeverity bound the 1..5 damage scale
	// (1 = minimal damage, 5 = critical/destroyed).
	MinSeverity = 1
	MaxSeverity = 5

	// DefaultSeverity is assumed whenever a severity is missing or
	// cannot be parsed.
	DefaultSeverity = 3
)

// DamageItem is a detected (or synthesized) building defect.
type DamageItem struct {
	Label    string
	Severity int
}

// ClampSeverity is the single clamping rule for severity values:
// everything outside [MinSeverity, MaxSeverity] is pulled to the
// nearest bound. Callers that fail to parse a severity at all should
// pass DefaultSeverity.
func ClampSeverity(severity int) int {
	if severity < MinSeverity {
		return MinSeverity
	}
	if severity > MaxSeverity {
		return MaxSeverity
	}
	return severity
}
