package service

// RuleError is a failed business rule. Each rule chain stops at the first
// failure, so a response carries exactly one reason.
type RuleError struct {
	Reason string
}

func (e *RuleError) Error() string {
	return e.Reason
}

func ruleError(reason string) *RuleError {
	return &RuleError{Reason: reason}
}
