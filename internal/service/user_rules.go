package service

import (
	"regexp"

	"storefront/internal/api"
)

// emailPattern is the basic local@domain.tld shape; stricter parsing is
// deliberately not attempted.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	minAge = 0
	maxAge = 150
)

func validAge(age int) bool {
	return age >= minAge && age <= maxAge
}

// ValidateCreateUser checks a create payload, assumed already normalized.
// Returns the first failing rule, or nil.
func ValidateCreateUser(req api.CreateUserRequest) *RuleError {
	if req.Name == "" || req.Email == "" {
		return ruleError("Name and email are required")
	}
	if !emailPattern.MatchString(req.Email) {
		return ruleError("Invalid email format")
	}
	if req.Age != nil && !validAge(*req.Age) {
		return ruleError("Age must be between 0 and 150")
	}
	return nil
}

// ValidateUpdateUser re-checks only the fields the patch supplies.
func ValidateUpdateUser(req api.UpdateUserRequest) *RuleError {
	if req.Email != nil && !emailPattern.MatchString(*req.Email) {
		return ruleError("Invalid email format")
	}
	if req.Age != nil && !validAge(*req.Age) {
		return ruleError("Age must be between 0 and 150")
	}
	return nil
}
