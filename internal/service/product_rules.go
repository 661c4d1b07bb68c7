package service

import (
	"unicode/utf8"

	"storefront/internal/api"
)

const minProductNameLen = 2

// ValidateCreateProduct checks a create payload, assumed already normalized.
// Returns the first failing rule, or nil.
func ValidateCreateProduct(req api.CreateProductRequest) *RuleError {
	if req.Name == "" || req.Price == nil {
		return ruleError("Name and price are required")
	}
	if *req.Price < 0 {
		return ruleError("Price cannot be negative")
	}
	if utf8.RuneCountInString(req.Name) < minProductNameLen {
		return ruleError("Product name must be at least 2 characters long")
	}
	return nil
}

// ValidateUpdateProduct re-checks only the fields the patch supplies.
func ValidateUpdateProduct(req api.UpdateProductRequest) *RuleError {
	if req.Price != nil && *req.Price < 0 {
		return ruleError("Price cannot be negative")
	}
	if req.Name != nil && utf8.RuneCountInString(*req.Name) < minProductNameLen {
		return ruleError("Product name must be at least 2 characters long")
	}
	return nil
}
