package pinecone

import "strings"

// Validation helpers used by the façade operations. Each helper checks one
// declarative constraint and returns a structured *ValidationError on the
// first violation, before any request is built. These guard the constraints
// the type system cannot express: enum membership, positivity, required
// strings.

// requireString checks that a required textual field is non-empty.
func requireString(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Constraint: "must be a non-empty string", Value: value}
	}
	return nil
}

// requirePositive checks that an integer field is strictly greater than zero.
func requirePositive(field string, value int) error {
	if value <= 0 {
		return &ValidationError{Field: field, Constraint: "must be a positive integer", Value: value}
	}
	return nil
}

// requireMember checks that a value belongs to a closed set.
func requireMember(field, value string, allowed []string) error {
	for _, candidate := range allowed {
		if value == candidate {
			return nil
		}
	}
	return &ValidationError{
		Field:      field,
		Constraint: "must be one of " + strings.Join(allowed, ", "),
		Value:      value,
	}
}

// requireIDs checks a batch id list: present, and every entry non-empty.
func requireIDs(ids []string) error {
	if len(ids) == 0 {
		return &ValidationError{Field: "ids", Constraint: "must contain at least one id", Value: ids}
	}
	for _, id := range ids {
		if id == "" {
			return &ValidationError{Field: "ids", Constraint: "must not contain empty ids", Value: ids}
		}
	}
	return nil
}
