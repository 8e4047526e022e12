package domain

import "fmt"

// Violation is one failed field check in a request.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in one request, not just
// the first. Maps to 400.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 1 {
		return "validation failed: " + e.Violations[0].Field + ": " + e.Violations[0].Message
	}
	return fmt.Sprintf("validation failed: %d violations", len(e.Violations))
}

func (e *ValidationError) Add(field, message string) {
	e.Violations = append(e.Violations, Violation{Field: field, Message: message})
}

// Ok reports whether no violation was recorded.
func (e *ValidationError) Ok() bool { return len(e.Violations) == 0 }

// NotFoundError maps to 404.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found: " + e.ID
}

// ConflictError signals a catalogue integrity fault (a row read back whose
// name does not match the query). Maps to 500; indicates corruption, never
// retried.
type ConflictError struct {
	Want string
	Got  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("catalogue integrity fault: looked up %q, row is named %q", e.Want, e.Got)
}

// DuplicateError signals an explicit create colliding with an existing
// unique name. Maps to 409.
type DuplicateError struct {
	Entity string
	Name   string
}

func (e *DuplicateError) Error() string {
	return e.Entity + " already exists: " + e.Name
}
