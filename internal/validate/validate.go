// Package validate implements field-level request validation for the public
// intake endpoints. Failures collect per-field messages instead of stopping
// at the first problem, so callers can surface the full error list.
package validate

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// FieldError is a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is a collection of field errors. A nil or empty Errors means the
// input passed.
type Errors struct {
	Fields []FieldError `json:"errors"`
}

func (e *Errors) Error() string {
	if len(e.Fields) == 0 {
		return "validation error"
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return strings.Join(msgs, "; ")
}

func (e *Errors) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Err returns the collection as an error, or nil when no rule failed.
func (e *Errors) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// MinLen checks the trimmed length of a required string field.
func (e *Errors) MinLen(field, value string, min int, message string) {
	if len(strings.TrimSpace(value)) < min {
		e.Add(field, message)
	}
}

// Email checks a value against the e-mail grammar.
func (e *Errors) Email(field, value string) {
	if !emailRegex.MatchString(strings.TrimSpace(value)) {
		e.Add(field, "Invalid email address")
	}
}

// IntRange checks an integer against an inclusive range.
func (e *Errors) IntRange(field string, value, min, max int, message string) {
	if value < min || value > max {
		e.Add(field, message)
	}
}

// MinInt checks an integer lower bound.
func (e *Errors) MinInt(field string, value, min int, message string) {
	if value < min {
		e.Add(field, message)
	}
}

// MinFloat checks a numeric lower bound.
func (e *Errors) MinFloat(field string, value, min float64, message string) {
	if value < min {
		e.Add(field, message)
	}
}

// OneOf checks membership in a closed set via the provided predicate.
func (e *Errors) OneOf(field, value string, valid func(string) bool, message string) {
	if !valid(value) {
		e.Add(field, message)
	}
}

// ValidEmail reports whether a value matches the e-mail grammar. Used where
// an optional address only needs checking when present.
func ValidEmail(value string) bool {
	return emailRegex.MatchString(strings.TrimSpace(value))
}
