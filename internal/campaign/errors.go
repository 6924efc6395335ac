package campaign

import (
	"fmt"
	"strings"
)

// InputError reports missing or malformed user input. It is the only
// failure surfaced to callers of kit generation.
type InputError struct {
	Fields []string
	Reason string
}

func (e *InputError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("Missing required fields: %s.", strings.Join(e.Fields, ", "))
	}
	return e.Reason
}

// ParseError reports model output that could not be recovered as a JSON object.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return "could not parse JSON from response"
	}
	return "could not parse JSON from response: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError lists every structural constraint a parsed object violates.
type SchemaError struct {
	Subject    string
	Violations []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Subject, strings.Join(e.Violations, "; "))
}

// QualityGateError reports semantic gate failures on structurally valid data.
type QualityGateError struct {
	Phase  string
	Errors []string
}

func (e *QualityGateError) Error() string {
	return fmt.Sprintf("quality gate failed (%s): %s", e.Phase, strings.Join(e.Errors, ", "))
}
