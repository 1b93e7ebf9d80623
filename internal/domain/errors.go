package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownField is returned for an edit naming a field that does not exist.
var ErrUnknownField = errors.New("unknown budget field")

// IndexError reports a budget edit addressed outside the budget list.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("budget index %d out of range [0,%d)", e.Index, e.Len)
}

// ValidationError reports required input that was left empty.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "required: " + strings.Join(e.Fields, ", ")
}

// RequiredField pairs a field name with its submitted value.
type RequiredField struct {
	Name  string
	Value string
}

// Require returns a *ValidationError naming every field whose value is blank,
// or nil when all are present.
func Require(fields ...RequiredField) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &ValidationError{Fields: missing}
}
