package engine

import (
	"fmt"

	"github.com/goecospold/ecospold/pkg/report"
)

// SchemaError reports a well-formed document that violates the active
// XSD. It carries the validation engine's full ordered report.
type SchemaError struct {
	Path   string
	Report report.Report
}

// Error returns a summary naming the input and the number of violations.
func (e *SchemaError) Error() string {
	where := e.Path
	if where == "" {
		where = "document"
	}
	if len(e.Report) == 1 {
		return fmt.Sprintf("%s: schema violation: %s", where, e.Report[0])
	}
	return fmt.Sprintf("%s: %d schema violations, first: %s", where, len(e.Report), e.Report[0])
}

// MalformedError reports input that is not well-formed XML at all.
type MalformedError struct {
	Path string
	Err  error
}

// Error returns the underlying parse failure with the input named.
func (e *MalformedError) Error() string {
	where := e.Path
	if where == "" {
		where = "document"
	}
	return fmt.Sprintf("%s: malformed XML: %v", where, e.Err)
}

// Unwrap returns the underlying parse failure.
func (e *MalformedError) Unwrap() error {
	return e.Err
}
