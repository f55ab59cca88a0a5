// Package report carries schema-conformance diagnostics in the order the
// validation engine emitted them.
package report

import (
	stderrors "errors"
	"fmt"

	"github.com/jacoelho/xsd/xsderrors"
)

// Diagnostic is one schema violation: the engine's error code, a
// human-readable message, and where in the instance it was found.
type Diagnostic struct {
	Code    string
	Message string
	Path    string
	Line    int
	Column  int
}

// String renders the diagnostic in the engine's native one-line format.
func (d Diagnostic) String() string {
	switch {
	case d.Path != "" && d.Line > 0:
		return fmt.Sprintf("%s: %s at %s (line %d, column %d)", d.Code, d.Message, d.Path, d.Line, d.Column)
	case d.Path != "":
		return fmt.Sprintf("%s: %s at %s", d.Code, d.Message, d.Path)
	case d.Line > 0:
		return fmt.Sprintf("%s: %s (line %d, column %d)", d.Code, d.Message, d.Line, d.Column)
	default:
		return fmt.Sprintf("%s: %s", d.Code, d.Message)
	}
}

// Report is an ordered list of diagnostics. A nil Report means the
// document conforms.
type Report []Diagnostic

// Valid reports whether the document conformed (no diagnostics).
func (r Report) Valid() bool {
	return len(r) == 0
}

// Strings returns the diagnostics as an ordered list of strings.
func (r Report) Strings() []string {
	if len(r) == 0 {
		return nil
	}
	out := make([]string, len(r))
	for i, d := range r {
		out[i] = d.String()
	}
	return out
}

// FromValidation converts a validation error from the xsd engine into a
// Report. The engine returns a single *xsderrors.Error or an
// xsderrors.Errors aggregate of them. The second result is false when err
// is neither (an I/O or usage failure the caller must surface as-is).
func FromValidation(err error) (Report, bool) {
	var list xsderrors.Errors
	if stderrors.As(err, &list) {
		r := make(Report, 0, len(list))
		for _, e := range list {
			var d *xsderrors.Error
			if stderrors.As(e, &d) {
				r = append(r, fromError(d))
			}
		}
		if len(r) > 0 {
			return r, true
		}
	}
	var single *xsderrors.Error
	if stderrors.As(err, &single) {
		return Report{fromError(single)}, true
	}
	return nil, false
}

func fromError(e *xsderrors.Error) Diagnostic {
	msg := e.Message
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = msg + ": " + e.Err.Error()
		}
	}
	return Diagnostic{
		Code:    string(e.Code),
		Message: msg,
		Path:    e.Path,
		Line:    e.Line,
		Column:  e.Column,
	}
}

// Malformed reports whether the diagnostics indicate the input was not
// well-formed XML at all, as opposed to well-formed but non-conformant.
func (r Report) Malformed() bool {
	for _, d := range r {
		if d.Code == string(xsderrors.CodeValidationXML) {
			return true
		}
	}
	return false
}
