package report

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jacoelho/xsd/xsderrors"
)

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{
			name: "full context",
			d:    Diagnostic{Code: "validation.element", Message: "element not declared", Path: "/ecoSpold/dataset", Line: 3, Column: 5},
			want: "validation.element: element not declared at /ecoSpold/dataset (line 3, column 5)",
		},
		{
			name: "path only",
			d:    Diagnostic{Code: "validation.attribute", Message: "bad value", Path: "/ecoSpold"},
			want: "validation.attribute: bad value at /ecoSpold",
		},
		{
			name: "bare",
			d:    Diagnostic{Code: "validation.root", Message: "no root element"},
			want: "validation.root: no root element",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReportValid(t *testing.T) {
	var r Report
	if !r.Valid() {
		t.Error("nil report is not valid")
	}
	if r.Strings() != nil {
		t.Error("nil report yields strings")
	}

	r = Report{{Code: "validation.element", Message: "boom"}}
	if r.Valid() {
		t.Error("non-empty report is valid")
	}
	if got := r.Strings(); len(got) != 1 || !strings.Contains(got[0], "boom") {
		t.Errorf("Strings() = %v", got)
	}
}

func TestFromValidationAggregate(t *testing.T) {
	list := xsderrors.Errors{
		xsderrors.Validation(xsderrors.CodeValidationAttribute, 7, 12, "/ecoSpold", "attribute 'unit' is required"),
		xsderrors.Validation(xsderrors.CodeValidationType, 0, 0, "", "not a double"),
	}

	r, ok := FromValidation(fmt.Errorf("validate: %w", list))
	if !ok {
		t.Fatal("FromValidation did not recognize a wrapped Errors aggregate")
	}
	if len(r) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(r))
	}
	if r[0].Code != string(xsderrors.CodeValidationAttribute) || r[0].Line != 7 || r[0].Column != 12 {
		t.Errorf("first diagnostic = %+v", r[0])
	}
	if r[0].Path != "/ecoSpold" {
		t.Errorf("first diagnostic path = %q", r[0].Path)
	}
	if r.Malformed() {
		t.Error("conformance violations reported as malformed")
	}
}

func TestFromValidationSingle(t *testing.T) {
	err := xsderrors.Validation(xsderrors.CodeValidationXML, 4, 1, "", "unexpected EOF")

	r, ok := FromValidation(err)
	if !ok {
		t.Fatal("FromValidation did not recognize a single *Error")
	}
	if len(r) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(r))
	}
	if !r.Malformed() {
		t.Error("xml parse diagnostic not reported as malformed")
	}
}

func TestFromValidationRejectsPlainErrors(t *testing.T) {
	if _, ok := FromValidation(errors.New("open: no such file")); ok {
		t.Error("plain error recognized as a validation diagnostic")
	}
}

func TestMalformed(t *testing.T) {
	r := Report{
		{Code: string(xsderrors.CodeValidationElement), Message: "unexpected element"},
		{Code: string(xsderrors.CodeValidationXML), Message: "unexpected EOF"},
	}
	if !r.Malformed() {
		t.Error("parse-error diagnostic not reported as malformed")
	}

	r = Report{{Code: string(xsderrors.CodeValidationElement), Message: "unexpected element"}}
	if r.Malformed() {
		t.Error("violation-only report flagged as malformed")
	}
}
