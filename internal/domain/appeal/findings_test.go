package appeal

import (
	"strings"
	"testing"
)

func TestFindings_DedupePreservesOrder(t *testing.T) {
	f := NewFindings()
	f.AddError("first")
	f.AddError("second")
	f.AddError("first")
	f.AddWarning("soft")
	f.AddWarning("soft")

	if got := f.Errors(); len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("unexpected errors: %v", got)
	}
	if got := f.Warnings(); len(got) != 1 || got[0] != "soft" {
		t.Errorf("unexpected warnings: %v", got)
	}
}

func TestFindings_Status(t *testing.T) {
	f := NewFindings()
	if f.Status() != StatusValid {
		t.Errorf("expected Valid, got %v", f.Status())
	}
	f.AddWarning("w")
	if f.Status() != StatusWarnings {
		t.Errorf("expected Warnings, got %v", f.Status())
	}
	f.AddError("e")
	if f.Status() != StatusErrors {
		t.Errorf("expected Errors, got %v", f.Status())
	}
}

func TestFindings_CombineIsIdempotent(t *testing.T) {
	f := NewFindings()
	f.AddWarning("w1")
	f.AddError("e1")
	f.AddError("e2")

	f.Combine()
	if f.HasErrors() {
		t.Errorf("expected no errors after combine, got %v", f.Errors())
	}
	if got := f.Warnings(); len(got) != 3 || got[0] != "w1" || got[1] != "e1" || got[2] != "e2" {
		t.Errorf("unexpected warnings after combine: %v", got)
	}

	f.Combine()
	if got := f.Warnings(); len(got) != 3 {
		t.Errorf("second combine changed the findings: %v", got)
	}
}

func TestFindings_PromoteWarningsWithCarveOut(t *testing.T) {
	f := NewFindings()
	f.AddWarning("Appellant postcode is not a valid postcode")
	f.AddWarning("Appellant first name is empty")

	f.PromoteWarnings(func(w string) bool {
		return strings.HasSuffix(w, "is not a valid postcode")
	})

	if got := f.Errors(); len(got) != 1 || got[0] != "Appellant first name is empty" {
		t.Errorf("unexpected errors: %v", got)
	}
	if got := f.Warnings(); len(got) != 1 || got[0] != "Appellant postcode is not a valid postcode" {
		t.Errorf("unexpected warnings: %v", got)
	}
}

func TestFindings_Response(t *testing.T) {
	f := NewFindings()
	f.AddWarning("w")
	c := &Case{FormType: FormSscs1}

	resp := f.Response(c)
	if resp.TransformedCase != c {
		t.Error("expected the case to be carried through")
	}
	if resp.Status != StatusWarnings {
		t.Errorf("expected Warnings status, got %v", resp.Status)
	}
	if len(resp.Warnings) != 1 || len(resp.Errors) != 0 {
		t.Errorf("unexpected findings: %+v", resp)
	}
}
