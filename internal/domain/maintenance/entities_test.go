package maintenance

import (
	"errors"
	"testing"

	"assetcare-backend/internal/domain/catalog"
)

func TestParseStepStatus_ExactStrings(t *testing.T) {
	valid := []string{
		"started",
		"pending (waiting for stock item)",
		"pending (waiting for consumable)",
		"In Progress",
		"done",
		"failed (to be sent to a higher level)",
	}
	for _, s := range valid {
		got, err := ParseStepStatus(s)
		if err != nil {
			t.Fatalf("ParseStepStatus(%q) error: %v", s, err)
		}
		if string(got) != s {
			t.Fatalf("status mangled: got %q, want %q", got, s)
		}
	}

	invalid := []string{"", "Started", "in progress", "DONE", "pending", "canceled"}
	for _, s := range invalid {
		if _, err := ParseStepStatus(s); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("ParseStepStatus(%q) = %v, want ErrInvalidStatus", s, err)
		}
	}
}

func TestAttributeChange_ValueRoundTrip(t *testing.T) {
	var c MaintenanceStepAttributeChange
	c.SetValue(catalog.NumberValue(12.5))

	v, err := c.Value()
	if err != nil {
		t.Fatalf("Value error: %v", err)
	}
	if v.Kind != catalog.KindNumber || v.Number != 12.5 {
		t.Fatalf("got %+v", v)
	}
	if c.ValueString != nil || c.ValueBool != nil || c.ValueDate != nil {
		t.Fatal("other columns should stay nil")
	}
}

func TestAttributeChange_ValueAmbiguous(t *testing.T) {
	s := "x"
	b := true
	c := MaintenanceStepAttributeChange{ValueString: &s, ValueBool: &b}
	if _, err := c.Value(); !errors.Is(err, catalog.ErrAmbiguousValue) {
		t.Fatalf("err = %v, want ErrAmbiguousValue", err)
	}

	var empty MaintenanceStepAttributeChange
	if _, err := empty.Value(); !errors.Is(err, catalog.ErrAmbiguousValue) {
		t.Fatalf("err = %v, want ErrAmbiguousValue", err)
	}
}

func TestItemRequest_Open(t *testing.T) {
	r := MaintenanceStepItemRequest{Status: RequestStatusRequested}
	if !r.Open() {
		t.Fatal("requested should be open")
	}
	for _, st := range []RequestStatus{RequestStatusFulfilled, RequestStatusRejected} {
		r.Status = st
		if r.Open() {
			t.Fatalf("%q should be terminal", st)
		}
	}
}
