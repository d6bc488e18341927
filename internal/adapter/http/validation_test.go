package http

import (
	"strings"
	"testing"
)

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestValidator_TargetType(t *testing.T) {
	cv := NewValidator()

	type payload struct {
		TargetType string `validate:"required,targettype"`
	}

	for _, ok := range []string{"asset", "stock_item", "consumable"} {
		if err := cv.Validate(&payload{TargetType: ok}); err != nil {
			t.Errorf("%q should validate: %v", ok, err)
		}
	}
	for _, bad := range []string{"", "room", "Asset", "stockitem"} {
		if err := cv.Validate(&payload{TargetType: bad}); err == nil {
			t.Errorf("%q should fail validation", bad)
		}
	}
}

func TestToFieldErrors(t *testing.T) {
	cv := NewValidator()

	type payload struct {
		Username string `validate:"required,min=3"`
		Email    string `validate:"omitempty,email"`
	}

	err := cv.Validate(&payload{Username: "", Email: "not-an-email"})
	if err == nil {
		t.Fatal("expected validation errors")
	}
	fes := ToFieldErrors(err)
	if !containsFieldMsg(fes, "Username", "required") {
		t.Errorf("missing Username error: %+v", fes)
	}
	if !containsFieldMsg(fes, "Email", "email") {
		t.Errorf("missing Email error: %+v", fes)
	}
}
