package catalog

import (
	"errors"
	"testing"
	"time"
)

func TestDecodeColumns_ExactlyOne(t *testing.T) {
	s := "blue"
	b := true
	d := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	n := 3.5

	tests := []struct {
		name    string
		s       *string
		b       *bool
		d       *time.Time
		n       *float64
		want    ValueKind
		wantErr bool
	}{
		{name: "string only", s: &s, want: KindString},
		{name: "bool only", b: &b, want: KindBool},
		{name: "date only", d: &d, want: KindDate},
		{name: "number only", n: &n, want: KindNumber},
		{name: "none set", wantErr: true},
		{name: "two set", s: &s, b: &b, wantErr: true},
		{name: "all set", s: &s, b: &b, d: &d, n: &n, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := DecodeColumns(tc.s, tc.b, tc.d, tc.n)
			if tc.wantErr {
				if !errors.Is(err, ErrAmbiguousValue) {
					t.Fatalf("err = %v, want ErrAmbiguousValue", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Kind != tc.want {
				t.Fatalf("kind = %q, want %q", v.Kind, tc.want)
			}
		})
	}
}

func TestEncodeColumns_RoundTrip(t *testing.T) {
	values := []AttrValue{
		TextValue("NEW"),
		BoolValue(true),
		DateValue(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)),
		NumberValue(42.25),
	}
	for _, in := range values {
		s, b, d, n := in.EncodeColumns()
		out, err := DecodeColumns(s, b, d, n)
		if err != nil {
			t.Fatalf("%q: decode error: %v", in.Kind, err)
		}
		if out != in {
			t.Fatalf("round trip mismatch: got %+v, want %+v", out, in)
		}
	}
}

func TestTargetType_Valid(t *testing.T) {
	for _, tt := range []TargetType{TargetAsset, TargetStockItem, TargetConsumable} {
		if !tt.Valid() {
			t.Fatalf("%q should be valid", tt)
		}
	}
	if TargetType("person").Valid() {
		t.Fatal("unknown target type accepted")
	}
}
