package catalog

import (
	"errors"
	"fmt"
	"time"
)

// ErrAmbiguousValue means zero or more than one typed column was populated.
var ErrAmbiguousValue = errors.New("exactly one typed value must be set")

type ValueKind string

const (
	KindString ValueKind = "string"
	KindBool   ValueKind = "bool"
	KindDate   ValueKind = "date"
	KindNumber ValueKind = "number"
)

// AttrValue is the tagged variant used everywhere above the storage boundary.
// The wide nullable-column encoding exists only on the gorm models.
type AttrValue struct {
	Kind   ValueKind
	Text   string
	Bool   bool
	Date   time.Time
	Number float64
}

func TextValue(s string) AttrValue      { return AttrValue{Kind: KindString, Text: s} }
func BoolValue(b bool) AttrValue        { return AttrValue{Kind: KindBool, Bool: b} }
func DateValue(t time.Time) AttrValue   { return AttrValue{Kind: KindDate, Date: t} }
func NumberValue(f float64) AttrValue   { return AttrValue{Kind: KindNumber, Number: f} }

func (v AttrValue) String() string {
	switch v.Kind {
	case KindString:
		return v.Text
	case KindBool:
		return fmt.Sprintf("%t", v.Bool)
	case KindDate:
		return v.Date.Format("2006-01-02")
	case KindNumber:
		return fmt.Sprintf("%g", v.Number)
	}
	return ""
}

// DecodeColumns converts the wide-column encoding into an AttrValue,
// enforcing the exactly-one-populated invariant.
func DecodeColumns(s *string, b *bool, d *time.Time, n *float64) (AttrValue, error) {
	var (
		out AttrValue
		set int
	)
	if s != nil {
		out = TextValue(*s)
		set++
	}
	if b != nil {
		out = BoolValue(*b)
		set++
	}
	if d != nil {
		out = DateValue(*d)
		set++
	}
	if n != nil {
		out = NumberValue(*n)
		set++
	}
	if set != 1 {
		return AttrValue{}, ErrAmbiguousValue
	}
	return out, nil
}

// EncodeColumns is the inverse of DecodeColumns: exactly one return is non-nil.
func (v AttrValue) EncodeColumns() (s *string, b *bool, d *time.Time, n *float64) {
	switch v.Kind {
	case KindString:
		s = &v.Text
	case KindBool:
		b = &v.Bool
	case KindDate:
		d = &v.Date
	case KindNumber:
		n = &v.Number
	}
	return
}
