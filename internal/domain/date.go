package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date or instant. Values without a time of day marshal as
// YYYY-MM-DD, everything else as RFC3339.
type Date struct {
	time.Time
}

// ParseDate accepts YYYY-MM-DD or RFC3339.
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return Date{Time: t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

// MustDate panics on malformed input. Used for fixtures.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DatePtr is MustDate returning a pointer, for nullable fields.
func DatePtr(s string) *Date {
	d := MustDate(s)
	return &d
}

func (d Date) dateOnly() bool {
	h, m, s := d.Clock()
	return h == 0 && m == 0 && s == 0 && d.Nanosecond() == 0 && d.Location() == time.UTC
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	if d.dateOnly() {
		return d.Format(dateLayout)
	}
	return d.Format(time.RFC3339)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Clone returns an independent copy of a nullable date.
func (d *Date) Clone() *Date {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
