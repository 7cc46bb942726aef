package models

import (
	"fmt"
	"strings"
	"time"
)

// Date is a point in time as the MPMS API serializes it. The server is not
// consistent: some fields arrive as RFC 3339 timestamps, others as bare
// "2006-01-02" dates, so decoding tries both.
type Date struct {
	time.Time
}

const dateOnlyLayout = "2006-01-02"

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(dateOnlyLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date value %q: %v", s, err)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.Time.Format(time.RFC3339) + `"`), nil
}

// Before reports whether d is strictly before other.
func (d Date) Before(other time.Time) bool {
	return d.Time.Before(other)
}
