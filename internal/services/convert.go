package services

import (
	"errors"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// strPtr turns form values into nullable columns: blank becomes NULL.
func strPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// datePtr parses an optional "2006-01-02" field; blank becomes NULL.
func datePtr(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, errors.New("invalid date, expected YYYY-MM-DD: " + s)
	}
	return &t, nil
}

// dateValue parses a required "2006-01-02" field.
func dateValue(s string) (time.Time, error) {
	t, err := datePtr(s)
	if err != nil {
		return time.Time{}, err
	}
	if t == nil {
		return time.Time{}, errors.New("date is required")
	}
	return *t, nil
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
