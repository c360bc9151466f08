package domain

import (
	"encoding/json"
	"reflect"
	"strings"
	"time"
)

// dateTimeLayouts are tried in order. Values without an offset are read as UTC.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateTime,
	time.DateOnly,
}

// DateTime is an incoming timestamp that also accepts naive ISO 8601 and date-only forms.
type DateTime struct {
	time.Time
}

// ParseDateTime parses raw with the first matching layout. The error of the
// RFC 3339 attempt is returned when none match.
func ParseDateTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	var firstErr error
	for _, layout := range dateTimeLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t.UTC(), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return &json.UnmarshalTypeError{Value: string(data), Type: reflect.TypeOf("")}
	}
	t, err := ParseDateTime(raw)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
