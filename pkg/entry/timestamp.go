package entry

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// layoutISO matches the millisecond precision ISO-8601 form used by the
// persisted entries array, e.g. 2024-03-01T09:30:00.000Z.
const layoutISO = "2006-01-02T15:04:05.000Z07:00"

func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

type Timestamp struct {
	time.Time
}

// Stamp truncates t to the precision that survives a JSON round trip.
func Stamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Millisecond)}
}

func (t Timestamp) SameDay(then time.Time) bool {
	if t.Local().Day() == then.Local().Day() &&
		t.Local().Month() == then.Local().Month() &&
		t.Local().Year() == then.Local().Year() {
		return true
	}
	return false
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if strings.TrimSpace(timestamp) == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) MarshalYAML() (interface{}, error) {
	if t.IsZero() {
		return "", nil
	}
	return t.String(), nil
}

func (t Timestamp) String() string {
	return t.UTC().Format(layoutISO)
}
