package utils

import (
	"fmt"
	"strings"
	"time"

	v1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

type _time = v1.Time

// localDateTime is the zone-less ISO format written by older
// task files. Such values are interpreted in the local time zone.
const localDateTime = "2006-01-02T15:04:05.999999999"

// Timestamp is time rounded to seconds.
type Timestamp struct {
	_time `json:",inline"`
}

func NewTimestamp() Timestamp {
	return NewTimestampFor(time.Now())
}

func NewTimestampP() *Timestamp {
	return NewTimestampPFor(time.Now())
}

func NewTimestampFor(t time.Time) Timestamp {
	return Timestamp{
		_time: v1.NewTime(t.UTC().Round(time.Second)),
	}
}

func NewTimestampPFor(t time.Time) *Timestamp {
	ts := NewTimestampFor(t)
	return &ts
}

// ParseTimestamp accepts RFC 3339 and zone-less ISO local date-times.
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return NewTimestampFor(t), nil
	}
	t, err := time.ParseInLocation(localDateTime, s, time.Local)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q", s)
	}
	return NewTimestampFor(t), nil
}

// MarshalJSON implements the json.Marshaler interface.
// The time is a quoted string in RFC 3339 format.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if y := t.Year(); y < 0 || y >= 10000 {
		// RFC 3339 is clear that years are 4 digits exactly.
		return nil, fmt.Errorf("Time.MarshalJSON: year outside of range [0,9999]")
	}

	b := make([]byte, 0, len(time.RFC3339)+2)
	b = append(b, '"')
	b = t.AppendFormat(b, time.RFC3339)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	// Ignore null, like in the main JSON package.
	if string(data) == "null" {
		return nil
	}
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid timestamp %s", s)
	}
	ts, err := ParseTimestamp(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*t = ts
	return nil
}

func (t Timestamp) String() string {
	return t.Format(time.RFC3339)
}

func (t Timestamp) Time() time.Time {
	return t._time.Time
}

func (t Timestamp) Equal(o Timestamp) bool {
	return t._time.Equal(&o._time)
}
