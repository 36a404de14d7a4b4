package entity

import (
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Layouts accepted from the remote service. Browsers submit datetime-local values
// without a zone, the service echoes them back unchanged.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
}

// Timestamp is a scheduled time as sent by the remote service. Raw keeps the
// original text so values that do not parse are still shown to the user.
type Timestamp struct {
	time.Time
	Raw string
}

func ParseTimestamp(s string) Timestamp {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t, Raw: s}
		}
	}
	return Timestamp{Raw: s}
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t, Raw: t.Format(time.RFC3339)}
}

// Valid reports whether the raw value parsed into a point in time.
func (t Timestamp) Valid() bool {
	return !t.Time.IsZero()
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseTimestamp(s)
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Raw != "" {
		return json.Marshal(t.Raw)
	}
	if t.Valid() {
		return json.Marshal(t.Time.Format(time.RFC3339))
	}
	return []byte(`""`), nil
}
