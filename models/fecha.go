package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// fechaLayouts are the timestamp shapes the backend is known to emit. Most
// endpoints send RFC 3339, but reservation dates sometimes arrive as a bare
// day.
var fechaLayouts = []string{time.RFC3339, "2006-01-02"}

// Fecha is a backend timestamp tolerant of the date-only form. It embeds
// time.Time, so callers compare and format it like any other timestamp, and
// it marshals back out as RFC 3339.
type Fecha struct {
	time.Time
}

// UnmarshalJSON accepts RFC 3339 timestamps and bare "2006-01-02" days.
// null and the empty string decode to the zero time.
func (f *Fecha) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to decode date: %w", err)
	}
	if s == "" {
		f.Time = time.Time{}
		return nil
	}
	for _, layout := range fechaLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			f.Time = t
			return nil
		}
	}
	return fmt.Errorf("unrecognized date %q", s)
}
