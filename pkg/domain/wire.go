package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// BoolFlag is a bool that also accepts the 0/1 integers sqlite-backed
// APIs emit for boolean columns. It marshals as a plain JSON bool.
type BoolFlag bool

func (b *BoolFlag) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true", "1":
		*b = true
	case "false", "0", "null":
		*b = false
	default:
		return fmt.Errorf("invalid bool flag: %s", data)
	}
	return nil
}

func (b BoolFlag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}

// timestampLayouts are the formats the API emits: RFC 3339 from newer
// endpoints, sqlite CURRENT_TIMESTAMP and bare dates from older ones.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp is a time.Time that tolerates the mixed timestamp formats in
// API responses. Null and empty strings decode to the zero time.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if s == "null" || s == `""` {
		t.Time = time.Time{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid timestamp: %s", data)
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", raw)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}
