package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// TagList is an ordered list of tag strings stored as a single JSON text
// column. Empty entries are dropped on write, and corrupt stored data decodes
// to an empty list rather than surfacing an error to the caller.
type TagList []string

// Filtered returns a copy of the list with empty entries removed.
func (t TagList) Filtered() TagList {
	out := make(TagList, 0, len(t))
	for _, tag := range t {
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// Value encodes the filtered list as JSON for storage.
func (t TagList) Value() (driver.Value, error) {
	data, err := json.Marshal(t.Filtered())
	if err != nil {
		return "[]", nil
	}
	return string(data), nil
}

// Scan decodes the stored JSON text. Malformed data is tolerated and yields
// an empty list.
func (t *TagList) Scan(value interface{}) error {
	if value == nil {
		*t = TagList{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported tags column type %T", value)
	}

	var decoded []string
	if err := json.Unmarshal(raw, &decoded); err != nil {
		*t = TagList{}
		return nil
	}
	*t = TagList(decoded).Filtered()
	return nil
}

// MarshalJSON renders a nil list as an empty JSON array.
func (t TagList) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(t.Filtered()))
}
