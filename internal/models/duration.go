package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Duration is the free-form length of a lesson.
// Clients send either a number of minutes (45) or text ("45 minutes");
// whole numbers are written back as JSON numbers, anything else as a string.
type Duration string

// UnmarshalJSON accepts a JSON number or a JSON string
func (d *Duration) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = Duration(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("duration must be a number or a string: %w", err)
	}
	*d = Duration(n.String())
	return nil
}

// MarshalJSON writes whole numbers as JSON numbers and everything else as a string
func (d Duration) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(d), 10, 64); err == nil {
		return []byte(d), nil
	}
	return json.Marshal(string(d))
}
