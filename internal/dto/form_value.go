package dto

import (
	"bytes"
	"encoding/json"
)

// FormValue holds a numeric form field as entered. It accepts a JSON string
// or a bare JSON number so the service can parse and reject it with the
// form's own messages.
type FormValue string

func (v *FormValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*v = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = FormValue(s)
	default:
		*v = FormValue(b)
	}
	return nil
}
