package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexInt is an integer request field that clients send either as a number
// or as a numeric string. Present is false when the key was absent or null;
// Valid is false when a value was sent but could not be read as an integer.
type FlexInt struct {
	Value   int
	Present bool
	Valid   bool
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	*f = FlexInt{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	f.Present = true

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			f.Value, f.Valid = n, true
		}
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return nil
	}
	if i, err := n.Int64(); err == nil {
		f.Value, f.Valid = int(i), true
		return nil
	}
	if fl, err := n.Float64(); err == nil && fl == float64(int(fl)) {
		f.Value, f.Valid = int(fl), true
	}
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	if !f.Present || !f.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(f.Value)), nil
}

// Or returns the value when it was sent and readable, def otherwise.
func (f FlexInt) Or(def int) int {
	if f.Present && f.Valid {
		return f.Value
	}
	return def
}

// IsEmptyJSON reports whether raw is absent or one of null, "", [] or {}.
func IsEmptyJSON(raw json.RawMessage) bool {
	s := string(bytes.TrimSpace(raw))
	switch s {
	case "", "null", `""`, "[]", "{}":
		return true
	}
	return false
}
