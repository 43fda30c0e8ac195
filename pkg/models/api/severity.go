package api

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Severity is a tolerant wire representation of the 1..5 damage scale.
// Upstream collaborators send it as a number, a numeric string, or not
// at all; anything unreadable is simply treated as absent rather than
// failing the payload.
type Severity struct {
	value int
	valid bool
}

func NewSeverity(v int) Severity {
	return Severity{value: v, valid: true}
}

// Value returns the parsed severity and whether one was present.
func (s Severity) Value() (int, bool) {
	return s.value, s.valid
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		s.value = int(math.Round(n))
		s.valid = true
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if parsed, err := strconv.Atoi(strings.TrimSpace(str)); err == nil {
			s.value = parsed
			s.valid = true
		}
		return nil
	}

	// Unreadable severity is absent, not an error.
	return nil
}

func (s Severity) MarshalJSON() ([]byte, error) {
	if !s.valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.value)
}
