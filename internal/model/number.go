package model

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Number is a numeric field decoded leniently. Form submissions send numbers as
// strings, blanks or nothing at all; anything that is not a finite number reads as 0.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number(parseNumber(b))
	return nil
}

func (n Number) Float() float64 {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// NonNegative clamps negative values to zero.
func (n Number) NonNegative() float64 {
	return math.Max(0, n.Float())
}

// Count is the value as a non-negative whole count.
func (n Number) Count() float64 {
	return math.Floor(n.NonNegative())
}

func parseNumber(b []byte) float64 {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return 0
	}
	s := string(b)
	if b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return 0
		}
		s = strings.TrimSpace(str)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Flag is a boolean decoded leniently: true, "true", "on", "1" and 1 are set,
// everything else is unset.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	switch strings.ToLower(strings.Trim(string(bytes.TrimSpace(b)), `"`)) {
	case "true", "on", "1", "yes":
		*f = true
	default:
		*f = false
	}
	return nil
}

// StringList accepts an array of strings or a single string. Non-string array
// elements are dropped.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*l = nil
	if len(b) == 0 {
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err == nil && strings.TrimSpace(s) != "" {
			*l = StringList{s}
		}
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil
		}
		for _, r := range raw {
			var s string
			if err := json.Unmarshal(r, &s); err == nil && strings.TrimSpace(s) != "" {
				*l = append(*l, s)
			}
		}
	}
	return nil
}
