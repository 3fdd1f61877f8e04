package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Progress is a card's study state on the 0..5 knowledge scale.
type Progress int

const (
	ProgressUnseen Progress = iota
	ProgressNotAtAll
	ProgressBarely
	ProgressSomewhat
	ProgressWell
	ProgressPerfectly
)

var progressNames = [...]string{
	ProgressUnseen:    "unseen",
	ProgressNotAtAll:  "not_at_all",
	ProgressBarely:    "barely",
	ProgressSomewhat:  "somewhat",
	ProgressWell:      "well",
	ProgressPerfectly: "perfectly",
}

// Valid reports whether p is one of the defined states.
func (p Progress) Valid() bool {
	return p >= ProgressUnseen && p <= ProgressPerfectly
}

func (p Progress) String() string {
	if !p.Valid() {
		return "Progress(" + strconv.Itoa(int(p)) + ")"
	}
	return progressNames[p]
}

// ParseProgress accepts a state name ("well", "not at all") or its number ("4").
func ParseProgress(s string) (Progress, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return Progress(n), nil
	}
	key := strings.ReplaceAll(strings.ToLower(s), " ", "_")
	key = strings.ReplaceAll(key, "-", "_")
	for i, name := range progressNames {
		if name == key {
			return Progress(i), nil
		}
	}
	return 0, fmt.Errorf("unknown progress %q", s)
}

// UnmarshalJSON accepts either a number or a state name.
// Range checks are left to validation so the error names the field.
func (p *Progress) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := ParseProgress(s)
		if err != nil {
			return err
		}
		*p = v
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("progress must be a number or state name: %w", err)
	}
	*p = Progress(n)
	return nil
}
