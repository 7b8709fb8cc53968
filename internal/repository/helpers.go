package repository

import (
	"encoding/json"
	"fmt"
	"time"
)

// marshalStringList serializes a string slice as a JSON text column. A nil
// slice stores as the empty list so reads never see NULL.
func marshalStringList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("marshaling string list: %w", err)
	}
	return string(b), nil
}

// unmarshalStringList parses a JSON text column back into a string slice.
func unmarshalStringList(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("unmarshaling string list: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list, nil
}

// marshalTimeList serializes times as a JSON array of RFC3339 strings.
func marshalTimeList(times []time.Time) (string, error) {
	list := make([]string, len(times))
	for i, t := range times {
		list[i] = t.UTC().Format(time.RFC3339)
	}
	return marshalStringList(list)
}

func unmarshalTimeList(raw string) ([]time.Time, error) {
	list, err := unmarshalStringList(raw)
	if err != nil {
		return nil, err
	}
	times := make([]time.Time, 0, len(list))
	for _, s := range list {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, fmt.Errorf("parsing time %q: %w", s, err)
		}
		times = append(times, t)
	}
	if len(times) == 0 {
		return nil, nil
	}
	return times, nil
}

// nullableIntToValue converts a *int to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil, otherwise the int value.
func nullableIntToValue(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
