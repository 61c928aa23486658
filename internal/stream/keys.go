package stream

import (
	"encoding/json"
	"slices"
)

// KeysOf returns the sorted set of top-level keys found in every record that
// parses as a JSON object. Malformed records and non-object JSON are skipped.
func KeysOf(records []string) []string {
	set := make(map[string]struct{})
	for _, record := range records {
		collectKeys(record, set)
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func collectKeys(record string, set map[string]struct{}) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(record), &obj); err != nil {
		return
	}
	// "null" unmarshals into a nil map without error.
	if obj == nil {
		return
	}
	for k := range obj {
		set[k] = struct{}{}
	}
}
