package stream

import (
	"reflect"
	"testing"
)

func TestKeysOf(t *testing.T) {
	tests := []struct {
		name    string
		records []string
		want    []string
	}{
		{"empty", nil, []string{}},
		{"sorted union", []string{`{"b":1,"a":2}`, `{"c":3,"a":4}`}, []string{"a", "b", "c"}},
		{"skips invalid", []string{`not json`, `{"a":1`, `{"ok":true}`}, []string{"ok"}},
		{"skips non-objects", []string{`[{"a":1}]`, `"str"`, `42`, `null`, `true`}, []string{}},
		{"top level only", []string{`{"outer":{"inner":1}}`}, []string{"outer"}},
		{"byte order", []string{`{"b":1,"B":1,"a":1,"_":1}`}, []string{"B", "_", "a", "b"}},
		{"empty object", []string{`{}`}, []string{}},
		{"empty key", []string{`{"":1}`}, []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KeysOf(tt.records)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("KeysOf(%q) = %q, want %q", tt.records, got, tt.want)
			}
		})
	}
}
