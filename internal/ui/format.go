package ui

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const invalidPrefix = "INVALID JSON LINE: "

// Formatter turns one raw record into a ready-to-write terminal string.
type Formatter struct {
	styles Styles
}

// NewFormatter builds a Formatter using theme colors resolved by renderer r.
func NewFormatter(theme Theme, r *lipgloss.Renderer) Formatter {
	return Formatter{styles: theme.Styles(r)}
}

// Format renders line for the bottom row of a screen height rows tall. JSON
// objects become one "key<TAB>value" row per field in document order; any
// other input is shown behind the invalid line prefix.
func (f Formatter) Format(line string, ordinal uint64, height int) string {
	text, _ := f.format(line, ordinal, height)
	return text
}

// format also reports whether the output leaves the cursor on a fresh row.
func (f Formatter) format(line string, ordinal uint64, height int) (string, bool) {
	home := ansi.CursorPosition(1, height)
	style := f.styles.ForOrdinal(ordinal)

	var b strings.Builder
	b.WriteString(home)

	fields, ok := objectFields(line)
	if !ok {
		b.WriteString(style.Render(invalidPrefix + line))
		return b.String(), false
	}
	for _, fld := range fields {
		b.WriteString(style.Render(fld.key + "\t" + fld.value))
		b.WriteString("\n")
		b.WriteString(home)
	}
	return b.String(), len(fields) > 0
}

type field struct {
	key   string
	value string
}

// objectFields parses line as a JSON object and returns its members in the
// order they first appear. A repeated key keeps its first position and its
// last value. Values are compact JSON.
func objectFields(line string) ([]field, bool) {
	data := []byte(line)
	if !json.Valid(data) {
		return nil, false
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, false
	}

	fields := []field{}
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, ok := tok.(string)
		if !ok {
			return nil, false
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, false
		}
		var value bytes.Buffer
		if err := json.Compact(&value, raw); err != nil {
			return nil, false
		}
		if i, seen := index[key]; seen {
			fields[i].value = value.String()
			continue
		}
		index[key] = len(fields)
		fields = append(fields, field{key: key, value: value.String()})
	}
	return fields, true
}
