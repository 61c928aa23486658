// Package ui draws the jtail viewer on a raw-mode terminal.
//
// # Components
//
//   - format.go: Formatter renders one record for the bottom row
//   - console.go: Console implements stream.Console on an io.Writer
//   - model.go: bubbletea Model feeding records and keys to stream.State
//   - keys.go: key map and help bindings
//   - theme.go: the two alternating record colors
//
// # Record Layout
//
// Every record starts at column 1 of the bottom row. A JSON object is drawn
// as one "key<TAB>value" row per member in document order, values in compact
// JSON, each row followed by a newline that scrolls the screen up. Anything
// else is drawn as "INVALID JSON LINE: " plus the raw text. Even ordinals are
// magenta, odd ordinals yellow.
//
// # Key Bindings
//
//   - r: repaint the buffered records (tail mode)
//   - z: toggle between tail mode and the key list
//   - 0-9, a-f: address an entry of the key list
//   - ctrl+c: quit
//
// The model only matches ctrl+c itself. Every other single-rune key goes to
// stream.State.SendKey unchanged.
package ui
