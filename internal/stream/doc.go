// Package stream holds the state machine behind the jtail viewer.
//
// # Overview
//
// A State keeps the most recent records of a JSONL stream in a fixed-size
// ring, counts every record it has ever accepted, and interprets keystrokes
// according to one of two modes:
//
//   - ModeTailLog: each new record is rendered as it arrives. 'r' repaints
//     the buffer, 'z' switches to the key selector.
//   - ModeKeySelector: records are buffered silently. The bottom row lists
//     every top-level key seen in the buffered JSON objects. 'z' returns to
//     tail mode; hex digits address an entry of the list.
//
// # Rendering
//
// State never touches the terminal. Every draw goes through the Console
// interface, which the caller passes in for the duration of one call.
//
// # Concurrency
//
// State is not safe for concurrent use. The ui package owns it from the
// bubbletea event loop, which serialises records and keystrokes.
package stream
