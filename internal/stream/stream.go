package stream

import (
	"fmt"
	"slices"
	"strconv"
)

// DefaultLimit is the log buffer capacity used when none is configured.
const DefaultLimit = 1024

// Mode selects how keystrokes and incoming records are interpreted.
type Mode int

const (
	// ModeTailLog renders every record as it arrives.
	ModeTailLog Mode = iota
	// ModeKeySelector lists the keys seen in the buffer and buffers
	// incoming records without rendering them.
	ModeKeySelector
)

func (m Mode) String() string {
	switch m {
	case ModeTailLog:
		return "tail"
	case ModeKeySelector:
		return "keys"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// State is the stream state machine: a bounded history of raw records, the
// line counter and the keystroke mode. It is owned by a single goroutine and
// performs no locking.
type State struct {
	lineCount  uint64
	buffer     *ring
	keys       []string // persistent key universe, sorted
	filterKeys []string
	mode       Mode
}

// New returns an empty State holding at most limit records. A non-positive
// limit uses DefaultLimit.
func New(limit int) *State {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &State{
		buffer: newRing(limit),
		mode:   ModeTailLog,
	}
}

// AddLine records line and, in tail mode, renders it with its new ordinal.
func (s *State) AddLine(line string, console Console) {
	s.lineCount++
	s.buffer.push(line)

	if s.mode == ModeTailLog {
		console.WriteLog(line, s.lineCount, s.filterKeys)
	}
}

// RewriteLogs repaints every buffered record. Records are numbered by their
// position in the buffer, not by their original ordinal, so colors line up
// with screen rows.
func (s *State) RewriteLogs(console Console) {
	s.buffer.each(func(pos int, line string) {
		console.WriteLog(line, uint64(pos), s.filterKeys)
	})
}

// SendKey dispatches a single keystroke according to the current mode.
func (s *State) SendKey(console Console, ch rune) {
	switch s.mode {
	case ModeTailLog:
		switch ch {
		case 'r':
			s.RewriteLogs(console)
		case 'z':
			s.ToKeySelectorMode()
			s.DrawKeys(console)
		}
	case ModeKeySelector:
		switch {
		case ch >= '0' && ch <= '9', ch >= 'a' && ch <= 'f':
			// Index into the drawn key list. Selecting it does nothing yet.
			if _, err := strconv.ParseUint(string(ch), 16, 8); err != nil {
				return
			}
		case ch == 'z':
			s.ToTailLogMode()
		}
	}
}

// DrawKeys writes the keys of every JSON object in the buffer as an indexed,
// sorted list on the bottom row. The list is recomputed from the buffer on
// each call.
func (s *State) DrawKeys(console Console) {
	keys := KeysOf(s.buffer.slice())

	console.CleanLastLine()
	for i, k := range keys {
		console.Write(fmt.Sprintf("%d:%s\t", i, k))
	}
	console.Enter()
}

// ToTailLogMode switches to tail mode.
func (s *State) ToTailLogMode() { s.mode = ModeTailLog }

// ToKeySelectorMode switches to key selector mode.
func (s *State) ToKeySelectorMode() { s.mode = ModeKeySelector }

// Mode reports the current mode.
func (s *State) Mode() Mode { return s.mode }

// LineCount reports how many records have been added since creation.
func (s *State) LineCount() uint64 { return s.lineCount }

// Len reports how many records are buffered.
func (s *State) Len() int { return s.buffer.len() }

// Limit reports the buffer capacity.
func (s *State) Limit() int { return s.buffer.capacity() }

// Lines returns a copy of the buffered records, oldest first.
func (s *State) Lines() []string { return s.buffer.slice() }

// Keys returns a copy of the persistent key universe.
func (s *State) Keys() []string { return slices.Clone(s.keys) }

// FilterKeys returns a copy of the filter key list handed to the console.
func (s *State) FilterKeys() []string { return slices.Clone(s.filterKeys) }
