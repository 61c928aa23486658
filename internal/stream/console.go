package stream

// Console is the terminal collaborator the stream state draws through. It is
// borrowed for the duration of a single call and never retained.
//
// Implementations own styling, cursor placement and the screen geometry.
// Write failures are the implementation's to surface; the stream state treats
// every call as infallible.
type Console interface {
	// WriteLog renders one raw record at the bottom row. Coloring follows the
	// parity of ordinal.
	WriteLog(record string, ordinal uint64, filterKeys []string)
	// Write emits text at the cursor without styling.
	Write(text string)
	// CleanLastLine clears the bottom row and leaves the cursor at its start.
	CleanLastLine()
	// Enter advances to a fresh line.
	Enter()
}
