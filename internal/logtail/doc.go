// Package logtail reads line-delimited log input for the viewer.
//
// # Overview
//
// A Source wraps an io.Reader (standard input or a file) and delivers one
// record per line on a channel, preserving arrival order:
//
//	src := logtail.NewSource(ctx, os.Stdin, logtail.Options{})
//	for line := range src.Lines() {
//		// hand line to the stream state
//	}
//	if err := src.Err(); err != nil {
//		log.Printf("input failed: %v", err)
//	}
//
// Records are not interpreted here. Empty lines and malformed JSON are
// delivered like any other record; parsing happens at render time.
//
// # Scanning
//
// Lines are split with bufio.Scanner using a 64KB initial buffer that may
// grow up to Options.MaxLineBytes (1MB by default). A longer line stops the
// source and Err reports bufio.ErrTooLong.
//
// # Cancellation
//
// The blocking Read happens on an inner goroutine, so Stop and context
// cancellation close Lines promptly even when the writer on the other end of
// a pipe has gone quiet. Stop is idempotent.
//
// # Error Handling
//
// Open wraps failures as "open input: ...". Read failures are logged with
// the "logtail:" prefix and reported by Err once Lines is closed; a clean
// EOF or a Stop leaves Err nil.
package logtail
