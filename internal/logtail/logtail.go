package logtail

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

const (
	// DefaultMaxLineBytes caps the size of a single record.
	DefaultMaxLineBytes = 1024 * 1024

	// DefaultBufferSize is the number of scanned records that may wait for
	// the consumer.
	DefaultBufferSize = 256

	initialScanBuffer = 64 * 1024
)

// Options holds tunable parameters for a Source.
type Options struct {
	MaxLineBytes int
	BufferSize   int
}

// Source splits a byte stream into newline-delimited records and delivers
// them in order on a channel.
type Source struct {
	ch     chan string
	cancel context.CancelFunc

	mu  sync.Mutex
	err error
}

// NewSource starts reading r in a background goroutine. The Lines channel is
// closed at EOF, on a read error, when ctx is done, or after Stop.
func NewSource(ctx context.Context, r io.Reader, opts Options) *Source {
	maxLine := opts.MaxLineBytes
	if maxLine <= 0 {
		maxLine = DefaultMaxLineBytes
	}
	bufferSize := opts.BufferSize
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &Source{
		ch:     make(chan string, bufferSize),
		cancel: cancel,
	}
	go s.read(ctx, r, maxLine)
	return s
}

// Lines returns the channel of records.
func (s *Source) Lines() <-chan string { return s.ch }

// Stop ends delivery. It is safe to call more than once.
func (s *Source) Stop() { s.cancel() }

// Err reports why reading ended. It is nil on EOF or Stop and only
// meaningful once Lines has been closed.
func (s *Source) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Source) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *Source) read(ctx context.Context, r io.Reader, maxLine int) {
	defer close(s.ch)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(initialScanBuffer, maxLine)), maxLine)

	// The scan blocks in Read, so it runs on its own goroutine and the loop
	// below stays responsive to cancellation.
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				// scanErr is filled before lines closes unless ctx ended the scan.
				select {
				case err := <-scanErr:
					s.finish(err, maxLine)
				default:
				}
				return
			}
			select {
			case s.ch <- line:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (s *Source) finish(err error, maxLine int) {
	if err == nil {
		return
	}
	if errors.Is(err, bufio.ErrTooLong) {
		log.Printf("logtail: record exceeded max size (%d bytes), stopping input", maxLine)
		s.setErr(fmt.Errorf("read input: record exceeds %d bytes: %w", maxLine, err))
		return
	}
	log.Printf("logtail: scanner error: %v", err)
	s.setErr(fmt.Errorf("read input: %w", err))
}

// Open returns the input named by path: standard input for "" or "-",
// otherwise the file at path. The caller closes the result.
func Open(path string) (io.ReadCloser, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" || trimmed == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(trimmed)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return file, nil
}
