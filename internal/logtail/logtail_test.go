package logtail

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func collect(t *testing.T, src *Source) []string {
	t.Helper()
	var got []string
	timeout := time.After(2 * time.Second)
	for {
		select {
		case line, ok := <-src.Lines():
			if !ok {
				return got
			}
			got = append(got, line)
		case <-timeout:
			t.Fatal("timed out waiting for lines channel to close")
		}
	}
}

func TestSource_DeliversLinesInOrder(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty input", "", nil},
		{"single line no newline", `{"a":1}`, []string{`{"a":1}`}},
		{"keeps empty records", "a\n\nb\n", []string{"a", "", "b"}},
		{"keeps invalid json", "not json\n[1,2]\n", []string{"not json", "[1,2]"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewSource(context.Background(), strings.NewReader(tt.input), Options{})
			got := collect(t, src)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("lines = %q, want %q", got, tt.want)
			}
			if err := src.Err(); err != nil {
				t.Fatalf("Err = %v, want nil", err)
			}
		})
	}
}

func TestSource_LineTooLong(t *testing.T) {
	input := "short\n" + strings.Repeat("x", 64) + "\nafter\n"
	src := NewSource(context.Background(), strings.NewReader(input), Options{MaxLineBytes: 16})

	got := collect(t, src)
	if !reflect.DeepEqual(got, []string{"short"}) {
		t.Fatalf("lines = %q, want [short]", got)
	}
	err := src.Err()
	if !errors.Is(err, bufio.ErrTooLong) {
		t.Fatalf("Err = %v, want bufio.ErrTooLong", err)
	}
	if !strings.Contains(err.Error(), "read input") {
		t.Fatalf("Err = %q, want it to mention read input", err.Error())
	}
}

func TestSource_StopClosesLines(t *testing.T) {
	r, w := io.Pipe()
	defer func() { _ = w.Close() }()

	src := NewSource(context.Background(), r, Options{})
	src.Stop()

	if got := collect(t, src); len(got) != 0 {
		t.Fatalf("lines = %q, want none", got)
	}
	if err := src.Err(); err != nil {
		t.Fatalf("Err = %v, want nil after Stop", err)
	}
}

func TestSource_StopIsIdempotent(t *testing.T) {
	r, w := io.Pipe()
	defer func() { _ = w.Close() }()

	src := NewSource(context.Background(), r, Options{})
	src.Stop()
	src.Stop()
	collect(t, src)
}

func TestSource_ContextCancelClosesLines(t *testing.T) {
	r, w := io.Pipe()
	defer func() { _ = w.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	src := NewSource(ctx, r, Options{})
	cancel()
	collect(t, src)
}

func TestSource_StreamsFromPipe(t *testing.T) {
	r, w := io.Pipe()
	src := NewSource(context.Background(), r, Options{BufferSize: 1})

	go func() {
		_, _ = io.WriteString(w, "{\"n\":1}\n{\"n\":2}\n")
		_ = w.CloseWithError(errors.New("boom"))
	}()

	got := collect(t, src)
	want := []string{`{"n":1}`, `{"n":2}`}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	if err := src.Err(); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("Err = %v, want boom", err)
	}
}

func TestOpen_StdinAliases(t *testing.T) {
	for _, path := range []string{"", " ", "-"} {
		rc, err := Open(path)
		if err != nil {
			t.Fatalf("Open(%q) error = %v", path, err)
		}
		_ = rc.Close()
	}
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.jsonl")
	if err := os.WriteFile(path, []byte("{\"a\":1}\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	rc, err := Open(path)
	if err != nil {
		t.Fatalf("Open error = %v", err)
	}
	defer func() { _ = rc.Close() }()

	src := NewSource(context.Background(), rc, Options{})
	if got := collect(t, src); !reflect.DeepEqual(got, []string{`{"a":1}`}) {
		t.Fatalf("lines = %q, want [{\"a\":1}]", got)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.jsonl"))
	if err == nil {
		t.Fatal("Open returned nil error, want error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Open error = %v, want os.ErrNotExist", err)
	}
}
