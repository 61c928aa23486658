package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

type failingWriter struct {
	calls int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.calls++
	return 0, errors.New("broken pipe")
}

func TestNewConsole_DefaultHeight(t *testing.T) {
	c := NewConsole(&bytes.Buffer{}, 0)
	if got := c.Height(); got != DefaultHeight {
		t.Fatalf("Height() = %d, want %d", got, DefaultHeight)
	}
	c.SetHeight(-3)
	if got := c.Height(); got != DefaultHeight {
		t.Fatalf("Height() after SetHeight(-3) = %d, want %d", got, DefaultHeight)
	}
	c.SetHeight(50)
	if got := c.Height(); got != 50 {
		t.Fatalf("Height() after SetHeight(50) = %d, want 50", got)
	}
}

func TestConsole_WriteLogObject(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, 10)
	c.WriteLog(`{"a":1}`, 0, nil)

	home := ansi.CursorPosition(1, 10)
	want := home + "a\t1\n" + home
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestConsole_WriteLogEndsOnFreshLine(t *testing.T) {
	tests := []struct {
		name   string
		record string
	}{
		{"invalid", "garbage"},
		{"empty object", "{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			c := NewConsole(&buf, 10)
			c.WriteLog(tt.record, 1, []string{"ignored"})
			if got := buf.String(); !strings.HasSuffix(got, "\r\n") {
				t.Fatalf("output = %q, want trailing CRLF", got)
			}
		})
	}
}

func TestConsole_CleanLastLineAndEnter(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, 7)
	c.CleanLastLine()
	c.Write("0:a\t")
	c.Enter()

	want := ansi.CursorPosition(1, 7) + ansi.EraseEntireLine + "0:a\t\r\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestConsole_KeepsFirstError(t *testing.T) {
	w := &failingWriter{}
	c := NewConsole(w, 5)

	c.Write("one")
	c.Write("two")
	c.Enter()

	if c.Err() == nil {
		t.Fatal("Err() = nil, want write error")
	}
	if !strings.Contains(c.Err().Error(), "write terminal") {
		t.Fatalf("Err() = %q, want write terminal prefix", c.Err())
	}
	if w.calls != 1 {
		t.Fatalf("writer called %d times, want 1", w.calls)
	}
}

func TestConsole_EmptyWriteSkipped(t *testing.T) {
	w := &failingWriter{}
	c := NewConsole(w, 5)
	c.Write("")
	if c.Err() != nil || w.calls != 0 {
		t.Fatalf("empty write reached writer: calls=%d err=%v", w.calls, c.Err())
	}
}
