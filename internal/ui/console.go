package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/jtail/internal/stream"
)

// DefaultHeight is the screen height assumed until the terminal reports one.
const DefaultHeight = 24

// Ensure Console implements stream.Console at compile time.
var _ stream.Console = (*Console)(nil)

// Console draws records on the bottom row of a raw-mode terminal.
//
// Writes never fail from the caller's point of view. The first write error is
// kept, later writes are dropped, and Err reports it.
type Console struct {
	out       io.Writer
	formatter Formatter
	height    int
	err       error
}

// NewConsole returns a Console writing to out. Colors are resolved against
// out's capabilities. A non-positive height uses DefaultHeight.
func NewConsole(out io.Writer, height int) *Console {
	if height <= 0 {
		height = DefaultHeight
	}
	return &Console{
		out:       out,
		formatter: NewFormatter(DefaultTheme(), lipgloss.NewRenderer(out)),
		height:    height,
	}
}

// SetHeight records a new screen height. Non-positive values are ignored.
func (c *Console) SetHeight(height int) {
	if height > 0 {
		c.height = height
	}
}

// Height reports the screen height in rows.
func (c *Console) Height() int { return c.height }

// Err reports the first write failure, if any.
func (c *Console) Err() error { return c.err }

// WriteLog renders record at the bottom row. Filter keys are not applied.
func (c *Console) WriteLog(record string, ordinal uint64, _ []string) {
	text, fresh := c.formatter.format(record, ordinal, c.height)
	if !fresh {
		// Keep the next record from overwriting this one.
		text += "\r\n"
	}
	c.write(text)
}

// Write emits text verbatim at the cursor.
func (c *Console) Write(text string) {
	c.write(text)
}

// CleanLastLine erases the bottom row and parks the cursor at its start.
func (c *Console) CleanLastLine() {
	c.write(ansi.CursorPosition(1, c.height) + ansi.EraseEntireLine)
}

// Enter moves to the start of a fresh line.
func (c *Console) Enter() {
	c.write("\r\n")
}

func (c *Console) write(text string) {
	if c.err != nil || text == "" {
		return
	}
	if _, err := io.WriteString(c.out, text); err != nil {
		c.err = fmt.Errorf("write terminal: %w", err)
	}
}
