package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"golang.org/x/sync/errgroup"

	"github.com/five82/jtail/internal/config"
	"github.com/five82/jtail/internal/logtail"
	"github.com/five82/jtail/internal/stream"
	"github.com/five82/jtail/internal/ui"
)

// Options configure the jtail application.
type Options struct {
	ConfigPath string
	Input      string // file path; empty or "-" reads standard input
	Limit      int    // overrides buffer_limit when non-zero
}

const ttyPath = "/dev/tty"

// Run boots the viewer and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Limit != 0 {
		cfg.BufferLimit = opts.Limit
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	input, err := logtail.Open(opts.Input)
	if err != nil {
		return err
	}
	defer input.Close()

	tty, err := os.Open(ttyPath)
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer tty.Close()

	restore, err := makeRaw(tty)
	if err != nil {
		return err
	}
	defer restore()

	logClose, err := redirectLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logClose()

	return serve(ctx, cfg, input, tty, os.Stdout)
}

// serve wires the input source, the stream state and the bubbletea program
// and runs them until either side stops.
func serve(ctx context.Context, cfg config.Config, input io.Reader, keys io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	src := logtail.NewSource(ctx, input, logtail.Options{MaxLineBytes: cfg.MaxLineBytes})
	defer src.Stop()

	_, height := terminalSize(out)
	console := ui.NewConsole(out, height)
	model := ui.New(ui.Options{
		State:     stream.New(cfg.BufferLimit),
		Console:   console,
		ShowHints: cfg.ShowHints,
	})

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(keys),
		tea.WithOutput(out),
		tea.WithoutRenderer(),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		final, err := program.Run()
		if err != nil {
			if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("run program: %w", err)
		}
		if m, ok := final.(ui.Model); ok && m.Err() != nil {
			return m.Err()
		}
		return nil
	})
	g.Go(func() error {
		pump(gctx, src, program)
		return nil
	})
	g.Go(func() error {
		watchResize(gctx, out, program)
		return nil
	})
	return g.Wait()
}

// sender is the part of *tea.Program the pump needs.
type sender interface {
	Send(msg tea.Msg)
}

// pump forwards records to the program in arrival order and reports the end
// of input.
func pump(ctx context.Context, src *logtail.Source, p sender) {
	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-src.Lines():
			if !ok {
				p.Send(ui.SourceDoneMsg{Err: src.Err()})
				return
			}
			p.Send(ui.LineMsg(line))
		}
	}
}

// makeRaw switches the terminal to raw mode so single keystrokes arrive
// unbuffered and unechoed.
func makeRaw(tty *os.File) (func(), error) {
	fd := tty.Fd()
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("open terminal: %s is not a terminal", ttyPath)
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}
	return func() {
		if err := term.Restore(fd, state); err != nil {
			log.Printf("restore terminal: %v", err)
		}
	}, nil
}

// terminalSize reports the size of out, falling back to ui.DefaultHeight
// rows when out is not a terminal.
func terminalSize(out io.Writer) (width, height int) {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(f.Fd()) {
		return 0, ui.DefaultHeight
	}
	width, height, err := term.GetSize(f.Fd())
	if err != nil || height <= 0 {
		return 0, ui.DefaultHeight
	}
	return width, height
}

// redirectLog keeps log output off the terminal while the viewer owns it.
// The returned func restores the previous writer, prefix and flags.
func redirectLog(path string) (func(), error) {
	prev, prefix, flags := log.Writer(), log.Prefix(), log.Flags()
	restore := func() {
		log.SetOutput(prev)
		log.SetPrefix(prefix)
		log.SetFlags(flags)
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return restore, nil
	}
	f, err := tea.LogToFile(path, "jtail")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() {
		restore()
		_ = f.Close()
	}, nil
}
