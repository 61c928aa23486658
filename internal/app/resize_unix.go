//go:build !windows

package app

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
)

// watchResize forwards terminal size changes to the program until ctx ends.
func watchResize(ctx context.Context, out io.Writer, p sender) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGWINCH)
	defer signal.Stop(sig)

	for {
		select {
		case <-ctx.Done():
			return
		case <-sig:
			width, height := terminalSize(out)
			p.Send(tea.WindowSizeMsg{Width: width, Height: height})
		}
	}
}
