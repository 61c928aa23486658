//go:build windows

package app

import (
	"context"
	"io"
)

func watchResize(ctx context.Context, _ io.Writer, _ sender) {
	<-ctx.Done()
}
