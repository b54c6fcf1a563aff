//go:build windows

package cmd

import (
	"context"
	"os"
	"os/signal"
)

// withSignalContext cancels the returned context on Ctrl-C.
func withSignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}
