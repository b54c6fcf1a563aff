// Package controller provides output adapters for displaying scan progress and results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	m "iacscan.dev/pkg/iacscan/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeView StartMode = iota
	ModeScan
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithViewMode starts the UI without progress reporting.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// WithScanMode starts the UI with per-path progress reporting.
func WithScanMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeScan
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeView}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI displays scan progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayPathStarted(ctx context.Context, index, total int, path m.Path)
	DisplayPathCompleted(ctx context.Context, index, total int, path m.Path, err error)
	DisplayAggregate(ctx context.Context, agg m.ScanAggregate) error
	DisplayReportSaved(ctx context.Context, path m.Path)
	DisplayCacheCleaned(ctx context.Context, dir m.Path, removed int)
}

// UI modes accepted by NewUI.
const (
	UIModeAuto   = "auto"
	UIModeSimple = "simple"
	UIModeTUI    = "tui"
)

// NewUI picks the interactive UI when mode asks for it, or when mode is auto
// and the command writes to a terminal.
func NewUI(cmd *cobra.Command, mode string) UI {
	switch mode {
	case UIModeTUI:
		return NewTUI(cmd.OutOrStdout())
	case UIModeSimple:
		return NewSimpleUI(cmd)
	default:
		if IsTTY(cmd.OutOrStdout()) {
			return NewTUI(cmd.OutOrStdout())
		}

		return NewSimpleUI(cmd)
	}
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
