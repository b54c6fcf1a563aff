package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"iacscan.dev/pkg/iacscan/internal/adapter"
	"iacscan.dev/pkg/iacscan/internal/controller"
	m "iacscan.dev/pkg/iacscan/internal/model"
)

// Exit codes of the test command.
const (
	ExitClean          = 0
	ExitIssuesFound    = 1
	ExitPartialFailure = 2
	ExitFatal          = 3
)

// ExitCode maps a finished scan to the process exit code. Issues take
// precedence over partial failures.
func ExitCode(agg m.ScanAggregate) int {
	if agg.IssueCount() > 0 {
		return ExitIssuesFound
	}

	if len(agg.Failures) > 0 {
		return ExitPartialFailure
	}

	return ExitClean
}

// TestArgs contains the arguments of the test workflow.
type TestArgs struct {
	Scan ScanArgs
	// Reports is the directory the report is saved in. Empty disables saving.
	Reports      m.Path
	ReportFormat adapter.ReportFormat
}

// Workflow is the entry point used by the CLI commands.
type Workflow interface {
	Test(ctx context.Context, args TestArgs) (m.ScanAggregate, error)
	View(ctx context.Context, report m.Path) (m.ScanAggregate, error)
	CleanCache(ctx context.Context, dir m.Path) (int, error)
}

type workflow struct {
	adapter.ReportStore
	adapter.CacheFSAdapter
	controller.UI
	Scanner
	newRunID func() string
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.CacheFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	scanner Scanner,
) Workflow {
	return &workflow{
		CacheFSAdapter: fsAdapter,
		ReportStore:    reportStore,
		UI:             ui,
		Scanner:        scanner,
		newRunID:       uuid.NewString,
	}
}

func (w *workflow) Test(ctx context.Context, args TestArgs) (m.ScanAggregate, error) {
	if err := w.Start(ctx, controller.WithScanMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return m.ScanAggregate{}, err
	}

	args.Scan.Observer = w.UI

	agg, err := w.Scan(ctx, args.Scan)

	w.Close(ctx)

	if err != nil {
		return agg, fmt.Errorf("scan: %w", err)
	}

	if args.Reports != "" {
		path, err := w.SaveReport(ctx, args.Reports, w.newRunID(), agg, args.ReportFormat)
		if err != nil {
			return agg, fmt.Errorf("save report: %w", err)
		}

		w.DisplayReportSaved(ctx, path)
	}

	if err := w.DisplayAggregate(ctx, agg); err != nil {
		return agg, fmt.Errorf("display results: %w", err)
	}

	return agg, nil
}

func (w *workflow) View(ctx context.Context, report m.Path) (m.ScanAggregate, error) {
	agg, err := w.LoadReport(ctx, report)
	if err != nil {
		return m.ScanAggregate{}, fmt.Errorf("load report: %w", err)
	}

	if err := w.DisplayAggregate(ctx, agg); err != nil {
		return agg, fmt.Errorf("display results: %w", err)
	}

	return agg, nil
}

func (w *workflow) CleanCache(ctx context.Context, dir m.Path) (int, error) {
	removed, err := CleanCache(ctx, w.CacheFSAdapter, dir)
	if err != nil {
		return removed, err
	}

	slog.Info("Cleaned local cache", "dir", dir, "removed", removed)
	w.DisplayCacheCleaned(ctx, dir, removed)

	return removed, nil
}
