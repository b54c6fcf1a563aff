package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
	m "iacscan.dev/pkg/iacscan/internal/model"
)

// ReportFormat selects the on-disk encoding of a saved report.
type ReportFormat string

// Supported report formats.
const (
	ReportFormatJSON ReportFormat = "json"
	ReportFormatYAML ReportFormat = "yaml"
)

// ParseReportFormat validates a user supplied format name.
func ParseReportFormat(s string) (ReportFormat, error) {
	switch ReportFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", ReportFormatJSON:
		return ReportFormatJSON, nil
	case ReportFormatYAML, "yml":
		return ReportFormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported report format %q", s)
	}
}

// ReportStore persists scan aggregates.
type ReportStore interface {
	// SaveReport writes agg under dir as `<runID>.<format>` and returns the file path.
	SaveReport(ctx context.Context, dir m.Path, runID string, agg m.ScanAggregate, format ReportFormat) (m.Path, error)
	// LoadReport reads a report written by SaveReport. The format follows the extension.
	LoadReport(ctx context.Context, path m.Path) (m.ScanAggregate, error)
}

type reportStore struct {
	fs CacheFSAdapter
}

// NewReportStore creates a ReportStore writing through fs.
func NewReportStore(fs CacheFSAdapter) ReportStore {
	return &reportStore{fs: fs}
}

func (rs *reportStore) SaveReport(ctx context.Context, dir m.Path, runID string, agg m.ScanAggregate, format ReportFormat) (m.Path, error) {
	if runID == "" {
		return "", fmt.Errorf("report run id is empty")
	}

	data, err := encodeReport(agg, format)
	if err != nil {
		return "", err
	}

	if err := rs.fs.MkdirAll(ctx, dir); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	path := rs.fs.JoinPath(ctx, string(dir), runID+"."+string(format))
	if err := rs.fs.WriteFileAtomic(ctx, path, bytes.NewReader(data), 0o600); err != nil {
		slog.Error("Failed to write report", "path", path, "error", err)
		return "", fmt.Errorf("write report: %w", err)
	}

	slog.Info("Saved scan report", "path", path, "results", len(agg.Results), "failures", len(agg.Failures))

	return path, nil
}

func (rs *reportStore) LoadReport(ctx context.Context, path m.Path) (m.ScanAggregate, error) {
	if err := ctx.Err(); err != nil {
		return m.ScanAggregate{}, err
	}

	// #nosec G304 - report path is provided by the user on purpose
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.ScanAggregate{}, fmt.Errorf("read report: %w", err)
	}

	var agg m.ScanAggregate

	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &agg)
	default:
		err = json.Unmarshal(data, &agg)
	}

	if err != nil {
		return m.ScanAggregate{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	return agg, nil
}

func encodeReport(agg m.ScanAggregate, format ReportFormat) ([]byte, error) {
	switch format {
	case ReportFormatJSON:
		return json.MarshalIndent(agg, "", "  ")
	case ReportFormatYAML:
		return yaml.Marshal(agg)
	default:
		return nil, fmt.Errorf("unsupported report format %q", format)
	}
}
