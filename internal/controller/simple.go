package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "iacscan.dev/pkg/iacscan/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mode = newStartConfig(options...).mode

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayPathStarted prints the path about to be scanned.
func (s *SimpleUI) DisplayPathStarted(ctx context.Context, index, total int, path m.Path) {
	if ctx.Err() != nil || s.mode != ModeScan {
		return
	}

	s.printf("[%d/%d] Scanning %s\n", index+1, total, path)
}

// DisplayPathCompleted prints the outcome of a scanned path.
func (s *SimpleUI) DisplayPathCompleted(ctx context.Context, index, total int, path m.Path, err error) {
	if ctx.Err() != nil || s.mode != ModeScan {
		return
	}

	if err != nil {
		s.printf("[%d/%d] %s %s: %v\n", index+1, total, color.RedString("failed"), path, err)
		return
	}

	s.printf("[%d/%d] %s %s\n", index+1, total, color.GreenString("done"), path)
}

// DisplayAggregate prints issues, failures and a summary.
func (s *SimpleUI) DisplayAggregate(ctx context.Context, agg m.ScanAggregate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if agg.OutputMeta != nil {
		s.printf("\nOrganization: %s\nProject:      %s\n", agg.OutputMeta.OrgName, agg.OutputMeta.ProjectName)

		if agg.OutputMeta.GitRemoteURL != "" {
			s.printf("Remote:       %s\n", agg.OutputMeta.GitRemoteURL)
		}
	}

	for _, result := range agg.Results {
		if result.Failed() || len(result.Issues) == 0 {
			continue
		}

		s.printf("\n%s (%s)\n%s", result.Path, result.TargetFile, renderIssuesTable(result.Issues))
	}

	s.printf("\n%s", renderResultsTable(agg.Results))

	if len(agg.Failures) > 0 {
		s.printf("\n%s\n%s", color.New(color.FgRed, color.Bold).Sprint("Failed paths"), renderFailuresTable(agg.Failures))
	}

	s.printf("\n%s\n", summaryLine(agg))

	return nil
}

// DisplayReportSaved prints where the report was written.
func (s *SimpleUI) DisplayReportSaved(ctx context.Context, path m.Path) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Report saved to %s\n", path)
}

// DisplayCacheCleaned prints the outcome of a cache clean.
func (s *SimpleUI) DisplayCacheCleaned(ctx context.Context, dir m.Path, removed int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Removed %d cached artifact(s) from %s\n", removed, dir)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderIssuesTable(issues []m.Issue) string {
	sorted := make([]m.Issue, len(issues))
	copy(sorted, issues)

	sort.SliceStable(sorted, func(i, j int) bool {
		return severityOrder(sorted[i].Severity) > severityOrder(sorted[j].Severity)
	})

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Severity", "Rule", "Title", "Resource", "Location"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, issue := range sorted {
		location := issue.FilePath
		if issue.Line > 0 {
			location = fmt.Sprintf("%s:%d", issue.FilePath, issue.Line)
		}

		table.Append([]string{formatSeverity(issue.Severity), issue.ID, issue.Title, issue.Resource, location})
	}

	table.Render()

	return tableBuffer.String()
}

func renderResultsTable(results []m.TestResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Project", "Issues", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	issues := 0

	for _, result := range results {
		status := color.GreenString("passed")

		switch {
		case result.Failed():
			status = color.RedString(result.Error.StrCode)
		case len(result.Issues) > 0:
			status = color.YellowString("issues")
		}

		issues += len(result.Issues)
		table.Append([]string{result.Path, result.ProjectName, fmt.Sprintf("%d", len(result.Issues)), status})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Results %d", len(results)), "", fmt.Sprintf("%d", issues), ""})
	table.Render()

	return tableBuffer.String()
}

func renderFailuresTable(failures []m.Failure) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Reason"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, failure := range failures {
		table.Append([]string{failure.Path, failure.FailureReason})
	}

	table.Render()

	return tableBuffer.String()
}

func summaryLine(agg m.ScanAggregate) string {
	return fmt.Sprintf("%d issue(s) found, %d failure(s), %d ignored issue(s)",
		agg.IssueCount(), len(agg.Failures), agg.IgnoredIssuesCount)
}

func severityOrder(severity m.Severity) int {
	switch severity {
	case m.SeverityCritical:
		return 3
	case m.SeverityHigh:
		return 2
	case m.SeverityMedium:
		return 1
	default:
		return 0
	}
}

func formatSeverity(severity m.Severity) string {
	switch severity {
	case m.SeverityCritical:
		return color.New(color.FgMagenta, color.Bold).Sprint(string(severity))
	case m.SeverityHigh:
		return color.RedString(string(severity))
	case m.SeverityMedium:
		return color.YellowString(string(severity))
	default:
		return string(severity)
	}
}
