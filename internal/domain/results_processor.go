package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"iacscan.dev/pkg/iacscan/internal/adapter"
	m "iacscan.dev/pkg/iacscan/internal/model"
)

// Grouping is how scanned paths are attributed to projects.
type Grouping string

// Groupings.
const (
	GroupingSingle   Grouping = "single-group"
	GroupingMultiple Grouping = "multiple-groups"
)

// ResultsProcessor evaluates one path and normalizes the engine report into a
// TestOutcome. A processor is immutable once constructed.
type ResultsProcessor interface {
	Run(ctx context.Context, path m.Path) (m.TestOutcome, error)
}

// ProcessorArgs are the values a results processor is bound to.
type ProcessorArgs struct {
	// Target is the project root for single-group processing and the scanned
	// path for multiple-groups processing.
	Target      m.Path
	OrgID       string
	OrgSettings m.OrgSettings
	Options     m.Options
}

// ProcessorFactory builds the processor for one path.
type ProcessorFactory func(grouping Grouping, args ProcessorArgs) ResultsProcessor

// NewProcessorFactory returns the factory backed by the real processors.
func NewProcessorFactory(runner EngineRunner, fs adapter.CacheFSAdapter) ProcessorFactory {
	return func(grouping Grouping, args ProcessorArgs) ResultsProcessor {
		if grouping == GroupingSingle {
			return NewSingleGroupResultsProcessor(runner, fs, args)
		}

		return NewMultipleGroupsResultsProcessor(runner, fs, args)
	}
}

type processorBase struct {
	runner   EngineRunner
	fs       adapter.CacheFSAdapter
	orgID    string
	settings m.OrgSettings
	opts     m.Options
}

func newProcessorBase(runner EngineRunner, fs adapter.CacheFSAdapter, args ProcessorArgs) processorBase {
	return processorBase{
		runner:   runner,
		fs:       fs,
		orgID:    args.OrgID,
		settings: args.OrgSettings,
		opts:     args.Options.Clone(),
	}
}

func (p processorBase) threshold() (m.Severity, bool) {
	value, ok := p.opts.Flag(m.FlagSeverityThreshold)
	if !ok {
		return "", false
	}

	severity, err := m.ParseSeverity(value)
	if err != nil {
		return "", false
	}

	return severity, true
}

func (p processorBase) orgName(reported string) string {
	if reported != "" {
		return reported
	}

	if p.settings.OrgName != "" {
		return p.settings.OrgName
	}

	return p.orgID
}

// filterIssues drops ignored issues unless the org disregards ignores, applies
// custom severities and the severity threshold. It returns the kept issues and
// the number of ignored ones.
func (p processorBase) filterIssues(issues []m.Issue) ([]m.Issue, int) {
	threshold, hasThreshold := p.threshold()
	kept := make([]m.Issue, 0, len(issues))
	ignored := 0

	for _, issue := range issues {
		if issue.Ignored && !p.settings.IgnoreSettings.DisregardIgnores {
			ignored++
			continue
		}

		if custom, ok := p.customSeverity(issue.ID); ok {
			issue.Severity = custom
		}

		if hasThreshold && !issue.Severity.AtLeast(threshold) {
			continue
		}

		kept = append(kept, issue)
	}

	return kept, ignored
}

// normalize converts an engine report into a TestOutcome. name and target
// give each strategy control over project naming and target files.
func (p processorBase) normalize(path m.Path, out m.EngineOutput, name func(m.EngineResult) string, target func(m.EngineResult) string) m.TestOutcome {
	outcome := m.TestOutcome{
		Results: make([]m.TestResult, 0, len(out.Results)),
	}

	for _, r := range out.Results {
		issues, ignored := p.filterIssues(r.Issues)
		outcome.IgnoreCount += ignored

		remote := r.GitRemoteURL
		if remote == "" {
			remote = p.opts.RemoteRepoURL
		}

		outcome.Results = append(outcome.Results, m.TestResult{
			OrgName:      p.orgName(r.OrgName),
			ProjectName:  name(r),
			TargetFile:   target(r),
			Path:         string(path),
			GitRemoteURL: remote,
			Issues:       issues,
		})
	}

	for _, engineErr := range out.Errors {
		failurePath := engineErr.Path
		if failurePath == "" {
			failurePath = string(path)
		}

		outcome.Failures = append(outcome.Failures, m.Failure{Path: failurePath, FailureReason: engineErr.Message})
	}

	return outcome
}

// MultipleGroupsResultsProcessor reports the scanned path as its own project.
type MultipleGroupsResultsProcessor struct {
	processorBase
	path m.Path
}

// NewMultipleGroupsResultsProcessor binds a processor to a single scan path.
func NewMultipleGroupsResultsProcessor(runner EngineRunner, fs adapter.CacheFSAdapter, args ProcessorArgs) *MultipleGroupsResultsProcessor {
	return &MultipleGroupsResultsProcessor{
		processorBase: newProcessorBase(runner, fs, args),
		path:          args.Target,
	}
}

// Run evaluates path. Engine supplied project names win, then the
// `project-name` option, then the path's base name.
func (p *MultipleGroupsResultsProcessor) Run(ctx context.Context, path m.Path) (m.TestOutcome, error) {
	out, err := p.runner.Evaluate(ctx, path, p.opts, p.settings)
	if err != nil {
		return m.TestOutcome{}, err
	}

	fallback := p.opts.ProjectName
	if fallback == "" {
		fallback = baseName(ctx, p.fs, p.path)
	}

	outcome := p.normalize(path, out,
		func(r m.EngineResult) string {
			if r.ProjectName != "" {
				return r.ProjectName
			}

			return fallback
		},
		func(r m.EngineResult) string {
			if r.TargetFile != "" {
				return r.TargetFile
			}

			return string(path)
		},
	)

	slog.Debug("Processed path", "grouping", GroupingMultiple, "path", path, "results", len(outcome.Results), "ignored", outcome.IgnoreCount)

	return outcome, nil
}

// SingleGroupResultsProcessor reports every path as part of the project rooted
// at its root.
type SingleGroupResultsProcessor struct {
	processorBase
	root m.Path
}

// NewSingleGroupResultsProcessor binds a processor to a project root.
func NewSingleGroupResultsProcessor(runner EngineRunner, fs adapter.CacheFSAdapter, args ProcessorArgs) *SingleGroupResultsProcessor {
	return &SingleGroupResultsProcessor{
		processorBase: newProcessorBase(runner, fs, args),
		root:          args.Target,
	}
}

// Run evaluates path, which must lie within the root. Target files are
// reported relative to the root.
func (p *SingleGroupResultsProcessor) Run(ctx context.Context, path m.Path) (m.TestOutcome, error) {
	if err := checkInsideRoot(ctx, p.fs, p.root, path); err != nil {
		return m.TestOutcome{}, err
	}

	out, err := p.runner.Evaluate(ctx, path, p.opts, p.settings)
	if err != nil {
		return m.TestOutcome{}, err
	}

	projectName := p.opts.ProjectName
	if projectName == "" {
		projectName = baseName(ctx, p.fs, p.root)
	}

	prefix, err := p.relativeToRoot(ctx, path)
	if err != nil {
		return m.TestOutcome{}, fmt.Errorf("relativize %s: %w", path, err)
	}

	outcome := p.normalize(path, out,
		func(m.EngineResult) string {
			return projectName
		},
		func(r m.EngineResult) string {
			if r.TargetFile == "" {
				return prefix
			}

			if filepath.IsAbs(r.TargetFile) {
				if rel, err := p.relativeToRoot(ctx, m.Path(r.TargetFile)); err == nil {
					return rel
				}

				return r.TargetFile
			}

			return filepath.ToSlash(filepath.Join(prefix, r.TargetFile))
		},
	)

	slog.Debug("Processed path", "grouping", GroupingSingle, "root", p.root, "path", path, "results", len(outcome.Results), "ignored", outcome.IgnoreCount)

	return outcome, nil
}

func (p *SingleGroupResultsProcessor) relativeToRoot(ctx context.Context, path m.Path) (string, error) {
	absRoot, err := p.fs.Abs(ctx, p.root)
	if err != nil {
		return "", err
	}

	absPath, err := p.fs.Abs(ctx, path)
	if err != nil {
		return "", err
	}

	rel, err := p.fs.RelPath(ctx, absRoot, absPath)
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(string(rel)), nil
}

func baseName(ctx context.Context, fs adapter.CacheFSAdapter, path m.Path) string {
	abs, err := fs.Abs(ctx, path)
	if err != nil {
		return filepath.Base(string(path))
	}

	return filepath.Base(string(abs))
}

// customSeverity looks up an override for id. Config keys are case-folded
// when loaded, so a lower-cased match is accepted too.
func (p processorBase) customSeverity(id string) (m.Severity, bool) {
	if custom, ok := p.settings.CustomSeverities[id]; ok {
		return custom, true
	}

	custom, ok := p.settings.CustomSeverities[strings.ToLower(id)]

	return custom, ok
}
