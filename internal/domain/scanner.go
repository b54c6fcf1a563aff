package domain

import (
	"context"
	"log/slog"

	"iacscan.dev/pkg/iacscan/internal/adapter"
	m "iacscan.dev/pkg/iacscan/internal/model"
)

// CacheArgs locate the artifacts a scan runs with.
type CacheArgs struct {
	Dir              m.Path
	PolicyEnginePath m.Path
	RulesBundlePath  m.Path
	// DefaultVersions apply when the org settings pin no version.
	DefaultVersions m.ArtifactVersions
}

// ScanObserver is notified as paths are scanned. Implementations must not block.
type ScanObserver interface {
	DisplayPathStarted(ctx context.Context, index, total int, path m.Path)
	DisplayPathCompleted(ctx context.Context, index, total int, path m.Path, err error)
}

// ScanArgs contains the arguments of one scan.
type ScanArgs struct {
	OrgSettings m.OrgSettings
	Options     m.Options
	Paths       []m.Path
	OrgID       string
	// ProjectRoot switches to single-group processing when set.
	ProjectRoot m.Path
	Cache       CacheArgs
	Observer    ScanObserver
}

// Scanner runs every path of a scan through the policy engine.
type Scanner interface {
	// Scan processes paths sequentially in input order. It only returns an
	// error when no path can be processed, e.g. the artifacts cannot be
	// resolved. Per-path failures are recorded in the aggregate.
	Scan(ctx context.Context, args ScanArgs) (m.ScanAggregate, error)
}

// ScannerOption customizes a Scanner.
type ScannerOption func(*scanner)

// WithProcessorFactory replaces the results processor factory.
func WithProcessorFactory(factory ProcessorFactory) ScannerOption {
	return func(s *scanner) {
		s.factory = factory
	}
}

type scanner struct {
	fs       adapter.CacheFSAdapter
	resolver ArtifactResolver
	engine   adapter.EngineAdapter
	factory  ProcessorFactory
}

// NewScanner creates a Scanner.
func NewScanner(fs adapter.CacheFSAdapter, resolver ArtifactResolver, engine adapter.EngineAdapter, opts ...ScannerOption) Scanner {
	s := &scanner{
		fs:       fs,
		resolver: resolver,
		engine:   engine,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *scanner) Scan(ctx context.Context, args ScanArgs) (m.ScanAggregate, error) {
	agg := m.ScanAggregate{
		Failures:      []m.Failure{},
		Results:       []m.TestResult{},
		ResultOptions: []m.Options{},
	}

	cache := NewLocalCache(s.resolver)
	defer cache.Release(ctx)

	artifacts, err := cache.Init(ctx, args.Cache, args.OrgSettings.Versions)
	if err != nil {
		slog.Error("Failed to initialize local cache", "error", err)
		return agg, err
	}

	factory := s.factory
	if factory == nil {
		factory = NewProcessorFactory(NewEngineRunner(s.engine, s.resolver, artifacts), s.fs)
	}

	grouping := GroupingMultiple
	if args.ProjectRoot != "" {
		grouping = GroupingSingle
	}

	total := len(args.Paths)

	slog.Info("Starting scan", "paths", total, "grouping", grouping, "projectRoot", args.ProjectRoot)

	for i, path := range args.Paths {
		if err := ctx.Err(); err != nil {
			slog.Warn("Scan interrupted, skipping remaining paths", "remaining", total-i, "error", err)
			break
		}

		if args.Observer != nil {
			args.Observer.DisplayPathStarted(ctx, i, total, path)
		}

		opts := args.Options.Clone()
		opts.Path = path
		opts.ProjectName = opts.RequestedProjectName

		if info, err := s.fs.FileInfo(ctx, path); err == nil && info.Mode().IsRegular() {
			opts.File = string(path)
		}

		outcome, err := s.scanPath(ctx, factory, grouping, args, path, opts)

		if args.Observer != nil {
			args.Observer.DisplayPathCompleted(ctx, i, total, path, err)
		}

		if err != nil {
			s.recordFailure(&agg, path, opts, err)
			continue
		}

		s.recordSuccess(&agg, path, opts, outcome)
	}

	slog.Info("Scan finished", "results", len(agg.Results), "failures", len(agg.Failures), "ignored", agg.IgnoredIssuesCount)

	return agg, nil
}

func (s *scanner) scanPath(
	ctx context.Context,
	factory ProcessorFactory,
	grouping Grouping,
	args ScanArgs,
	path m.Path,
	opts m.Options,
) (m.TestOutcome, error) {
	if err := ValidateOptions(opts, len(args.Paths)); err != nil {
		return m.TestOutcome{}, err
	}

	target := path

	if grouping == GroupingSingle {
		if err := checkInsideRoot(ctx, s.fs, args.ProjectRoot, path); err != nil {
			return m.TestOutcome{}, err
		}

		target = args.ProjectRoot
	}

	processor := factory(grouping, ProcessorArgs{
		Target:      target,
		OrgID:       args.OrgID,
		OrgSettings: args.OrgSettings,
		Options:     opts,
	})

	return processor.Run(ctx, path)
}

func (s *scanner) recordFailure(agg *m.ScanAggregate, path m.Path, opts m.Options, err error) {
	classified := Classify(err)

	slog.Warn("Failed to scan path", "path", path, "code", classified.StrCode(), "error", err)

	agg.Failures = append(agg.Failures, m.Failure{
		Path:          string(path),
		FailureReason: classified.UserMessage,
	})
	agg.Results = append(agg.Results, m.TestResult{
		Path:  string(path),
		Error: ToResultError(classified),
	})
	agg.ResultOptions = append(agg.ResultOptions, opts.Clone())
}

func (s *scanner) recordSuccess(agg *m.ScanAggregate, path m.Path, opts m.Options, outcome m.TestOutcome) {
	if agg.OutputMeta == nil && len(outcome.Results) > 0 {
		first := outcome.Results[0]
		agg.OutputMeta = &m.OutputMeta{
			OrgName:      first.OrgName,
			ProjectName:  first.ProjectName,
			GitRemoteURL: first.GitRemoteURL,
		}
	}

	agg.Failures = append(agg.Failures, outcome.Failures...)
	agg.IgnoredIssuesCount += outcome.IgnoreCount

	names := opts.ProjectNames
	if len(names) == 0 && len(outcome.Results) > 1 {
		names = make([]string, 0, len(outcome.Results))
		for _, result := range outcome.Results {
			names = append(names, result.ProjectName)
		}

		opts.ProjectNames = names
	}

	for i, result := range outcome.Results {
		result.Path = PathWithOptionalProjectName(path, result.ProjectName)
		agg.Results = append(agg.Results, result)

		resultOpts := opts.Clone()
		if i < len(names) {
			resultOpts.ProjectName = names[i]
		}

		agg.ResultOptions = append(agg.ResultOptions, resultOpts)
	}
}
