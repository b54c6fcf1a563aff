package domain

import (
	"context"
	"log/slog"

	"iacscan.dev/pkg/iacscan/internal/adapter"
	m "iacscan.dev/pkg/iacscan/internal/model"
)

// EngineRunner evaluates a single target with the artifacts resolved for the scan.
type EngineRunner interface {
	Evaluate(ctx context.Context, target m.Path, opts m.Options, settings m.OrgSettings) (m.EngineOutput, error)
}

type engineRunner struct {
	engine    adapter.EngineAdapter
	resolver  ArtifactResolver
	artifacts m.LocalArtifacts
}

// NewEngineRunner binds an engine adapter to resolved artifacts.
func NewEngineRunner(engine adapter.EngineAdapter, resolver ArtifactResolver, artifacts m.LocalArtifacts) EngineRunner {
	return &engineRunner{
		engine:    engine,
		resolver:  resolver,
		artifacts: artifacts,
	}
}

func (r *engineRunner) Evaluate(ctx context.Context, target m.Path, opts m.Options, settings m.OrgSettings) (m.EngineOutput, error) {
	// Artifacts may disappear mid-batch; that fails this target only.
	if err := r.resolver.Verify(ctx, m.ArtifactPolicyEngine, r.artifacts.PolicyEngine); err != nil {
		return m.EngineOutput{}, err
	}

	if err := r.resolver.Verify(ctx, m.ArtifactRulesBundle, r.artifacts.RulesBundle); err != nil {
		return m.EngineOutput{}, err
	}

	slog.Debug("Evaluating target", "target", target)

	return r.engine.Invoke(ctx, adapter.EngineRequest{
		EnginePath:  r.artifacts.PolicyEngine,
		BundlePath:  r.artifacts.RulesBundle,
		TargetPath:  target,
		OrgSettings: settings,
		Args:        opts.EngineArgs(),
	})
}
