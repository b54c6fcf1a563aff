package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
	"iacscan.dev/pkg/iacscan/internal/adapter"
	m "iacscan.dev/pkg/iacscan/internal/model"
)

// LocalCache is the scan-scoped view of the artifact cache.
type LocalCache interface {
	// Init resolves the policy engine and the rules bundle concurrently.
	Init(ctx context.Context, cache CacheArgs, pinned m.ArtifactVersions) (m.LocalArtifacts, error)
	// Release clears transient cache state. Only the first call has an effect
	// and failures are logged, never returned.
	Release(ctx context.Context)
}

type localCache struct {
	resolver ArtifactResolver
	once     sync.Once
}

// NewLocalCache wraps resolver for a single scan.
func NewLocalCache(resolver ArtifactResolver) LocalCache {
	return &localCache{resolver: resolver}
}

func (c *localCache) Init(ctx context.Context, cache CacheArgs, pinned m.ArtifactVersions) (m.LocalArtifacts, error) {
	versions := cache.DefaultVersions
	if pinned.PolicyEngine != "" {
		versions.PolicyEngine = pinned.PolicyEngine
	}

	if pinned.RulesBundle != "" {
		versions.RulesBundle = pinned.RulesBundle
	}

	requested := []m.Artifact{
		{Kind: m.ArtifactPolicyEngine, Version: versions.PolicyEngine, CacheDir: cache.Dir, Override: cache.PolicyEnginePath},
		{Kind: m.ArtifactRulesBundle, Version: versions.RulesBundle, CacheDir: cache.Dir, Override: cache.RulesBundlePath},
	}

	g, gctx := errgroup.WithContext(ctx)

	for i := range requested {
		g.Go(func() error {
			path, err := c.resolver.Resolve(gctx, requested[i])
			requested[i].Resolved = path

			return err
		})
	}

	if err := g.Wait(); err != nil {
		var scanErr *ScanError
		if errors.As(err, &scanErr) {
			return m.LocalArtifacts{}, err
		}

		return m.LocalArtifacts{}, &ScanError{Code: FailedToInitLocalCacheError, UserMessage: "Failed to initialize the local cache", Err: err}
	}

	var artifacts m.LocalArtifacts
	for _, artifact := range requested {
		slog.Debug("Artifact resolved", "kind", artifact.Kind, "version", artifact.Version, "path", artifact.Resolved)
		artifacts.Set(artifact)
	}

	return artifacts, nil
}

func (c *localCache) Release(ctx context.Context) {
	c.once.Do(func() {
		if err := c.resolver.Release(context.WithoutCancel(ctx)); err != nil {
			slog.Warn("Failed to release local cache", "error", err)
			return
		}

		slog.Debug("Local cache released")
	})
}

var cachedArtifactPatterns = []string{
	string(m.ArtifactPolicyEngine) + "_v*",
	string(m.ArtifactRulesBundle) + "_v*",
	"." + string(m.ArtifactPolicyEngine) + "_v*.lock",
	"." + string(m.ArtifactRulesBundle) + "_v*.lock",
}

// CleanCache deletes every cached artifact and acquisition lock under dir and
// returns how many files were removed.
func CleanCache(ctx context.Context, fs adapter.CacheFSAdapter, dir m.Path) (int, error) {
	removed := 0

	for _, pattern := range cachedArtifactPatterns {
		matches, err := fs.Glob(ctx, dir, pattern)
		if err != nil {
			return removed, fmt.Errorf("list cached artifacts: %w", err)
		}

		for _, match := range matches {
			if err := fs.Remove(ctx, match); err != nil {
				return removed, &ScanError{Code: FailedToCleanLocalCacheError, UserMessage: "Failed to clean the local cache", Err: err}
			}

			slog.Debug("Removed cached artifact", "path", match)
			removed++
		}
	}

	return removed, nil
}
