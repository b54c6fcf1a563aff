package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"iacscan.dev/pkg/iacscan/internal/adapter"
	m "iacscan.dev/pkg/iacscan/internal/model"
)

// ErrOffline is returned when an artifact must be acquired but no downloader
// is configured.
var ErrOffline = errors.New("no artifact source configured")

const (
	defaultLockWait     = 2 * time.Minute
	lockPollInterval    = 100 * time.Millisecond
	maxLockPollInterval = 2 * time.Second
)

// ArtifactResolver locates artifacts in the local cache, acquiring missing ones.
type ArtifactResolver interface {
	// Resolve returns a usable local path for artifact. Resolution is memoized
	// per (kind, version, cache dir, override) for the life of the resolver.
	Resolve(ctx context.Context, artifact m.Artifact) (m.Path, error)
	// Verify checks that a previously resolved path is still usable.
	Verify(ctx context.Context, kind m.ArtifactKind, path m.Path) error
	// Release clears transient lock and partial files left by acquisitions.
	// Cached artifacts are never removed.
	Release(ctx context.Context) error
}

type resolveKey struct {
	kind     m.ArtifactKind
	version  string
	cacheDir m.Path
	override m.Path
}

func (k resolveKey) String() string {
	return fmt.Sprintf("%s|%s|%s|%s", k.kind, k.version, k.cacheDir, k.override)
}

// acquisition names a download target so its partial files can be found.
type acquisition struct {
	dir      m.Path
	fileName string
}

type artifactResolver struct {
	fs         adapter.CacheFSAdapter
	downloader adapter.ArtifactDownloader
	goos       string
	goarch     string
	lockWait   time.Duration

	group singleflight.Group

	mu       sync.Mutex
	resolved map[resolveKey]m.Artifact
	locks    map[m.Path]struct{}
	acquired map[acquisition]struct{}
}

// ResolverOption customizes an ArtifactResolver.
type ResolverOption func(*artifactResolver)

// WithPlatform overrides the platform used to name engine executables.
func WithPlatform(goos, goarch string) ResolverOption {
	return func(r *artifactResolver) {
		r.goos = goos
		r.goarch = goarch
	}
}

// WithLockWait bounds how long Resolve waits for another process that holds
// the cache lock. Zero fails on the first conflict.
func WithLockWait(wait time.Duration) ResolverOption {
	return func(r *artifactResolver) {
		r.lockWait = wait
	}
}

// NewArtifactResolver creates a resolver. A nil downloader means artifacts can
// only come from an override or the cache.
func NewArtifactResolver(fsAdapter adapter.CacheFSAdapter, downloader adapter.ArtifactDownloader, opts ...ResolverOption) ArtifactResolver {
	r := &artifactResolver{
		fs:         fsAdapter,
		downloader: downloader,
		goos:       runtime.GOOS,
		goarch:     runtime.GOARCH,
		lockWait:   defaultLockWait,
		resolved:   map[resolveKey]m.Artifact{},
		locks:      map[m.Path]struct{}{},
		acquired:   map[acquisition]struct{}{},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *artifactResolver) Resolve(ctx context.Context, artifact m.Artifact) (m.Path, error) {
	key := resolveKey{
		kind:     artifact.Kind,
		version:  artifact.Version,
		cacheDir: artifact.CacheDir,
		override: artifact.Override,
	}

	if path, ok := r.memoized(key); ok {
		return path, nil
	}

	v, err, _ := r.group.Do(key.String(), func() (interface{}, error) {
		if path, ok := r.memoized(key); ok {
			return path, nil
		}

		path, err := r.resolve(ctx, artifact)
		if err != nil {
			return m.Path(""), err
		}

		artifact.Resolved = path

		r.mu.Lock()
		r.resolved[key] = artifact
		r.mu.Unlock()

		return path, nil
	})
	if err != nil {
		return "", err
	}

	return v.(m.Path), nil
}

func (r *artifactResolver) memoized(key resolveKey) (m.Path, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	artifact, ok := r.resolved[key]

	return artifact.Resolved, ok
}

func (r *artifactResolver) resolve(ctx context.Context, artifact m.Artifact) (m.Path, error) {
	kind := string(artifact.Kind)

	if artifact.Override != "" {
		slog.Debug("Checking user supplied artifact", "kind", kind, "path", artifact.Override)

		ok, err := r.usable(ctx, artifact.Kind, artifact.Override)
		if err != nil {
			return "", newArtifactNotFoundError(describeKind(artifact.Kind), err)
		}

		if ok {
			return artifact.Override, nil
		}

		slog.Warn("User supplied artifact is not usable, falling back to the cache", "kind", kind, "path", artifact.Override)
	}

	if artifact.Version == "" {
		return "", newArtifactNotFoundError(describeKind(artifact.Kind), fmt.Errorf("no %s version configured", kind))
	}

	fileName := artifact.FileName(r.goos, r.goarch)
	cached := r.fs.JoinPath(ctx, string(artifact.CacheDir), fileName)

	slog.Debug("Looking for artifact locally", "kind", kind, "path", cached)

	ok, err := r.usable(ctx, artifact.Kind, cached)
	if err != nil {
		return "", newArtifactNotFoundError(describeKind(artifact.Kind), err)
	}

	if ok {
		return cached, nil
	}

	slog.Info("Downloading artifact into the cache", "kind", kind, "version", artifact.Version, "cacheDir", artifact.CacheDir)

	if err := r.acquire(ctx, artifact, fileName, cached); err != nil {
		slog.Error("Failed to acquire artifact", "kind", kind, "error", err)
		return "", newArtifactNotFoundError(describeKind(artifact.Kind), err)
	}

	ok, err = r.usable(ctx, artifact.Kind, cached)
	if err != nil || !ok {
		return "", newArtifactNotFoundError(describeKind(artifact.Kind), errors.Join(err, fmt.Errorf("acquired %s is not usable", cached)))
	}

	return cached, nil
}

func (r *artifactResolver) acquire(ctx context.Context, artifact m.Artifact, fileName string, dst m.Path) error {
	if r.downloader == nil {
		return ErrOffline
	}

	if err := r.fs.MkdirAll(ctx, artifact.CacheDir); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	lock := r.fs.JoinPath(ctx, string(artifact.CacheDir), "."+fileName+".lock")

	locked, err := r.lockCache(ctx, artifact.Kind, lock, dst)
	if err != nil {
		return fmt.Errorf("lock cache: %w", err)
	}

	if !locked {
		slog.Debug("Artifact was acquired by another process", "kind", artifact.Kind, "path", dst)
		return nil
	}

	r.trackLock(lock, true)

	defer func() {
		if err := r.fs.Unlock(context.WithoutCancel(ctx), lock); err != nil {
			slog.Warn("Failed to remove cache lock, will retry on release", "lock", lock, "error", err)
			return
		}

		r.trackLock(lock, false)
	}()

	r.mu.Lock()
	r.acquired[acquisition{dir: artifact.CacheDir, fileName: fileName}] = struct{}{}
	r.mu.Unlock()

	// The previous holder may have finished the download just before we locked.
	if ok, err := r.usable(ctx, artifact.Kind, dst); err == nil && ok {
		return nil
	}

	rc, err := r.downloader.Download(ctx, adapter.AssetRef{Version: artifact.Version, Name: fileName})
	if err != nil {
		return errors.Join(ErrFailedToDownloadArtifact, err)
	}

	defer func() {
		_ = rc.Close()
	}()

	perm := os.FileMode(0o644)
	if artifact.Kind == m.ArtifactPolicyEngine {
		perm = 0o755
	}

	if err := r.fs.WriteFileAtomic(ctx, dst, rc, perm); err != nil {
		return errors.Join(ErrFailedToDownloadArtifact, err)
	}

	return nil
}

// lockCache takes the acquisition lock, waiting with backoff while another
// process holds it. It reports false when dst became usable while waiting.
func (r *artifactResolver) lockCache(ctx context.Context, kind m.ArtifactKind, lock, dst m.Path) (bool, error) {
	deadline := time.Now().Add(r.lockWait)
	delay := lockPollInterval

	for {
		err := r.fs.Lock(ctx, lock)
		if err == nil {
			return true, nil
		}

		if !errors.Is(err, adapter.ErrLocked) || !time.Now().Before(deadline) {
			return false, err
		}

		slog.Debug("Cache is locked by another process, waiting", "lock", lock, "retryIn", delay)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false, errors.Join(err, ctx.Err())
		case <-timer.C:
		}

		if ok, usableErr := r.usable(ctx, kind, dst); usableErr == nil && ok {
			return false, nil
		}

		delay = min(delay*2, maxLockPollInterval)
	}
}

func (r *artifactResolver) trackLock(lock m.Path, held bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if held {
		r.locks[lock] = struct{}{}
		return
	}

	delete(r.locks, lock)
}

func (r *artifactResolver) usable(ctx context.Context, kind m.ArtifactKind, path m.Path) (bool, error) {
	if kind == m.ArtifactPolicyEngine {
		return r.fs.IsExecutable(ctx, path)
	}

	info, err := r.fs.FileInfo(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, err
	}

	return info.Mode().IsRegular() && info.Size() > 0, nil
}

func (r *artifactResolver) Verify(ctx context.Context, kind m.ArtifactKind, path m.Path) error {
	ok, err := r.usable(ctx, kind, path)
	if err != nil {
		return newArtifactNotFoundError(describeKind(kind), err)
	}

	if !ok {
		return newArtifactNotFoundError(describeKind(kind), fmt.Errorf("%s is no longer available", path))
	}

	return nil
}

func (r *artifactResolver) Release(ctx context.Context) error {
	r.mu.Lock()
	locks := make([]m.Path, 0, len(r.locks))
	for lock := range r.locks {
		locks = append(locks, lock)
	}

	acquired := make([]acquisition, 0, len(r.acquired))
	for a := range r.acquired {
		acquired = append(acquired, a)
	}
	r.mu.Unlock()

	var errs []error

	for _, lock := range locks {
		if err := r.fs.Unlock(ctx, lock); err != nil {
			errs = append(errs, fmt.Errorf("remove lock %s: %w", lock, err))
			continue
		}

		r.trackLock(lock, false)
	}

	for _, a := range acquired {
		partials, err := r.fs.Glob(ctx, a.dir, a.fileName+".partial-*")
		if err != nil {
			errs = append(errs, err)
			continue
		}

		for _, partial := range partials {
			if err := r.fs.Remove(ctx, partial); err != nil {
				errs = append(errs, fmt.Errorf("remove %s: %w", partial, err))
			}
		}
	}

	if len(errs) > 0 {
		return &ScanError{Code: FailedToCleanLocalCacheError, UserMessage: "Failed to clean the local cache", Err: errors.Join(errs...)}
	}

	return nil
}

func describeKind(kind m.ArtifactKind) string {
	switch kind {
	case m.ArtifactPolicyEngine:
		return "Policy Engine"
	case m.ArtifactRulesBundle:
		return "rules bundle"
	default:
		return string(kind)
	}
}
