// Package adapter contains infrastructure adapters for the iacscan CLI.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	m "iacscan.dev/pkg/iacscan/internal/model"
)

// ErrLocked is returned by Lock when another holder owns the lock file.
var ErrLocked = errors.New("lock is held")

// StaleLockAge is how old a lock file may get before it is reclaimed even
// though its owner still appears to run.
const StaleLockAge = 10 * time.Minute

// CacheFSAdapter abstracts filesystem operations the domain layer needs to
// manage the local artifact cache. It hides direct `os` access so resolution
// logic can be tested without touching the real cache directory.
//
//nolint:interfacebloat // A richer interface keeps resolver logic decoupled from os/fs.
type CacheFSAdapter interface {
	// FileInfo returns metadata for a path so the domain can check existence.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// IsExecutable reports whether path is a regular file the current user can run.
	IsExecutable(ctx context.Context, path m.Path) (bool, error)

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(ctx context.Context, path m.Path) error

	// WriteFileAtomic streams r into a temp file next to path and renames it
	// into place once fully written. A partially written file never appears at path.
	WriteFileAtomic(ctx context.Context, path m.Path, r io.Reader, perm os.FileMode) error

	// Lock creates path exclusively. It returns ErrLocked when a live holder
	// owns it. Locks left by dead processes or older than StaleLockAge are reclaimed.
	Lock(ctx context.Context, path m.Path) error

	// Unlock removes a lock file created by Lock. Missing files are not an error.
	Unlock(ctx context.Context, path m.Path) error

	// Glob returns the paths under dir matching pattern.
	Glob(ctx context.Context, dir m.Path, pattern string) ([]m.Path, error)

	// Remove deletes a single file. Missing files are not an error.
	Remove(ctx context.Context, path m.Path) error

	// Abs returns an absolute representation of path.
	Abs(ctx context.Context, path m.Path) (m.Path, error)

	// RelPath returns the relative path from base to target.
	RelPath(ctx context.Context, base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

// LocalCacheFSAdapter is the os-backed CacheFSAdapter.
type LocalCacheFSAdapter struct{}

// NewLocalCacheFSAdapter constructs a LocalCacheFSAdapter.
func NewLocalCacheFSAdapter() *LocalCacheFSAdapter {
	return &LocalCacheFSAdapter{}
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalCacheFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// IsExecutable reports whether path is a regular, executable file.
func (a *LocalCacheFSAdapter) IsExecutable(ctx context.Context, path m.Path) (bool, error) {
	info, err := a.FileInfo(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, err
	}

	if !info.Mode().IsRegular() {
		return false, nil
	}

	// Windows has no executable bit; the extension decides.
	if runtime.GOOS == "windows" {
		return filepath.Ext(string(path)) == ".exe", nil
	}

	return info.Mode().Perm()&0o111 != 0, nil
}

// MkdirAll creates a directory and any missing parents.
func (a *LocalCacheFSAdapter) MkdirAll(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.MkdirAll(string(path), 0o750)
}

// WriteFileAtomic writes r to a temp file then renames it over path.
func (a *LocalCacheFSAdapter) WriteFileAtomic(ctx context.Context, path m.Path, r io.Reader, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(string(path))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(string(path))+".partial-*")
	if err != nil {
		return err
	}

	tmpPath := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err := io.Copy(tmp, r); err != nil {
		cleanup()
		return fmt.Errorf("write %s: %w", tmpPath, err)
	}

	if err := tmp.Sync(); err != nil {
		cleanup()
		return err
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, string(path)); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	return nil
}

// Lock creates a lock file holding the current pid.
func (a *LocalCacheFSAdapter) Lock(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	err := createLockFile(path)
	if !errors.Is(err, ErrLocked) {
		return err
	}

	stale, reason := lockIsStale(path)
	if !stale {
		return err
	}

	slog.Warn("Reclaiming stale cache lock", "lock", path, "reason", reason)

	if rmErr := os.Remove(string(path)); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
		return errors.Join(err, rmErr)
	}

	return createLockFile(path)
}

func createLockFile(path m.Path) error {
	// #nosec G304 - lock path is derived from the configured cache directory
	f, err := os.OpenFile(string(path), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s: %w", path, ErrLocked)
		}

		return err
	}

	_, writeErr := f.WriteString(strconv.Itoa(os.Getpid()))
	closeErr := f.Close()

	return errors.Join(writeErr, closeErr)
}

// lockIsStale reports whether the lock at path was abandoned by its owner.
func lockIsStale(path m.Path) (bool, string) {
	info, err := os.Stat(string(path))
	if err != nil {
		// Gone already; the next create attempt decides.
		return errors.Is(err, fs.ErrNotExist), "lock disappeared"
	}

	if time.Since(info.ModTime()) > StaleLockAge {
		return true, "lock is older than " + StaleLockAge.String()
	}

	// #nosec G304 - lock path is derived from the configured cache directory
	data, err := os.ReadFile(string(path))
	if err != nil {
		return false, ""
	}

	content := strings.TrimSpace(string(data))
	if content == "" {
		// The owner may be between create and write.
		return false, ""
	}

	pid, err := strconv.Atoi(content)
	if err != nil || pid <= 0 {
		return true, "lock holds no pid"
	}

	if !processAlive(pid) {
		return true, fmt.Sprintf("process %d is not running", pid)
	}

	return false, ""
}

// Unlock removes the lock file.
func (a *LocalCacheFSAdapter) Unlock(ctx context.Context, path m.Path) error {
	return a.Remove(ctx, path)
}

// Glob returns the paths under dir matching pattern.
func (a *LocalCacheFSAdapter) Glob(ctx context.Context, dir m.Path, pattern string) ([]m.Path, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matches, err := filepath.Glob(filepath.Join(string(dir), pattern))
	if err != nil {
		return nil, err
	}

	paths := make([]m.Path, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, m.Path(match))
	}

	return paths, nil
}

// Remove deletes a single file.
func (a *LocalCacheFSAdapter) Remove(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(string(path)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

// Abs returns an absolute representation of path.
func (a *LocalCacheFSAdapter) Abs(_ context.Context, path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// RelPath returns the relative path from base to target.
func (a *LocalCacheFSAdapter) RelPath(_ context.Context, base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalCacheFSAdapter) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
