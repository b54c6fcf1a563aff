package domain

import (
	"context"
	"path/filepath"
	"strings"

	"iacscan.dev/pkg/iacscan/internal/adapter"
	m "iacscan.dev/pkg/iacscan/internal/model"
)

// PathWithOptionalProjectName returns the display path of a result. When the
// engine reported a `group/sub-project` name, the sub-project is appended to
// the scanned path so fanned-out results stay distinguishable.
func PathWithOptionalProjectName(path m.Path, projectName string) string {
	_, sub, ok := strings.Cut(projectName, "/")
	if !ok || sub == "" {
		return string(path)
	}

	return strings.TrimSuffix(string(path), "/") + "/" + sub
}

// checkInsideRoot fails with a traversal error when target escapes root once
// both are made absolute.
func checkInsideRoot(ctx context.Context, fs adapter.CacheFSAdapter, root, target m.Path) error {
	absRoot, err := fs.Abs(ctx, root)
	if err != nil {
		return err
	}

	absTarget, err := fs.Abs(ctx, target)
	if err != nil {
		return err
	}

	rel, err := fs.RelPath(ctx, absRoot, absTarget)
	if err != nil {
		// Different volumes cannot be relativized.
		return newTraversalError()
	}

	if escapesRoot(string(rel)) {
		return newTraversalError()
	}

	return nil
}

func escapesRoot(rel string) bool {
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return true
	}

	return filepath.IsAbs(rel)
}
