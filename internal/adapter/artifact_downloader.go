package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/go-github/v81/github"
	"golang.org/x/oauth2"
)

// ErrAssetNotFound is returned when a release has no asset with the requested name.
var ErrAssetNotFound = errors.New("release asset not found")

// AssetRef names a downloadable artifact.
type AssetRef struct {
	Version string
	Name    string
}

// ArtifactDownloader fetches artifact bytes from a remote distribution point.
type ArtifactDownloader interface {
	// Download opens the asset for reading. Callers must close the reader.
	Download(ctx context.Context, ref AssetRef) (io.ReadCloser, error)
}

// GitHubReleaseDownloader downloads assets attached to GitHub releases tagged
// `v<version>`.
type GitHubReleaseDownloader struct {
	client *github.Client
	http   *http.Client
	owner  string
	repo   string
}

// NewGitHubReleaseDownloader builds a downloader for the `owner/repo`
// repository. An empty token uses anonymous access.
func NewGitHubReleaseDownloader(ctx context.Context, repository, token string) (*GitHubReleaseDownloader, error) {
	owner, repo, ok := strings.Cut(strings.TrimSpace(repository), "/")
	if !ok || owner == "" || repo == "" {
		return nil, fmt.Errorf("artifact repository must be owner/repo, got %q", repository)
	}

	httpClient := &http.Client{Transport: http.DefaultTransport}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(ctx, ts)
	}

	return NewGitHubReleaseDownloaderWithClient(github.NewClient(httpClient), httpClient, owner, repo), nil
}

// NewGitHubReleaseDownloaderWithClient wires an existing go-github client.
func NewGitHubReleaseDownloaderWithClient(client *github.Client, httpClient *http.Client, owner, repo string) *GitHubReleaseDownloader {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &GitHubReleaseDownloader{
		client: client,
		http:   httpClient,
		owner:  owner,
		repo:   repo,
	}
}

// Download finds the release asset and streams its content.
func (d *GitHubReleaseDownloader) Download(ctx context.Context, ref AssetRef) (io.ReadCloser, error) {
	tag := "v" + strings.TrimPrefix(ref.Version, "v")

	slog.Debug("Looking up release asset", "owner", d.owner, "repo", d.repo, "tag", tag, "asset", ref.Name)

	release, _, err := d.client.Repositories.GetReleaseByTag(ctx, d.owner, d.repo, tag)
	if err != nil {
		return nil, fmt.Errorf("get release %s: %w", tag, err)
	}

	var assetID int64

	for _, asset := range release.Assets {
		if asset.GetName() == ref.Name {
			assetID = asset.GetID()
			break
		}
	}

	if assetID == 0 {
		return nil, fmt.Errorf("%s in release %s: %w", ref.Name, tag, ErrAssetNotFound)
	}

	rc, redirectURL, err := d.client.Repositories.DownloadReleaseAsset(ctx, d.owner, d.repo, assetID, d.http)
	if err != nil {
		return nil, fmt.Errorf("download asset %s: %w", ref.Name, err)
	}

	if rc != nil {
		return rc, nil
	}

	return d.follow(ctx, redirectURL)
}

func (d *GitHubReleaseDownloader) follow(ctx context.Context, url string) (io.ReadCloser, error) {
	if url == "" {
		return nil, fmt.Errorf("download asset: empty response: %w", ErrAssetNotFound)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := d.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download asset: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("download asset: unexpected status %s", resp.Status)
	}

	return resp.Body, nil
}
