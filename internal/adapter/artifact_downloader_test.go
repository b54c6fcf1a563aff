package adapter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-github/v81/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDownloader(t *testing.T, mux *http.ServeMux) *GitHubReleaseDownloader {
	t.Helper()

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := github.NewClient(server.Client())
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)

	client.BaseURL = baseURL

	return NewGitHubReleaseDownloaderWithClient(client, server.Client(), "acme", "artifacts")
}

func releaseHandler(assetName string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"id":1,"tag_name":"v1.2.0","assets":[{"id":7,"name":%q}]}`, assetName)
	}
}

func TestGitHubReleaseDownloader_Download(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/artifacts/releases/tags/v1.2.0", releaseHandler("rules-bundle_v1.2.0.tar.gz"))
	mux.HandleFunc("/repos/acme/artifacts/releases/assets/7", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/octet-stream", r.Header.Get("Accept"))
		_, _ = w.Write([]byte("bundle-bytes"))
	})

	downloader := newTestDownloader(t, mux)

	rc, err := downloader.Download(context.Background(), AssetRef{Version: "1.2.0", Name: "rules-bundle_v1.2.0.tar.gz"})
	require.NoError(t, err)

	defer rc.Close()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "bundle-bytes", string(body))
}

func TestGitHubReleaseDownloader_DownloadFollowsRedirect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/artifacts/releases/tags/v1.2.0", releaseHandler("engine"))
	mux.HandleFunc("/repos/acme/artifacts/releases/assets/7", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/storage/engine", http.StatusFound)
	})
	mux.HandleFunc("/storage/engine", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("engine-bytes"))
	})

	downloader := newTestDownloader(t, mux)

	rc, err := downloader.Download(context.Background(), AssetRef{Version: "v1.2.0", Name: "engine"})
	require.NoError(t, err)

	defer rc.Close()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "engine-bytes", string(body))
}

func TestGitHubReleaseDownloader_AssetMissing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/artifacts/releases/tags/v1.2.0", releaseHandler("something-else"))

	downloader := newTestDownloader(t, mux)

	_, err := downloader.Download(context.Background(), AssetRef{Version: "1.2.0", Name: "engine"})
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestGitHubReleaseDownloader_ReleaseMissing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/artifacts/releases/tags/v9.9.9", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	})

	downloader := newTestDownloader(t, mux)

	_, err := downloader.Download(context.Background(), AssetRef{Version: "9.9.9", Name: "engine"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get release v9.9.9")
}

func TestNewGitHubReleaseDownloader_InvalidRepository(t *testing.T) {
	for _, repository := range []string{"", "acme", "/artifacts", "acme/"} {
		_, err := NewGitHubReleaseDownloader(context.Background(), repository, "")
		assert.Error(t, err, repository)
	}

	downloader, err := NewGitHubReleaseDownloader(context.Background(), "acme/artifacts", "token")
	require.NoError(t, err)
	assert.Equal(t, "acme", downloader.owner)
	assert.Equal(t, "artifacts", downloader.repo)
}
