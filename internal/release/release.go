// Package release fetches Evmos release metadata from GitHub.
package release

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v66/github"
)

const (
	repoOwner = "evmos"
	repoName  = "evmos"

	defaultHTTPTimeout = 30 * time.Second
)

// ErrNoReleaseNotes marks a release whose description is empty.
var ErrNoReleaseNotes = errors.New("release has no notes")

// Asset is a downloadable artifact attached to a release.
type Asset struct {
	Name        string
	DownloadURL string
}

// Release is the subset of GitHub release data used for upgrade proposals.
type Release struct {
	Tag    string
	Notes  string
	Assets []Asset
}

// ReleaseNotes returns the release description.
func (r Release) ReleaseNotes() (string, error) {
	notes := strings.TrimSpace(r.Notes)
	if notes == "" {
		return "", fmt.Errorf("release %s: %w", r.Tag, ErrNoReleaseNotes)
	}
	return notes, nil
}

// Client fetches releases of the evmos/evmos repository.
type Client struct {
	gh         *github.Client
	httpClient *http.Client
}

// NewClient constructs a release client. The HTTP client is shared between
// the GitHub API and raw asset downloads; nil falls back to a default with a
// sane timeout.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		gh:         github.NewClient(httpClient),
		httpClient: httpClient,
	}
}

// ByTag returns the release tagged with the given version.
func (c *Client) ByTag(ctx context.Context, tag string) (Release, error) {
	rel, _, err := c.gh.Repositories.GetReleaseByTag(ctx, repoOwner, repoName, tag)
	if err != nil {
		return Release{}, fmt.Errorf("get release %s: %w", tag, err)
	}

	out := Release{
		Tag:   rel.GetTagName(),
		Notes: rel.GetBody(),
	}
	for _, asset := range rel.Assets {
		out.Assets = append(out.Assets, Asset{
			Name:        asset.GetName(),
			DownloadURL: asset.GetBrowserDownloadURL(),
		})
	}
	return out, nil
}

// Exists reports whether a release with the given tag has been published.
func (c *Client) Exists(ctx context.Context, tag string) (bool, error) {
	_, resp, err := c.gh.Repositories.GetReleaseByTag(ctx, repoOwner, repoName, tag)
	if err == nil {
		return true, nil
	}
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	return false, fmt.Errorf("check release %s: %w", tag, err)
}
