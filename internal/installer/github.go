package installer

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// githubRelease represents the structure of a GitHub release JSON response.
type githubRelease struct {
	TagName string `json:"tag_name"` // The release tag (e.g., v3.1.1)
	Assets  []struct {
		Name               string `json:"name"`                 // Asset filename
		BrowserDownloadURL string `json:"browser_download_url"` // Direct download URL for the asset
	} `json:"assets"`
}

// releaseAPI is the GitHub releases endpoint, parameterized so tests can
// point it at a local server.
var releaseAPI = "https://api.github.com"

// ResolveReleaseAsset looks up the release tagged tag in the given GitHub
// repo and returns the download URL of the asset with the given filename.
func ResolveReleaseAsset(repo, tag, asset string) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/tags/%s", releaseAPI, repo, tag)

	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch release %s@%s: %w", repo, tag, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release fetch for %s@%s failed: HTTP status %d", repo, tag, resp.StatusCode)
	}

	// Parse the JSON response and scan the asset list for the wanted filename
	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("failed to decode release JSON for %s@%s: %w", repo, tag, err)
	}
	for _, a := range release.Assets {
		if a.Name == asset {
			return a.BrowserDownloadURL, nil
		}
	}
	return "", fmt.Errorf("release %s@%s has no asset named %s", repo, tag, asset)
}
