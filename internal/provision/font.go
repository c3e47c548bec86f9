package provision

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"nvim-bootstrap/internal/config"
	"nvim-bootstrap/internal/installer"
)

// installFont downloads the configured font archive, extracts it into the
// user font directory, removes the downloaded archive, and refreshes the
// system font cache. The stage always re-downloads and re-extracts — there
// is no "already installed" probe for font files, and overwriting them is
// harmless.
func installFont(ctx *Context) (bool, error) {
	font := ctx.Cfg.Font

	dir, err := config.ExpandHome(font.Dir)
	if err != nil {
		return false, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("failed to create font directory %s: %w", dir, err)
	}

	// Resolve the archive URL: direct, or looked up from a GitHub release
	url := font.URL
	if font.Source == "github" {
		url, err = installer.ResolveReleaseAsset(font.Repo, font.Tag, font.Asset)
		if err != nil {
			return false, err
		}
	}

	workDir := ctx.WorkDir
	if workDir == "" {
		workDir = "."
	}
	archive := filepath.Join(workDir, path.Base(url))

	ctx.Log.Info("Downloading %s from %s...", font.Name, url)
	if err := installer.DownloadFile(url, archive); err != nil {
		return false, err
	}

	ctx.Log.Info("Extracting %s into %s...", filepath.Base(archive), dir)
	if err := installer.ExtractArchive(archive, dir); err != nil {
		return false, err
	}

	// The archive is only a transport vehicle; drop it once extracted
	if err := os.Remove(archive); err != nil {
		return false, fmt.Errorf("failed to remove archive %s: %w", archive, err)
	}

	if err := ctx.Runner.Run(font.CacheRefresh); err != nil {
		return false, err
	}

	ctx.Log.Info("%s installed.", font.Name)
	return false, nil
}
