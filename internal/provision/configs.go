package provision

import (
	"fmt"
	"os"
	"path/filepath"

	"nvim-bootstrap/internal/config"
	"nvim-bootstrap/internal/installer"
)

// placeConfigs copies the repository's custom configuration files into the
// cloned distribution's custom-config directory, creating it if needed and
// silently overwriting any existing destinations.
func placeConfigs(ctx *Context) (bool, error) {
	dist := ctx.Cfg.Distribution

	root, err := config.ExpandHome(dist.Path)
	if err != nil {
		return false, err
	}
	customDir := filepath.Join(root, dist.CustomDir)
	if err := os.MkdirAll(customDir, 0755); err != nil {
		return false, fmt.Errorf("failed to create %s: %w", customDir, err)
	}

	for _, m := range ctx.Cfg.Configs {
		dst := filepath.Join(customDir, m.Dest)
		if err := installer.CopyFile(m.Source, dst); err != nil {
			return false, fmt.Errorf("failed to copy %s to %s: %w", m.Source, dst, err)
		}
		ctx.Log.Info("Copied %s to %s", m.Source, dst)
	}
	return false, nil
}
