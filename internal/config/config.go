package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Prerequisite describes one host tool that must be present before any
// provisioning stage runs.
// - Name: Human-readable tool name used in log messages.
// - Probe: Command line whose output contains the installed version.
// - MinVersion: Minimum acceptable version string.
type Prerequisite struct {
	Name       string `yaml:"name"`
	Probe      string `yaml:"probe"`
	MinVersion string `yaml:"min_version"`
}

// Editor describes the terminal editor to install.
// - Probe: Command line that succeeds iff the editor is already installed.
// - Install: Package-manager command line that installs it.
type Editor struct {
	Name    string `yaml:"name"`
	Probe   string `yaml:"probe"`
	Install string `yaml:"install"`
}

// Font describes the patched font archive to download and extract.
// Source selects how the download URL is resolved:
// - "url": URL is used directly.
// - "github": the archive is located through the GitHub releases API using
//   Repo, Tag, and Asset.
type Font struct {
	Name         string `yaml:"name"`
	Source       string `yaml:"source"`
	URL          string `yaml:"url"`
	Repo         string `yaml:"repo"`  // GitHub repo, e.g. ryanoasis/nerd-fonts
	Tag          string `yaml:"tag"`   // GitHub release tag, e.g. v3.1.1
	Asset        string `yaml:"asset"` // Release asset filename, e.g. JetBrainsMono.zip
	Dir          string `yaml:"dir"`   // Target font directory (~ expands to home)
	CacheRefresh string `yaml:"cache_refresh"`
}

// Distribution describes the pre-built editor distribution to clone.
// The target Path is replaced wholesale on every run: an existing tree is
// deleted and the pinned Ref is shallow-cloned in its place.
type Distribution struct {
	Repo      string `yaml:"repo"`
	Ref       string `yaml:"ref"`
	Path      string `yaml:"path"`       // Clone destination (~ expands to home)
	CustomDir string `yaml:"custom_dir"` // Custom-config subdirectory relative to Path
}

// ConfigFile is one static source file copied into the distribution's
// custom-config directory, overwriting any existing destination.
type ConfigFile struct {
	Source string `yaml:"source"`
	Dest   string `yaml:"dest"` // Relative to the custom-config directory
}

// LanguageServers lists the packages installed globally after the
// distribution is in place, one install invocation per package.
type LanguageServers struct {
	Install  string   `yaml:"install"` // Install command prefix, package name appended
	Packages []string `yaml:"packages"`
}

// Config is the top-level structure holding every tunable of a provisioning
// run. All fields have built-in defaults (see Default), so the tool runs
// without any config file at all.
type Config struct {
	LogFile         string          `yaml:"log_file"`
	ReportFile      string          `yaml:"report_file"`
	Prerequisites   []Prerequisite  `yaml:"prerequisites"`
	Editor          Editor          `yaml:"editor"`
	Font            Font            `yaml:"font"`
	Distribution    Distribution    `yaml:"distribution"`
	Configs         []ConfigFile    `yaml:"configs"`
	LanguageServers LanguageServers `yaml:"language_servers"`
}

// Default returns the built-in configuration: Neovim with the NvChad
// distribution, the JetBrainsMono Nerd Font, and Node-based language servers.
func Default() Config {
	return Config{
		LogFile:    "setup.log",
		ReportFile: "report.json",
		Prerequisites: []Prerequisite{
			{Name: "Node.js", Probe: "node --version", MinVersion: "v16.0.0"},
			{Name: "npm", Probe: "npm --version", MinVersion: "8.0.0"},
			{Name: "Git", Probe: "git --version", MinVersion: "2.30.0"},
		},
		Editor: Editor{
			Name:    "Neovim",
			Probe:   "nvim --version",
			Install: "sudo apt-get install -y neovim",
		},
		Font: Font{
			Name:         "JetBrainsMono Nerd Font",
			Source:       "url",
			URL:          "https://github.com/ryanoasis/nerd-fonts/releases/download/v3.1.1/JetBrainsMono.zip",
			Dir:          "~/.local/share/fonts",
			CacheRefresh: "fc-cache -f",
		},
		Distribution: Distribution{
			Repo:      "https://github.com/NvChad/NvChad",
			Ref:       "v2.0",
			Path:      "~/.config/nvim",
			CustomDir: "lua/custom",
		},
		Configs: []ConfigFile{
			{Source: "configs/chadrc.lua", Dest: "chadrc.lua"},
			{Source: "configs/plugins.lua", Dest: "plugins.lua"},
			{Source: "configs/mappings.lua", Dest: "mappings.lua"},
		},
		LanguageServers: LanguageServers{
			Install:  "sudo npm install -g",
			Packages: []string{"typescript-language-server", "pyright"},
		},
	}
}

// Load reads the YAML config at path on top of the built-in defaults.
// A missing file is not an error — the defaults are returned as-is, the same
// way an absent state file means "start fresh". A file that exists but does
// not parse is an error, since silently ignoring a broken config would
// provision the wrong thing.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// Unmarshalling over the prefilled struct keeps defaults for any field
	// the file omits; lists in the file replace the default lists entirely.
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ExpandHome resolves a leading "~" in path to the current user's home
// directory. Paths without the prefix are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
