package main

import (
	"nvim-bootstrap/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// This design cleanly separates the CLI interface (cmd package) from main,
// allowing easier testing, extension, and reuse of the CLI commands.
//
// The nvim-bootstrap project is a single-host Neovim provisioning tool that:
//   - Verifies required host tools (Node.js runtime, npm, Git) meet minimum versions
//     before touching anything, and aborts immediately if any check fails
//   - Installs the Neovim editor via the system package manager, skipping the install
//     when the editor already answers its version probe
//   - Downloads and extracts a patched Nerd Font archive into the user font directory
//     and refreshes the system font cache
//   - Clones a pinned tag of a pre-built Neovim distribution into the user's
//     configuration tree, replacing any existing install wholesale
//   - Copies the repository's custom configuration files into the cloned tree
//   - Installs language servers globally through npm
//
// Error handling strategy:
//   - Every failure is fatal: the first failing prerequisite check or external
//     command aborts the run with exit status 1, no retry and no rollback
//   - All activity is appended to a persistent log file (mirrored to the console)
//     so the completed portion of an aborted run can still be inspected
//
// Integration points:
//   - Shells out to the host's package manager, git, npm, and fc-cache with the
//     terminal's own input/output streams attached, so interactive progress output
//     from those tools is visible in real time
//   - Reads all tunables (URLs, paths, versions, package names) from an optional
//     YAML config file with complete built-in defaults
//   - Writes a JSON step report per run for postmortem inspection
func main() {
	cmd.Execute()
}
