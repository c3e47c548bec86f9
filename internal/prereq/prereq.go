package prereq

import (
	"fmt"
	"strings"

	"nvim-bootstrap/internal/config"
	"nvim-bootstrap/internal/logger"
	"nvim-bootstrap/internal/runner"
)

// MissingToolError reports a prerequisite whose version probe could not run
// at all — the tool is absent or not on PATH.
type MissingToolError struct {
	Tool string
	Err  error
}

func (e *MissingToolError) Error() string {
	return fmt.Sprintf("%s is not installed: %v", e.Tool, e.Err)
}

func (e *MissingToolError) Unwrap() error {
	return e.Err
}

// OutdatedToolError reports a prerequisite whose detected version compares
// below the required minimum.
type OutdatedToolError struct {
	Tool     string
	Detected string
	Required string
}

func (e *OutdatedToolError) Error() string {
	return fmt.Sprintf("%s version %s is below required %s", e.Tool, e.Detected, e.Required)
}

// Gate verifies the host's prerequisite tools before any provisioning stage
// is allowed to run. The gate is fail-fast: the first missing or outdated
// tool stops the check and the whole run.
type Gate struct {
	log *logger.Logger
	run *runner.Runner
}

// New returns a Gate probing through run and logging through log.
func New(log *logger.Logger, run *runner.Runner) *Gate {
	return &Gate{log: log, run: run}
}

// Check probes every prerequisite in list order. Each tool must answer its
// version probe and report at least the configured minimum version; the
// first failure returns a *MissingToolError or *OutdatedToolError with an
// actionable message already logged. No check is ever skipped.
func (g *Gate) Check(specs []config.Prerequisite) error {
	for _, spec := range specs {
		out, err := g.run.Output(spec.Probe)
		if err != nil {
			g.log.Error("%s is not installed. Please install %s (version %s or newer) and re-run.",
				spec.Name, spec.Name, spec.MinVersion)
			return &MissingToolError{Tool: spec.Name, Err: err}
		}

		detected := ParseVersion(out)
		if !atLeast(detected, spec.MinVersion) {
			g.log.Error("%s version %s is too old. Version %s or newer is required.",
				spec.Name, detected, spec.MinVersion)
			return &OutdatedToolError{Tool: spec.Name, Detected: detected, Required: spec.MinVersion}
		}

		g.log.Info("%s version %s detected.", spec.Name, detected)
	}
	return nil
}

// ParseVersion extracts the version token from probe output: the last
// whitespace-separated field of the first line. Handles both bare outputs
// ("v22.1.0", "10.2.3") and prefixed ones ("git version 2.39.2").
func ParseVersion(out string) string {
	line := out
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// atLeast reports whether detected satisfies min after one leading "v" is
// stripped from each side. Plain string comparison, not semver: a multi-digit
// segment sorts bytewise, so "9.0.0" compares below "10.0.0".
func atLeast(detected, min string) bool {
	return strings.TrimPrefix(detected, "v") >= strings.TrimPrefix(min, "v")
}
