package prereq

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nvim-bootstrap/internal/config"
	"nvim-bootstrap/internal/logger"
	"nvim-bootstrap/internal/runner"
)

func newTestGate(t *testing.T) (*Gate, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.log")
	log, err := logger.New(path)
	require.NoError(t, err)
	log.SetConsole(&bytes.Buffer{}, &bytes.Buffer{})
	t.Cleanup(func() { _ = log.Close() })
	return New(log, runner.New(log)), path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(raw)
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		out  string
		want string
	}{
		{"v22.1.0", "v22.1.0"},
		{"10.2.3", "10.2.3"},
		{"git version 2.39.2", "2.39.2"},
		{"git version 2.39.2\n(extra build info)", "2.39.2"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseVersion(tt.out), "output %q", tt.out)
	}
}

func TestCheckPassesAtExactMinimum(t *testing.T) {
	g, logPath := newTestGate(t)

	err := g.Check([]config.Prerequisite{
		{Name: "Node.js", Probe: "echo v16.0.0", MinVersion: "v16.0.0"},
	})
	require.NoError(t, err)
	assert.Contains(t, readLog(t, logPath), "Node.js version v16.0.0 detected")
}

func TestCheckStripsLeadingV(t *testing.T) {
	g, _ := newTestGate(t)

	// Detected has the v prefix, the minimum does not; both are stripped
	// before comparing.
	err := g.Check([]config.Prerequisite{
		{Name: "Node.js", Probe: "echo v18.2.0", MinVersion: "16.0.0"},
	})
	require.NoError(t, err)
}

// The comparison is plain string ordering, not semantic versioning. That
// makes "1.9.0" correctly fail against "2.0.0", but also makes "10.0.0"
// fail against "9.0.0" — a known false negative the rule accepts. Both
// behaviors are pinned here.
func TestCheckUsesPlainStringComparison(t *testing.T) {
	g, _ := newTestGate(t)

	// Genuinely outdated: "1.9.0" < "2.0.0" stringwise too.
	err := g.Check([]config.Prerequisite{
		{Name: "Git", Probe: "echo git version 1.9.0", MinVersion: "2.0.0"},
	})
	var outdated *OutdatedToolError
	require.ErrorAs(t, err, &outdated)
	assert.Equal(t, "Git", outdated.Tool)
	assert.Equal(t, "1.9.0", outdated.Detected)
	assert.Equal(t, "2.0.0", outdated.Required)

	// False negative: "10.0.0" sorts below "9.0.0" as a string, so a newer
	// tool is rejected.
	err = g.Check([]config.Prerequisite{
		{Name: "Node.js", Probe: "echo 10.0.0", MinVersion: "9.0.0"},
	})
	require.ErrorAs(t, err, &outdated)

	// And the mirror image passes even though it shouldn't under semver.
	err = g.Check([]config.Prerequisite{
		{Name: "Node.js", Probe: "echo 9.0.0", MinVersion: "10.0.0"},
	})
	require.NoError(t, err)
}

func TestCheckMissingTool(t *testing.T) {
	g, logPath := newTestGate(t)

	err := g.Check([]config.Prerequisite{
		{Name: "Node.js", Probe: "definitely-not-a-real-tool-xyz --version", MinVersion: "v16.0.0"},
	})
	var missing *MissingToolError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Node.js", missing.Tool)

	// Exactly one actionable error entry naming the tool
	log := readLog(t, logPath)
	assert.Contains(t, log, "[ERROR]")
	assert.Contains(t, log, "Node.js is not installed")
	assert.Contains(t, log, "v16.0.0")
}

func TestCheckStopsAtFirstFailure(t *testing.T) {
	g, _ := newTestGate(t)

	marker := filepath.Join(t.TempDir(), "second-probe-ran")
	err := g.Check([]config.Prerequisite{
		{Name: "Broken", Probe: "definitely-not-a-real-tool-xyz", MinVersion: "1.0.0"},
		{Name: "Marker", Probe: fmt.Sprintf("touch %s", marker), MinVersion: ""},
	})
	require.Error(t, err)

	// The second probe must never have executed
	_, statErr := os.Stat(marker)
	assert.True(t, os.IsNotExist(statErr))
}
