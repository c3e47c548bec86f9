package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lineRe matches the on-disk line format: an RFC 3339 timestamp in brackets,
// then the message.
var lineRe = regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}[^\]]*\] `)

func TestInfoAndErrorLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup.log")

	log, err := New(path)
	require.NoError(t, err)
	var out, errOut bytes.Buffer
	log.SetConsole(&out, &errOut)

	log.Info("checked %s", "Node.js")
	log.Error("something broke")
	require.NoError(t, log.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)

	assert.Regexp(t, lineRe, lines[0])
	assert.True(t, strings.HasSuffix(lines[0], "checked Node.js"))
	assert.NotContains(t, lines[0], "[ERROR]")

	assert.Regexp(t, lineRe, lines[1])
	assert.Contains(t, lines[1], "[ERROR] something broke")

	// Console mirrors carry the message on the matching stream
	assert.Contains(t, out.String(), "checked Node.js")
	assert.Contains(t, errOut.String(), "something broke")
	assert.NotContains(t, out.String(), "something broke")
}

func TestAppendsAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup.log")

	first, err := New(path)
	require.NoError(t, err)
	first.SetConsole(&bytes.Buffer{}, &bytes.Buffer{})
	first.Info("first run")
	require.NoError(t, first.Close())

	second, err := New(path)
	require.NoError(t, err)
	second.SetConsole(&bytes.Buffer{}, &bytes.Buffer{})
	second.Info("second run")
	require.NoError(t, second.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	// Earlier entries stay first: the file is append-only, never rewritten
	assert.Contains(t, lines[0], "first run")
	assert.Contains(t, lines[1], "second run")
}

func TestDebugIsGatedAndConsoleOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup.log")

	log, err := New(path)
	require.NoError(t, err)
	var out bytes.Buffer
	log.SetConsole(&out, &bytes.Buffer{})

	log.Debug("hidden")
	assert.Empty(t, out.String())

	log.EnableDebug()
	log.Debug("visible")
	assert.Contains(t, out.String(), "visible")
	require.NoError(t, log.Close())

	// Debug chatter never lands in the file
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "visible")
}

func TestNewFailsWhenFileCannotOpen(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "no", "such", "dir", "setup.log"))
	require.Error(t, err)
}
