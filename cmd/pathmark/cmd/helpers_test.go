package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pathmark-dev/pathmark/internal/alias"
	"github.com/pathmark-dev/pathmark/internal/store"
)

// newTestDataDir returns an isolated data directory seeded with an empty
// alias collection so first-launch sample seeding does not kick in, and
// points XDG_CONFIG_HOME at a scratch dir so logs and config stay out of
// the real home directory.
func newTestDataDir(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dataDir := t.TempDir()
	st, err := store.New(dataDir)
	require.NoError(t, err)
	require.NoError(t, st.SaveAliases([]alias.Alias{}))
	return dataDir
}

// runCmd executes the CLI with the given args against dataDir and
// returns captured stdout.
func runCmd(t *testing.T, dataDir string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(append([]string{"--data-dir", dataDir}, args...))

	err := root.Execute()
	return buf.String(), err
}

// mustRun executes the CLI and fails the test on error.
func mustRun(t *testing.T, dataDir string, args ...string) string {
	t.Helper()
	out, err := runCmd(t, dataDir, args...)
	require.NoError(t, err, "command %v failed: %s", args, out)
	return out
}

// addAlias creates an alias through the CLI, using a real temp directory
// as the target path, and returns that path.
func addAlias(t *testing.T, dataDir, name string, extraArgs ...string) string {
	t.Helper()
	target := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(target, 0o755))
	mustRun(t, dataDir, append([]string{"add", name, target}, extraArgs...)...)
	return target
}
