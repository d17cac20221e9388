package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/dirtree/internal/dirstat"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := New("v1.2.3").command()
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func setupDir(t *testing.T) string {
	t.Helper()

	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.md"), []byte("0123456789"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "x"), nil, 0o644))

	return root
}

func TestExecuteUnlimited(t *testing.T) {
	root := setupDir(t)

	stdout, stderr, err := execute(t, root)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	expected := strings.Join([]string{
		"",
		"Analyzing directory tree from: " + root,
		strings.Repeat("=", 80),
		filepath.Base(root) + "/ [10.00 B, 2 files (.md:1, no_ext:1)]",
		"    └── sub/ [0.00 B, 1 files (no_ext:1)]",
		"",
	}, "\n")

	assert.Equal(t, expected, stdout)
}

func TestExecuteMaxDepth(t *testing.T) {
	root := setupDir(t)

	for _, flag := range []string{"-d", "--max-depth"} {
		t.Run(flag, func(t *testing.T) {
			stdout, _, err := execute(t, flag, "0", root)
			require.NoError(t, err)

			expected := strings.Join([]string{
				"",
				"Analyzing directory tree from: " + root,
				"Maximum depth level: 0",
				strings.Repeat("=", 80),
				filepath.Base(root) + "/ [10.00 B, 2 files (.md:1, no_ext:1)]",
				"",
			}, "\n")

			assert.Equal(t, expected, stdout)
		})
	}
}

func TestExecuteDefaultsToWorkingDirectory(t *testing.T) {
	root := setupDir(t)
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	cwd, err := os.Getwd()
	require.NoError(t, err)

	stdout, _, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Analyzing directory tree from: "+cwd+"\n")
}

func TestExecuteRejectsNegativeDepth(t *testing.T) {
	_, _, err := execute(t, "--max-depth", "-1", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max-depth cannot be negative")
}

func TestExecuteRejectsExtraArguments(t *testing.T) {
	_, _, err := execute(t, t.TempDir(), t.TempDir())
	require.Error(t, err)
}

func TestExecuteMissingPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	_, _, err := execute(t, missing)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExecuteVersion(t *testing.T) {
	stdout, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3\n", stdout)
}

func TestExecuteDebugLogsSkippedDepth(t *testing.T) {
	root := setupDir(t)

	_, stderr, err := execute(t, "--debug", "-d", "0", root)
	require.NoError(t, err)
	assert.Contains(t, stderr, "beyond maximum depth")
}

func TestPrintHeader(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, PrintHeader(&buf, dirstat.Options{Path: "/srv"}))
	assert.Equal(t, "\nAnalyzing directory tree from: /srv\n"+strings.Repeat("=", 80)+"\n", buf.String())

	buf.Reset()

	require.NoError(t, PrintHeader(&buf, dirstat.Options{Path: "/srv", Limited: true, MaxDepth: 3}))
	assert.Equal(t, "\nAnalyzing directory tree from: /srv\nMaximum depth level: 3\n"+strings.Repeat("=", 80)+"\n", buf.String())
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
}
