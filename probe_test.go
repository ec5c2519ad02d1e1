package chromedriver

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakedriver writes an executable shell script standing in for the driver.
func fakedriver(t *testing.T, script string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("probe tests use shell scripts as fake drivers")
	}

	path := filepath.Join(t.TempDir(), "chromedriver")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestCheckVersion(t *testing.T) {
	driver := fakedriver(t, "#!/bin/sh\necho ChromeDriver 124.0.6367.91\n")

	err := CheckVersion(context.Background(), driver)
	assert.NoError(t, err)
}

func TestCheckVersion_NonZeroExit(t *testing.T) {
	driver := fakedriver(t, "#!/bin/sh\nexit 3\n")

	// unexpected exit codes are informational, not failures
	err := CheckVersion(context.Background(), driver)
	assert.NoError(t, err)
}

func TestCheckVersion_MissingExecutable(t *testing.T) {
	err := CheckVersion(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)

	var process *ProcessError
	require.ErrorAs(t, err, &process)
	assert.Contains(t, process.Path, "nope")
}

func TestMatchesVersion(t *testing.T) {
	driver := fakedriver(t, "#!/bin/sh\necho ChromeDriver 124.0.6367.91\n")

	assert.True(t, MatchesVersion(context.Background(), driver, "124.0.6367.91"))
	assert.False(t, MatchesVersion(context.Background(), driver, "125.0.0.0"))
}

func TestMatchesVersion_MissingExecutable(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	assert.False(t, MatchesVersion(context.Background(), missing, "124.0.6367.91"))
}
