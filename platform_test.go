package chromedriver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetFor(t *testing.T) {
	tests := []struct {
		name     string
		goos     string
		goarch   string
		expected target
	}{
		{
			name:   "mac arm",
			goos:   "darwin",
			goarch: "arm64",
			expected: target{
				Platform:    "mac-arm64",
				ExecName:    "chromedriver",
				ArchiveBase: "chromedriver-mac-arm64",
			},
		},
		{
			name:   "mac intel",
			goos:   "darwin",
			goarch: "amd64",
			expected: target{
				Platform:    "mac-x64",
				ExecName:    "chromedriver",
				ArchiveBase: "chromedriver-mac-x64",
			},
		},
		{
			name:   "windows",
			goos:   "windows",
			goarch: "amd64",
			expected: target{
				Platform:    "win64",
				ExecName:    "chromedriver.exe",
				ArchiveBase: "chromedriver-win64",
			},
		},
		{
			name:   "windows arm",
			goos:   "windows",
			goarch: "arm64",
			expected: target{
				Platform:    "win64",
				ExecName:    "chromedriver.exe",
				ArchiveBase: "chromedriver-win64",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tgt, err := targetFor(test.goos, test.goarch)
			require.NoError(t, err)
			assert.Equal(t, test.expected, tgt)
		})
	}
}

func TestTargetFor_Unsupported(t *testing.T) {
	for _, goos := range []string{"linux", "freebsd", "plan9", ""} {
		t.Run(goos, func(t *testing.T) {
			_, err := targetFor(goos, "amd64")
			require.Error(t, err)

			var unsupported *UnsupportedPlatformError
			require.ErrorAs(t, err, &unsupported)
			assert.Equal(t, goos, unsupported.OS)
		})
	}
}
