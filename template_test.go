package chromedriver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplate_Resolve(t *testing.T) {
	template := Template{
		Version:     "124.0.6367.91",
		Platform:    "mac-arm64",
		ArchiveBase: "chromedriver-mac-arm64",
	}

	tests := []struct {
		name     string
		format   string
		expected string
	}{
		{
			name:     "cdn archive url",
			format:   ArchiveEndpoint,
			expected: "https://edgedl.me.gvt1.com/edgedl/chrome/chrome-for-testing/124.0.6367.91/mac-arm64/chromedriver-mac-arm64.zip",
		},
		{
			name:     "no variables",
			format:   "https://example.com/static.zip",
			expected: "https://example.com/static.zip",
		},
		{
			name:     "single variable",
			format:   "{{.ArchiveBase}}.zip",
			expected: "chromedriver-mac-arm64.zip",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			resolved, err := template.Resolve(test.format)
			require.NoError(t, err)
			assert.Equal(t, test.expected, resolved)
		})
	}
}

func TestTemplate_Resolve_Invalid(t *testing.T) {
	template := Template{Version: "1.0.0.0"}

	_, err := template.Resolve("{{.Version")
	assert.Error(t, err)

	_, err = template.Resolve("{{.NoSuchField}}")
	assert.Error(t, err)
}
