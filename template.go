package chromedriver

import (
	"strings"
	"text/template"
)

// Template contains the fields used to resolve the remote archive location.
type Template struct {
	// Version is the driver version string, e.g. "124.0.6367.91"
	Version string
	// Platform is the CDN platform tag, e.g. "mac-arm64"
	Platform string
	// ArchiveBase is the stem of the remote zip file, e.g. "chromedriver-mac-arm64"
	ArchiveBase string
}

// Resolve executes the provided format string as a template with the Template's fields.
// It returns the resolved string and any error that occurred during template parsing or execution.
func (t Template) Resolve(format string) (string, error) {
	tmpl, err := template.New("url").Parse(format)
	if err != nil {
		return "", err
	}

	var bld strings.Builder
	if err := tmpl.Execute(&bld, t); err != nil {
		return "", err
	}

	return bld.String(), nil
}
