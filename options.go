package chromedriver

import (
	"net/http"
)

type Option func(i *Installer)

// WithVersion pins the driver version to install instead of resolving the
// latest stable one. Pinned installs never touch the versions endpoint.
func WithVersion(version string) Option {
	return func(i *Installer) {
		i.version = version
	}
}

// WithHTTPClient replaces the http client used for the metadata and archive
// requests. Useful for setting timeouts, which are otherwise left to the
// default client.
func WithHTTPClient(client *http.Client) Option {
	return func(i *Installer) {
		i.client = client
	}
}

// WithVersionsEndpoint overrides the url the stable channel version is
// resolved from. The response is expected to be in the
// last-known-good-versions.json format.
func WithVersionsEndpoint(url string) Option {
	return func(i *Installer) {
		i.versionsURL = url
	}
}

// WithArchiveEndpoint overrides the location format of the release archives.
// The format is resolved as a template with the [Template] values,
// e.g. "https://mirror.internal/chromedriver/{{.Version}}/{{.ArchiveBase}}.zip".
func WithArchiveEndpoint(format string) Option {
	return func(i *Installer) {
		i.archiveURL = format
	}
}

// WithoutNoise silences all informational output; errors are unaffected.
func WithoutNoise() Option {
	return func(i *Installer) {
		i.quiet = true
	}
}
