package chromedriver

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// VersionsEndpoint serves the last known good version for every release channel.
	VersionsEndpoint = "https://googlechromelabs.github.io/chrome-for-testing/last-known-good-versions.json"

	// ArchiveEndpoint is the location format of the release archives on the CDN.
	ArchiveEndpoint = "https://edgedl.me.gvt1.com/edgedl/chrome/chrome-for-testing/{{.Version}}/{{.Platform}}/{{.ArchiveBase}}.zip"

	// LatestVersion instructs the installer to resolve the stable channel
	// version instead of installing a pinned one.
	LatestVersion = "latest"
)

// Driver describes an installed driver executable.
// It is a plain value; the executable on disk is the only state behind it.
type Driver struct {
	// Path is the full path to the driver executable.
	Path string
	// Version is the driver version that the path belongs to.
	Version string
}

// Installer provisions a driver executable into an output directory.
// The zero value is not usable; construct it with [New].
type Installer struct {
	outdir  string
	version string

	client      *http.Client
	versionsURL string
	archiveURL  string

	// resolved lazily from the runtime platform unless injected
	target *target

	quiet bool
}

// New constructs an installer that provisions the driver under outdir.
// By default the latest stable version is installed; see [WithVersion].
func New(outdir string, options ...Option) *Installer {
	inst := Installer{
		outdir:  outdir,
		version: LatestVersion,

		client:      http.DefaultClient,
		versionsURL: VersionsEndpoint,
		archiveURL:  ArchiveEndpoint,
	}

	for _, opt := range options {
		opt(&inst)
	}

	return &inst
}

// Ensure makes sure the driver executable is present in the output directory,
// resolving the stable channel version first unless one was pinned.
func (i *Installer) Ensure(ctx context.Context) (*Driver, error) {
	version := i.version
	if version == LatestVersion {
		resolved, err := i.resolveVersion(ctx)
		if err != nil {
			return nil, err
		}
		version = resolved
	}

	return i.Install(ctx, version)
}

// Install provisions the given driver version into the output directory.
// When the executable already exists at the computed path the install is
// skipped entirely; no network request is made.
//
// A failed extraction leaves any files written so far on disk; there is no
// rollback.
func (i *Installer) Install(ctx context.Context, version string) (*Driver, error) {
	tgt, err := i.resolveTarget()
	if err != nil {
		return nil, err
	}

	driver := Driver{
		Path:    filepath.Join(i.outdir, tgt.ArchiveBase, tgt.ExecName),
		Version: version,
	}

	if i.isInstalled(driver.Path) {
		i.logstep(fmt.Sprintf("already installed at %s", driver.Path))
		return &driver, nil
	}

	url, err := Template{
		Version:     version,
		Platform:    tgt.Platform,
		ArchiveBase: tgt.ArchiveBase,
	}.Resolve(i.archiveURL)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve archive url: %w", err)
	}

	i.logstep(fmt.Sprintf("installing chromedriver %s for %s", version, tgt.Platform))

	payload, err := i.download(ctx, url)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(i.outdir, 0o755); err != nil {
		return nil, &FilesystemError{Path: i.outdir, Err: err}
	}

	if err := i.extract(payload, i.outdir); err != nil {
		return nil, err
	}

	// zip producers don't reliably preserve the executable bit
	if runtime.GOOS != "windows" {
		if err := os.Chmod(driver.Path, 0o755); err != nil {
			return nil, &FilesystemError{Path: driver.Path, Err: err}
		}
	}

	i.logstep(fmt.Sprintf("chromedriver ready at %s", driver.Path))

	return &driver, nil
}

// resolveTarget returns the injected target if set, falling back to the
// platform this code was built for.
func (i *Installer) resolveTarget() (target, error) {
	if i.target != nil {
		return *i.target, nil
	}
	return targetFor(runtime.GOOS, runtime.GOARCH)
}

// isInstalled returns true if the driver executable is present on disk.
func (i *Installer) isInstalled(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureLatest provisions the latest stable driver version under outdir,
// returning the descriptor of the installed executable.
func EnsureLatest(ctx context.Context, outdir string, options ...Option) (*Driver, error) {
	return New(outdir, options...).Ensure(ctx)
}
