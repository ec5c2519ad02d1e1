// Package chromedriver provisions the ChromeDriver binary that browser
// automation tooling needs before it can launch a chrome session.
//
// At the core, an [Installer] resolves the latest stable version published
// on the chrome-for-testing channels, maps the running platform to the
// matching release artifact, and downloads and extracts it into an output
// directory. Installs are idempotent: when the executable is already present
// at the computed path, nothing is downloaded.
//
// example usage
//
//	// ensure the latest stable driver is present under ./bin
//	// this downloads and extracts the release archive only when needed
//	drv, err := chromedriver.EnsureLatest(ctx, "./bin")
//	if err != nil {
//		return fmt.Errorf("failed to provision chromedriver: %w", err)
//	}
//
//	// optionally confirm the binary actually runs
//	if err := chromedriver.CheckVersion(ctx, drv.Path); err != nil {
//		return err
//	}
//
//	// hand drv.Path over to the automation client
//
// For finer control construct an [Installer] directly; the endpoints, the
// http client and the installed version can all be customized via options.
//
//	installer := chromedriver.New(
//		"./bin",
//		chromedriver.WithVersion("124.0.6367.91"), // pin instead of resolving latest
//		chromedriver.WithoutNoise(),               // no step logging
//	)
//	drv, err := installer.Ensure(ctx)
//
// Failures are classified by type so callers can branch on what went wrong:
// [NetworkError], [ParseError], [MissingFieldError], [UnsupportedPlatformError],
// [ArchiveError], [FilesystemError] and [ProcessError].
package chromedriver
