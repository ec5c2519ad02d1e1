package chromedriver

// target identifies the release artifact matching a specific platform.
type target struct {
	// Platform is the tag used by the chrome-for-testing CDN, e.g. "mac-arm64".
	Platform string
	// ExecName is the file name of the driver executable inside the archive.
	ExecName string
	// ArchiveBase is the stem of the remote zip file, which doubles as the
	// name of the top level directory inside the archive.
	ArchiveBase string
}

// targetFor maps an operating system and architecture pair to the matching
// release artifact. Only macOS (arm64 and x64) and windows are published.
func targetFor(goos, goarch string) (target, error) {
	switch goos {
	case "darwin":
		if goarch == "arm64" {
			return target{
				Platform:    "mac-arm64",
				ExecName:    "chromedriver",
				ArchiveBase: "chromedriver-mac-arm64",
			}, nil
		}
		return target{
			Platform:    "mac-x64",
			ExecName:    "chromedriver",
			ArchiveBase: "chromedriver-mac-x64",
		}, nil
	case "windows":
		return target{
			Platform:    "win64",
			ExecName:    "chromedriver.exe",
			ArchiveBase: "chromedriver-win64",
		}, nil
	default:
		return target{}, &UnsupportedPlatformError{OS: goos}
	}
}
