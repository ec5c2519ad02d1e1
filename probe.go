package chromedriver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/fatih/color"
)

// CheckVersion invokes the driver executable with the --version flag to
// confirm it actually runs. A non-zero exit status is logged but not treated
// as a failure; only spawn and wait failures surface as a [ProcessError].
func CheckVersion(ctx context.Context, driverPath string) (err error) {
	logstep(fmt.Sprintf("probing %s", driverPath))

	start := time.Now()
	defer func() {
		elapsed := time.Since(start).Round(time.Millisecond)
		if err != nil {
			color.Red(" ✘ %s\n\n", elapsed)
			return
		}
		color.Green(" ✔ %s\n\n", elapsed)
	}()

	out, err := probe(ctx, driverPath)
	if err != nil {
		return err
	}

	logdetail(strings.TrimSpace(string(out)))
	return nil
}

// MatchesVersion reports whether the driver executable identifies itself as
// the given version. Useful for detecting a stale install, as the installer
// itself never re-downloads once an executable is present.
func MatchesVersion(ctx context.Context, driverPath, version string) bool {
	out, err := probe(ctx, driverPath)
	if err != nil {
		return false
	}
	return bytes.Contains(out, []byte(version))
}

// probe runs the version query subprocess and returns its combined output.
func probe(ctx context.Context, driverPath string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, driverPath, "--version").CombinedOutput()
	if err != nil {
		var exit *exec.ExitError
		if errors.As(err, &exit) && ctx.Err() == nil {
			// the driver ran; an unexpected status is informational only
			logdetail(fmt.Sprintf("driver exited with status %d", exit.ExitCode()))
			return out, nil
		}
		return nil, &ProcessError{Path: driverPath, Err: err}
	}
	return out, nil
}
