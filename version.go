package chromedriver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// manifest models the subset of last-known-good-versions.json that is
// relevant for resolution.
type manifest struct {
	Channels map[string]struct {
		Version string `json:"version"`
	} `json:"channels"`
}

// resolveVersion fetches the versions endpoint and extracts the last known
// good version of the stable channel.
func (i *Installer) resolveVersion(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.versionsURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build version request: %w", err)
	}

	resp, err := i.client.Do(req)
	if err != nil {
		return "", &NetworkError{URL: i.versionsURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &NetworkError{
			URL: i.versionsURL,
			Err: fmt.Errorf("received unexpected response: http%d", resp.StatusCode),
		}
	}

	var mft manifest
	if err := json.NewDecoder(resp.Body).Decode(&mft); err != nil {
		return "", &ParseError{Err: err}
	}

	stable, ok := mft.Channels["Stable"]
	if !ok || stable.Version == "" {
		return "", &MissingFieldError{Field: "channels.Stable.version"}
	}

	i.logstep(fmt.Sprintf("latest stable chromedriver version is %s", stable.Version))

	return stable.Version, nil
}
