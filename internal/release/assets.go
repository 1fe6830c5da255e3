package release

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
)

const checksumsAssetName = "checksums.txt"

// Windows builds cannot be referenced in the upgrade-info JSON, so only
// these platforms are picked up from the release assets.
var osArchPattern = regexp.MustCompile(`(Linux|Darwin)_(amd64|arm64)`)

// AssetString builds the upgrade-info JSON consumed by the on-chain upgrade
// module: a map from os/arch keys to download URLs with embedded checksums.
func (c *Client) AssetString(ctx context.Context, rel Release) (string, error) {
	checksums, err := c.checksumMap(ctx, rel)
	if err != nil {
		return "", err
	}

	binaries := make(map[string]string)
	for _, asset := range rel.Assets {
		key, ok := osKeyFromAssetName(asset.Name)
		if !ok {
			continue
		}
		sum, ok := checksums[asset.Name]
		if !ok {
			continue
		}
		binaries[key] = fmt.Sprintf("%s?checksum=%s", asset.DownloadURL, sum)
	}

	payload, err := json.Marshal(map[string]map[string]string{"binaries": binaries})
	if err != nil {
		return "", fmt.Errorf("encode assets: %w", err)
	}
	return string(payload), nil
}

// checksumMap downloads the checksum manifest attached to the release and
// returns a file name to checksum mapping.
func (c *Client) checksumMap(ctx context.Context, rel Release) (map[string]string, error) {
	var checksumURL string
	for _, asset := range rel.Assets {
		if asset.Name == checksumsAssetName {
			checksumURL = asset.DownloadURL
			break
		}
	}
	if checksumURL == "" {
		return nil, fmt.Errorf("release %s has no %s asset", rel.Tag, checksumsAssetName)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, checksumURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build checksum request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download checksums: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download checksums: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read checksums: %w", err)
	}

	return parseChecksums(string(body)), nil
}

// parseChecksums reads "checksum filename" lines, skipping Windows builds
// and anything that does not look like a checksum entry.
func parseChecksums(body string) map[string]string {
	checksums := make(map[string]string)
	for _, line := range strings.Split(body, "\n") {
		parts := strings.Fields(strings.TrimSpace(line))
		if len(parts) != 2 {
			continue
		}
		if strings.Contains(parts[1], "Windows") {
			continue
		}
		checksums[parts[1]] = parts[0]
	}
	return checksums
}

func osKeyFromAssetName(name string) (string, bool) {
	captures := osArchPattern.FindStringSubmatch(name)
	if captures == nil {
		return "", false
	}
	return strings.ToLower(captures[1]) + "/" + captures[2], true
}
