package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Garko01/prayer-counter/internal/store"
)

const updateCheckTTL = 8 * time.Hour

// updateDeps bundles all side-effects for testability.
type updateDeps struct {
	now          func() time.Time
	fetchVersion func() (string, error)
	loadCache    func(homeDir string) store.UpdateCache
	saveCache    func(homeDir string, c store.UpdateCache) error
}

func defaultUpdateDeps() updateDeps {
	return updateDeps{
		now:          time.Now,
		fetchVersion: fetchLatestVersion,
		loadCache:    store.LoadUpdateCache,
		saveCache:    store.SaveUpdateCache,
	}
}

// resolveLatestVersion returns the latest release version, cache-first: a
// fresh cached value is served without touching the network, a stale cache is
// refreshed and re-stored, and on network failure the cached value (if any)
// is the fallback. fromCache reports which path answered.
func resolveLatestVersion(homeDir string, deps updateDeps, force bool) (latest string, fromCache bool, err error) {
	cache := deps.loadCache(homeDir)
	now := deps.now()

	if !force && cache.LastCheck != nil && now.Sub(*cache.LastCheck) < updateCheckTTL && cache.LatestVersion != "" {
		return cache.LatestVersion, true, nil
	}

	latest, err = deps.fetchVersion()
	if err != nil {
		if cache.LatestVersion != "" {
			return cache.LatestVersion, true, nil
		}
		return "", false, err
	}

	cache.LastCheck = &now
	cache.LatestVersion = latest
	_ = deps.saveCache(homeDir, cache)

	return latest, false, nil
}

// compareVersions compares two semver strings. Returns -1 if a < b, 0 if equal, 1 if a > b.
func compareVersions(a, b string) int {
	a = strings.TrimPrefix(a, "v")
	b = strings.TrimPrefix(b, "v")

	aParts := strings.SplitN(a, ".", 3)
	bParts := strings.SplitN(b, ".", 3)

	for i := 0; i < 3; i++ {
		av, bv := 0, 0
		if i < len(aParts) {
			av, _ = strconv.Atoi(aParts[i])
		}
		if i < len(bParts) {
			bv, _ = strconv.Atoi(bParts[i])
		}
		if av < bv {
			return -1
		}
		if av > bv {
			return 1
		}
	}
	return 0
}

// fetchLatestVersion queries the GitHub API for the latest release tag.
func fetchLatestVersion() (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get("https://api.github.com/repos/Garko01/prayer-counter/releases/latest")
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.Unmarshal(body, &release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", fmt.Errorf("empty tag_name in GitHub response")
	}

	return release.TagName, nil
}
