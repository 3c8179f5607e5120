package cli

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/Garko01/prayer-counter/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUpdateTest(t *testing.T) (homeDir string, deps updateDeps) {
	t.Helper()
	homeDir = t.TempDir()

	now := time.Date(2026, 2, 26, 12, 0, 0, 0, time.UTC)

	deps = updateDeps{
		now:          func() time.Time { return now },
		fetchVersion: func() (string, error) { return "v1.2.0", nil },
		loadCache:    store.LoadUpdateCache,
		saveCache:    store.SaveUpdateCache,
	}

	return homeDir, deps
}

func seedUpdateCache(t *testing.T, homeDir, version string, checkedAt time.Time) {
	t.Helper()
	require.NoError(t, store.SaveUpdateCache(homeDir, store.UpdateCache{
		LastCheck:     &checkedAt,
		LatestVersion: version,
	}))
}

func TestResolveLatestVersionFreshCacheSkipsNetwork(t *testing.T) {
	homeDir, deps := setupUpdateTest(t)
	seedUpdateCache(t, homeDir, "v1.1.0", deps.now().Add(-time.Hour))

	fetchCalled := false
	deps.fetchVersion = func() (string, error) {
		fetchCalled = true
		return "v1.2.0", nil
	}

	latest, fromCache, err := resolveLatestVersion(homeDir, deps, false)

	require.NoError(t, err)
	assert.Equal(t, "v1.1.0", latest)
	assert.True(t, fromCache)
	assert.False(t, fetchCalled)
}

func TestResolveLatestVersionStaleCacheRefreshes(t *testing.T) {
	homeDir, deps := setupUpdateTest(t)
	seedUpdateCache(t, homeDir, "v1.1.0", deps.now().Add(-9*time.Hour))

	latest, fromCache, err := resolveLatestVersion(homeDir, deps, false)

	require.NoError(t, err)
	assert.Equal(t, "v1.2.0", latest)
	assert.False(t, fromCache)

	cache := store.LoadUpdateCache(homeDir)
	assert.Equal(t, "v1.2.0", cache.LatestVersion)
	require.NotNil(t, cache.LastCheck)
	assert.True(t, cache.LastCheck.Equal(deps.now()))
}

func TestResolveLatestVersionForceBypassesFreshCache(t *testing.T) {
	homeDir, deps := setupUpdateTest(t)
	seedUpdateCache(t, homeDir, "v1.1.0", deps.now().Add(-time.Minute))

	latest, fromCache, err := resolveLatestVersion(homeDir, deps, true)

	require.NoError(t, err)
	assert.Equal(t, "v1.2.0", latest)
	assert.False(t, fromCache)
}

func TestResolveLatestVersionNetworkFailureFallsBackToCache(t *testing.T) {
	homeDir, deps := setupUpdateTest(t)
	seedUpdateCache(t, homeDir, "v1.1.0", deps.now().Add(-24*time.Hour))

	deps.fetchVersion = func() (string, error) {
		return "", fmt.Errorf("network unreachable")
	}

	latest, fromCache, err := resolveLatestVersion(homeDir, deps, false)

	require.NoError(t, err)
	assert.Equal(t, "v1.1.0", latest)
	assert.True(t, fromCache)
}

func TestResolveLatestVersionNetworkFailureWithoutCache(t *testing.T) {
	homeDir, deps := setupUpdateTest(t)

	deps.fetchVersion = func() (string, error) {
		return "", fmt.Errorf("network unreachable")
	}

	_, _, err := resolveLatestVersion(homeDir, deps, false)
	assert.Error(t, err)
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"v1.0.0", "v1.0.0", 0},
		{"1.0.0", "v1.0.0", 0},
		{"0.9.0", "1.0.0", -1},
		{"1.0.0", "0.9.0", 1},
		{"1.0.0", "1.0.1", -1},
		{"1.0.1", "1.0.0", 1},
		{"1.1.0", "1.0.9", 1},
		{"2.0.0", "1.9.9", 1},
		{"0.1.0", "0.0.9", 1},
		{"v0.1.0", "0.2.0", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, compareVersions(tt.a, tt.b))
		})
	}
}

func execUpdate(t *testing.T, version, homeDir string, force bool, deps updateDeps) (string, error) {
	t.Helper()
	old := appVersion
	appVersion = version
	t.Cleanup(func() { appVersion = old })

	stdout := new(bytes.Buffer)
	cmd := updateCmd
	cmd.SetOut(stdout)

	err := runUpdate(cmd, homeDir, force, deps)
	return stdout.String(), err
}

func TestUpdateSkipsDevBuild(t *testing.T) {
	homeDir, deps := setupUpdateTest(t)

	fetchCalled := false
	deps.fetchVersion = func() (string, error) {
		fetchCalled = true
		return "v1.2.0", nil
	}

	stdout, err := execUpdate(t, "dev", homeDir, false, deps)

	require.NoError(t, err)
	assert.Contains(t, stdout, "dev build")
	assert.False(t, fetchCalled)
}

func TestUpdateUpToDate(t *testing.T) {
	homeDir, deps := setupUpdateTest(t)

	stdout, err := execUpdate(t, "v1.2.0", homeDir, false, deps)

	require.NoError(t, err)
	assert.Contains(t, stdout, "up to date")
}

func TestUpdateNewVersionAvailable(t *testing.T) {
	homeDir, deps := setupUpdateTest(t)

	stdout, err := execUpdate(t, "v1.0.0", homeDir, false, deps)

	require.NoError(t, err)
	assert.Contains(t, stdout, "new version is available")
	assert.Contains(t, stdout, "v1.2.0")
	assert.Contains(t, stdout, "releases")
}

func TestUpdateMentionsCachedResult(t *testing.T) {
	homeDir, deps := setupUpdateTest(t)
	seedUpdateCache(t, homeDir, "v1.2.0", deps.now().Add(-time.Hour))

	stdout, err := execUpdate(t, "v1.0.0", homeDir, false, deps)

	require.NoError(t, err)
	assert.Contains(t, stdout, "cached release information")
}
