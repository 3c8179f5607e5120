package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// UpdateCache is the cached result of the last release check. It is served
// cache-first: while fresh no network request is made, and when the network
// is unreachable the cached value is the fallback.
type UpdateCache struct {
	LastCheck     *time.Time `json:"lastCheck,omitempty"`
	LatestVersion string     `json:"latestVersion,omitempty"`
}

func updateCachePath(homeDir string) string {
	return filepath.Join(Dir(homeDir), "update.json")
}

// LoadUpdateCache reads the cached release check. Missing or corrupt data
// yields an empty cache.
func LoadUpdateCache(homeDir string) UpdateCache {
	var c UpdateCache
	data, err := os.ReadFile(updateCachePath(homeDir))
	if err != nil {
		return UpdateCache{}
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return UpdateCache{}
	}
	return c
}

// SaveUpdateCache writes the cached release check.
func SaveUpdateCache(homeDir string, c UpdateCache) error {
	return writeJSON(homeDir, updateCachePath(homeDir), c)
}
