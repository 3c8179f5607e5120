// Package store reads and writes the three persisted records (current count,
// history ledger, settings) as JSON files in the app directory. Loads are
// corruption-tolerant: a missing or malformed file falls back to that
// record's documented default and never fails startup. Saves are best-effort;
// callers that treat in-memory state as authoritative may discard the error.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Garko01/prayer-counter/internal/ledger"
)

const appDirName = ".prayer-counter"

// Dir returns the app's state directory under the user's home.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, appDirName)
}

// CountPath returns the path of the persisted tally record.
func CountPath(homeDir string) string {
	return filepath.Join(Dir(homeDir), "count.json")
}

// HistoryPath returns the path of the persisted history ledger.
func HistoryPath(homeDir string) string {
	return filepath.Join(Dir(homeDir), "history.json")
}

// SettingsPath returns the path of the persisted settings record.
func SettingsPath(homeDir string) string {
	return filepath.Join(Dir(homeDir), "settings.json")
}

type countRecord struct {
	Count int `json:"count"`
}

// LoadTally reads the persisted tally. Missing or corrupt data yields 0;
// a persisted negative value is clamped to 0.
func LoadTally(homeDir string) int {
	data, err := os.ReadFile(CountPath(homeDir))
	if err != nil {
		return 0
	}
	var rec countRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0
	}
	if rec.Count < 0 {
		return 0
	}
	return rec.Count
}

// SaveTally writes the tally record, creating the app directory if needed.
func SaveTally(homeDir string, tally int) error {
	return writeJSON(homeDir, CountPath(homeDir), countRecord{Count: tally})
}

// LoadLedger reads the persisted history ledger. Missing or corrupt data
// yields an empty ledger.
func LoadLedger(homeDir string) *ledger.Ledger {
	l := ledger.New()
	data, err := os.ReadFile(HistoryPath(homeDir))
	if err != nil {
		return l
	}
	if err := json.Unmarshal(data, l); err != nil {
		return ledger.New()
	}
	return l
}

// SaveLedger writes the history ledger.
func SaveLedger(homeDir string, l *ledger.Ledger) error {
	return writeJSON(homeDir, HistoryPath(homeDir), l)
}

// LoadSettings reads the persisted settings, merged over the built-in
// defaults so fields missing from older blobs fall back individually.
// Missing or corrupt data yields the defaults.
func LoadSettings(homeDir string) Settings {
	s := DefaultSettings()
	data, err := os.ReadFile(SettingsPath(homeDir))
	if err != nil {
		return s
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultSettings()
	}
	return s.Clamp()
}

// SaveSettings writes the settings record.
func SaveSettings(homeDir string, s Settings) error {
	return writeJSON(homeDir, SettingsPath(homeDir), s.Clamp())
}

// WipeAll removes every persisted record, the factory-reset path. Records
// that were never written are not an error.
func WipeAll(homeDir string) error {
	var firstErr error
	for _, path := range []string{CountPath(homeDir), HistoryPath(homeDir), SettingsPath(homeDir), updateCachePath(homeDir)} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func writeJSON(homeDir, path string, v any) error {
	if err := os.MkdirAll(Dir(homeDir), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
