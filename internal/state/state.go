// Package state persists the installation-state JSON file: which profiles
// are installed and an append-only history of every mutation.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const stateVersion = "2"

// HistoryEntry records one mutation. Entries are append-only; prior entries
// are never rewritten.
type HistoryEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	ProfileID string    `json:"profile_id"`
	Source    string    `json:"source"`
	Options   []string  `json:"options,omitempty"`
}

// Profiles holds the currently installed selection. Selected must always
// match the profile set materialized in the live .env and compose files.
type Profiles struct {
	Selected []string `json:"selected"`
}

// InstallState is the persisted installation record.
type InstallState struct {
	Version      string         `json:"version"`
	InstalledAt  time.Time      `json:"installed_at"`
	LastModified time.Time      `json:"last_modified"`
	Profiles     Profiles       `json:"profiles"`
	History      []HistoryEntry `json:"history"`
}

func newInstallState() *InstallState {
	return &InstallState{
		Version:     stateVersion,
		InstalledAt: time.Now(),
	}
}

// Load reads the state file at path. A missing or corrupt file yields a
// fresh state; corrupt content additionally logs a warning to stderr.
func Load(path string) (*InstallState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return newInstallState(), nil
		}
		return newInstallState(), err
	}

	var st InstallState
	if err := json.Unmarshal(data, &st); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to parse state file, starting fresh: %v\n", err)
		return newInstallState(), nil
	}
	if st.Version == "" {
		st.Version = stateVersion
	}
	return &st, nil
}

// Save writes the full state atomically (tmp file + rename), creating parent
// directories as needed.
func (s *InstallState) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	s.LastModified = time.Now()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename state: %w", err)
	}
	return nil
}

// AppendHistory adds one immutable history entry.
func (s *InstallState) AppendHistory(action, profileID, source string, options ...string) {
	s.History = append(s.History, HistoryEntry{
		Timestamp: time.Now(),
		Action:    action,
		ProfileID: profileID,
		Source:    source,
		Options:   options,
	})
}

// AddProfile records id as installed, preserving order and uniqueness.
func (s *InstallState) AddProfile(id string) {
	for _, existing := range s.Profiles.Selected {
		if existing == id {
			return
		}
	}
	s.Profiles.Selected = append(s.Profiles.Selected, id)
}

// RemoveProfile drops id from the installed selection.
func (s *InstallState) RemoveProfile(id string) {
	kept := s.Profiles.Selected[:0]
	for _, existing := range s.Profiles.Selected {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	s.Profiles.Selected = kept
}
