// Package backup snapshots the live configuration before any mutation.
// Snapshots are immutable and never deleted here; retention is someone
// else's job.
package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Metadata is stored next to each snapshot describing why it was taken.
type Metadata struct {
	BackupID  string            `json:"backup_id"`
	CreatedAt time.Time         `json:"created_at"`
	Reason    string            `json:"reason"`
	Files     []string          `json:"files"`
	Extra     map[string]string `json:"extra,omitempty"`
}

// Manager writes snapshots of the installation directory's config files.
type Manager struct {
	// InstallDir holds the live .env and docker-compose.yml.
	InstallDir string
	// BackupDir receives one subdirectory per snapshot.
	BackupDir string
}

// configFiles are the files captured per snapshot, when present.
var configFiles = []string{".env", "docker-compose.yml"}

// CreateBackup copies the current config files into a timestamped snapshot
// directory and returns its ID. Missing source files are skipped, not errors:
// a fresh install has nothing to save yet.
func (m *Manager) CreateBackup(reason string, extra map[string]string) (string, error) {
	id := time.Now().UTC().Format("20060102T150405Z")
	dir := filepath.Join(m.BackupDir, id)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	meta := Metadata{
		BackupID:  id,
		CreatedAt: time.Now(),
		Reason:    reason,
		Extra:     extra,
	}

	for _, name := range configFiles {
		src := filepath.Join(m.InstallDir, name)
		if _, err := os.Stat(src); os.IsNotExist(err) {
			continue
		}
		if err := copyFile(src, filepath.Join(dir, name)); err != nil {
			return "", fmt.Errorf("snapshot %s: %w", name, err)
		}
		meta.Files = append(meta.Files, name)
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, "metadata.json"), data, 0600); err != nil {
		return "", fmt.Errorf("write backup metadata: %w", err)
	}

	return id, nil
}

// Restore copies a snapshot's files back over the live configuration.
func (m *Manager) Restore(backupID string) error {
	dir := filepath.Join(m.BackupDir, backupID)
	data, err := os.ReadFile(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return fmt.Errorf("read backup %s: %w", backupID, err)
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return fmt.Errorf("parse backup metadata: %w", err)
	}

	for _, name := range meta.Files {
		if err := copyFile(filepath.Join(dir, name), filepath.Join(m.InstallDir, name)); err != nil {
			return fmt.Errorf("restore %s: %w", name, err)
		}
	}
	return nil
}

// List returns snapshot metadata, newest first.
func (m *Manager) List() ([]Metadata, error) {
	entries, err := os.ReadDir(m.BackupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var out []Metadata
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if !e.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(m.BackupDir, e.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta Metadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		out = append(out, meta)
	}
	return out, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
