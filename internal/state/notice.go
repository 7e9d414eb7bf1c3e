package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Notice IDs for one-time warnings shown to the user.
const (
	NoticePublicAPILimits = "public-api-limits"
	NoticeLegacyNames     = "legacy-profile-names"
)

// Notices tracks which one-time warnings the user has already seen, so
// repeated runs do not nag. Stored separately from the installation state:
// losing it only repeats a warning.
type Notices struct {
	Seen map[string]bool `json:"seen"`
}

// NoticePath locates the notices file inside the installation directory.
func NoticePath(installDir string) string {
	return filepath.Join(installDir, "notices.json")
}

// LoadNotices reads notice state. A missing or corrupt file yields an empty
// state; corrupt content additionally logs a warning to stderr.
func LoadNotices(path string) (*Notices, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Notices{Seen: map[string]bool{}}, nil
		}
		return nil, fmt.Errorf("read notices: %w", err)
	}

	var n Notices
	if err := json.Unmarshal(data, &n); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to parse notices file, using defaults: %v\n", err)
		return &Notices{Seen: map[string]bool{}}, nil
	}
	if n.Seen == nil {
		n.Seen = map[string]bool{}
	}
	return &n, nil
}

// SaveNotices writes notice state atomically (temp file + rename).
func SaveNotices(path string, n *Notices) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create notices directory: %w", err)
	}

	data, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("write notices: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename notices: %w", err)
	}
	return nil
}

// ShouldShow reports whether the notice has not been shown yet.
func (n *Notices) ShouldShow(id string) bool {
	return !n.Seen[id]
}

// MarkSeen records the notice as shown.
func (n *Notices) MarkSeen(id string) {
	n.Seen[id] = true
}
