// Package lifecycle mutates a live installation: adding or removing one
// profile at a time against running containers, the .env file and the
// installation-state record.
//
// Operations are synchronous and assume a single writer; callers must
// serialize mutations against one installation directory.
package lifecycle

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kaspa-aio/kaspactl/internal/dockerman"
	"github.com/kaspa-aio/kaspactl/internal/validate"
)

// Sentinel errors for blocked mutations; inspect with errors.Is and unwrap
// the *BlockedError for the structured issues.
var (
	ErrAdditionBlocked = errors.New("addition blocked")
	ErrRemovalBlocked  = errors.New("removal blocked")
)

// DockerManager is the container-side collaborator of add/remove.
type DockerManager interface {
	StartServices(profileIDs []string) error
	RemoveServices(serviceNames []string, removeData bool) (dockerman.RemoveSummary, error)
}

// BackupManager snapshots configuration before destructive steps.
type BackupManager interface {
	CreateBackup(reason string, extra map[string]string) (string, error)
}

// Manager wires the collaborators for one installation.
type Manager struct {
	// InstallDir holds .env and docker-compose.yml.
	InstallDir string
	// StatePath is the installation-state JSON file.
	StatePath string
	// Source tags history entries, e.g. "cli" or "wizard".
	Source string

	Docker  DockerManager
	Backups BackupManager
}

func (m *Manager) envPath() string {
	return filepath.Join(m.InstallDir, ".env")
}

func (m *Manager) composePath() string {
	return filepath.Join(m.InstallDir, "docker-compose.yml")
}

// BlockedError carries the structured validation issues of an infeasible
// addition or removal so a UI can render specific remediation.
type BlockedError struct {
	Op        string
	ProfileID string
	Issues    []validate.Issue
}

func (e *BlockedError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, issue.Message)
	}
	return fmt.Sprintf("%s of %q blocked: %s", e.Op, e.ProfileID, strings.Join(msgs, "; "))
}

func (e *BlockedError) Unwrap() error {
	if e.Op == "removal" {
		return ErrRemovalBlocked
	}
	return ErrAdditionBlocked
}
