package lifecycle

import (
	"fmt"
	"os"

	"github.com/kaspa-aio/kaspactl/internal/catalog"
	"github.com/kaspa-aio/kaspactl/internal/dockerman"
	"github.com/kaspa-aio/kaspactl/internal/envfile"
	"github.com/kaspa-aio/kaspactl/internal/generator"
	"github.com/kaspa-aio/kaspactl/internal/state"
	"github.com/kaspa-aio/kaspactl/internal/ui"
)

// DataOption is a per-data-type override when removing with data: entries
// with Remove false are kept even though removeData is set.
type DataOption struct {
	Type   string
	Remove bool
}

// RemoveOptions parameterize one profile removal.
type RemoveOptions struct {
	Current     []string
	RemoveData  bool
	DataOptions []DataOption
}

// RemoveResult reports a completed removal.
type RemoveResult struct {
	RemovedServices []string
	PreservedData   []DataType
	BackupID        string
	Summary         dockerman.RemoveSummary
}

// RemoveProfile removes one profile from a running installation: safety
// check, best-effort backup, container stop/removal, env key stripping,
// compose regeneration and a state history entry.
//
// A backup failure is logged and does not abort the removal; the source
// system behaves the same way, trading safety for availability. A container
// removal failure does abort, leaving the backup as the recovery path.
func (m *Manager) RemoveProfile(profileID string, opts RemoveOptions) (*RemoveResult, error) {
	if _, ok := catalog.GetProfile(profileID); !ok {
		if !catalog.IsLegacyProfileID(profileID) {
			return nil, fmt.Errorf("profile %q: %w", profileID, catalog.ErrNotFound)
		}
		profileID = catalog.MigrateProfileIDs([]string{profileID})[0]
	}

	check := ValidateRemoval(profileID, opts.Current)
	if !check.CanRemove {
		return nil, &BlockedError{Op: "removal", ProfileID: profileID, Issues: check.Issues}
	}

	result := &RemoveResult{}

	backupID, err := m.Backups.CreateBackup("remove-"+profileID, map[string]string{
		"profile": profileID,
	})
	if err != nil {
		ui.Warn(fmt.Sprintf("Backup before removal failed, continuing without one: %v", err))
	} else {
		result.BackupID = backupID
	}

	names := servicesOf([]string{profileID})
	summary, err := m.Docker.RemoveServices(names, opts.RemoveData)
	if err != nil {
		return nil, fmt.Errorf("remove containers: %w", err)
	}
	result.Summary = summary
	result.RemovedServices = names

	raw, err := os.ReadFile(m.envPath())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read env file: %w", err)
	}
	if err == nil {
		stripped := envfile.StripKeys(string(raw), profileEnvKeys[profileID])
		if err := os.WriteFile(m.envPath(), []byte(stripped), 0600); err != nil {
			return nil, fmt.Errorf("write env file: %w", err)
		}
	}

	remaining := make([]string, 0, len(opts.Current))
	for _, id := range catalog.MigrateProfileIDs(opts.Current) {
		if id != profileID {
			remaining = append(remaining, id)
		}
	}
	// The compose file must always mirror the installed selection; with
	// nothing left it goes away entirely rather than declaring stale
	// services.
	if len(remaining) > 0 {
		composeContent, err := generator.GenerateCompose(remaining)
		if err != nil {
			return nil, fmt.Errorf("regenerate compose file: %w", err)
		}
		if err := os.WriteFile(m.composePath(), composeContent, 0600); err != nil {
			return nil, fmt.Errorf("save compose file: %w", err)
		}
	} else if err := os.Remove(m.composePath()); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("remove compose file: %w", err)
	}

	st, err := state.Load(m.StatePath)
	if err != nil {
		return nil, fmt.Errorf("load installation state: %w", err)
	}
	st.RemoveProfile(profileID)
	st.AppendHistory("remove-profile", profileID, m.Source)
	if err := st.Save(m.StatePath); err != nil {
		return nil, fmt.Errorf("save installation state: %w", err)
	}

	result.PreservedData = preservedData(profileID, opts)
	return result, nil
}

// preservedData reports what survives the removal: everything when data is
// kept, otherwise only the data types the caller explicitly opted out of
// removing.
func preservedData(profileID string, opts RemoveOptions) []DataType {
	known := profileDataTypes[profileID]
	if !opts.RemoveData {
		return append([]DataType{}, known...)
	}

	keep := make(map[string]bool)
	for _, opt := range opts.DataOptions {
		if !opt.Remove {
			keep[opt.Type] = true
		}
	}

	var out []DataType
	for _, dt := range known {
		if keep[dt.Type] {
			out = append(out, dt)
		}
	}
	return out
}
