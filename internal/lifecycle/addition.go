package lifecycle

import (
	"fmt"
	"os"
	"sort"

	"github.com/kaspa-aio/kaspactl/internal/catalog"
	"github.com/kaspa-aio/kaspactl/internal/envfile"
	"github.com/kaspa-aio/kaspactl/internal/generator"
	"github.com/kaspa-aio/kaspactl/internal/state"
	"github.com/kaspa-aio/kaspactl/internal/ui"
)

// AddOptions parameterize one profile addition.
type AddOptions struct {
	// Current is the installed profile selection before the addition.
	Current []string
	// Integration holds the options the user picked from
	// GetIntegrationOptions; their config patches merge over the live
	// configuration in order.
	Integration []IntegrationOption
}

// ConfigChange is one key-level difference between pre- and post-addition
// configuration, tagged with the profile that owns the key.
type ConfigChange struct {
	Key     string
	Old     string
	New     string
	Profile string
}

// AddResult reports a completed addition.
type AddResult struct {
	AddedProfiles      []string
	AddedServices      []string
	IntegrationChanges []ConfigChange
	RequiresRestart    bool
	NewConfiguration   map[string]string
	BackupID           string
}

// AddProfile adds one profile to a running installation: feasibility check,
// configuration merge, regeneration of .env and compose, container start for
// the new services only, and a state history entry.
//
// The .env write happens before the container start; a failed start therefore
// leaves configuration saved without matching running services. The
// pre-operation files remain recoverable via the backup snapshots.
func (m *Manager) AddProfile(profileID string, opts AddOptions) (*AddResult, error) {
	if _, ok := catalog.GetProfile(profileID); !ok && !catalog.IsLegacyProfileID(profileID) {
		return nil, fmt.Errorf("profile %q: %w", profileID, catalog.ErrNotFound)
	}

	// ValidateAddition expands legacy IDs itself; bundle aliases like
	// kaspa-aio surface every member through check.NewProfiles.
	check := ValidateAddition(profileID, opts.Current)
	if !check.CanAdd {
		return nil, &BlockedError{Op: "addition", ProfileID: profileID, Issues: check.Issues}
	}

	backupID, err := m.Backups.CreateBackup("add-"+profileID, map[string]string{
		"profile": profileID,
	})
	if err != nil {
		ui.Warn(fmt.Sprintf("Backup before addition failed, continuing without one: %v", err))
		backupID = ""
	}

	current, err := envfile.ParseFile(m.envPath())
	if err != nil {
		return nil, fmt.Errorf("load current configuration: %w", err)
	}

	merged := make(map[string]string, len(current))
	for k, v := range current {
		merged[k] = v
	}
	var optionTypes []string
	for _, opt := range opts.Integration {
		optionTypes = append(optionTypes, opt.Type)
		for k, v := range opt.Config {
			merged[k] = v
		}
	}

	combined := append(append([]string{}, opts.Current...), check.NewProfiles...)
	newCfg := generator.GenerateConfig(combined, merged)

	envContent := generator.GenerateEnvFile(newCfg, combined)
	if err := generator.SaveEnvFile(envContent, m.envPath()); err != nil {
		return nil, fmt.Errorf("save configuration: %w", err)
	}

	composeContent, err := generator.GenerateCompose(combined)
	if err != nil {
		return nil, fmt.Errorf("generate compose file: %w", err)
	}
	if err := os.WriteFile(m.composePath(), composeContent, 0600); err != nil {
		return nil, fmt.Errorf("save compose file: %w", err)
	}

	if err := m.Docker.StartServices(check.NewProfiles); err != nil {
		return nil, fmt.Errorf("start new services: %w", err)
	}

	st, err := state.Load(m.StatePath)
	if err != nil {
		return nil, fmt.Errorf("load installation state: %w", err)
	}
	for _, id := range opts.Current {
		st.AddProfile(id)
	}
	for _, id := range check.NewProfiles {
		st.AddProfile(id)
	}
	st.AppendHistory("add-profile", profileID, m.Source, optionTypes...)
	if err := st.Save(m.StatePath); err != nil {
		return nil, fmt.Errorf("save installation state: %w", err)
	}

	result := &AddResult{
		AddedProfiles:      check.NewProfiles,
		AddedServices:      servicesOf(check.NewProfiles),
		IntegrationChanges: diffConfig(current, newCfg),
		NewConfiguration:   newCfg,
		BackupID:           backupID,
	}
	result.RequiresRestart = len(result.IntegrationChanges) > 0
	return result, nil
}

func servicesOf(profileIDs []string) []string {
	var names []string
	for _, id := range profileIDs {
		p, ok := catalog.GetProfile(id)
		if !ok {
			continue
		}
		for _, s := range p.Services {
			names = append(names, s.Name)
		}
	}
	return names
}

// diffConfig lists keys added or changed between before and after, sorted by
// key for stable display.
func diffConfig(before, after map[string]string) []ConfigChange {
	var changes []ConfigChange
	for k, v := range after {
		if old, ok := before[k]; !ok || old != v {
			changes = append(changes, ConfigChange{Key: k, Old: before[k], New: v, Profile: keyOwner(k)})
		}
	}
	sort.Slice(changes, func(i, j int) bool { return changes[i].Key < changes[j].Key })
	return changes
}
