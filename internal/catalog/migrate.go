package catalog

import "log"

// MigrationTarget is one entry in the legacy profile ID table. Exactly one of
// Single or Expand is set: a legacy ID maps either to one current profile or
// expands into several (a removed bundle split into granular profiles).
type MigrationTarget struct {
	Single string
	Expand []string
}

// IDs returns the current profile IDs this target stands for.
func (m MigrationTarget) IDs() []string {
	if m.Single != "" {
		return []string{m.Single}
	}
	return append([]string{}, m.Expand...)
}

// profileIDMigration translates profile IDs from installations created by
// earlier releases. Immutable after init.
var profileIDMigration = map[string]MigrationTarget{
	"kaspad":          {Single: "kaspa-node"},
	"kaspa-archive":   {Single: "kaspa-archive-node"},
	"kasplex-indexer": {Single: "indexer-services"},
	"explorer":        {Single: "kaspa-user-applications"},
	"stratum-bridge":  {Single: "mining"},
	"kaspa-aio":       {Expand: []string{"kaspa-node", "indexer-services", "kaspa-user-applications"}},
}

// templateIDMigration aliases legacy template IDs to current templates.
var templateIDMigration = map[string]string{
	"beginner":       "quick-start",
	"kaspa-explorer": "explorer-stack",
}

// MigrateProfileID translates a single, possibly legacy, profile ID to its
// current equivalent(s). IDs already in the catalog pass through untouched;
// unmapped IDs also pass through, with a logged warning, never an error.
func MigrateProfileID(id string) []string {
	if _, ok := profiles[id]; ok {
		return []string{id}
	}
	if target, ok := profileIDMigration[id]; ok {
		return target.IDs()
	}
	log.Printf("profile id %q has no migration, passing through", id)
	return []string{id}
}

// MigrateProfileIDs translates a whole selection, flattening one-to-many
// expansions and deduplicating. Idempotent.
func MigrateProfileIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	var out []string
	for _, id := range ids {
		for _, migrated := range MigrateProfileID(id) {
			if !seen[migrated] {
				seen[migrated] = true
				out = append(out, migrated)
			}
		}
	}
	return out
}

// IsLegacyProfileID reports whether id is in the legacy table and absent from
// the current catalog. An ID present in both is treated as current.
func IsLegacyProfileID(id string) bool {
	if _, ok := profiles[id]; ok {
		return false
	}
	_, ok := profileIDMigration[id]
	return ok
}

// MigrateTemplateID translates a legacy template ID; identity for current or
// unknown IDs.
func MigrateTemplateID(id string) string {
	if _, ok := templates[id]; ok {
		return id
	}
	if target, ok := templateIDMigration[id]; ok {
		return target
	}
	return id
}

// IsLegacyTemplateID reports whether id is a deprecated template alias.
func IsLegacyTemplateID(id string) bool {
	if _, ok := templates[id]; ok {
		return false
	}
	_, ok := templateIDMigration[id]
	return ok
}
