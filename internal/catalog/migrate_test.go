package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrateProfileID(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"current id passes through", "kaspa-node", []string{"kaspa-node"}},
		{"legacy node", "kaspad", []string{"kaspa-node"}},
		{"legacy archive", "kaspa-archive", []string{"kaspa-archive-node"}},
		{"legacy indexer", "kasplex-indexer", []string{"indexer-services"}},
		{"legacy explorer", "explorer", []string{"kaspa-user-applications"}},
		{"legacy bridge", "stratum-bridge", []string{"mining"}},
		{"removed bundle expands", "kaspa-aio", []string{"kaspa-node", "indexer-services", "kaspa-user-applications"}},
		{"unmapped passes through", "mystery-profile", []string{"mystery-profile"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MigrateProfileID(tc.in))
		})
	}
}

func TestMigrateProfileIDs_FlattensAndDeduplicates(t *testing.T) {
	got := MigrateProfileIDs([]string{"kaspa-aio", "kaspad", "dashboard"})
	assert.Equal(t, []string{"kaspa-node", "indexer-services", "kaspa-user-applications", "dashboard"}, got)
}

func TestMigrateProfileIDs_Idempotent(t *testing.T) {
	once := MigrateProfileIDs([]string{"kaspa-aio", "stratum-bridge"})
	twice := MigrateProfileIDs(once)
	assert.Equal(t, once, twice)
}

func TestIsLegacyProfileID(t *testing.T) {
	assert.True(t, IsLegacyProfileID("kaspad"))
	assert.True(t, IsLegacyProfileID("kaspa-aio"))
	assert.False(t, IsLegacyProfileID("kaspa-node"))
	assert.False(t, IsLegacyProfileID("mystery-profile"))
}

func TestMigrateTemplateID(t *testing.T) {
	assert.Equal(t, "quick-start", MigrateTemplateID("beginner"))
	assert.Equal(t, "explorer-stack", MigrateTemplateID("kaspa-explorer"))
	assert.Equal(t, "solo-miner", MigrateTemplateID("solo-miner"))
	assert.Equal(t, "mystery", MigrateTemplateID("mystery"))
}

func TestIsLegacyTemplateID(t *testing.T) {
	assert.True(t, IsLegacyTemplateID("beginner"))
	assert.False(t, IsLegacyTemplateID("quick-start"))
	assert.False(t, IsLegacyTemplateID("mystery"))
}

func TestMigrationTarget_IDs(t *testing.T) {
	assert.Equal(t, []string{"one"}, MigrationTarget{Single: "one"}.IDs())
	assert.Equal(t, []string{"a", "b"}, MigrationTarget{Expand: []string{"a", "b"}}.IDs())
}
