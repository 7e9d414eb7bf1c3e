package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaspa-aio/kaspactl/internal/validate"
)

func TestValidateAddition_CleanAddition(t *testing.T) {
	check := ValidateAddition("mining", []string{"kaspa-node", "dashboard"})
	assert.True(t, check.CanAdd)
	assert.Equal(t, []string{"mining"}, check.NewProfiles)
	assert.Empty(t, check.Issues)
}

func TestValidateAddition_IncludesNewDependencies(t *testing.T) {
	check := ValidateAddition("kaspa-user-applications", []string{"kaspa-node", "indexer-services"})
	assert.True(t, check.CanAdd)
	assert.ElementsMatch(t, []string{"kaspa-user-applications", "dashboard"}, check.NewProfiles)
}

func TestValidateAddition_AlreadyInstalled(t *testing.T) {
	check := ValidateAddition("kaspa-node", []string{"kaspa-node"})
	assert.False(t, check.CanAdd)
	require.Len(t, check.Issues, 1)
	assert.Contains(t, check.Issues[0].Message, "already installed")
}

func TestValidateAddition_UnknownProfile(t *testing.T) {
	check := ValidateAddition("no-such-profile", []string{"kaspa-node"})
	assert.False(t, check.CanAdd)
	require.Len(t, check.Issues, 1)
	assert.Equal(t, validate.IssueUnknownProfile, check.Issues[0].Type)
}

func TestValidateAddition_MissingPrerequisite(t *testing.T) {
	check := ValidateAddition("mining", []string{"dashboard"})
	assert.False(t, check.CanAdd)
	require.NotEmpty(t, check.Issues)
	assert.Equal(t, validate.IssueMissingPrerequisite, check.Issues[0].Type)
}

func TestValidateAddition_ConflictWithInstalled(t *testing.T) {
	check := ValidateAddition("kaspa-archive-node", []string{"kaspa-node"})
	assert.False(t, check.CanAdd)

	types := make(map[string]bool)
	for _, issue := range check.Issues {
		types[issue.Type] = true
	}
	assert.True(t, types[validate.IssueProfileConflict])
	assert.True(t, types[validate.IssuePortConflict])
}

func TestValidateAddition_IgnoresPreexistingIssues(t *testing.T) {
	// The current installation is already missing mining's prerequisite;
	// adding the dashboard must not be blamed for it.
	check := ValidateAddition("dashboard", []string{"mining"})
	assert.True(t, check.CanAdd, check.Issues)
}

func TestValidateAddition_MigratesLegacyID(t *testing.T) {
	check := ValidateAddition("stratum-bridge", []string{"kaspa-node"})
	assert.True(t, check.CanAdd)
	assert.Equal(t, []string{"mining"}, check.NewProfiles)
}

func TestValidateAddition_BundleLegacyIDExpandsAllMembers(t *testing.T) {
	check := ValidateAddition("kaspa-aio", nil)
	assert.True(t, check.CanAdd, check.Issues)
	assert.ElementsMatch(t, []string{"kaspa-node", "indexer-services", "kaspa-user-applications", "dashboard"}, check.NewProfiles)
}

func TestValidateAddition_BundleLegacyIDSkipsInstalledMembers(t *testing.T) {
	check := ValidateAddition("kaspa-aio", []string{"kaspa-node"})
	assert.True(t, check.CanAdd, check.Issues)
	assert.ElementsMatch(t, []string{"indexer-services", "kaspa-user-applications", "dashboard"}, check.NewProfiles)
}

func TestValidateAddition_BundleLegacyIDAlreadyInstalled(t *testing.T) {
	current := []string{"kaspa-node", "indexer-services", "kaspa-user-applications", "dashboard"}
	check := ValidateAddition("kaspa-aio", current)
	assert.False(t, check.CanAdd)
	require.Len(t, check.Issues, 1)
	assert.Contains(t, check.Issues[0].Message, "already installed")
}

func TestValidateRemoval_CleanRemoval(t *testing.T) {
	check := ValidateRemoval("mining", []string{"kaspa-node", "mining"})
	assert.True(t, check.CanRemove)
	assert.Empty(t, check.Issues)
}

func TestValidateRemoval_NotInstalled(t *testing.T) {
	check := ValidateRemoval("mining", []string{"kaspa-node"})
	assert.False(t, check.CanRemove)
	require.Len(t, check.Issues, 1)
	assert.Contains(t, check.Issues[0].Message, "not installed")
}

func TestValidateRemoval_BlockedByDependent(t *testing.T) {
	check := ValidateRemoval("dashboard", []string{"kaspa-node", "indexer-services", "kaspa-user-applications", "dashboard"})
	assert.False(t, check.CanRemove)
	assert.Contains(t, check.Dependents, "kaspa-user-applications")
}

func TestValidateRemoval_BlockedAsLastPrerequisite(t *testing.T) {
	check := ValidateRemoval("kaspa-node", []string{"kaspa-node", "mining"})
	assert.False(t, check.CanRemove)
	assert.Contains(t, check.Dependents, "mining")
	require.NotEmpty(t, check.Issues)
	assert.Equal(t, validate.IssueMissingPrerequisite, check.Issues[0].Type)
}

func TestValidateRemoval_AllowedWhenAnotherPrerequisiteRemains(t *testing.T) {
	// mining accepts either node flavor; with both present, removing one
	// leaves the prerequisite satisfied.
	check := ValidateRemoval("kaspa-archive-node", []string{"kaspa-archive-node", "kaspa-node", "mining"})
	assert.True(t, check.CanRemove, check.Issues)
}

func TestValidateRemoval_MigratesLegacyID(t *testing.T) {
	check := ValidateRemoval("stratum-bridge", []string{"kaspa-node", "mining"})
	assert.True(t, check.CanRemove)
}

func TestKeyOwner(t *testing.T) {
	cases := []struct {
		key  string
		want string
	}{
		{"MINING_ADDRESS", "mining"},
		{"STRATUM_PORT", "mining"},
		{"KASPA_NODE_NETWORK", "kaspa-node"},
		{"KASPA_ARCHIVE_PRUNING", "kaspa-archive-node"},
		{"INDEXER_DB_PASSWORD", "indexer-services"},
		{"DASHBOARD_PORT", "dashboard"},
		{"UNCLAIMED_KEY", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, keyOwner(tc.key), tc.key)
	}
}

func TestProfileData_CopiesInventory(t *testing.T) {
	data := ProfileData("indexer-services")
	require.Len(t, data, 1)
	assert.True(t, data[0].Critical)

	data[0].Type = "mutated"
	assert.Equal(t, "indexer-database", ProfileData("indexer-services")[0].Type)
}
