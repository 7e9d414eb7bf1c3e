package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func optionByType(menu IntegrationMenu, optionType string) (IntegrationOption, bool) {
	for _, o := range menu.Options {
		if o.Type == optionType {
			return o, true
		}
	}
	return IntegrationOption{}, false
}

func TestGetIntegrationOptions_IndexerWithLocalNode(t *testing.T) {
	menu := GetIntegrationOptions("indexer-services", []string{"kaspa-node"})

	local, ok := optionByType(menu, "local_node")
	require.True(t, ok)
	assert.True(t, local.Recommended)
	assert.Equal(t, "ws://kaspad:17110", local.Config["INDEXER_NODE_URL"])

	public, ok := optionByType(menu, "public_api")
	require.True(t, ok)
	assert.False(t, public.Recommended)
	assert.Equal(t, "https://api.kaspa.org", public.Config["INDEXER_NODE_URL"])
}

func TestGetIntegrationOptions_IndexerWithArchiveNode(t *testing.T) {
	menu := GetIntegrationOptions("indexer-services", []string{"kaspa-archive-node"})

	local, ok := optionByType(menu, "local_node")
	require.True(t, ok)
	assert.Equal(t, "ws://kaspad-archive:17110", local.Config["INDEXER_NODE_URL"])
}

func TestGetIntegrationOptions_IndexerWithoutNode(t *testing.T) {
	menu := GetIntegrationOptions("indexer-services", nil)

	_, hasLocal := optionByType(menu, "local_node")
	assert.False(t, hasLocal)
	_, hasPublic := optionByType(menu, "public_api")
	assert.True(t, hasPublic)
}

func TestGetIntegrationOptions_UserApplications(t *testing.T) {
	withIndexer := GetIntegrationOptions("kaspa-user-applications", []string{"kaspa-node", "indexer-services"})
	local, ok := optionByType(withIndexer, "local_indexer")
	require.True(t, ok)
	assert.True(t, local.Recommended)

	withoutIndexer := GetIntegrationOptions("kaspa-user-applications", []string{"kaspa-node"})
	_, hasLocal := optionByType(withoutIndexer, "local_indexer")
	assert.False(t, hasLocal)
	_, hasPublic := optionByType(withoutIndexer, "public_indexer")
	assert.True(t, hasPublic)
}

func TestGetIntegrationOptions_MiningPrefersRegularNode(t *testing.T) {
	menu := GetIntegrationOptions("mining", []string{"kaspa-node"})
	local, ok := optionByType(menu, "local_node")
	require.True(t, ok)
	assert.True(t, local.Recommended)
	assert.Equal(t, "kaspad:16110", local.Config["MINING_NODE_URL"])
}

func TestGetIntegrationOptions_MiningAgainstArchiveOnly(t *testing.T) {
	menu := GetIntegrationOptions("mining", []string{"kaspa-archive-node"})

	archive, ok := optionByType(menu, "local_archive")
	require.True(t, ok)
	assert.True(t, archive.Recommended, "archive is the only node, so it is the recommendation")
	assert.Equal(t, "kaspad-archive:16110", archive.Config["MINING_NODE_URL"])
}

func TestGetIntegrationOptions_ProfileWithoutChoices(t *testing.T) {
	menu := GetIntegrationOptions("dashboard", []string{"kaspa-node"})
	assert.Empty(t, menu.Options)
	assert.NotEmpty(t, menu.StartupOrder)
}

func TestGetIntegrationOptions_ReportsResourceDelta(t *testing.T) {
	menu := GetIntegrationOptions("mining", []string{"kaspa-node"})
	assert.Equal(t, 1.0, menu.ResourceDelta.MinMemory)
	assert.Equal(t, 0.0, menu.ResourceDelta.MinCPU, "node already needs more CPU than the bridge")
	assert.Equal(t, 5.0, menu.ResourceDelta.MinDisk)
}
