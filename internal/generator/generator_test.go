package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfig_ProfileDefaults(t *testing.T) {
	cfg := GenerateConfig([]string{"kaspa-node"}, map[string]string{})
	assert.Equal(t, "mainnet", cfg["KASPA_NODE_NETWORK"])
	assert.Equal(t, "16110", cfg["KASPA_NODE_RPC_PORT"])
}

func TestGenerateConfig_BaseOverridesDefaults(t *testing.T) {
	cfg := GenerateConfig([]string{"kaspa-node"}, map[string]string{
		"KASPA_NODE_NETWORK": "testnet-10",
	})
	assert.Equal(t, "testnet-10", cfg["KASPA_NODE_NETWORK"])
}

func TestGenerateConfig_GeneratesRequiredSecrets(t *testing.T) {
	cfg := GenerateConfig([]string{"kaspa-node", "indexer-services"}, map[string]string{})
	assert.Len(t, cfg["INDEXER_DB_PASSWORD"], 24)
}

func TestGenerateConfig_DoesNotOverwriteProvidedSecret(t *testing.T) {
	cfg := GenerateConfig([]string{"kaspa-node", "indexer-services"}, map[string]string{
		"INDEXER_DB_PASSWORD": "hunter2",
	})
	assert.Equal(t, "hunter2", cfg["INDEXER_DB_PASSWORD"])
}

func TestGenerateConfig_NonSecretRequiredKeysStayUnset(t *testing.T) {
	// MINING_ADDRESS is required but not secret-like; nothing sensible can
	// be generated for it, the caller must supply it.
	cfg := GenerateConfig([]string{"kaspa-node", "mining"}, map[string]string{})
	_, ok := cfg["MINING_ADDRESS"]
	assert.False(t, ok)
}

func TestGenerateConfig_IncludesDependencyDefaults(t *testing.T) {
	cfg := GenerateConfig([]string{"kaspa-user-applications"}, map[string]string{})
	assert.Equal(t, "8090", cfg["DASHBOARD_PORT"])
}

func TestGenerateEnvFile_Deterministic(t *testing.T) {
	cfg := GenerateConfig([]string{"kaspa-node", "mining"}, map[string]string{
		"MINING_ADDRESS": "kaspa:qq00",
	})
	first := GenerateEnvFile(cfg, []string{"kaspa-node", "mining"})
	second := GenerateEnvFile(cfg, []string{"kaspa-node", "mining"})
	assert.Equal(t, first, second)
}

func TestGenerateEnvFile_GroupsByProfile(t *testing.T) {
	cfg := GenerateConfig([]string{"kaspa-node", "mining"}, map[string]string{
		"MINING_ADDRESS": "kaspa:qq00",
	})
	content := GenerateEnvFile(cfg, []string{"kaspa-node", "mining"})

	nodeHeader := strings.Index(content, "# Kaspa Node")
	miningHeader := strings.Index(content, "# Mining")
	require.NotEqual(t, -1, nodeHeader)
	require.NotEqual(t, -1, miningHeader)
	assert.Less(t, nodeHeader, miningHeader, "groups follow resolution order")

	assert.Contains(t, content, "MINING_ADDRESS=kaspa:qq00\n")
}

func TestGenerateEnvFile_UnownedKeysLandInOther(t *testing.T) {
	content := GenerateEnvFile(map[string]string{
		"CUSTOM_FLAG":        "1",
		"KASPA_NODE_NETWORK": "mainnet",
	}, []string{"kaspa-node"})

	assert.Contains(t, content, "# Other\nCUSTOM_FLAG=1\n")
}

func TestGenerateEnvFile_QuotesValuesWithSpaces(t *testing.T) {
	content := GenerateEnvFile(map[string]string{"DASHBOARD_TITLE": "My Kaspa Stack"}, []string{"dashboard"})
	assert.Contains(t, content, `DASHBOARD_TITLE="My Kaspa Stack"`)
}

func TestSaveEnvFile_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", ".env")
	require.NoError(t, SaveEnvFile("A=1\n", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A=1\n", string(data))
}

func TestGeneratePassword(t *testing.T) {
	p1 := GeneratePassword(24)
	p2 := GeneratePassword(24)
	assert.Len(t, p1, 24)
	assert.NotEqual(t, p1, p2)
	for _, r := range p1 {
		assert.True(t, (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'),
			"unexpected character %q", r)
	}
}
