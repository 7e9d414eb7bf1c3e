package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func parseCompose(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))
	return doc
}

func composeServices(t *testing.T, doc map[string]any) map[string]any {
	t.Helper()
	services, ok := doc["services"].(map[string]any)
	require.True(t, ok, "services section missing")
	return services
}

func TestGenerateCompose_SingleProfile(t *testing.T) {
	data, err := GenerateCompose([]string{"kaspa-node"})
	require.NoError(t, err)

	doc := parseCompose(t, data)
	assert.Equal(t, "kaspa-aio", doc["name"])

	services := composeServices(t, doc)
	require.Contains(t, services, "kaspad")
	assert.Len(t, services, 1)
}

func TestGenerateCompose_MergesFragmentsAcrossProfiles(t *testing.T) {
	data, err := GenerateCompose([]string{"kaspa-node", "indexer-services", "mining"})
	require.NoError(t, err)

	services := composeServices(t, parseCompose(t, data))
	for _, name := range []string{"kaspad", "indexer-db", "simply-kaspa-indexer", "kaspa-rest-server", "kaspa-stratum-bridge"} {
		assert.Contains(t, services, name)
	}
}

func TestGenerateCompose_DependencyFragmentsIncluded(t *testing.T) {
	data, err := GenerateCompose([]string{"kaspa-user-applications"})
	require.NoError(t, err)

	services := composeServices(t, parseCompose(t, data))
	assert.Contains(t, services, "aio-dashboard", "dashboard is pulled in as a dependency")
	assert.Contains(t, services, "kaspa-explorer")
}

func TestGenerateCompose_StampsEnabledProfiles(t *testing.T) {
	data, err := GenerateCompose([]string{"kaspa-node", "dashboard"})
	require.NoError(t, err)

	doc := parseCompose(t, data)
	stamp, ok := doc["x-kaspactl"].(map[string]any)
	require.True(t, ok)

	profiles, ok := stamp["enabled_profiles"].([]any)
	require.True(t, ok)
	assert.ElementsMatch(t, []any{"kaspa-node", "dashboard"}, profiles)
	assert.NotEmpty(t, stamp["generated_at"])
}

func TestGenerateCompose_UnknownProfileIsDropped(t *testing.T) {
	// Unknown IDs are dropped during resolution, so the call succeeds with
	// only the known fragments merged.
	data, err := GenerateCompose([]string{"kaspa-node", "no-such-profile"})
	require.NoError(t, err)
	services := composeServices(t, parseCompose(t, data))
	assert.Len(t, services, 1)
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"scalar": "old",
		"nested": map[string]any{"keep": 1, "replace": "old"},
		"list":   []any{"a"},
	}
	src := map[string]any{
		"scalar": "new",
		"nested": map[string]any{"replace": "new", "add": 2},
		"list":   []any{"b"},
		"extra":  true,
	}

	deepMerge(dst, src)

	assert.Equal(t, "new", dst["scalar"])
	assert.Equal(t, map[string]any{"keep": 1, "replace": "new", "add": 2}, dst["nested"])
	assert.Equal(t, []any{"a", "b"}, dst["list"])
	assert.Equal(t, true, dst["extra"])
}
