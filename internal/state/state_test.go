package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileGivesFreshState(t *testing.T) {
	st, err := Load(filepath.Join(t.TempDir(), "installation-state.json"))
	require.NoError(t, err)
	assert.Equal(t, stateVersion, st.Version)
	assert.Empty(t, st.Profiles.Selected)
	assert.False(t, st.InstalledAt.IsZero())
}

func TestLoad_CorruptFileGivesFreshState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "installation-state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	st, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Empty(t, st.Profiles.Selected)
	assert.Empty(t, st.History)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "installation-state.json")

	st := newInstallState()
	st.AddProfile("kaspa-node")
	st.AddProfile("dashboard")
	st.AppendHistory("install-profile", "kaspa-node", "cli")
	require.NoError(t, st.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"kaspa-node", "dashboard"}, loaded.Profiles.Selected)
	require.Len(t, loaded.History, 1)
	assert.Equal(t, "install-profile", loaded.History[0].Action)
	assert.False(t, loaded.LastModified.IsZero())
}

func TestSave_LeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "installation-state.json")
	require.NoError(t, newInstallState().Save(path))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestAddProfile_Deduplicates(t *testing.T) {
	st := newInstallState()
	st.AddProfile("kaspa-node")
	st.AddProfile("kaspa-node")
	assert.Equal(t, []string{"kaspa-node"}, st.Profiles.Selected)
}

func TestRemoveProfile(t *testing.T) {
	st := newInstallState()
	st.AddProfile("kaspa-node")
	st.AddProfile("mining")
	st.RemoveProfile("kaspa-node")
	assert.Equal(t, []string{"mining"}, st.Profiles.Selected)

	st.RemoveProfile("not-installed")
	assert.Equal(t, []string{"mining"}, st.Profiles.Selected)
}

func TestAppendHistory_IsAppendOnly(t *testing.T) {
	st := newInstallState()
	st.AppendHistory("install-profile", "kaspa-node", "cli")
	st.AppendHistory("add-profile", "mining", "cli", "local_node")
	st.AppendHistory("remove-profile", "mining", "cli")

	require.Len(t, st.History, 3)
	assert.Equal(t, "install-profile", st.History[0].Action)
	assert.Equal(t, []string{"local_node"}, st.History[1].Options)
	assert.Equal(t, "remove-profile", st.History[2].Action)
	assert.False(t, st.History[0].Timestamp.After(st.History[2].Timestamp))
}
