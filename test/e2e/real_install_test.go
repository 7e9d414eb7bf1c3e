//go:build e2e

package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaspa-aio/kaspactl/testutil"
)

// TestE2E_InstallQuickStart runs a real installation of the quick-start
// template against a live Docker daemon. It pulls images and syncs nothing;
// the node is stopped and removed at the end.
func TestE2E_InstallQuickStart(t *testing.T) {
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not available")
	}

	binary := testutil.BuildTestBinary(t)
	dir := t.TempDir()

	result := testutil.RunBinary(t, binary, dir, "install", "--template", "quick-start")
	testutil.AssertCommandSuccess(t, result)

	for _, name := range []string{".env", "docker-compose.yml", "installation-state.json"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	status := testutil.RunBinary(t, binary, dir, "status")
	testutil.AssertCommandSuccess(t, status)
	assert.Contains(t, status.Stdout, "kaspad")
	assert.Contains(t, status.Stdout, "aio-dashboard")

	t.Cleanup(func() {
		down := exec.Command("docker", "compose", "down", "--volumes")
		down.Dir = dir
		_ = down.Run()
	})

	remove := testutil.RunBinary(t, binary, dir, "remove", "--yes", "dashboard")
	testutil.AssertCommandSuccess(t, remove)

	status = testutil.RunBinary(t, binary, dir, "status")
	testutil.AssertCommandSuccess(t, status)
	assert.NotContains(t, status.Stdout, "aio-dashboard")

	st, err := os.ReadFile(filepath.Join(dir, "installation-state.json"))
	require.NoError(t, err)
	assert.Contains(t, string(st), "remove-profile")
}
