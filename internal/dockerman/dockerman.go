// Package dockerman drives the live deployment through the docker compose
// CLI. Timeouts and retries belong to compose itself; this package only
// shells out and reports.
package dockerman

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/kaspa-aio/kaspactl/internal/catalog"
	"github.com/kaspa-aio/kaspactl/internal/resolver"
	"github.com/kaspa-aio/kaspactl/internal/ui"
)

// Manager runs compose commands against the installation directory holding
// docker-compose.yml and .env.
type Manager struct {
	Dir    string
	DryRun bool
}

// RemoveSummary reports what a RemoveServices call actually did.
type RemoveSummary struct {
	StoppedServices []string
	RemovedVolumes  bool
}

func (m *Manager) compose(args ...string) *exec.Cmd {
	cmd := exec.Command("docker", append([]string{"compose"}, args...)...)
	cmd.Dir = m.Dir
	return cmd
}

// StartServices brings up only the services belonging to profileIDs, in
// startup order, one order tier at a time. Services in the same tier start
// together; compose itself waits on declared healthchecks.
func (m *Manager) StartServices(profileIDs []string) error {
	order := resolver.StartupOrder(profileIDs)
	wanted := make(map[string]bool, len(profileIDs))
	for _, id := range profileIDs {
		wanted[id] = true
	}

	var tiers [][]string
	lastOrder := -1
	for _, s := range order {
		if !wanted[s.Profile] {
			continue
		}
		if s.Service.StartupOrder != lastOrder {
			tiers = append(tiers, nil)
			lastOrder = s.Service.StartupOrder
		}
		tiers[len(tiers)-1] = append(tiers[len(tiers)-1], s.Service.Name)
	}

	progress := ui.NewProgressTracker(len(tiers))
	for _, tier := range tiers {
		if m.DryRun {
			ui.Info("Would start: " + strings.Join(tier, ", "))
			continue
		}
		args := append([]string{"up", "-d", "--wait"}, tier...)
		cmd := m.compose(args...)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("start services %s: %w", strings.Join(tier, ", "), err)
		}
		progress.Step(strings.Join(tier, ", "))
	}
	return nil
}

// StopServices stops the services of profileIDs without removing containers.
func (m *Manager) StopServices(profileIDs []string) error {
	names := serviceNames(profileIDs)
	if len(names) == 0 {
		return nil
	}
	if m.DryRun {
		ui.Info("Would stop: " + strings.Join(names, ", "))
		return nil
	}
	cmd := m.compose(append([]string{"stop"}, names...)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("stop services: %w", err)
	}
	return nil
}

// RemoveServices stops and removes the named services. With removeData the
// attached volumes go too; without it every volume survives.
func (m *Manager) RemoveServices(serviceNames []string, removeData bool) (RemoveSummary, error) {
	summary := RemoveSummary{StoppedServices: serviceNames, RemovedVolumes: removeData}
	if len(serviceNames) == 0 {
		return summary, nil
	}

	if m.DryRun {
		ui.Info("Would remove: " + strings.Join(serviceNames, ", "))
		return summary, nil
	}

	args := []string{"rm", "--stop", "--force"}
	if removeData {
		args = append(args, "--volumes")
	}
	cmd := m.compose(append(args, serviceNames...)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return summary, fmt.Errorf("remove services: %w", err)
	}
	return summary, nil
}

// RunningServices returns the compose services currently up.
func (m *Manager) RunningServices() ([]string, error) {
	out, err := m.compose("ps", "--status", "running", "--services").Output()
	if err != nil {
		return nil, fmt.Errorf("list running services: %w", err)
	}

	var names []string
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line != "" {
			names = append(names, line)
		}
	}
	return names, nil
}

// serviceNames flattens the services owned directly by profileIDs, without
// resolving dependencies: stopping a profile must not stop what it depends on.
func serviceNames(profileIDs []string) []string {
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
