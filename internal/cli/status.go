package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kaspa-aio/kaspactl/internal/backup"
	"github.com/kaspa-aio/kaspactl/internal/catalog"
	"github.com/kaspa-aio/kaspactl/internal/dockerman"
	"github.com/kaspa-aio/kaspactl/internal/resolver"
	"github.com/kaspa-aio/kaspactl/internal/state"
	"github.com/kaspa-aio/kaspactl/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show installed profiles and running services",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := state.Load(statePath())
		if err != nil {
			return fmt.Errorf("load installation state: %w", err)
		}

		if len(st.Profiles.Selected) == 0 {
			ui.Muted("Nothing installed. Run: kaspactl install")
			return nil
		}

		running := map[string]bool{}
		docker := &dockerman.Manager{Dir: installDir, DryRun: dryRun}
		if names, err := docker.RunningServices(); err == nil {
			for _, n := range names {
				running[n] = true
			}
		} else {
			ui.Warn("Could not query docker compose; showing configuration only.")
		}

		ui.Header("Installed profiles")
		for _, s := range resolver.StartupOrder(st.Profiles.Selected) {
			marker := ui.Red("stopped")
			if running[s.Service.Name] {
				marker = ui.Green("running")
			}
			fmt.Printf("  %-28s %-12s %s\n", s.Service.Name, s.Profile, marker)
		}

		res := catalog.CalculateResources(resolver.Resolve(st.Profiles.Selected))
		fmt.Println()
		ui.Info(fmt.Sprintf("Minimum footprint: %.0f GB memory, %.0f cores, %.0f GB disk",
			res.MinMemory, res.MinCPU, res.MinDisk))

		backups := &backup.Manager{InstallDir: installDir, BackupDir: backupDir()}
		if list, err := backups.List(); err == nil && len(list) > 0 {
			ui.Muted(fmt.Sprintf("Backups: %d, latest %s (%s)", len(list), list[0].BackupID, list[0].Reason))
		}

		if n := len(st.History); n > 0 {
			last := st.History[n-1]
			ui.Muted(fmt.Sprintf("Last change: %s %s at %s", last.Action, last.ProfileID,
				last.Timestamp.Format("2006-01-02 15:04")))
		}
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the installation change history",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := state.Load(statePath())
		if err != nil {
			return fmt.Errorf("load installation state: %w", err)
		}
		if len(st.History) == 0 {
			ui.Muted("No history yet.")
			return nil
		}
		for _, e := range st.History {
			line := fmt.Sprintf("%s  %-16s %-24s %s",
				e.Timestamp.Format("2006-01-02 15:04"), e.Action, e.ProfileID, e.Source)
			if len(e.Options) > 0 {
				line += "  [" + strings.Join(e.Options, ", ") + "]"
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd, historyCmd)
}
