package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kaspa-aio/kaspactl/internal/lifecycle"
	"github.com/kaspa-aio/kaspactl/internal/state"
	"github.com/kaspa-aio/kaspactl/internal/system"
	"github.com/kaspa-aio/kaspactl/internal/ui"
)

var (
	removeData bool
	removeYes  bool
)

var removeCmd = &cobra.Command{
	Use:   "remove <profile>",
	Short: "Remove a profile from the installation",
	Long: `Stop and remove one profile's containers, strip its configuration from
.env and update the installation state.

Volumes survive unless --data is passed. Profiles that other installed
profiles depend on cannot be removed.`,
	Example: `  kaspactl remove mining
  kaspactl remove indexer-services --data`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID := args[0]

		st, err := state.Load(statePath())
		if err != nil {
			return fmt.Errorf("load installation state: %w", err)
		}
		current := st.Profiles.Selected

		check := lifecycle.ValidateRemoval(profileID, current)
		if !check.CanRemove {
			for _, issue := range check.Issues {
				ui.Error(issue.Message)
			}
			return fmt.Errorf("cannot remove %s", profileID)
		}

		opts := lifecycle.RemoveOptions{Current: current, RemoveData: removeData}

		if removeData && !removeYes {
			if !system.HasTTY() {
				return fmt.Errorf("--data deletes volumes: confirm with --yes in non-interactive runs")
			}
			for _, dt := range lifecycle.ProfileData(profileID) {
				label := dt.Description + " (" + dt.SizeRange + ")"
				if dt.Critical {
					label += " [hard to rebuild]"
				}
				wipe, err := ui.Confirm("Delete "+label+"?", !dt.Critical)
				if err != nil {
					return err
				}
				opts.DataOptions = append(opts.DataOptions, lifecycle.DataOption{Type: dt.Type, Remove: wipe})
			}
		}

		if !removeYes {
			if system.HasTTY() {
				ok, err := ui.Confirm("Remove profile "+profileID+"?", false)
				if err != nil {
					return err
				}
				if !ok {
					ui.Muted("Aborted.")
					return nil
				}
			}
		}

		if dryRun {
			ui.Info("Would remove profile " + profileID)
			return nil
		}

		m := newManager()
		result, err := m.RemoveProfile(profileID, opts)
		if err != nil {
			var blocked *lifecycle.BlockedError
			if errors.As(err, &blocked) {
				for _, issue := range blocked.Issues {
					ui.Error(issue.Message)
				}
			}
			return err
		}

		ui.Success("Removed services: " + strings.Join(result.RemovedServices, ", "))
		if result.BackupID != "" {
			ui.Muted("Backup: " + result.BackupID)
		}
		if result.Summary.RemovedVolumes {
			ui.Warn("Attached volumes were removed.")
		}
		for _, dt := range result.PreservedData {
			ui.Muted("Preserved: " + dt.Description)
		}
		return nil
	},
}

func init() {
	removeCmd.Flags().BoolVar(&removeData, "data", false, "also remove the profile's volumes")
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "skip confirmation prompts")
	rootCmd.AddCommand(removeCmd)
}
