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

var addIntegration string

var addCmd = &cobra.Command{
	Use:   "add <profile>",
	Short: "Add a profile to the running installation",
	Long: `Add one profile and its dependencies to an existing installation.

Profiles that can consume either a local or a public counterpart (for example
the indexer talking to a local node versus the public API) offer an
integration choice; pick one interactively or pass --integration.`,
	Example: `  kaspactl add mining
  kaspactl add indexer-services --integration local_node`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID := args[0]

		st, err := state.Load(statePath())
		if err != nil {
			return fmt.Errorf("load installation state: %w", err)
		}
		current := st.Profiles.Selected

		m := newManager()

		chosen := addIntegration
		menu := lifecycle.GetIntegrationOptions(profileID, current)
		if len(menu.Options) > 0 && chosen == "" {
			if !system.HasTTY() {
				return fmt.Errorf("profile %s needs an integration choice: pass --integration with one of %s",
					profileID, strings.Join(optionTypes(menu.Options), ", "))
			}
			chosen, err = ui.SelectChoice("How should "+profileID+" connect?", choicesFor(menu.Options))
			if err != nil {
				return err
			}
		}

		var integration []lifecycle.IntegrationOption
		if chosen != "" {
			opt, ok := findOption(menu.Options, chosen)
			if !ok {
				return fmt.Errorf("unknown integration %q for %s: expected one of %s",
					chosen, profileID, strings.Join(optionTypes(menu.Options), ", "))
			}
			integration = append(integration, opt)
		}

		if dryRun {
			ui.Info("Would add profile " + profileID)
			if chosen != "" {
				ui.Muted("Integration: " + chosen)
			}
			return nil
		}

		result, err := m.AddProfile(profileID, lifecycle.AddOptions{
			Current:     current,
			Integration: integration,
		})
		if err != nil {
			var blocked *lifecycle.BlockedError
			if errors.As(err, &blocked) {
				for _, issue := range blocked.Issues {
					ui.Error(issue.Message)
				}
			}
			return err
		}

		if chosen == "public_api" || chosen == "public_indexer" {
			warnPublicAPIOnce()
		}

		ui.Success("Added profiles: " + strings.Join(result.AddedProfiles, ", "))
		if result.BackupID != "" {
			ui.Muted("Pre-change backup: " + result.BackupID)
		}
		if len(result.IntegrationChanges) > 0 {
			fmt.Println()
			ui.Info("Configuration changes:")
			for _, change := range result.IntegrationChanges {
				ui.Muted(fmt.Sprintf("  %s = %s (%s)", change.Key, change.New, change.Profile))
			}
		}
		if result.RequiresRestart {
			ui.Warn("Existing services read these values at startup; restart them to apply.")
		}
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addIntegration, "integration", "", "integration option to apply without prompting")
	rootCmd.AddCommand(addCmd)
}

// warnPublicAPIOnce shows the shared rate-limit warning the first time a
// public endpoint integration is chosen on this installation.
func warnPublicAPIOnce() {
	notices, err := state.LoadNotices(state.NoticePath(installDir))
	if err != nil || !notices.ShouldShow(state.NoticePublicAPILimits) {
		return
	}
	ui.Warn("Public Kaspa API endpoints are shared and rate limited; heavy workloads should run a local indexer.")
	notices.MarkSeen(state.NoticePublicAPILimits)
	_ = state.SaveNotices(state.NoticePath(installDir), notices)
}

func findOption(options []lifecycle.IntegrationOption, optionType string) (lifecycle.IntegrationOption, bool) {
	for _, o := range options {
		if o.Type == optionType {
			return o, true
		}
	}
	return lifecycle.IntegrationOption{}, false
}

func optionTypes(options []lifecycle.IntegrationOption) []string {
	types := make([]string, 0, len(options))
	for _, o := range options {
		types = append(types, o.Type)
	}
	return types
}

func choicesFor(options []lifecycle.IntegrationOption) []ui.Choice {
	choices := make([]ui.Choice, 0, len(options))
	for _, o := range options {
		choices = append(choices, ui.Choice{
			Key:         o.Type,
			Label:       o.Name,
			Detail:      o.Impact,
			Recommended: o.Recommended,
		})
	}
	return choices
}
