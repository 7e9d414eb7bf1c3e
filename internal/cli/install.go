package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kaspa-aio/kaspactl/internal/catalog"
	"github.com/kaspa-aio/kaspactl/internal/generator"
	"github.com/kaspa-aio/kaspactl/internal/state"
	"github.com/kaspa-aio/kaspactl/internal/system"
	"github.com/kaspa-aio/kaspactl/internal/ui"
	"github.com/kaspa-aio/kaspactl/internal/validate"
)

var (
	installTemplate string
	installProfiles []string
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Set up a fresh Kaspa stack",
	Long: `Install a new Kaspa stack from a template or an explicit profile list.

Without flags an interactive template picker runs; the custom-setup template
opens a per-profile selector.`,
	Example: `  # Interactive template picker
  kaspactl install

  # Non-interactive, from a template
  kaspactl install --template solo-miner

  # Non-interactive, explicit profiles
  kaspactl install --profiles kaspa-node,dashboard`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println()
		ui.Header("Kaspa All-in-One Installer " + version)
		fmt.Println()

		if dryRun {
			ui.Muted("[DRY-RUN MODE - No changes will be made]")
			fmt.Println()
		} else if err := checkDockerTooling(); err != nil {
			return err
		}

		profiles, config, err := chooseSelection()
		if err != nil {
			return err
		}
		if len(profiles) == 0 {
			ui.Warn("Nothing selected, stopping.")
			return nil
		}

		result := validate.Selection(profiles)
		printValidation(result)
		if !result.Valid {
			return fmt.Errorf("selection is not installable")
		}

		config, err = promptRequiredConfig(result.ResolvedProfiles, config)
		if err != nil {
			return err
		}

		if dryRun {
			ui.Info("Would install profiles: " + strings.Join(result.ResolvedProfiles, ", "))
			return nil
		}

		return materialize(result.ResolvedProfiles, config)
	},
}

func init() {
	installCmd.Flags().StringVarP(&installTemplate, "template", "t", "", "template to install")
	installCmd.Flags().StringSliceVarP(&installProfiles, "profiles", "p", nil, "explicit profile list, bypassing templates")
	rootCmd.AddCommand(installCmd)
}

// checkDockerTooling fails early, before the wizard, when containers could
// never start.
func checkDockerTooling() error {
	if !system.IsDockerInstalled() {
		return fmt.Errorf("docker not found in PATH, install Docker Engine first")
	}
	if !system.IsComposeAvailable() {
		return fmt.Errorf("docker compose plugin not available, upgrade your Docker installation")
	}
	return nil
}

// chooseSelection resolves what to install from flags or interactively.
func chooseSelection() ([]string, map[string]string, error) {
	if len(installProfiles) > 0 {
		warnLegacyNamesOnce(installProfiles)
		return catalog.MigrateProfileIDs(installProfiles), map[string]string{}, nil
	}

	templateID := installTemplate
	if templateID == "" {
		if !system.HasTTY() {
			return nil, nil, fmt.Errorf("no TTY: pass --template or --profiles")
		}
		var err error
		templateID, err = ui.SelectTemplate()
		if err != nil {
			return nil, nil, err
		}
	}

	t, ok := catalog.GetTemplate(templateID)
	if !ok {
		return nil, nil, fmt.Errorf("template %q: %w", templateID, catalog.ErrNotFound)
	}

	if t.Dynamic {
		selected, confirmed, err := ui.RunSelector(nil)
		if err != nil || !confirmed {
			return nil, nil, err
		}
		return selected, map[string]string{}, nil
	}

	config, err := catalog.ApplyTemplate(t.ID, map[string]string{})
	if err != nil {
		return nil, nil, err
	}
	return catalog.MigrateProfileIDs(t.Profiles), config, nil
}

// warnLegacyNamesOnce explains the profile rename the first time an old name
// shows up; later runs migrate silently.
func warnLegacyNamesOnce(ids []string) {
	legacy := false
	for _, id := range ids {
		if catalog.IsLegacyProfileID(id) {
			legacy = true
			break
		}
	}
	if !legacy {
		return
	}

	notices, err := state.LoadNotices(state.NoticePath(installDir))
	if err != nil || !notices.ShouldShow(state.NoticeLegacyNames) {
		return
	}
	ui.Warn("Some profile names come from an older release and were translated to their current equivalents.")
	notices.MarkSeen(state.NoticeLegacyNames)
	_ = state.SaveNotices(state.NoticePath(installDir), notices)
}

// promptRequiredConfig collects required keys that have no value and no
// generated default, e.g. the mining payout address.
func promptRequiredConfig(profiles []string, config map[string]string) (map[string]string, error) {
	preview := generator.GenerateConfig(profiles, config)

	for _, id := range profiles {
		p, ok := catalog.GetProfile(id)
		if !ok {
			continue
		}
		for _, key := range p.Configuration.Required {
			if preview[key] != "" {
				continue
			}
			if !system.HasTTY() {
				return nil, fmt.Errorf("required configuration %s is unset (profile %s)", key, id)
			}
			value, err := ui.Input(fmt.Sprintf("%s (%s)", key, p.Name), "")
			if err != nil {
				return nil, err
			}
			config[key] = value
		}
	}
	return config, nil
}

// materialize writes .env, docker-compose.yml and the installation state,
// then starts everything in order.
func materialize(profiles []string, config map[string]string) error {
	cfg := generator.GenerateConfig(profiles, config)
	if err := generator.SaveEnvFile(generator.GenerateEnvFile(cfg, profiles), filepath.Join(installDir, ".env")); err != nil {
		return err
	}

	composeContent, err := generator.GenerateCompose(profiles)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(installDir, "docker-compose.yml"), composeContent, 0600); err != nil {
		return fmt.Errorf("save compose file: %w", err)
	}

	st, err := state.Load(statePath())
	if err != nil {
		return fmt.Errorf("load installation state: %w", err)
	}
	for _, id := range profiles {
		st.AddProfile(id)
		st.AppendHistory("install-profile", id, "cli")
	}
	if err := st.Save(statePath()); err != nil {
		return fmt.Errorf("save installation state: %w", err)
	}

	m := newManager()
	if err := m.Docker.StartServices(profiles); err != nil {
		return err
	}

	fmt.Println()
	ui.Success("Installation complete!")
	ui.Muted("Configuration: " + filepath.Join(installDir, ".env"))
	return nil
}

func printValidation(result validate.Result) {
	for _, issue := range result.Errors {
		ui.Error(issue.Message)
	}
	for _, issue := range result.Warnings {
		ui.Warn(issue.Message)
	}
	if len(result.ResolvedProfiles) > 0 {
		ui.Info("Resolved profiles: " + strings.Join(result.ResolvedProfiles, ", "))
		ui.Info(fmt.Sprintf("Requires at least %.0f GB memory, %.0f cores, %.0f GB disk",
			result.Requirements.MinMemory, result.Requirements.MinCPU, result.Requirements.MinDisk))
	}
}
