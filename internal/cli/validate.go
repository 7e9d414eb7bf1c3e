package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kaspa-aio/kaspactl/internal/catalog"
	"github.com/kaspa-aio/kaspactl/internal/state"
	"github.com/kaspa-aio/kaspactl/internal/system"
	"github.com/kaspa-aio/kaspactl/internal/ui"
	"github.com/kaspa-aio/kaspactl/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate [profile...]",
	Short: "Check a profile selection without changing anything",
	Long: `Validate a selection of profiles: dependency resolution, prerequisites,
conflicts, port collisions and aggregate resource needs.

Without arguments the currently installed selection is validated. Legacy
profile names are accepted and reported under their current names.`,
	Example: `  kaspactl validate
  kaspactl validate kaspa-node mining
  kaspactl validate kaspad kasplex-indexer`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := args
		if len(ids) == 0 {
			st, err := state.Load(statePath())
			if err != nil {
				return fmt.Errorf("load installation state: %w", err)
			}
			ids = st.Profiles.Selected
			if len(ids) == 0 {
				ui.Muted("Nothing installed and no profiles given.")
				return nil
			}
		}

		for _, id := range ids {
			if catalog.IsLegacyProfileID(id) {
				ui.Warn(fmt.Sprintf("%q is a legacy name, validating as %s",
					id, strings.Join(catalog.MigrateProfileID(id), ", ")))
			}
		}

		result := validate.Selection(ids)
		printValidation(result)

		sys := system.DetectResources(installDir)
		if sys.MemoryGB > 0 && result.Requirements.MinMemory > sys.MemoryGB {
			ui.Warn(fmt.Sprintf("This host has %.0f GB memory, below the %.0f GB minimum.",
				sys.MemoryGB, result.Requirements.MinMemory))
		}

		if !result.Valid {
			return fmt.Errorf("selection is not installable")
		}
		ui.Success("Selection is installable.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
