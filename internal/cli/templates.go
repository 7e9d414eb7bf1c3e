package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kaspa-aio/kaspactl/internal/catalog"
	"github.com/kaspa-aio/kaspactl/internal/system"
	"github.com/kaspa-aio/kaspactl/internal/ui"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Browse installation templates",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, t := range catalog.AllTemplates() {
			fmt.Printf("%s %s\n", t.Icon, ui.Cyan(t.ID))
			ui.Muted("  " + t.Description)
			if t.Dynamic {
				ui.Muted("  Profiles: chosen interactively")
			} else {
				ui.Muted("  Profiles: " + strings.Join(t.Profiles, ", "))
				ui.Muted(fmt.Sprintf("  Needs: %.0f GB memory, %.0f cores, %.0f GB disk (setup %s)",
					t.Resources.MinMemory, t.Resources.MinCPU, t.Resources.MinDisk, t.SetupTime))
			}
			fmt.Println()
		}
		return nil
	},
}

var recommendUseCase string

var templatesRecommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank templates against this host",
	Example: `  kaspactl templates recommend
  kaspactl templates recommend --use-case mining`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sys := system.DetectResources(installDir)
		ui.Info(fmt.Sprintf("Host: %.0f GB memory, %.0f cores, %.0f GB free disk",
			sys.MemoryGB, sys.CPUCores, sys.DiskGB))
		fmt.Println()

		for _, rec := range catalog.TemplateRecommendations(sys, recommendUseCase) {
			line := fmt.Sprintf("%-20s score %d", rec.Template.ID, rec.Score)
			switch {
			case rec.Recommended:
				ui.Success(line)
			case len(rec.Insufficient) > 0:
				ui.Warn(line + "  (insufficient " + strings.Join(rec.Insufficient, ", ") + ")")
			default:
				ui.Muted(line)
			}
		}
		return nil
	},
}

var (
	searchTags []string
)

var templatesSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search templates by text or tags",
	Example: `  kaspactl templates search explorer
  kaspactl templates search --tags mining,solo`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var results []catalog.Template
		switch {
		case len(searchTags) > 0:
			results = catalog.SearchTemplatesByTags(searchTags)
		case len(args) > 0:
			results = catalog.SearchTemplates(strings.Join(args, " "))
		default:
			return fmt.Errorf("give a query or --tags")
		}

		if len(results) == 0 {
			ui.Muted("No templates matched.")
			return nil
		}
		for _, t := range results {
			fmt.Printf("%s %s\n", ui.Cyan(t.ID), t.Name)
			ui.Muted("  " + t.Description)
		}
		return nil
	},
}

var templatesShowCmd = &cobra.Command{
	Use:   "show <template>",
	Short: "Show one template in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, ok := catalog.GetTemplate(args[0])
		if !ok {
			return fmt.Errorf("template %q: %w", args[0], catalog.ErrNotFound)
		}

		ui.Header(t.Icon + " " + t.Name)
		ui.Muted(t.Description)
		fmt.Println()
		ui.Info("Category: " + t.Category + " / use case: " + t.UseCase)
		if !t.Dynamic {
			ui.Info("Profiles: " + strings.Join(t.Profiles, ", "))
		}
		for _, f := range t.Features {
			ui.Muted("  + " + f)
		}
		for _, b := range t.Benefits {
			ui.Muted("  * " + b)
		}

		check, err := catalog.ValidateTemplate(t.ID)
		if err != nil {
			return err
		}
		for _, msg := range check.Errors {
			ui.Error(msg)
		}
		for _, msg := range check.Warnings {
			ui.Warn(msg)
		}
		return nil
	},
}

func init() {
	templatesRecommendCmd.Flags().StringVar(&recommendUseCase, "use-case", "", "use case to favor (personal, development, mining, analytics)")
	templatesSearchCmd.Flags().StringSliceVar(&searchTags, "tags", nil, "match by tags instead of fuzzy text")

	templatesCmd.AddCommand(templatesListCmd, templatesRecommendCmd, templatesSearchCmd, templatesShowCmd)
	rootCmd.AddCommand(templatesCmd)
}
