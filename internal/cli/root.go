package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kaspa-aio/kaspactl/internal/backup"
	"github.com/kaspa-aio/kaspactl/internal/dockerman"
	"github.com/kaspa-aio/kaspactl/internal/lifecycle"
)

var (
	version = "dev"

	installDir string
	dryRun     bool
)

var rootCmd = &cobra.Command{
	Use:   "kaspactl",
	Short: "Install and manage a self-hosted Kaspa node stack",
	Long: `kaspactl - Kaspa All-in-One installer

Installs a Docker Compose stack of Kaspa services (node, indexers, user
applications, mining bridge, dashboard) from named profiles, and safely adds
or removes profiles on a running installation.`,
	Example: `  # Interactive setup with a template picker
  kaspactl install

  # Quick setup from a template
  kaspactl install --template quick-start

  # Add indexer services to a running installation
  kaspactl add indexer-services

  # Remove the mining bridge, keeping its data
  kaspactl remove mining`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if dir := os.Getenv("KASPACTL_DIR"); dir != "" && !cmd.Flags().Changed("dir") {
			installDir = dir
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&installDir, "dir", defaultInstallDir(), "installation directory holding .env and docker-compose.yml")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "print what would change without touching containers")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("kaspactl v%s\n", version)
	},
}

func defaultInstallDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "/opt/kaspa-aio"
	}
	return filepath.Join(home, ".kaspa-aio")
}

func statePath() string {
	return filepath.Join(installDir, "installation-state.json")
}

func backupDir() string {
	return filepath.Join(installDir, "backups")
}

func newManager() *lifecycle.Manager {
	return &lifecycle.Manager{
		InstallDir: installDir,
		StatePath:  statePath(),
		Source:     "cli",
		Docker:     &dockerman.Manager{Dir: installDir, DryRun: dryRun},
		Backups:    &backup.Manager{InstallDir: installDir, BackupDir: backupDir()},
	}
}

func Execute() error {
	return rootCmd.Execute()
}
