package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var updateCmd = LeafCommand{
	Use:   "update",
	Short: "Check whether a newer release is available",
	BoolFlags: []BoolFlag{
		{Name: "force", Usage: "bypass the cached check and query the network"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		force, _ := cmd.Flags().GetBool("force")
		return runUpdate(cmd, homeDir, force, defaultUpdateDeps())
	},
}.Build()

func runUpdate(cmd *cobra.Command, homeDir string, force bool, deps updateDeps) error {
	w := cmd.OutOrStdout()

	if appVersion == "dev" {
		_, _ = fmt.Fprintf(w, "%s\n", Text("Cannot check updates for a dev build"))
		return nil
	}

	latest, fromCache, err := resolveLatestVersion(homeDir, deps, force)
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}

	if fromCache {
		_, _ = fmt.Fprintf(w, "%s\n", Silent("(using cached release information)"))
	}

	if compareVersions(appVersion, latest) >= 0 {
		_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("prayer-counter is up to date (%s)", appVersion)))
		return nil
	}

	_, _ = fmt.Fprintf(w, "%s\n", Warning(fmt.Sprintf("A new version is available: %s → %s", appVersion, Primary(latest))))
	_, _ = fmt.Fprintf(w, "%s\n", Text("Download it from https://github.com/Garko01/prayer-counter/releases"))
	return nil
}
