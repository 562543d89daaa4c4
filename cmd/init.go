package cmd

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/toba/ghtask/internal/config"
	"github.com/toba/ghtask/internal/constants"
	"github.com/toba/ghtask/internal/github"
	"github.com/toba/ghtask/internal/output"
	"github.com/toba/ghtask/internal/ui"
)

var (
	initUsername string
	initTokenEnv string
	initAPIURL   string
	initForce    bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create " + constants.ConfigFileName + " for a repository",
	Long: `Writes ` + constants.ConfigFileName + ` in the current directory, or next to --config when given.
The token itself is never written; it is read from the variable named by --token-env.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initUsername, "username", "", "GitHub login")
	initCmd.Flags().StringVar(&initTokenEnv, "token-env", constants.DefaultTokenEnv, "environment variable holding the API token")
	initCmd.Flags().StringVar(&initAPIURL, "api-url", "", "API base URL (default "+github.DefaultBaseURL+")")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if repoURL == "" {
		return cmdError(jsonOut, output.ErrValidation, "--repo is required")
	}
	repo, err := parseRepository(repoURL)
	if err != nil {
		return cmdError(jsonOut, output.ErrValidation, "%v", err)
	}

	dir := "."
	if cfgPath != "" {
		dir = filepath.Dir(cfgPath)
	}
	path := filepath.Join(dir, constants.ConfigFileName)

	out := config.Default()
	if _, err := os.Stat(path); err == nil {
		if !initForce {
			return cmdError(jsonOut, output.ErrFileError, "%s already exists (use --force to overwrite)", path)
		}
		// Keep settings the flags do not cover.
		if out, err = config.Load(path); err != nil {
			return cmdError(jsonOut, output.ErrConfig, "loading %s: %v", path, err)
		}
	}

	out.Repository = repo.URL()
	out.Username = cmp.Or(initUsername, out.Username)
	out.TokenEnv = cmp.Or(initTokenEnv, out.TokenEnv)
	out.APIURL = cmp.Or(initAPIURL, out.APIURL)
	if err := out.Save(dir); err != nil {
		return cmdError(jsonOut, output.ErrFileError, "%v", err)
	}
	logger.Debug("config written", "path", path, "repository", repo.String())

	msg := fmt.Sprintf("Wrote %s for %s", path, repo)
	if jsonOut {
		return output.SuccessMessage(msg)
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Render(msg))
	return nil
}
