package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toba/ghtask/internal/constants"
	"github.com/toba/ghtask/internal/output"
)

// Set by the linker: -X github.com/toba/ghtask/cmd.ver=...
var (
	ver    = "dev"
	commit = "none"
	date   = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version info",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOut {
			return output.Raw(map[string]string{
				"name":    constants.AppName,
				"version": ver,
				"commit":  commit,
				"date":    date,
			})
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s) built %s\n", constants.AppName, ver, commit, date)
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
