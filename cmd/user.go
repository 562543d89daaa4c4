package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/toba/ghtask/internal/output"
	"github.com/toba/ghtask/internal/ui"
)

var avatarOut string

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Look up users and check credentials",
}

var userShowCmd = &cobra.Command{
	Use:   "show <login>",
	Short: "Show a user's public profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireClient()
		if err != nil {
			return err
		}
		user, err := c.Users().Retrieve(cmd.Context(), args[0])
		if err != nil {
			return fail(err)
		}
		if jsonOut {
			return output.JSON(output.Response{Success: true, User: user})
		}
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, ui.Title.Render(user.Login))
		for _, row := range [][2]string{
			{"name", user.Name},
			{"company", user.Company},
			{"location", user.Location},
			{"blog", user.Blog},
			{"email", user.Email},
			{"gravatar", user.GravatarID},
		} {
			if row[1] != "" {
				fmt.Fprintf(w, "%s %s\n", ui.Muted.Render(fmt.Sprintf("%-9s", row[0]+":")), row[1])
			}
		}
		return nil
	},
}

var userValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configured credentials",
	Long:  "Makes an authenticated call. Exits 2 when the server rejects the credentials.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireClient()
		if err != nil {
			return err
		}
		ok, err := c.Users().ValidateCredentials(cmd.Context())
		if err != nil {
			return fail(err)
		}
		login := c.Repository().Credentials.Username
		if !ok {
			err := exitError{Code: 2, Err: errors.New("credentials rejected for " + login)}
			if jsonOut {
				_ = output.JSON(output.Response{Error: err.Error(), Code: output.ErrPermissionDenied})
			}
			return err
		}
		msg := "credentials valid for " + login
		if jsonOut {
			return output.SuccessMessage(msg)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Render(msg))
		return nil
	},
}

var userAvatarCmd = &cobra.Command{
	Use:   "avatar <gravatar-id>",
	Short: "Download a user's avatar image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireClient()
		if err != nil {
			return err
		}
		img, err := c.Users().RetrieveGravatar(cmd.Context(), args[0])
		if err != nil {
			return fail(err)
		}
		if err := os.WriteFile(avatarOut, img, 0o644); err != nil {
			return cmdError(jsonOut, output.ErrFileError, "writing %s: %v", avatarOut, err)
		}
		msg := fmt.Sprintf("Wrote %d bytes to %s", len(img), avatarOut)
		if jsonOut {
			return output.SuccessMessage(msg)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

func init() {
	userAvatarCmd.Flags().StringVarP(&avatarOut, "output", "o", "", "file to write the image to")
	_ = userAvatarCmd.MarkFlagRequired("output")

	userCmd.AddCommand(userShowCmd, userValidateCmd, userAvatarCmd)
	rootCmd.AddCommand(userCmd)
}
