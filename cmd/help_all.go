package cmd

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var helpAllCmd = &cobra.Command{
	Use:   "help-all",
	Short: "Show all commands and flags in a compact format",
	Long:  "Print a one-line reference of every command, subcommand, and flag for use in scripts.",
	Run: func(cmd *cobra.Command, args []string) {
		printCommandTree(cmd.OutOrStdout(), rootCmd, "")
	},
}

func init() {
	rootCmd.AddCommand(helpAllCmd)
}

func printCommandTree(w io.Writer, cmd *cobra.Command, prefix string) {
	// Skip hidden commands, completion, and help.
	if cmd.Hidden || cmd.Name() == "completion" || cmd.Name() == "help-all" || (cmd.Name() == "help" && cmd.Parent() == rootCmd) {
		return
	}

	name := cmd.Name()
	if prefix != "" {
		name = prefix + " " + name
	}

	desc := cmp.Or(cmd.Short, cmd.Long)
	fmt.Fprintf(w, "%s: %s\n", name, desc)

	if _, args, ok := strings.Cut(cmd.Use, " "); ok {
		fmt.Fprintf(w, "  usage: %s %s\n", name, args)
	}
	if aliases := cmd.Aliases; len(aliases) > 0 {
		fmt.Fprintf(w, "  aliases: %s\n", strings.Join(aliases, ", "))
	}

	// Local flags only; persistent root flags are printed once at the top.
	flags := collectFlags(cmd.LocalNonPersistentFlags())
	if cmd == rootCmd {
		flags = collectFlags(cmd.PersistentFlags())
	}
	if len(flags) > 0 {
		fmt.Fprintf(w, "  flags: %s\n", strings.Join(flags, ", "))
	}

	subs := cmd.Commands()
	slices.SortFunc(subs, func(a, b *cobra.Command) int { return cmp.Compare(a.Name(), b.Name()) })
	for _, sub := range subs {
		printCommandTree(w, sub, name)
	}
}

func collectFlags(fs *pflag.FlagSet) []string {
	var flags []string
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "help" {
			return
		}
		entry := "--" + f.Name
		if f.Shorthand != "" {
			entry = "-" + f.Shorthand + "/" + entry
		}
		if f.Value.Type() != "bool" {
			entry += " <" + f.Value.Type() + ">"
		}
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
			entry += " (default: " + f.DefValue + ")"
		}
		flags = append(flags, entry)
	})
	return flags
}
