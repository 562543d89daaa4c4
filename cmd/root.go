package cmd

import (
	"cmp"
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/toba/ghtask/internal/config"
	"github.com/toba/ghtask/internal/constants"
	"github.com/toba/ghtask/internal/github"
	"github.com/toba/ghtask/internal/logging"
	"github.com/toba/ghtask/internal/output"
	"github.com/toba/ghtask/internal/taskdata"
)

var (
	cfgPath  string
	repoURL  string
	jsonOut  bool
	logLevel string
	cfg      *config.Config
	logger   *slog.Logger
	client   *github.Client
)

var rootCmd = &cobra.Command{
	Use:           constants.AppName,
	Short:         "Work with GitHub issues from the command line",
	Long:          "List, search, edit and comment on GitHub issues, and inspect them as task attribute data.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		output.Stdout = cmd.OutOrStdout()

		var err error
		if cfgPath != "" {
			cfg, err = config.Load(cfgPath)
		} else {
			cfg, err = config.LoadFromDirectory(".")
		}
		if err != nil {
			return cmdError(jsonOut, output.ErrConfig, "loading config: %v", err)
		}

		logger = logging.New(cmd.ErrOrStderr(), logging.ParseLevel(cmp.Or(logLevel, cfg.LogLevel)))
		client = nil
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default "+constants.ConfigFileName+")")
	rootCmd.PersistentFlags().StringVar(&repoURL, "repo", "", "repository URL or owner/project (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

// exitError carries a process exit code other than 1.
type exitError struct {
	Code int
	Err  error
}

func (e exitError) Error() string { return e.Err.Error() }
func (e exitError) Unwrap() error { return e.Err }

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !jsonOut {
			rootCmd.PrintErrln("Error:", err)
		}
		if exitErr, ok := errors.AsType[exitError](err); ok {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// repository resolves the target repository from --repo or the config file.
func repository() (github.Repository, error) {
	raw := cmp.Or(repoURL, cfg.Repository)
	if raw == "" {
		return github.Repository{}, errors.New("no repository: set --repo or repository in " + constants.ConfigFileName)
	}
	repo, err := parseRepository(raw)
	if err != nil {
		return github.Repository{}, err
	}
	repo.Credentials = github.Credentials{
		Username: cfg.Username,
		Token:    cfg.ResolveToken(os.Getenv),
	}
	return repo, nil
}

// parseRepository accepts a repository URL or an owner/project pair.
func parseRepository(raw string) (github.Repository, error) {
	repo, err := github.ParseRepositoryURL(raw)
	if err != nil {
		var repoErr error
		if repo, repoErr = github.ParseRepo(raw); repoErr != nil {
			return github.Repository{}, err
		}
	}
	return repo, nil
}

// requireClient returns the API client, building it on first use.
func requireClient() (*github.Client, error) {
	if client != nil {
		return client, nil
	}
	repo, err := repository()
	if err != nil {
		return nil, cmdError(jsonOut, output.ErrConfig, "%v", err)
	}
	client = github.NewClient(repo,
		github.WithBaseURL(cfg.APIURL),
		github.WithGravatarURL(cfg.GravatarURL),
		github.WithLogger(logger),
	)
	logger.Debug("client ready", "repository", repo.String(), "anonymous", repo.Credentials.Anonymous())
	return client, nil
}

// requireConnector returns a task connector over the API client.
func requireConnector() (*taskdata.Connector, error) {
	c, err := requireClient()
	if err != nil {
		return nil, err
	}
	mapper := taskdata.NewMapper(cfg.DateLayout, cfg.Location(), logger)
	return taskdata.NewConnector(c, mapper, logger), nil
}

// fail reports err in the active output mode.
func fail(err error) error {
	if jsonOut {
		return output.ErrorFrom(err)
	}
	return err
}
