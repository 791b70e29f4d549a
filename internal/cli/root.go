package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkarpushin/pr-tracker/internal/config"
)

// Options holds the shared command-line options for the tracker CLI.
type Options struct {
	ConfigPath string
	APIURL     string
	Owner      string
	Users      []string
	State      string
	NoTUI      bool
}

// New creates the root command with all subcommands registered.
func New() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "tracker",
		Short: "GitHub pull request tracker",
		Long: `Browse open pull requests across an organization, grouped by author.
The server side shells out to the gh CLI, so gh must be installed and
authenticated (run 'gh auth login --web').`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, opts)
		},
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to the YAML config file (falls back to CONFIG_PATH)")
	rootCmd.PersistentFlags().StringVar(&opts.APIURL, "api-url", "", "tracker API base URL (overrides config)")

	addBrowseFlags(rootCmd, opts)

	rootCmd.AddCommand(NewCmdBrowse(opts))
	rootCmd.AddCommand(NewCmdServe(opts))
	rootCmd.AddCommand(NewCmdStatus(opts))
	rootCmd.AddCommand(NewCmdVersion())

	return rootCmd
}

// loadConfig resolves the config file from the --config flag or the
// CONFIG_PATH environment variable. Client commands work without one; the
// serve command requires it.
func loadConfig(opts *Options) (*config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		return nil, nil
	}
	return config.LoadPath(path)
}

// clientConfig builds the client settings from the config file with flag
// overrides on top.
func clientConfig(opts *Options) (config.ClientConfig, error) {
	cc := config.ClientConfig{APIURL: "http://localhost:3000"}

	cfg, err := loadConfig(opts)
	if err != nil {
		return cc, fmt.Errorf("load config: %w", err)
	}
	if cfg != nil {
		cc = cfg.ClientConfig
	}

	if opts.APIURL != "" {
		cc.APIURL = opts.APIURL
	}
	if opts.Owner != "" {
		cc.DefaultOwner = opts.Owner
	}

	return cc, nil
}

// clientLogger logs to stderr so the TUI owns stdout.
func clientLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}
