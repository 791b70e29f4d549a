package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mkarpushin/pr-tracker/internal/app"
)

// NewCmdServe creates the serve command, running the tracker API in the
// foreground.
func NewCmdServe(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the tracker API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cfg == nil {
				return fmt.Errorf("serve needs a config file: pass --config or set CONFIG_PATH")
			}

			log := app.SetupLogger(cfg.Env)
			log.Info("starting application", slog.String("env", cfg.Env))

			return app.Run(cmd.Context(), log, cfg)
		},
	}
}
