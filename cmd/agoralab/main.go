package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"agoralab-core/internal/config"
	"agoralab-core/internal/logging"
)

// cli carries the state shared by every subcommand
type cli struct {
	logLevel string

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "agoralab",
		Short: "Agora Lab site backend",
		Long: `agoralab serves the public repository listing of the Agora Lab organizations
and the blog post index.

Configuration is read from the environment and an optional .env file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if c.logLevel != "" {
				cfg.Log.Level = c.logLevel
			}

			logger, err := logging.New(cfg.Log.Level)
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "override LOG_LEVEL (debug, info, warn, error)")

	root.AddCommand(
		newServeCmd(c),
		newReposCmd(c),
		newPostsCmd(c),
	)
	return root
}
