package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thywilljoshua/pdflayout/internal/config"
	"github.com/thywilljoshua/pdflayout/internal/logger"
)

var version = "dev"

type rootFlags struct {
	configPath string
	engine     string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var rf rootFlags
	root := &cobra.Command{
		Use:           "pdflayout",
		Short:         "Extract table-aware plain text from PDF files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&rf.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&rf.engine, "engine", "", "PDF decoding engine: ledongthuc|rsc")
	root.PersistentFlags().StringVar(&rf.logLevel, "log-level", "", "log level: debug|info|warn|error")

	root.AddCommand(extractCmd(&rf))
	root.AddCommand(askCmd(&rf))
	root.AddCommand(serveCmd(&rf))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})
	return root
}

// setup loads the config, lets explicitly set flags win over it, and
// installs the global logger.
func setup(cmd *cobra.Command, rf *rootFlags, override func(*config.Config)) (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(rf.configPath)
	if err != nil {
		return cfg, nil, err
	}
	if cmd.Flags().Changed("engine") {
		cfg.Engine = rf.engine
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = rf.logLevel
	}
	if override != nil {
		override(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}
	log, err := logger.Init(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, log, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
