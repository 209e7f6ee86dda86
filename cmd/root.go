package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/arcanaland/dealtone/internal/config"
	"github.com/arcanaland/dealtone/internal/logging"
	"github.com/arcanaland/dealtone/internal/phone"
)

var (
	configPath string
	logLevel   string

	// Loaded by PersistentPreRunE for every subcommand
	cfg    *config.Config
	logger *log.Logger
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "dealtone",
	Short: "Deal blackjack hands and dial numbers spelled on a phone keypad",
	Long: `Dealtone deals simplified blackjack hands and converts keypad letters into
dialable phone numbers. Results are pushed through ordered event streams and
printed as they arrive.

Configuration lives in XDG_CONFIG_HOME/dealtone/config.toml and contacts in
XDG_DATA_HOME/dealtone/contacts.toml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default XDG_CONFIG_HOME/dealtone/config.toml)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides config)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

// setup loads the config and builds the logger
func setup(cmd *cobra.Command) error {
	var err error
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	levelName := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		levelName = logLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}

	logger = logging.New(cmd.ErrOrStderr(), level)
	logger.Debug("Loaded config", "path", configFile(), "log_level", levelName)
	return nil
}

func configFile() string {
	if configPath != "" {
		return configPath
	}
	return config.GetConfigFilePath()
}

// loadDirectory returns the contacts directory selected by the config
func loadDirectory() (*phone.Directory, string, error) {
	path := cfg.ResolveContactsFile()
	if path == "" {
		return phone.DefaultDirectory(), "built-in", nil
	}

	dir, err := phone.LoadDirectory(path)
	if err != nil {
		return nil, "", err
	}
	return dir, path, nil
}
