// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/nexo-cointracker/internal/config"
	"fjacquet/nexo-cointracker/internal/container"
	"fjacquet/nexo-cointracker/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by the conversion commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppConfig is the configuration loaded before every command
	AppConfig *config.Config

	// AppContainer holds the dependencies built from AppConfig
	AppContainer *container.Container

	configFile string
	logLevel   string
	logFormat  string

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "nexo-cointracker",
		Short: "A CLI tool to convert Nexo transaction exports to CoinTracker CSV files.",
		Long: `nexo-cointracker converts the transaction CSV exported by Nexo into the
CSV import format of CoinTracker.

Nexo has shipped two export layouts. Use the "split" command for exports with
Input/Output Currency and Amount columns, and the "combined" command for exports
with single Currency and Amount columns.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE:  initApp,
		PersistentPostRunE: closeApp,
	}
)

func init() {
	Cmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default is $HOME/.nexo-cointracker/nexo-cointracker.yaml)")
	Cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (text, json)")
}

// AddConversionFlags registers --nexo, --out and --validate on cmd.
func AddConversionFlags(cmd *cobra.Command, flags *CommonFlags) {
	cmd.Flags().StringVarP(&flags.Input, "nexo", "n", "", "Nexo transaction export (CSV)")
	cmd.Flags().StringVarP(&flags.Output, "out", "o", "", "Output file (default is <input>_cointracker.csv next to the input)")
	cmd.Flags().BoolVarP(&flags.Validate, "validate", "v", false, "Validate the file layout before conversion")
	_ = cmd.MarkFlagRequired("nexo")
}

func initApp(cmd *cobra.Command, args []string) error {
	if _, err := config.LoadEnv(); err != nil {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.InitializeConfig(configFile)
	if err != nil {
		return err
	}

	// Command-line flags take precedence over file and environment
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	AppConfig = cfg
	AppContainer = c
	Log = c.GetLogger()
	Log.Debug("Configuration loaded",
		logging.F("log_level", cfg.Log.Level),
		logging.F("log_format", cfg.Log.Format))
	return nil
}

func closeApp(cmd *cobra.Command, args []string) error {
	if AppContainer == nil {
		return nil
	}
	return AppContainer.Close()
}
