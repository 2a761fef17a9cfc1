// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/work-metrics/internal/config"
	"fjacquet/work-metrics/internal/container"
	"fjacquet/work-metrics/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input      string
	Output     string
	ConfigFile string
	LogLevel   string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// AppContainer holds the wired dependencies once the root pre-run has executed
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "work-metrics",
		Short: "A CLI tool to compute warehouse work-line metrics from WMS exports.",
		Long: `work-metrics reads a warehouse work-line export (XLSX, XLSM or CSV),
classifies every line as inbound, outbound, conversion or transfer, and
aggregates the quantities per day, user and item.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to work-metrics!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return Initialize()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer != nil {
				_ = AppContainer.Close()
			}
		},
	}

	// SharedFlags holds the values of the persistent flags
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file (XLSX, XLSM or CSV)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default: $HOME/.work-metrics/config.yaml)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
}

// Initialize loads the configuration and wires the application container.
func Initialize() error {
	config.LoadEnv()

	cfg, err := config.InitializeConfig(SharedFlags.ConfigFile)
	if err != nil {
		return err
	}
	if SharedFlags.LogLevel != "" {
		if _, err := logrus.ParseLevel(SharedFlags.LogLevel); err != nil {
			return fmt.Errorf("invalid log level: %s", SharedFlags.LogLevel)
		}
		cfg.Log.Level = SharedFlags.LogLevel
	}

	Log = cfg.Logger()
	c, err := container.NewContainerWithLogger(cfg, logging.NewLogrusAdapterFromLogger(Log))
	if err != nil {
		return err
	}
	AppContainer = c
	return nil
}

// GetContainer returns the initialized container.
func GetContainer() (*container.Container, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("container not initialized")
	}
	return AppContainer, nil
}
