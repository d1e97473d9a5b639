// Package root contains the root command for the application
package root

import (
	"vitalab/labparse/internal/config"
	"vitalab/labparse/internal/container"
	"vitalab/labparse/internal/exporter"
	"vitalab/labparse/internal/importer"
	"vitalab/labparse/internal/logging"
	"vitalab/labparse/internal/pdfparser"
	"vitalab/labparse/internal/store"
	"vitalab/labparse/internal/xmlparser"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log = logging.GetLogger()

	appContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "labparse",
		Short: "A CLI tool to parse lab reports and classify results against reference ranges.",
		Long: `labparse extracts test results from plain-text, PDF and XML lab reports,
classifies each value against its reference range and writes structured output.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to labparse!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Configuration error: %v", err)
			}

			appContainer, err = container.NewContainer(cfg)
			if err != nil {
				Log.Fatalf("Failed to initialize application: %v", err)
			}
			Log = appContainer.GetLogger()

			// Propagate the configured logger to the package-level loggers.
			pdfparser.SetLogger(Log)
			xmlparser.SetLogger(Log)
			importer.SetLogger(Log)
			exporter.SetLogger(Log)
			store.SetLogger(Log)
		},
		// Flush learned synonyms and release clients when ANY command finishes
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appContainer == nil {
				return
			}
			if err := appContainer.Close(); err != nil {
				Log.WithError(err).Warn("Failed to close application container")
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific stats command flags
	AnalyteName string

	// Specific catalog command flags
	ShowSynonyms bool
)

// GetContainer returns the application container built in PersistentPreRun.
func GetContainer() *container.Container {
	return appContainer
}

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before parsing")
}
