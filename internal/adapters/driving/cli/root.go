// Package cli implements the textstat command line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textstat/internal/core/ports/driving"
	"github.com/custodia-labs/textstat/internal/logger"
)

var (
	version = "dev"

	analyzerService driving.AnalyzerService
	settingsService driving.SettingsService
	serviceFactory  ServiceFactory

	verbose      bool
	configDir    string
	outputFormat string
	inputFile    string
)

// Services holds the core services the commands drive.
type Services struct {
	Analyzer driving.AnalyzerService
	Settings driving.SettingsService
}

// ServiceFactory builds the services once the persistent flags are parsed.
// configDir is the value of --config-dir, empty for the default location.
type ServiceFactory func(configDir string) (*Services, error)

var rootCmd = &cobra.Command{
	Use:   "textstat [command]",
	Short: "Descriptive statistics for natural-language text",
	Long: `textstat counts words, sentences and paragraphs, estimates reading time
and readability, finds common words and keywords, and classifies sentiment.

Text is read from the arguments, from --file, or from stdin:

  textstat analyze "The quick brown fox jumps over the lazy dog."
  textstat stats --file notes.md
  cat essay.txt | textstat keywords -n 10`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log analysis stages to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.textstat)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "", "output format: text, json or yaml (default from settings)")
	rootCmd.PersistentFlags().StringVarP(&inputFile, "file", "f", "", "read text from a file instead of arguments or stdin")
}

// SetServices injects the services directly, bypassing the factory.
func SetServices(s *Services) {
	if s == nil {
		analyzerService = nil
		settingsService = nil
		return
	}
	analyzerService = s.Analyzer
	settingsService = s.Settings
}

// SetServiceFactory sets the factory used to build services on first use.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	if analyzerService != nil || serviceFactory == nil {
		return nil
	}

	logger.Debug("Building services (config dir %q)", configDir)
	services, err := serviceFactory(configDir)
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	SetServices(services)
	return nil
}
