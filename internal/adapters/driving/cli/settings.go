package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textstat/internal/core/domain"
)

var errSettingsNotConfigured = errors.New("settings service not configured")

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the defaults used by the analysis commands.

Settings are stored as TOML in ~/.textstat/config.toml (or --config-dir).`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a setting",
	Long: `Change a single setting, for example:

  textstat settings set analysis.words_per_minute 250
  textstat settings set analysis.stem true
  textstat settings set output.format json`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

// settingsView is the rendered form of domain.AppSettings.
type settingsView struct {
	Path     string `json:"path" yaml:"path"`
	Analysis struct {
		WordsPerMinute int  `json:"words_per_minute" yaml:"words_per_minute"`
		CommonWords    int  `json:"common_words" yaml:"common_words"`
		Keywords       int  `json:"keywords" yaml:"keywords"`
		Stem           bool `json:"stem" yaml:"stem"`
	} `json:"analysis" yaml:"analysis"`
	Output struct {
		Format string `json:"format" yaml:"format"`
	} `json:"output" yaml:"output"`
	Watch struct {
		MinIntervalMS int64 `json:"min_interval_ms" yaml:"min_interval_ms"`
	} `json:"watch" yaml:"watch"`
}

func newSettingsView(path string, settings *domain.AppSettings) settingsView {
	var v settingsView
	v.Path = path
	v.Analysis.WordsPerMinute = settings.Analysis.WordsPerMinute
	v.Analysis.CommonWords = settings.Analysis.CommonWords
	v.Analysis.Keywords = settings.Analysis.Keywords
	v.Analysis.Stem = settings.Analysis.Stem
	v.Output.Format = settings.Output.Format.String()
	v.Watch.MinIntervalMS = settings.Watch.MinInterval.Milliseconds()
	return v
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	view := newSettingsView(settingsService.Path(), settings)
	return render(cmd, view, func(p *printer) {
		p.heading("Current Settings")
		p.note("%s", view.Path)
		p.blank()

		p.heading("[Analysis]")
		p.field("Words per minute", view.Analysis.WordsPerMinute)
		p.field("Common words", view.Analysis.CommonWords)
		p.field("Keywords", view.Analysis.Keywords)
		p.field("Stem", view.Analysis.Stem)
		p.blank()

		p.heading("[Output]")
		p.field("Format", view.Output.Format)
		p.blank()

		p.heading("[Watch]")
		p.field("Min interval (ms)", view.Watch.MinIntervalMS)
	})
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrInvalidSetting) {
			return fmt.Errorf("%w\nKnown keys: %s", err, strings.Join(settingsService.Keys(), ", "))
		}
		return fmt.Errorf("failed to save setting: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	return nil
}
