package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textstat/internal/core/domain"
	"github.com/custodia-labs/textstat/internal/logger"
	"github.com/custodia-labs/textstat/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Re-analyse a file every time it changes",
	Long: `Analyses FILE, then analyses it again each time it is saved, until
interrupted. Saves closer together than watch.min_interval_ms are merged
into a single run.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&analyzeWPM, "wpm", 0, "reading rate in words per minute (0 = configured)")
	watchCmd.Flags().IntVarP(&analyzeCommon, "common", "n", 0, "number of common words (0 = configured)")
	watchCmd.Flags().IntVarP(&analyzeKeywords, "keywords", "k", 0, "number of keywords (0 = configured)")
	watchCmd.Flags().BoolVar(&analyzeStem, "stem", false, "group common words by stem")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if analyzerService == nil {
		return errAnalyzerNotConfigured
	}

	opts := analysisOptions()
	handler := func(ctx context.Context, path string) error {
		raw, err := loadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return err
		}
		report, err := analyzerService.AnalyzeDocument(ctx, raw, opts)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return err
		}
		report.Source = args[0]
		return render(cmd, report, func(p *printer) {
			p.report(report)
			p.blank()
			p.note("Updated %s", report.CreatedAt.Format(time.TimeOnly))
		})
	}

	watcher, err := watch.New(args[0], watchInterval(), handler)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (press Ctrl+C to stop)\n", watcher.Path())
	return watcher.Run(cmd.Context())
}

func watchInterval() time.Duration {
	if settingsService == nil {
		return domain.DefaultWatchInterval
	}
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("Failed to read settings, using default watch interval: %v", err)
		return domain.DefaultWatchInterval
	}
	return settings.Watch.MinInterval
}
