package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textstat/internal/core/domain"
)

var (
	analyzeWPM      int
	analyzeCommon   int
	analyzeKeywords int
	analyzeStem     bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text...]",
	Short: "Run every analysis over the text",
	Long: `Runs every analysis and prints a single report: statistics, readability,
sentiment, the most common words and the top keywords.

Zero for any count selects the configured default (see 'textstat settings').`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeWPM, "wpm", 0, "reading rate in words per minute (0 = configured)")
	analyzeCmd.Flags().IntVarP(&analyzeCommon, "common", "n", 0, "number of common words (0 = configured)")
	analyzeCmd.Flags().IntVarP(&analyzeKeywords, "keywords", "k", 0, "number of keywords (0 = configured)")
	analyzeCmd.Flags().BoolVar(&analyzeStem, "stem", false, "group common words by stem")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzerService == nil {
		return errAnalyzerNotConfigured
	}

	report, err := analyzeInput(cmd, args, analysisOptions())
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	return render(cmd, report, func(p *printer) { p.report(report) })
}

func analysisOptions() domain.AnalysisOptions {
	return domain.AnalysisOptions{
		WordsPerMinute: analyzeWPM,
		CommonWords:    analyzeCommon,
		Keywords:       analyzeKeywords,
		Stem:           analyzeStem,
	}
}

// analyzeInput analyses --file as a document so its title and source are
// reported, and anything else as plain text.
func analyzeInput(cmd *cobra.Command, args []string, opts domain.AnalysisOptions) (*domain.Report, error) {
	if inputFile != "" {
		raw, err := loadFile(inputFile)
		if err != nil {
			return nil, err
		}
		return analyzerService.AnalyzeDocument(cmd.Context(), raw, opts)
	}

	text, source, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}

	report, err := analyzerService.Analyze(cmd.Context(), text, opts)
	if err != nil {
		return nil, err
	}
	report.Source = source
	return report, nil
}
