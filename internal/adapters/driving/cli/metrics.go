package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textstat/internal/core/analysis"
)

var readingTimeWPM int

var statsCmd = &cobra.Command{
	Use:   "stats [text...]",
	Short: "Show counts and derived metrics",
	RunE:  runStats,
}

var readingTimeCmd = &cobra.Command{
	Use:   "reading-time [text...]",
	Short: "Estimate reading time in minutes",
	RunE:  runReadingTime,
}

var readabilityCmd = &cobra.Command{
	Use:   "readability [text...]",
	Short: "Score the text with the Flesch Reading Ease formula",
	Long: `Scores the text with the Flesch Reading Ease formula, from 0 (very
difficult) to 100 (very easy). Syllables are estimated from vowel runs.`,
	RunE: runReadability,
}

var syllablesCmd = &cobra.Command{
	Use:   "syllables WORD...",
	Short: "Estimate the syllables in each word",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSyllables,
}

func init() {
	readingTimeCmd.Flags().IntVar(&readingTimeWPM, "wpm", 0, "reading rate in words per minute (0 = configured)")
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(readingTimeCmd)
	rootCmd.AddCommand(readabilityCmd)
	rootCmd.AddCommand(syllablesCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	if analyzerService == nil {
		return errAnalyzerNotConfigured
	}

	text, _, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	stats, err := analyzerService.Statistics(cmd.Context(), text)
	if err != nil {
		return fmt.Errorf("statistics failed: %w", err)
	}

	return render(cmd, stats, func(p *printer) {
		p.heading("Statistics")
		p.statistics(stats)
	})
}

type readingTimeResult struct {
	Minutes float64 `json:"reading_time" yaml:"reading_time"`
}

func runReadingTime(cmd *cobra.Command, args []string) error {
	if analyzerService == nil {
		return errAnalyzerNotConfigured
	}

	text, _, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	minutes, err := analyzerService.ReadingTime(cmd.Context(), text, readingTimeWPM)
	if err != nil {
		return fmt.Errorf("reading time failed: %w", err)
	}

	return render(cmd, readingTimeResult{Minutes: minutes}, func(p *printer) {
		fmt.Fprintln(p.out, formatMinutes(minutes))
	})
}

type readabilityResult struct {
	Score float64 `json:"readability" yaml:"readability"`
	Level string  `json:"level" yaml:"level"`
}

func runReadability(cmd *cobra.Command, args []string) error {
	if analyzerService == nil {
		return errAnalyzerNotConfigured
	}

	text, _, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	score, err := analyzerService.Readability(cmd.Context(), text)
	if err != nil {
		return fmt.Errorf("readability failed: %w", err)
	}

	result := readabilityResult{Score: score, Level: analysis.ReadabilityLevel(score)}
	return render(cmd, result, func(p *printer) {
		fmt.Fprintf(p.out, "%s (%s)\n", formatValue(result.Score), result.Level)
	})
}

type syllableCount struct {
	Word      string `json:"word" yaml:"word"`
	Syllables int    `json:"syllables" yaml:"syllables"`
}

func runSyllables(cmd *cobra.Command, args []string) error {
	if analyzerService == nil {
		return errAnalyzerNotConfigured
	}

	counts := make([]syllableCount, 0, len(args))
	for _, word := range args {
		n, err := analyzerService.Syllables(cmd.Context(), word)
		if err != nil {
			return fmt.Errorf("syllables failed: %w", err)
		}
		counts = append(counts, syllableCount{Word: word, Syllables: n})
	}

	return render(cmd, counts, func(p *printer) {
		for _, c := range counts {
			p.field(c.Word, c.Syllables)
		}
	})
}
