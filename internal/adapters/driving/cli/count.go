package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textstat/internal/core/domain"
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count words, sentences, paragraphs or characters",
}

// countTarget is one countable unit and how to read it from statistics.
type countTarget struct {
	name  string
	short string
	value func(domain.Statistics) int
}

var countTargets = []countTarget{
	{"words", "Count whitespace-separated words", func(s domain.Statistics) int { return s.Words }},
	{"sentences", "Count sentences ending in . ! or ?", func(s domain.Statistics) int { return s.Sentences }},
	{"paragraphs", "Count paragraphs separated by blank lines", func(s domain.Statistics) int { return s.Paragraphs }},
	{"characters", "Count characters (Unicode code points)", func(s domain.Statistics) int { return s.Characters }},
}

func init() {
	for _, target := range countTargets {
		countCmd.AddCommand(newCountCmd(target))
	}
	rootCmd.AddCommand(countCmd)
}

func newCountCmd(target countTarget) *cobra.Command {
	return &cobra.Command{
		Use:   target.name + " [text...]",
		Short: target.short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if analyzerService == nil {
				return errAnalyzerNotConfigured
			}

			text, _, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			stats, err := analyzerService.Statistics(cmd.Context(), text)
			if err != nil {
				return fmt.Errorf("count failed: %w", err)
			}

			n := target.value(stats)
			return render(cmd, map[string]int{target.name: n}, func(p *printer) {
				fmt.Fprintln(p.out, n)
			})
		},
	}
}
