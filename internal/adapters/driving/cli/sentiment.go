package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sentimentCmd = &cobra.Command{
	Use:   "sentiment [text...]",
	Short: "Classify the tone of the text",
	Long: `Classifies the text as positive, negative or neutral by counting words
from small fixed lexicons. Words are matched exactly, so "good," with a
trailing comma does not count.`,
	RunE: runSentiment,
}

func init() {
	rootCmd.AddCommand(sentimentCmd)
}

func runSentiment(cmd *cobra.Command, args []string) error {
	if analyzerService == nil {
		return errAnalyzerNotConfigured
	}

	text, _, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	result, err := analyzerService.Sentiment(cmd.Context(), text)
	if err != nil {
		return fmt.Errorf("sentiment failed: %w", err)
	}

	return render(cmd, result, func(p *printer) {
		p.sentiment(result)
	})
}
