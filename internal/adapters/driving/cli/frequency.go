package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	commonLimit   int
	commonStem    bool
	keywordsLimit int
)

var commonCmd = &cobra.Command{
	Use:   "common [text...]",
	Short: "List the most common words",
	Long: `Lists the most frequent words, ignoring stop words and words of two
letters or fewer. Ties keep the order in which words first appear.

With --stem, inflections such as "run", "runs" and "running" are counted
together under the first form seen.`,
	RunE: runCommon,
}

var keywordsCmd = &cobra.Command{
	Use:   "keywords [text...]",
	Short: "Extract keywords scored by frequency and length",
	RunE:  runKeywords,
}

func init() {
	commonCmd.Flags().IntVarP(&commonLimit, "limit", "n", 0, "number of words (0 = configured)")
	commonCmd.Flags().BoolVar(&commonStem, "stem", false, "group words by stem")
	keywordsCmd.Flags().IntVarP(&keywordsLimit, "limit", "n", 0, "number of keywords (0 = configured)")
	rootCmd.AddCommand(commonCmd)
	rootCmd.AddCommand(keywordsCmd)
}

func runCommon(cmd *cobra.Command, args []string) error {
	if analyzerService == nil {
		return errAnalyzerNotConfigured
	}

	text, _, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	words, err := analyzerService.CommonWords(cmd.Context(), text, commonLimit, commonStem)
	if err != nil {
		return fmt.Errorf("common words failed: %w", err)
	}

	return render(cmd, words, func(p *printer) {
		p.heading("Common Words")
		p.wordFrequencies(words)
	})
}

func runKeywords(cmd *cobra.Command, args []string) error {
	if analyzerService == nil {
		return errAnalyzerNotConfigured
	}

	text, _, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	keywords, err := analyzerService.Keywords(cmd.Context(), text, keywordsLimit)
	if err != nil {
		return fmt.Errorf("keywords failed: %w", err)
	}

	return render(cmd, keywords, func(p *printer) {
		p.heading("Keywords")
		p.keywords(keywords)
	})
}
