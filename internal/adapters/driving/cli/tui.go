package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textstat/internal/adapters/driving/tui"
)

// runTUIApp runs the program. Tests replace it to avoid taking over the terminal.
var runTUIApp = func(app *tui.App) error {
	return app.Run()
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive analyzer",
	Long: `Launch an editor with a live statistics panel. Statistics, readability,
sentiment and keywords are recomputed on every edit.

With --file the editor starts with the file's text.

Controls:
  ctrl+l   - Clear the editor
  f1       - Toggle help
  esc      - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(tui.NewPorts(analyzerService))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if inputFile != "" {
		raw, err := loadFile(inputFile)
		if err != nil {
			return err
		}
		doc, err := analyzerService.Normalise(cmd.Context(), raw)
		if err != nil {
			return err
		}
		app.SetText(doc.Content)
	}

	if err := runTUIApp(app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
