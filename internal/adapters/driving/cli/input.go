package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/textstat/internal/core/domain"
	"github.com/custodia-labs/textstat/internal/normalisers"
)

// Source names reported for text that did not come from a file.
const (
	sourceArgs  = "args"
	sourceStdin = "stdin"
)

// errAnalyzerNotConfigured is returned when a command runs without services.
var errAnalyzerNotConfigured = errors.New("analyzer service not configured")

// readInput returns the text a command should analyse and where it came
// from. --file wins over arguments, which win over piped stdin.
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if inputFile != "" {
		raw, err := loadFile(inputFile)
		if err != nil {
			return "", "", err
		}
		doc, err := analyzerService.Normalise(cmd.Context(), raw)
		if err != nil {
			return "", "", err
		}
		return doc.Content, inputFile, nil
	}

	if len(args) > 0 {
		return strings.Join(args, " "), sourceArgs, nil
	}

	in := cmd.InOrStdin()
	if isTerminal(in) {
		return "", "", fmt.Errorf("%w: pass text as arguments, with --file, or on stdin", domain.ErrEmptyInput)
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), sourceStdin, nil
}

// loadFile reads path into a raw document typed by its extension.
func loadFile(path string) (*domain.RawDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return &domain.RawDocument{
		URI:      path,
		MIMEType: normalisers.DetectMIMEType(path),
		Content:  data,
	}, nil
}

// isTerminal reports whether r is an interactive terminal. Readers that
// are not files (buffers in tests, pipes wrapped by callers) never are.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
