package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textstat/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/textstat/internal/adapters/driven/stemmer/snowball"
	"github.com/custodia-labs/textstat/internal/core/domain"
	"github.com/custodia-labs/textstat/internal/core/services"
	"github.com/custodia-labs/textstat/internal/normalisers"
)

const sampleText = "The quick brown fox jumps. The fox is quick and happy!\n\nFoxes love running and jumping."

// newTestServices wires the real services over an in-memory config store.
func newTestServices() *Services {
	settings := services.NewSettingsService(memory.NewConfigStore(nil))
	return &Services{
		Analyzer: services.NewAnalyzerService(settings, normalisers.NewDefaultRegistry(), snowball.New()),
		Settings: settings,
	}
}

// useServices installs s for the duration of the test and resets every
// flag variable afterwards.
func useServices(t *testing.T, s *Services) {
	t.Helper()

	prevAnalyzer, prevSettings, prevFactory := analyzerService, settingsService, serviceFactory
	SetServices(s)
	serviceFactory = nil

	t.Cleanup(func() {
		analyzerService, settingsService, serviceFactory = prevAnalyzer, prevSettings, prevFactory
		resetFlags()
	})
}

func resetFlags() {
	verbose = false
	configDir = ""
	outputFormat = ""
	inputFile = ""
	analyzeWPM = 0
	analyzeCommon = 0
	analyzeKeywords = 0
	analyzeStem = false
	commonLimit = 0
	commonStem = false
	keywordsLimit = 0
	readingTimeWPM = 0
}

// executeCommand runs the root command with args and stdin, returning
// what was written to stdout and stderr.
func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	return executeCommandContext(t, context.Background(), stdin, args...)
}

func executeCommandContext(t *testing.T, ctx context.Context, stdin string, args ...string) (string, string, error) {
	t.Helper()

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	setContext(rootCmd, ctx)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

// setContext sets ctx on cmd and every descendant. Cobra only passes the
// root context down to subcommands whose context is still nil, so a
// context left over from an earlier run would otherwise be reused.
func setContext(cmd *cobra.Command, ctx context.Context) {
	cmd.SetContext(ctx)
	for _, sub := range cmd.Commands() {
		setContext(sub, ctx)
	}
}

// mockAnalyzerService fails every call with err.
type mockAnalyzerService struct {
	err error
}

func (m *mockAnalyzerService) Analyze(context.Context, string, domain.AnalysisOptions) (*domain.Report, error) {
	return nil, m.err
}

func (m *mockAnalyzerService) AnalyzeDocument(
	context.Context, *domain.RawDocument, domain.AnalysisOptions,
) (*domain.Report, error) {
	return nil, m.err
}

func (m *mockAnalyzerService) Normalise(context.Context, *domain.RawDocument) (*domain.Document, error) {
	return nil, m.err
}

func (m *mockAnalyzerService) Statistics(context.Context, string) (domain.Statistics, error) {
	return domain.Statistics{}, m.err
}

func (m *mockAnalyzerService) ReadingTime(context.Context, string, int) (float64, error) {
	return 0, m.err
}

func (m *mockAnalyzerService) CommonWords(context.Context, string, int, bool) ([]domain.WordFrequency, error) {
	return nil, m.err
}

func (m *mockAnalyzerService) Keywords(context.Context, string, int) ([]string, error) {
	return nil, m.err
}

func (m *mockAnalyzerService) Sentiment(context.Context, string) (domain.Sentiment, error) {
	return domain.Sentiment{}, m.err
}

func (m *mockAnalyzerService) Readability(context.Context, string) (float64, error) {
	return 0, m.err
}

func (m *mockAnalyzerService) Syllables(context.Context, string) (int, error) {
	return 0, m.err
}

// mockSettingsService serves fixed settings and records Set calls.
type mockSettingsService struct {
	settings *domain.AppSettings
	getErr   error
	setErr   error

	setKey   string
	setValue string
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.settings == nil {
		defaults := domain.DefaultAppSettings()
		return &defaults, nil
	}
	return m.settings, nil
}

func (m *mockSettingsService) Save(settings *domain.AppSettings) error {
	m.settings = settings
	return m.setErr
}

func (m *mockSettingsService) Set(key, value string) error {
	m.setKey = key
	m.setValue = value
	return m.setErr
}

func (m *mockSettingsService) Keys() []string {
	return []string{"analysis.words_per_minute", "output.format"}
}

func (m *mockSettingsService) Path() string {
	return "/tmp/textstat/config.toml"
}
