package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textstat/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/textstat/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/textstat/internal/core/domain"
	"github.com/custodia-labs/textstat/internal/core/services"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(&Ports{Analyzer: services.NewAnalyzerService(nil, nil, nil)})
	require.NoError(t, err)
	app.SetDimensions(100, 40)
	return app
}

// typeText sends text as a key press and runs the resulting analysis.
func typeText(t *testing.T, app *App, text string) {
	t.Helper()
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	require.NotNil(t, cmd)
	runAnalysis(app, cmd)
}

// runAnalysis executes cmd and feeds any AnalysisCompleted back to the app.
func runAnalysis(app *App, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			runAnalysis(app, c)
		}
	case messages.AnalysisCompleted:
		app.Update(msg)
	}
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(NewPorts(&mockAnalyzerService{}))

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.False(t, app.Ready())
	assert.Equal(t, "", app.Text())
	assert.Nil(t, app.Report())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.ErrorIs(t, err, ErrMissingAnalyzerService)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, _ := NewApp(NewPorts(&mockAnalyzerService{}))

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")
	result := app.WithContext(ctx)

	assert.Same(t, app, result)
	assert.Equal(t, ctx, app.ctx)
}

func TestApp_Init(t *testing.T) {
	t.Run("empty editor does not analyse", func(t *testing.T) {
		mock := &mockAnalyzerService{}
		app, _ := NewApp(NewPorts(mock))

		cmd := app.Init()

		assert.NotNil(t, cmd)
		assert.Equal(t, 0, app.seq)
	})

	t.Run("preset text is analysed", func(t *testing.T) {
		app := newTestApp(t)
		app.SetText("The quick brown fox jumps.")

		runAnalysis(app, app.Init())

		require.NotNil(t, app.Report())
		assert.Equal(t, 5, app.Report().Statistics.Words)
	})
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, _ := NewApp(NewPorts(&mockAnalyzerService{}))

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Same(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
	assert.Equal(t, 120, app.width)
	assert.Equal(t, 120, app.status.Width())
}

func TestApp_Update_TypingAnalyses(t *testing.T) {
	app := newTestApp(t)

	typeText(t, app, "The fox is happy.")

	require.NotNil(t, app.Report())
	assert.Equal(t, "The fox is happy.", app.Text())
	assert.Equal(t, 4, app.Report().Statistics.Words)
	assert.Equal(t, domain.SentimentNeutral, app.Report().Sentiment.Label, "happy. keeps its period")
	assert.Equal(t, status.StateReady, app.status.State())
	assert.Equal(t, 4, app.status.WordCount())
}

func TestApp_Update_CursorMoveDoesNotAnalyse(t *testing.T) {
	mock := &mockAnalyzerService{}
	app, _ := NewApp(NewPorts(mock))
	app.SetDimensions(100, 40)
	app.SetText("hello")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyLeft})
	runAnalysis(app, cmd)

	assert.Empty(t, mock.calls)
}

func TestApp_Update_StaleResultIgnored(t *testing.T) {
	app := newTestApp(t)
	typeText(t, app, "first text here")
	current := app.Report()

	app.Update(messages.AnalysisCompleted{Seq: app.seq - 1, Report: &domain.Report{ID: "stale"}})

	assert.Same(t, current, app.Report())
}

func TestApp_Update_AnalysisError(t *testing.T) {
	mock := &mockAnalyzerService{
		AnalyzeFunc: func(context.Context, string, domain.AnalysisOptions) (*domain.Report, error) {
			return nil, errors.New("analysis exploded")
		},
	}
	app, _ := NewApp(NewPorts(mock))
	app.SetDimensions(100, 40)

	typeText(t, app, "x")

	require.Error(t, app.Err())
	assert.Equal(t, status.StateError, app.status.State())
	assert.Contains(t, app.View(), "analysis exploded")
}

func TestApp_Update_Clear(t *testing.T) {
	app := newTestApp(t)
	typeText(t, app, "some words to clear")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	runAnalysis(app, cmd)

	assert.Equal(t, "", app.Text())
	require.NotNil(t, app.Report())
	assert.Equal(t, 0, app.Report().Statistics.Words)
	assert.Equal(t, 0, app.status.WordCount())
}

func TestApp_Update_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)

			_, cmd := app.Update(tt.msg)

			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}

func TestApp_Update_QIsTyped(t *testing.T) {
	app := newTestApp(t)

	typeText(t, app, "q")

	assert.Equal(t, "q", app.Text())
}

func TestApp_Update_ToggleHelp(t *testing.T) {
	app := newTestApp(t)

	app.Update(tea.KeyMsg{Type: tea.KeyF1})
	assert.True(t, app.ShowingHelp())
	assert.Contains(t, app.View(), "Keys")
	assert.Contains(t, app.View(), "ctrl+l")

	app.Update(tea.KeyMsg{Type: tea.KeyF1})
	assert.False(t, app.ShowingHelp())
}

func TestApp_View_NotReady(t *testing.T) {
	app, _ := NewApp(NewPorts(&mockAnalyzerService{}))

	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_View_ShowsPanelAndStatus(t *testing.T) {
	app := newTestApp(t)
	typeText(t, app, "Wonderful words make wonderful sentences.")

	view := app.View()

	assert.Contains(t, view, "textstat")
	assert.Contains(t, view, "Statistics")
	assert.Contains(t, view, "Readability")
	assert.Contains(t, view, "5 words")
	assert.Contains(t, view, "wonderful")
}
