package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/textstat/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/textstat/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/textstat/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/textstat/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/textstat/internal/adapters/driving/tui/views/stats"
	"github.com/custodia-labs/textstat/internal/core/domain"
)

// Layout constants.
const (
	panelWidth   = 36
	headerHeight = 2
	statusHeight = 1
	minEditorDim = 10
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	// editor holds the text being analysed.
	editor textarea.Model

	// panel shows the latest report.
	panel *stats.View

	status *status.Bar

	// seq numbers analysis requests so stale results are dropped.
	seq int

	// err holds the last analysis error.
	err error

	showHelp bool

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	editor := textarea.New()
	editor.Placeholder = "Type or paste text to analyse..."
	editor.ShowLineNumbers = false
	editor.CharLimit = 0
	editor.Focus()

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: s,
		keymap: km,
		editor: editor,
		panel:  stats.NewView(s),
		status: status.NewBar(s, km),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// SetText replaces the editor contents. It is analysed when the program starts.
func (a *App) SetText(text string) {
	a.editor.SetValue(text)
}

// Text returns the editor contents.
func (a *App) Text() string {
	return a.editor.Value()
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textarea.Blink,
		tea.SetWindowTitle("textstat"),
	}
	if a.editor.Value() != "" {
		cmds = append(cmds, a.requestAnalysis())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.AnalysisCompleted:
		a.handleAnalysisCompleted(msg)
		return a, nil
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, a.keymap.Quit):
		return a, tea.Quit

	case keymap.Matches(keyStr, a.keymap.Clear):
		a.editor.Reset()
		a.err = nil
		a.status.Clear()
		return a, a.requestAnalysis()

	case keymap.Matches(keyStr, a.keymap.Help):
		a.showHelp = !a.showHelp
		return a, nil
	}

	before := a.editor.Value()
	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	if a.editor.Value() == before {
		return a, cmd
	}
	return a, tea.Batch(cmd, a.requestAnalysis())
}

// requestAnalysis returns a command analysing the current text.
func (a *App) requestAnalysis() tea.Cmd {
	a.seq++
	seq := a.seq
	text := a.editor.Value()
	analyzer := a.ports.Analyzer
	ctx := a.ctx

	a.status.SetState(status.StateAnalyzing)

	return func() tea.Msg {
		report, err := analyzer.Analyze(ctx, text, domain.AnalysisOptions{})
		return messages.AnalysisCompleted{Seq: seq, Report: report, Err: err}
	}
}

func (a *App) handleAnalysisCompleted(msg messages.AnalysisCompleted) {
	if !msg.IsCurrent(a.seq) {
		return
	}

	if msg.Err != nil {
		a.err = msg.Err
		a.status.SetError(msg.Err.Error())
		return
	}

	a.err = nil
	a.panel.SetReport(msg.Report)
	a.status.SetState(status.StateReady)
	if msg.Report != nil {
		a.status.SetWordCount(msg.Report.Statistics.Words)
	}
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	header := a.styles.Title.Render("textstat") + "  " +
		a.styles.Muted.Render("live text statistics")

	side := a.panel.View()
	if a.showHelp {
		side = a.viewHelp()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		a.styles.Editor.Render(a.editor.View()),
		side,
	)

	return strings.Join([]string{header, "", body, a.status.View()}, "\n")
}

// viewHelp renders the help panel.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Subtitle.Render("Keys"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(a.styles.Label.Render(h.Key))
			b.WriteString(a.styles.Normal.Render(h.Desc))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(a.styles.Muted.Render("Statistics update as you type."))

	return a.styles.Panel.Width(panelWidth - a.styles.Panel.GetHorizontalBorderSize()).Render(b.String())
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Report returns the report currently shown.
func (a *App) Report() *domain.Report {
	return a.panel.Report()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// ShowingHelp reports whether the help panel replaces the statistics.
func (a *App) ShowingHelp() bool {
	return a.showHelp
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions and lays out the editor
// and the statistics panel side by side.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	bodyHeight := max(height-headerHeight-statusHeight, minEditorDim)
	editorFrameW := a.styles.Editor.GetHorizontalFrameSize()
	editorFrameH := a.styles.Editor.GetVerticalFrameSize()

	a.editor.SetWidth(max(width-panelWidth-editorFrameW, minEditorDim))
	a.editor.SetHeight(max(bodyHeight-editorFrameH, 1))
	a.panel.SetDimensions(panelWidth, bodyHeight)
	a.status.SetWidth(width)
}
