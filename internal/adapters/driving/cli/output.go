package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/textstat/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/textstat/internal/core/analysis"
	"github.com/custodia-labs/textstat/internal/core/domain"
	"github.com/custodia-labs/textstat/internal/logger"
)

const labelWidth = 22

// resolveFormat picks the output format: --format, then settings, then text.
func resolveFormat() (domain.OutputFormat, error) {
	if outputFormat != "" {
		format := domain.OutputFormat(strings.ToLower(outputFormat))
		if !format.IsValid() {
			return "", fmt.Errorf("%w: unknown output format %q (want text, json or yaml)",
				domain.ErrInvalidArgument, outputFormat)
		}
		return format, nil
	}

	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			logger.Warn("Failed to read settings, using text output: %v", err)
		} else if settings.Output.Format.IsValid() {
			return settings.Output.Format, nil
		}
	}
	return domain.OutputText, nil
}

// render writes v as JSON or YAML, or calls text to print it for humans.
func render(cmd *cobra.Command, v any, text func(p *printer)) error {
	format, err := resolveFormat()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case domain.OutputJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case domain.OutputYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		fmt.Fprint(out, string(data))
	default:
		text(newPrinter(out))
	}
	return nil
}

// printer renders aligned label/value lines. Colour is only emitted
// when out is a terminal that supports it.
type printer struct {
	out      io.Writer
	title    lipgloss.Style
	label    lipgloss.Style
	muted    lipgloss.Style
	positive lipgloss.Style
	negative lipgloss.Style
}

func newPrinter(out io.Writer) *printer {
	r := lipgloss.NewRenderer(out)
	theme := styles.DefaultTheme()
	return &printer{
		out:      out,
		title:    r.NewStyle().Bold(true).Foreground(theme.Primary),
		label:    r.NewStyle().Foreground(theme.Secondary),
		muted:    r.NewStyle().Foreground(theme.Muted),
		positive: r.NewStyle().Foreground(theme.Success),
		negative: r.NewStyle().Foreground(theme.Error),
	}
}

func (p *printer) heading(title string) {
	fmt.Fprintln(p.out, p.title.Render(title))
}

func (p *printer) field(label string, value any) {
	fmt.Fprintf(p.out, "  %s %s\n", p.label.Render(fmt.Sprintf("%-*s", labelWidth, label+":")), formatValue(value))
}

func (p *printer) note(format string, args ...any) {
	fmt.Fprintln(p.out, p.muted.Render(fmt.Sprintf(format, args...)))
}

func (p *printer) blank() {
	fmt.Fprintln(p.out)
}

func (p *printer) statistics(stats domain.Statistics) {
	p.field("Characters", stats.Characters)
	p.field("Characters (no spaces)", stats.CharactersNoSpaces)
	p.field("Words", stats.Words)
	p.field("Sentences", stats.Sentences)
	p.field("Paragraphs", stats.Paragraphs)
	p.field("Avg word length", stats.AvgWordLength)
	p.field("Reading time", formatMinutes(stats.ReadingTime))
}

func (p *printer) sentiment(s domain.Sentiment) {
	label := s.Label.String()
	switch s.Label {
	case domain.SentimentPositive:
		label = p.positive.Render(label)
	case domain.SentimentNegative:
		label = p.negative.Render(label)
	}
	p.field("Sentiment", label)
	p.field("Score", s.Score)
	p.field("Positive words", s.Positive)
	p.field("Negative words", s.Negative)
}

func (p *printer) wordFrequencies(words []domain.WordFrequency) {
	if len(words) == 0 {
		p.note("  (none)")
		return
	}
	for i, w := range words {
		fmt.Fprintf(p.out, "  %2d. %-20s %d\n", i+1, w.Word, w.Count)
	}
}

func (p *printer) keywords(keywords []string) {
	if len(keywords) == 0 {
		p.note("  (none)")
		return
	}
	for i, k := range keywords {
		fmt.Fprintf(p.out, "  %2d. %s\n", i+1, k)
	}
}

func (p *printer) report(r *domain.Report) {
	title := "Text Analysis"
	if r.Title != "" {
		title += ": " + r.Title
	}
	p.heading(title)
	if r.Source != "" {
		p.note("Source: %s", r.Source)
	}
	p.blank()

	p.heading("Statistics")
	p.statistics(r.Statistics)
	p.field("Readability", fmt.Sprintf("%s (%s)", formatValue(r.Readability), analysis.ReadabilityLevel(r.Readability)))
	p.blank()

	p.heading("Sentiment")
	p.sentiment(r.Sentiment)
	p.blank()

	p.heading("Common Words")
	p.wordFrequencies(r.CommonWords)
	p.blank()

	p.heading("Keywords")
	p.keywords(r.Keywords)
}

func formatValue(v any) string {
	switch val := v.(type) {
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

func formatMinutes(minutes float64) string {
	unit := "minutes"
	if minutes == 1 {
		unit = "minute"
	}
	return formatValue(minutes) + " " + unit
}
