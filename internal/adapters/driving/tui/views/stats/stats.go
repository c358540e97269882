// Package stats renders the live statistics panel beside the editor.
package stats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/textstat/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/textstat/internal/core/analysis"
	"github.com/custodia-labs/textstat/internal/core/domain"
)

// maxCommonWords caps the common words listed so the panel fits.
const maxCommonWords = 5

// View is the statistics panel.
type View struct {
	styles *styles.Styles
	report *domain.Report
	width  int
	height int
}

// NewView creates a new statistics panel.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		width:  32,
	}
}

// SetReport replaces the report being shown. nil clears the panel.
func (v *View) SetReport(report *domain.Report) {
	v.report = report
}

// Report returns the report being shown.
func (v *View) Report() *domain.Report {
	return v.report
}

// SetDimensions sets the panel size, borders included.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// View renders the panel.
func (v *View) View() string {
	panel := v.styles.Panel.Width(max(v.width-v.styles.Panel.GetHorizontalBorderSize(), 0))
	if v.height > 0 {
		panel = panel.Height(max(v.height-v.styles.Panel.GetVerticalBorderSize(), 0))
	}
	return panel.Render(v.content())
}

func (v *View) content() string {
	if v.report == nil || v.report.Statistics.Words == 0 {
		return v.styles.Subtitle.Render("Statistics") + "\n\n" +
			v.styles.Muted.Render("No text yet.")
	}

	r := v.report
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Statistics"))
	b.WriteString("\n")
	v.row(&b, "Words", strconv.Itoa(r.Statistics.Words))
	v.row(&b, "Sentences", strconv.Itoa(r.Statistics.Sentences))
	v.row(&b, "Paragraphs", strconv.Itoa(r.Statistics.Paragraphs))
	v.row(&b, "Characters", strconv.Itoa(r.Statistics.Characters))
	v.row(&b, "No spaces", strconv.Itoa(r.Statistics.CharactersNoSpaces))
	v.row(&b, "Avg word", formatFloat(r.Statistics.AvgWordLength))
	v.row(&b, "Reading time", formatFloat(r.Statistics.ReadingTime)+" min")

	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render("Readability"))
	b.WriteString("\n")
	v.row(&b, "Flesch", v.styles.ForReadability(r.Readability).Render(formatFloat(r.Readability)))
	v.row(&b, "Level", analysis.ReadabilityLevel(r.Readability))

	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render("Sentiment"))
	b.WriteString("\n")
	v.row(&b, "Tone", v.styles.ForSentiment(r.Sentiment.Label).Render(r.Sentiment.Label.String()))
	v.row(&b, "Score", formatFloat(r.Sentiment.Score))

	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render("Keywords"))
	b.WriteString("\n")
	if len(r.Keywords) == 0 {
		b.WriteString(v.styles.Muted.Render("none"))
		b.WriteString("\n")
	}
	for _, k := range r.Keywords {
		b.WriteString(v.styles.Normal.Render(k))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render("Common words"))
	b.WriteString("\n")
	words := r.CommonWords
	if len(words) > maxCommonWords {
		words = words[:maxCommonWords]
	}
	if len(words) == 0 {
		b.WriteString(v.styles.Muted.Render("none"))
	}
	for _, w := range words {
		v.row(&b, w.Word, fmt.Sprintf("×%d", w.Count))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (v *View) row(b *strings.Builder, label, value string) {
	b.WriteString(v.styles.Label.Render(label))
	b.WriteString(v.styles.Value.Render(value))
	b.WriteString("\n")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
