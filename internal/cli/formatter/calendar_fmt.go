// Package formatter renders CLI output: tables, lists, progress bars
// and the generated-calendar preview.
package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mhennig/kalender/internal/domain"
)

// FormatOptionList renders an ordered option list with one-based indices,
// matching the positions accepted by "remove --at".
func FormatOptionList(title string, values []string) string {
	var b strings.Builder
	b.WriteString(Header(title))
	b.WriteString("\n")

	if len(values) == 0 {
		b.WriteString(Dim("(empty)") + "\n")
		return b.String()
	}
	for i, v := range values {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim(fmt.Sprintf("%2d.", i+1)), StyleFg.Render(v)))
	}
	return b.String()
}

// FormatThemeList renders the theme table with example counts.
func FormatThemeList(themes []*domain.Theme) string {
	headers := []string{"NAME", "BEISPIELE", "PROMPT"}
	rows := make([][]string, 0, len(themes))
	for _, t := range themes {
		rows = append(rows, []string{
			Bold(t.Name),
			strconv.Itoa(len(t.TrimmedExamples())),
			StyleFg.Render(truncate(t.Prompt, 60)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatThemeDetail renders a single theme with its prompt and examples.
func FormatThemeDetail(t *domain.Theme) string {
	var b strings.Builder
	b.WriteString(Header(t.Name))
	b.WriteString("\n")
	b.WriteString(Bold("Prompt") + "\n")
	b.WriteString(StyleFg.Render(t.Prompt) + "\n\n")

	examples := t.TrimmedExamples()
	b.WriteString(Bold("Beispiel-Ideen") + " " + Dim(fmt.Sprintf("(%d)", len(examples))) + "\n")
	if len(examples) == 0 {
		b.WriteString(Dim("(keine)") + "\n")
		return b.String()
	}
	for _, e := range examples {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("•"), StyleFg.Render(e)))
	}
	return b.String()
}

// FormatCalendarPreview renders up to limit calendar rows as a table.
// A limit of 0 shows all rows.
func FormatCalendarPreview(rows []domain.Row, limit int) string {
	shown := rows
	if limit > 0 && len(rows) > limit {
		shown = rows[:limit]
	}

	headers := []string{"DATUM", "KW", "TAG", "PLATTFORM", "THEMA", "FORMAT", "INHALT", "STATUS"}
	table := make([][]string, 0, len(shown))
	for _, r := range shown {
		table = append(table, []string{
			StyleFg.Render(r.FormattedDate()),
			Dim(strconv.Itoa(r.ISOWeek)),
			StyleFg.Render(r.WeekdayName),
			StyleBlue.Render(r.Platform),
			StyleFg.Render(r.Topic),
			StyleFg.Render(r.ContentFormat),
			StyleFg.Render(truncate(r.Content, 40)),
			StatusStyle(r.Status).Render(r.Status),
		})
	}

	out := RenderTable(headers, table)
	if len(shown) < len(rows) {
		out += Dim(fmt.Sprintf("… und %d weitere Zeilen\n", len(rows)-len(shown)))
	}
	return out
}

// FormatGenerateSummary renders the closing lines of a generation run.
func FormatGenerateSummary(rowCount int, files []string, warnings []string) string {
	var b strings.Builder

	if rowCount > 0 {
		b.WriteString(StyleGreen.Render(fmt.Sprintf("✓ %d Beiträge geplant", rowCount)) + "\n")
	}
	for _, f := range files {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("→"), StyleFg.Render(f)))
	}
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render("  WARNUNG: "+w) + "\n")
	}
	return b.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
