// Package render formats computed statistics as markdown fragments and
// splices them into a README between sentinel comment markers.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/naka-gawa/readme-stats/internal/domain"
)

// StreakFragment renders the three bold-labeled streak lines.
func StreakFragment(s domain.StreakSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Current Streak:** %d days\n", s.Current)
	fmt.Fprintf(&b, "**Longest Streak:** %d days\n", s.Longest)
	fmt.Fprintf(&b, "**Total Active Days:** %d\n", s.TotalDays)
	return b.String()
}

// YearlyFragment renders the per-year activity table as markdown.
func YearlyFragment(years []domain.YearSummary) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Year", "Active Days", "Contributions"})
	for _, y := range years {
		t.AppendRow(table.Row{y.Year, y.ActiveDays, y.Contributions})
	}
	return t.RenderMarkdown() + "\n"
}

const (
	barCells  = 20
	nameWidth = 12
)

// LanguageFragment renders the fixed-width language distribution inside a
// code fence: padded name, block-rune bar, right-aligned percentage.
func LanguageFragment(langs []domain.LanguageStat) string {
	var b strings.Builder
	b.WriteString("```text\n")
	for _, l := range langs {
		fmt.Fprintf(&b, "%*s %s %5.1f%%\n", nameWidth, l.Name, progressBar(l.Percent), l.Percent)
	}
	b.WriteString("```\n")
	return b.String()
}

// progressBar fills barCells cells proportionally to pct, rounded to the
// nearest cell.
func progressBar(pct float64) string {
	filled := int(math.Round(pct / 100 * barCells))
	if filled < 0 {
		filled = 0
	}
	if filled > barCells {
		filled = barCells
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barCells-filled)
}
