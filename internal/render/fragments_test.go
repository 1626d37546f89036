package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/readme-stats/internal/domain"
)

func TestStreakFragment(t *testing.T) {
	got := StreakFragment(domain.StreakSummary{Current: 3, Longest: 7, TotalDays: 42})

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "**Current Streak:** 3 days", lines[0])
	assert.Equal(t, "**Longest Streak:** 7 days", lines[1])
	assert.Equal(t, "**Total Active Days:** 42", lines[2])
}

func TestYearlyFragment(t *testing.T) {
	got := YearlyFragment([]domain.YearSummary{
		{Year: 2024, ActiveDays: 120, Contributions: 456},
		{Year: 2023, ActiveDays: 88, Contributions: 301},
	})

	assert.Contains(t, got, "Year")
	assert.Contains(t, got, "Active Days")
	assert.Contains(t, got, "Contributions")
	assert.Contains(t, got, "2024")
	assert.Contains(t, got, "456")
	assert.Contains(t, got, "2023")
	assert.Contains(t, got, "301")
	// Newest year renders first.
	assert.Less(t, strings.Index(got, "2024"), strings.Index(got, "2023"))
}

func TestLanguageFragment(t *testing.T) {
	got := LanguageFragment([]domain.LanguageStat{
		{Name: "Go", Percent: 40.5},
		{Name: "TypeScript", Percent: 9.9},
	})

	assert.True(t, strings.HasPrefix(got, "```text\n"))
	assert.True(t, strings.HasSuffix(got, "```\n"))
	// 40.5% of 20 cells rounds to 8 filled.
	assert.Contains(t, got, "          Go "+strings.Repeat("█", 8)+strings.Repeat("░", 12)+"  40.5%")
	// 9.9% rounds to 2 filled cells.
	assert.Contains(t, got, "  TypeScript "+strings.Repeat("█", 2)+strings.Repeat("░", 18)+"   9.9%")
}

func TestProgressBar(t *testing.T) {
	testCases := []struct {
		name    string
		percent float64
		filled  int
	}{
		{name: "half", percent: 50.0, filled: 10},
		{name: "empty", percent: 0.0, filled: 0},
		{name: "full", percent: 100.0, filled: 20},
		{name: "rounds to nearest cell", percent: 12.5, filled: 3},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bar := progressBar(tc.percent)
			assert.Equal(t, tc.filled, strings.Count(bar, "█"))
			assert.Equal(t, barCells-tc.filled, strings.Count(bar, "░"))
		})
	}
}
