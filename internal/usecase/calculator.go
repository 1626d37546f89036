package usecase

import (
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/naka-gawa/readme-stats/internal/domain"
)

// excludedLanguages never count toward the language distribution. Matching is
// exact and case-sensitive; both SCSS capitalizations are listed deliberately.
var excludedLanguages = map[string]struct{}{
	"Open Policy Agent": {},
	"SCSS":              {},
	"Scss":              {},
}

const day = 24 * time.Hour

// dateOnly collapses a timestamp to its calendar day, normalized to UTC so
// day arithmetic stays exact.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ComputeStreak collapses commit timestamps to the set of distinct calendar
// days and derives the streak counters. The current streak walks backward
// from today until the first missing day; a commitless today means a current
// streak of zero.
func ComputeStreak(commits []domain.Commit, today time.Time) domain.StreakSummary {
	days := make(map[time.Time]struct{})
	for _, c := range commits {
		days[dateOnly(c.AuthoredAt)] = struct{}{}
	}
	if len(days) == 0 {
		return domain.StreakSummary{}
	}

	current := 0
	for d := dateOnly(today); ; d = d.Add(-day) {
		if _, ok := days[d]; !ok {
			break
		}
		current++
	}

	sorted := make([]time.Time, 0, len(days))
	for d := range days {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].After(sorted[j]) })

	longest, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Sub(sorted[i]) == day {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	return domain.StreakSummary{Current: current, Longest: longest, TotalDays: len(days)}
}

// AggregateYears groups raw commit dates by calendar year, counting distinct
// active days and raw contributions per year, newest year first.
func AggregateYears(commits []domain.Commit) []domain.YearSummary {
	type yearAcc struct {
		days          map[time.Time]struct{}
		contributions int
	}
	byYear := make(map[int]*yearAcc)
	for _, c := range commits {
		d := dateOnly(c.AuthoredAt)
		acc := byYear[d.Year()]
		if acc == nil {
			acc = &yearAcc{days: make(map[time.Time]struct{})}
			byYear[d.Year()] = acc
		}
		acc.days[d] = struct{}{}
		acc.contributions++
	}

	years := make([]domain.YearSummary, 0, len(byYear))
	for year, acc := range byYear {
		years = append(years, domain.YearSummary{
			Year:          year,
			ActiveDays:    len(acc.days),
			Contributions: acc.contributions,
		})
	}
	sort.Slice(years, func(i, j int) bool { return years[i].Year > years[j].Year })
	return years
}

// topLanguages caps the rendered language distribution.
const topLanguages = 10

// LanguageTally accumulates byte counts per language across repositories.
// First-seen order is remembered so that equal percentages keep a
// deterministic ordering in the output.
type LanguageTally struct {
	bytes map[string]int64
	order []string
}

// NewLanguageTally creates an empty tally.
func NewLanguageTally() *LanguageTally {
	return &LanguageTally{bytes: make(map[string]int64)}
}

// Add records byteCount bytes of language name from one repository.
// Excluded languages are dropped here, before they can affect the total.
func (t *LanguageTally) Add(name string, byteCount int64) {
	if _, excluded := excludedLanguages[name]; excluded {
		return
	}
	if _, seen := t.bytes[name]; !seen {
		t.order = append(t.order, name)
	}
	t.bytes[name] += byteCount
}

// Top returns up to ten languages ranked by share of the total byte count.
// Percentages are rounded to one decimal place; ties stay in first-seen order.
func (t *LanguageTally) Top() []domain.LanguageStat {
	if len(t.order) == 0 {
		return nil
	}
	sums := make([]float64, 0, len(t.order))
	for _, name := range t.order {
		sums = append(sums, float64(t.bytes[name]))
	}
	total, _ := stats.Sum(sums)
	if total == 0 {
		return nil
	}

	out := make([]domain.LanguageStat, 0, len(t.order))
	for _, name := range t.order {
		pct, _ := stats.Round(float64(t.bytes[name])/total*100, 1)
		out = append(out, domain.LanguageStat{Name: name, Bytes: t.bytes[name], Percent: pct})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Percent > out[j].Percent })
	if len(out) > topLanguages {
		out = out[:topLanguages]
	}
	return out
}
