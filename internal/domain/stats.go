// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// Repository identifies a single repository the token can reach.
type Repository struct {
	Owner string
	Name  string
	Fork  bool
}

// FullName returns the owner-qualified repository name.
func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

// Commit is one authored commit, reduced to what the statistics need.
type Commit struct {
	Repo       Repository
	AuthoredAt time.Time
}

// StreakSummary holds the consecutive-day activity counters.
type StreakSummary struct {
	Current   int `json:"current"`
	Longest   int `json:"longest"`
	TotalDays int `json:"total_days"`
}

// YearSummary holds the per-year activity counters. Contributions counts raw
// commits; ActiveDays counts distinct calendar days with at least one commit.
type YearSummary struct {
	Year          int `json:"year"`
	ActiveDays    int `json:"active_days"`
	Contributions int `json:"contributions"`
}

// LanguageStat is one language's share of the total byte count.
type LanguageStat struct {
	Name    string  `json:"name"`
	Bytes   int64   `json:"bytes"`
	Percent float64 `json:"percent"`
}

// Stats bundles everything the renderer needs for one run.
type Stats struct {
	Streak    StreakSummary  `json:"streak"`
	Years     []YearSummary  `json:"years"`
	Languages []LanguageStat `json:"languages"`
}
