// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"log"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/naka-gawa/readme-stats/internal/domain"
	"github.com/naka-gawa/readme-stats/internal/gateway"
)

// Aggregator is the use case for computing contribution statistics.
// It orchestrates the fetching and the derived calculations.
type Aggregator struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
	now     func() time.Time
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(fetcher gateway.Fetcher, logger *log.Logger) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		logger:  logger,
		now:     time.Now,
	}
}

// Aggregate performs the main business logic. It lists the repositories, then
// walks them one at a time fetching commits and languages, and derives the
// statistics from the result. A failed listing aborts the run; a failed
// commit or language fetch is logged with the repository's identity and
// degrades to an empty result for that repository only.
func (a *Aggregator) Aggregate(ctx context.Context, username string) (*domain.Stats, error) {
	a.logger.Println("Usecase: Starting data aggregation...")

	repos, err := a.fetcher.ListRepositories(ctx)
	if err != nil {
		return nil, err
	}

	var commits []domain.Commit
	tally := NewLanguageTally()
	for _, repo := range repos {
		repoCommits, err := a.fetcher.ListCommits(ctx, repo, username)
		if err != nil {
			a.logger.Printf("  %s: commit fetch failed, skipping: %v\n", repo.FullName(), err)
			repoCommits = nil
		}
		commits = append(commits, repoCommits...)

		langs, err := a.fetcher.ListLanguages(ctx, repo)
		if err != nil {
			a.logger.Printf("  %s: language fetch failed, skipping: %v\n", repo.FullName(), err)
			langs = nil
		}
		var repoBytes int64
		for name, b := range langs {
			tally.Add(name, int64(b))
			repoBytes += int64(b)
		}
		a.logger.Printf("  %s: %d commits, %s of code\n", repo.FullName(), len(repoCommits), humanize.Bytes(uint64(repoBytes)))
	}

	result := &domain.Stats{
		Streak:    ComputeStreak(commits, a.now()),
		Years:     AggregateYears(commits),
		Languages: tally.Top(),
	}
	a.logger.Println("Usecase: Aggregation complete.")
	return result, nil
}
