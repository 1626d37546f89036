// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST client.
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/naka-gawa/readme-stats/internal/domain"
)

// perPage is the page size for every paginated request. Repository listing
// stops once a page comes back smaller than this.
const perPage = 100

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	// ListRepositories returns every non-fork repository the token can reach.
	ListRepositories(ctx context.Context) ([]domain.Repository, error)
	// ListCommits returns up to one page of the most recent commits authored
	// by author in repo.
	ListCommits(ctx context.Context, repo domain.Repository, author string) ([]domain.Commit, error)
	// ListLanguages returns repo's byte count per language.
	ListLanguages(ctx context.Context, repo domain.Repository) (map[string]int, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	client *github.Client
	logger *log.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
func NewGitHubGateway(token string, logger *log.Logger) (*GitHubGateway, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}
	return &GitHubGateway{
		client: github.NewClient(httpClient),
		logger: logger,
	}, nil
}

// ListRepositories pages through the authenticated user's repositories
// (owner, collaborator, and organization-member affiliations) and returns
// them in fetch order with forks filtered out. Any page failure aborts the
// whole listing.
func (g *GitHubGateway) ListRepositories(ctx context.Context) ([]domain.Repository, error) {
	g.logger.Println("Listing repositories...")
	opts := &github.RepositoryListByAuthenticatedUserOptions{
		Affiliation: "owner,collaborator,organization_member",
		ListOptions: github.ListOptions{PerPage: perPage, Page: 1},
	}
	var repos []domain.Repository
	for {
		page, _, err := g.client.Repositories.ListByAuthenticatedUser(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories (page %d): %w", opts.Page, err)
		}
		for _, r := range page {
			if r.GetFork() {
				continue
			}
			repos = append(repos, domain.Repository{
				Owner: r.GetOwner().GetLogin(),
				Name:  r.GetName(),
			})
		}
		if len(page) < perPage {
			break
		}
		opts.Page++
		g.logger.Println("  Fetching next page of repositories...")
	}
	g.logger.Printf("Found %d non-fork repositories.\n", len(repos))
	return repos, nil
}

// ListCommits fetches the most recent commits authored by author in repo,
// capped at a single page of 100.
func (g *GitHubGateway) ListCommits(ctx context.Context, repo domain.Repository, author string) ([]domain.Commit, error) {
	opts := &github.CommitsListOptions{
		Author:      author,
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	page, _, err := g.client.Repositories.ListCommits(ctx, repo.Owner, repo.Name, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits for %s: %w", repo.FullName(), err)
	}
	commits := make([]domain.Commit, 0, len(page))
	for _, c := range page {
		date := c.GetCommit().GetAuthor().GetDate()
		if date.IsZero() {
			continue
		}
		commits = append(commits, domain.Commit{Repo: repo, AuthoredAt: date.Time})
	}
	return commits, nil
}

// ListLanguages fetches repo's language breakdown as bytes per language name.
func (g *GitHubGateway) ListLanguages(ctx context.Context, repo domain.Repository) (map[string]int, error) {
	langs, _, err := g.client.Repositories.ListLanguages(ctx, repo.Owner, repo.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to list languages for %s: %w", repo.FullName(), err)
	}
	return langs, nil
}
