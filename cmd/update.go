// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/readme-stats/internal/config"
	"github.com/naka-gawa/readme-stats/internal/gateway"
	"github.com/naka-gawa/readme-stats/internal/render"
	"github.com/naka-gawa/readme-stats/internal/usecase"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fetches contribution data and rewrites the README sections",
	Long: `Fetches the configured user's repositories, commits, and language
breakdowns from GitHub, computes streak, yearly, and language statistics, and
replaces the marker-delimited sections of the README with fresh renderings.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// Get the verbose flag from the root command to set up the logger.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
		if verbose {
			logger.SetOutput(os.Stderr) // If verbose, log to standard error.
		}

		cfg, err := config.NewLoader().Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
			os.Exit(1)
		}

		readmePath, _ := cmd.Flags().GetString("readme")
		if readmePath == "" {
			readmePath = cfg.ReadmePath
		}
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		// Inject dependencies and run the main business logic.
		githubGateway, err := gateway.NewGitHubGateway(cfg.Token, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create GitHub gateway: %v\n", err)
			os.Exit(1)
		}
		aggregator := usecase.NewAggregator(githubGateway, logger)

		stats, err := aggregator.Aggregate(ctx, cfg.Username)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to aggregate stats: %v\n", err)
			os.Exit(1)
		}

		raw, err := os.ReadFile(readmePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read %s: %v\n", readmePath, err)
			os.Exit(1)
		}

		doc := render.NewDocument(string(raw))
		sections := []struct {
			name     string
			fragment string
		}{
			{"STREAK", render.StreakFragment(stats.Streak)},
			{"YEARLY", render.YearlyFragment(stats.Years)},
			{"LANGUAGES", render.LanguageFragment(stats.Languages)},
		}
		for _, s := range sections {
			if err := doc.ReplaceSection(s.name, s.fragment); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to update %s section: %v\n", s.name, err)
				os.Exit(1)
			}
		}
		doc.Touch(time.Now())

		if dryRun {
			fmt.Print(doc.String())
			return
		}
		if err := os.WriteFile(readmePath, []byte(doc.String()), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", readmePath, err)
			os.Exit(1)
		}
		fmt.Printf("Updated %s.\n", readmePath)
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().String("readme", "", "Path to the README file (overrides README_PATH)")
	updateCmd.Flags().Bool("dry-run", false, "Print the updated document instead of writing it back")
}
