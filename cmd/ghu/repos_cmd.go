package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/raphi011/ghu/internal/config"
	"github.com/raphi011/ghu/internal/filter"
	"github.com/raphi011/ghu/internal/format"
	"github.com/raphi011/ghu/internal/github"
	"github.com/raphi011/ghu/internal/listing"
	"github.com/raphi011/ghu/internal/log"
	"github.com/raphi011/ghu/internal/output"
	"github.com/raphi011/ghu/internal/ui/progress"
	"github.com/raphi011/ghu/internal/ui/static"
)

// repoRecord is a repository with its optional language breakdown.
type repoRecord struct {
	github.Repository `yaml:",inline"`
	Languages         []github.LanguageShare `json:"languages,omitempty" yaml:"languages,omitempty"`
}

func newReposCmd() *cobra.Command {
	var (
		category   filter.Category
		query      string
		languages  bool
		jsonOutput bool
		yamlOutput bool
	)

	cmd := &cobra.Command{
		Use:     "repos <login>",
		Short:   "List a user's repositories",
		Aliases: []string{"r"},
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(1),
		Long: `List the repositories of a GitHub user.

Categories overlap: an archived fork shows under all, public, forks and
archived. The category and the --filter query narrow the list together.`,
		Example: `  ghu repos octocat                 # All repositories
  ghu repos octocat -c forks        # Only forks
  ghu repos octocat -c public -f go # Public repositories matching "go"
  ghu repos octocat --languages     # Include the language breakdown
  ghu repos octocat --yaml          # Output as YAML`,
		ValidArgsFunction: completeLogins,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)
			login := args[0]

			outFormat, err := output.FormatFromFlags(jsonOutput, yamlOutput)
			if err != nil {
				return err
			}
			client, err := newClient(ctx)
			if err != nil {
				return err
			}
			opts, err := listingOptions(cfg)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("category") {
				opts.Category = category
			}

			repos := listing.NewRepositories(ctx, client, opts)
			defer repos.Close()

			sp := progress.NewSpinner(os.Stderr, "Loading repositories of "+login)
			sp.Start()
			repos.Load(login)
			err = loadUntilSettled(ctx, repos.State, repos.Next, repos.Handle)
			sp.Stop()
			if err != nil {
				return err
			}
			if repos.State() == listing.Failed {
				return withAuthHint(cfg, repos.Err())
			}
			repos.SetQuery(query)

			records := make([]repoRecord, 0, repos.Count())
			for _, r := range repos.View() {
				records = append(records, repoRecord{Repository: r})
			}
			if languages {
				sp := progress.NewSpinner(os.Stderr, "Fetching languages")
				sp.Start()
				err := fetchLanguages(ctx, client, cfg.MaxConcurrentFetches, records)
				sp.Stop()
				if err != nil {
					return err
				}
			}

			if outFormat != output.FormatTable {
				return out.Encode(outFormat, records)
			}

			out.Println(styledCount(repos.Category(), len(records)))
			if len(records) == 0 {
				l.Printf("No %s found for %s\n", strings.ToLower(format.CategoryTitle(repos.Category())), login)
				return nil
			}

			headers := static.RepoHeaders
			if languages {
				headers = append(append([]string{}, headers...), "LANGUAGES")
			}
			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				row := static.RepoTableRow(rec.Repository)
				if languages {
					row = append(row, languageSummary(rec.Languages))
				}
				rows = append(rows, row)
			}
			out.Print(static.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().VarP(&category, "category", "c", "Category: all, public, forks, archived")
	cmd.Flags().StringVarP(&query, "filter", "f", "", "Only show repositories whose name matches the query")
	cmd.Flags().BoolVarP(&languages, "languages", "l", false, "Fetch the language breakdown of each repository")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&yamlOutput, "yaml", false, "Output as YAML")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")

	cmd.RegisterFlagCompletionFunc("category", completeCategories)

	return cmd
}

// fetchLanguages fills in the language breakdown of every record with at
// most limit requests in flight.
func fetchLanguages(ctx context.Context, fetcher github.LanguageFetcher, limit int, records []repoRecord) error {
	langs, err := github.NewLanguageCache(fetcher, github.DefaultLanguageCacheSize)
	if err != nil {
		return err
	}
	if limit <= 0 {
		limit = config.DefaultMaxConcurrentFetches
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range records {
		rec := &records[i]
		if rec.LanguagesURL == "" {
			continue
		}
		g.Go(func() error {
			l, err := langs.GetLanguages(ctx, rec.LanguagesURL)
			if err != nil {
				return fmt.Errorf("languages of %s: %w", rec.Name, err)
			}
			rec.Languages = l.Breakdown()
			return nil
		})
	}
	return g.Wait()
}

// languageSummary renders the three largest languages, e.g. "Go 80.0%, Shell 20.0%".
func languageSummary(shares []github.LanguageShare) string {
	if len(shares) == 0 {
		return ""
	}
	parts := make([]string, 0, 3)
	for _, s := range shares[:min(3, len(shares))] {
		parts = append(parts, s.Name+" "+format.Percent(s.Percent))
	}
	return strings.Join(parts, ", ")
}

func styledCount(c filter.Category, n int) string {
	if c == filter.All {
		return format.CountLabel(n)
	}
	return fmt.Sprintf("%s (%s)", format.CountLabel(n), strings.ToLower(c.String()))
}
