package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/ghu/internal/config"
	"github.com/raphi011/ghu/internal/github"
	"github.com/raphi011/ghu/internal/listing"
	"github.com/raphi011/ghu/internal/ui/browser"
)

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "browse",
		Short:   "Browse users and repositories interactively",
		Aliases: []string{"ui"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Browse users and repositories interactively.

Type to filter, enter opens a user's repositories or a repository's
language breakdown, tab cycles the repository category, ctrl+y copies the
highlighted URL, ctrl+r reloads and esc clears the filter or goes back.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)

			if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stderr.Fd()) {
				return fmt.Errorf("browse requires an interactive terminal")
			}

			client, err := newClient(ctx)
			if err != nil {
				return err
			}
			opts, err := listingOptions(cfg)
			if err != nil {
				return err
			}
			langs, err := github.NewLanguageCache(client, github.DefaultLanguageCacheSize)
			if err != nil {
				return err
			}

			users := listing.NewUsers(ctx, client, nil, opts)
			defer users.Close()
			repos := listing.NewRepositories(ctx, client, opts)
			defer repos.Close()

			return browser.Run(ctx, users, repos, langs)
		},
	}

	return cmd
}
