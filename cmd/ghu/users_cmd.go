package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/ghu/internal/config"
	"github.com/raphi011/ghu/internal/listing"
	"github.com/raphi011/ghu/internal/log"
	"github.com/raphi011/ghu/internal/output"
	"github.com/raphi011/ghu/internal/ui/progress"
	"github.com/raphi011/ghu/internal/ui/static"
)

func newUsersCmd() *cobra.Command {
	var (
		query      string
		details    bool
		jsonOutput bool
		yamlOutput bool
	)

	cmd := &cobra.Command{
		Use:     "users",
		Short:   "List GitHub users",
		Aliases: []string{"u"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List GitHub users.

Without --details only the user list is fetched and profile columns show
"--". With --details every profile is fetched before printing.`,
		Example: `  ghu users                 # List users
  ghu users -f moj          # Users whose login contains "moj"
  ghu users --details       # Include name, email, company and location
  ghu users --json          # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			format, err := output.FormatFromFlags(jsonOutput, yamlOutput)
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
			opts.SkipDetails = !details

			users := listing.NewUsers(ctx, client, nil, opts)
			defer users.Close()

			sp := progress.NewSpinner(os.Stderr, "Loading users")
			sp.Start()
			users.Load()
			err = loadUntilSettled(ctx, users.State, users.Next, users.Handle)
			sp.Stop()
			if err != nil {
				return err
			}
			if users.State() == listing.Failed {
				return withAuthHint(cfg, users.Err())
			}

			if details {
				if err := waitForDetails(ctx, users); err != nil {
					return err
				}
			}
			users.SetQuery(query)

			view := users.View()
			if format != output.FormatTable {
				return out.Encode(format, view)
			}
			if len(view) == 0 {
				l.Println("No users found")
				return nil
			}
			rows := make([][]string, 0, len(view))
			for _, p := range view {
				rows = append(rows, static.UserTableRow(p))
			}
			out.Print(static.RenderTable(static.UserHeaders, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "filter", "f", "", "Only show logins matching the query")
	cmd.Flags().BoolVarP(&details, "details", "d", false, "Fetch profile details for every user")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&yamlOutput, "yaml", false, "Output as YAML")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")

	return cmd
}

// waitForDetails handles detail events until none are pending, showing a
// progress bar on a terminal.
func waitForDetails(ctx context.Context, users *listing.Users) error {
	total := users.Pending()
	bar := progress.NewProgressBar(os.Stderr, total, "Fetching profiles")
	bar.Start()
	defer bar.Stop()

	for users.Pending() > 0 {
		ev, err := users.Next(ctx)
		if err != nil {
			return err
		}
		users.Handle(ev)
		bar.SetProgress(total-users.Pending(), "Fetching profiles")
	}
	return nil
}
