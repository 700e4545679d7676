package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/ghu/internal/config"
	"github.com/raphi011/ghu/internal/github"
	"github.com/raphi011/ghu/internal/listing"
	"github.com/raphi011/ghu/internal/output"
	"github.com/raphi011/ghu/internal/ui/static"
)

func newShowCmd() *cobra.Command {
	var (
		jsonOutput bool
		yamlOutput bool
	)

	cmd := &cobra.Command{
		Use:               "show <login>",
		Short:             "Show a user's profile",
		GroupID:           GroupCore,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeLogins,
		Example: `  ghu show octocat          # Profile card
  ghu show octocat --json   # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			outFormat, err := output.FormatFromFlags(jsonOutput, yamlOutput)
			if err != nil {
				return err
			}
			client, err := newClient(ctx)
			if err != nil {
				return err
			}

			detail, err := client.GetUserDetail(ctx, args[0])
			if err != nil {
				return withAuthHint(cfg, err)
			}

			if outFormat != output.FormatTable {
				return out.Encode(outFormat, detail)
			}
			p := listing.Profile{User: github.User{Login: detail.Login}, Detail: &detail}
			out.Print(static.RenderProfile(p))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&yamlOutput, "yaml", false, "Output as YAML")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")

	return cmd
}
