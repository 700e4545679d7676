package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/ghu/internal/config"
	"github.com/raphi011/ghu/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage ghu configuration.

Config file: ~/.config/ghu/config.toml
Environment: GHU_TOKEN or GITHUB_TOKEN, GHU_BASE_URL (also read from .env)`,
		Example: `  ghu config init          # Create default config
  ghu config show          # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  ghu config init      # Create ~/.config/ghu/config.toml
  ghu config init -f   # Overwrite existing config
  ghu config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if stdout {
				out.Print(config.DefaultConfig())
				return nil
			}

			path, err := config.Path()
			if err != nil {
				return err
			}
			if err := config.Init(path, force); err != nil {
				return err
			}
			out.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

// shownConfig is the effective config as printed by "config show".
type shownConfig struct {
	BaseURL              string             `json:"base_url"`
	Token                string             `json:"token"`
	Timeout              string             `json:"timeout"`
	PerPage              int                `json:"per_page"`
	MaxConcurrentFetches int                `json:"max_concurrent_fetches"`
	Match                string             `json:"match"`
	DefaultCategory      string             `json:"default_category"`
	Theme                config.ThemeConfig `json:"theme"`
}

func redactToken(token string) string {
	switch {
	case token == "":
		return "(none)"
	case len(token) <= 8:
		return "********"
	}
	return token[:4] + "…" + token[len(token)-4:]
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration after file and environment overrides.
The token is redacted.`,
		Example: `  ghu config show          # Show config
  ghu config show --json   # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			shown := shownConfig{
				BaseURL:              cfg.BaseURL,
				Token:                redactToken(cfg.Token),
				Timeout:              cfg.Timeout.String(),
				PerPage:              cfg.PerPage,
				MaxConcurrentFetches: cfg.MaxConcurrentFetches,
				Match:                cfg.Match,
				DefaultCategory:      cfg.DefaultCategory,
				Theme:                cfg.Theme,
			}
			if jsonOutput {
				return out.JSON(shown)
			}

			path, err := config.Path()
			if err != nil {
				path = "(unknown)"
			}
			out.Printf("Config file: %s\n\n", path)
			out.Printf("base_url: %s\n", shown.BaseURL)
			out.Printf("token: %s\n", shown.Token)
			out.Printf("timeout: %s\n", shown.Timeout)
			out.Printf("per_page: %d\n", shown.PerPage)
			out.Printf("max_concurrent_fetches: %d\n", shown.MaxConcurrentFetches)
			out.Printf("match: %s\n", shown.Match)
			out.Printf("default_category: %s\n", shown.DefaultCategory)
			out.Printf("theme.name: %s\n", valueOr(shown.Theme.Name, "default"))
			out.Printf("theme.mode: %s\n", valueOr(shown.Theme.Mode, "auto"))
			out.Printf("theme.nerdfont: %v\n", shown.Theme.Nerdfont)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

