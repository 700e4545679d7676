// Package config handles loading and validation of ghu configuration.
//
// Configuration is read from ~/.config/ghu/config.toml with environment
// variable overrides for the API endpoint and token.
//
// # Configuration Sources (highest priority first)
//
//   - GHU_TOKEN env var, then GITHUB_TOKEN: API token
//   - GHU_BASE_URL env var: API base URL (GitHub Enterprise)
//   - .env file in the working directory (loaded into the environment,
//     never overriding variables that are already set)
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - base_url: API root, must be an absolute http(s) URL (default: https://api.github.com/)
//   - token: static token sent as a bearer token on every request
//   - timeout: per-request timeout as a Go duration (default: "30s")
//   - per_page: repositories fetched per user, 1-100 (default: 100)
//   - max_concurrent_fetches: parallel profile detail requests (default: 8)
//   - match: "substring" or "fuzzy" list filtering (default: "substring")
//   - default_category: initial repository category (default: "all")
//
// # Theme Configuration
//
// The [theme] section selects a preset and optionally overrides colors:
//
//	[theme]
//	name = "nord"
//	mode = "dark"
//	accent = "#ff79c6"
package config
