package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Defaults
const (
	DefaultBaseURL              = "https://api.github.com/"
	DefaultTimeout              = 30 * time.Second
	DefaultPerPage              = 100
	DefaultMaxConcurrentFetches = 8
	DefaultMatch                = "substring"
	DefaultCategory             = "all"
)

// ThemeConfig holds UI theme/color configuration
type ThemeConfig struct {
	Name     string `toml:"name" json:"name,omitempty"` // preset name: "default", "dracula", "nord", "gruvbox", "catppuccin"
	Mode     string `toml:"mode" json:"mode,omitempty"` // "auto", "light" or "dark"
	Primary  string `toml:"primary" json:"primary,omitempty"`
	Accent   string `toml:"accent" json:"accent,omitempty"`
	Success  string `toml:"success" json:"success,omitempty"`
	Error    string `toml:"error" json:"error,omitempty"`
	Muted    string `toml:"muted" json:"muted,omitempty"`
	Normal   string `toml:"normal" json:"normal,omitempty"`
	Info     string `toml:"info" json:"info,omitempty"`
	Warning  string `toml:"warning" json:"warning,omitempty"`
	Nerdfont bool   `toml:"nerdfont" json:"nerdfont,omitempty"`
}

// Config holds the ghu configuration
type Config struct {
	BaseURL              string
	Token                string
	Timeout              time.Duration
	PerPage              int
	MaxConcurrentFetches int
	Match                string // "substring" or "fuzzy"
	DefaultCategory      string
	Theme                ThemeConfig
}

// HasToken reports whether requests will be authenticated.
func (c *Config) HasToken() bool {
	return c.Token != ""
}

// Default returns the default configuration
func Default() Config {
	return Config{
		BaseURL:              DefaultBaseURL,
		Timeout:              DefaultTimeout,
		PerPage:              DefaultPerPage,
		MaxConcurrentFetches: DefaultMaxConcurrentFetches,
		Match:                DefaultMatch,
		DefaultCategory:      DefaultCategory,
	}
}

type ctxKey struct{}

// WithConfig attaches the config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns Default() if none is attached.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	cfg := Default()
	return &cfg
}

type loadErrKey struct{}

// WithLoadError records the error Load returned, so commands that reach the
// API can refuse to run on a partially applied config.
func WithLoadError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, loadErrKey{}, err)
}

// LoadError returns the error recorded with WithLoadError, or nil.
func LoadError(ctx context.Context) error {
	err, _ := ctx.Value(loadErrKey{}).(error)
	return err
}

// Path returns the path to the config file
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ghu", "config.toml"), nil
}

// rawConfig mirrors the TOML layout before durations are parsed
type rawConfig struct {
	BaseURL              string      `toml:"base_url"`
	Token                string      `toml:"token"`
	Timeout              string      `toml:"timeout"`
	PerPage              int         `toml:"per_page"`
	MaxConcurrentFetches int         `toml:"max_concurrent_fetches"`
	Match                string      `toml:"match"`
	DefaultCategory      string      `toml:"default_category"`
	Theme                ThemeConfig `toml:"theme"`
}

// Load reads .env, then ~/.config/ghu/config.toml, then applies env overrides.
// Returns Default() (with env overrides) if the file doesn't exist.
// Returns an error if .env is malformed, the file exists but is invalid, or
// GHU_BASE_URL is invalid.
func Load() (Config, error) {
	if err := loadDotenv(".env"); err != nil {
		return Default(), err
	}

	path, err := Path()
	if err != nil {
		cfg := Default()
		return cfg, applyEnv(&cfg)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config file at path and applies env overrides.
// A file error takes precedence over an env error.
func LoadFrom(path string) (Config, error) {
	cfg, err := loadFile(path)
	if envErr := applyEnv(&cfg); err == nil {
		err = envErr
	}
	return cfg, err
}

// loadDotenv loads path into the environment. A missing file is not an error.
func loadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg, err := fromRaw(raw)
	if err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// fromRaw validates raw settings and fills defaults for empty values
func fromRaw(raw rawConfig) (Config, error) {
	cfg := Default()

	if raw.BaseURL != "" {
		if err := ValidateBaseURL(raw.BaseURL); err != nil {
			return cfg, err
		}
		cfg.BaseURL = raw.BaseURL
	}
	cfg.Token = strings.TrimSpace(raw.Token)

	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return cfg, fmt.Errorf("invalid timeout %q: %w", raw.Timeout, err)
		}
		if d <= 0 {
			return cfg, fmt.Errorf("invalid timeout %q: must be positive", raw.Timeout)
		}
		cfg.Timeout = d
	}

	if raw.PerPage != 0 {
		if raw.PerPage < 1 || raw.PerPage > 100 {
			return cfg, fmt.Errorf("invalid per_page %d: must be between 1 and 100", raw.PerPage)
		}
		cfg.PerPage = raw.PerPage
	}

	if raw.MaxConcurrentFetches != 0 {
		if raw.MaxConcurrentFetches < 0 {
			return cfg, fmt.Errorf("invalid max_concurrent_fetches %d: must be positive", raw.MaxConcurrentFetches)
		}
		cfg.MaxConcurrentFetches = raw.MaxConcurrentFetches
	}

	if err := validateEnum(raw.Match, "match", ValidMatchModes); err != nil {
		return cfg, err
	}
	if raw.Match != "" {
		cfg.Match = raw.Match
	}

	category := strings.ToLower(raw.DefaultCategory)
	if err := validateEnum(category, "default_category", ValidCategories); err != nil {
		return cfg, err
	}
	if category != "" {
		cfg.DefaultCategory = category
	}

	if raw.Theme.Name != "" && !isValidThemeName(raw.Theme.Name) {
		return cfg, fmt.Errorf("invalid theme.name %q: must be %s", raw.Theme.Name, formatOptions(ValidThemeNames))
	}
	if err := validateEnum(raw.Theme.Mode, "theme.mode", ValidThemeModes); err != nil {
		return cfg, err
	}
	cfg.Theme = raw.Theme

	return cfg, nil
}

// applyEnv overrides file settings with environment variables.
// An invalid GHU_BASE_URL is an error so the token never goes to the default host.
func applyEnv(cfg *Config) error {
	if token := strings.TrimSpace(os.Getenv("GHU_TOKEN")); token != "" {
		cfg.Token = token
	} else if token := strings.TrimSpace(os.Getenv("GITHUB_TOKEN")); token != "" {
		cfg.Token = token
	}
	if base := strings.TrimSpace(os.Getenv("GHU_BASE_URL")); base != "" {
		if err := ValidateBaseURL(base); err != nil {
			return fmt.Errorf("GHU_BASE_URL: %w", err)
		}
		cfg.BaseURL = base
	}
	return nil
}

// ValidateBaseURL checks that u is an absolute http(s) URL
func ValidateBaseURL(u string) error {
	parsed, err := url.Parse(u)
	if err != nil {
		return fmt.Errorf("invalid base_url %q: %w", u, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid base_url %q: must start with http:// or https://", u)
	}
	if parsed.Host == "" {
		return fmt.Errorf("invalid base_url %q: missing host", u)
	}
	return nil
}

const defaultConfig = `# ghu configuration

# API root. Point this at your GitHub Enterprise instance if needed,
# e.g. "https://github.example.com/api/v3/". GHU_BASE_URL overrides it.
base_url = "https://api.github.com/"

# Static token sent as "Authorization: Bearer <token>" on every request.
# Prefer the GHU_TOKEN or GITHUB_TOKEN environment variables (or a .env file)
# over storing the token here. Without a token the anonymous rate limit applies.
# token = ""

# Per-request timeout (Go duration syntax)
timeout = "30s"

# Repositories fetched per user (1-100, single page)
per_page = 100

# Parallel profile detail requests when enriching the user list
max_concurrent_fetches = 8

# List filtering: "substring" (case-insensitive) or "fuzzy"
match = "substring"

# Initial repository category: all, public, forks, archived
default_category = "all"

# [theme]
# name = "default"     # default, dracula, nord, gruvbox, catppuccin
# mode = "auto"        # auto, light, dark
# nerdfont = false
# accent = "#ff79c6"   # per-color overrides: primary, accent, success, error, muted, normal, info, warning
`

// DefaultConfig returns the commented default config file contents
func DefaultConfig() string {
	return defaultConfig
}

// Init creates a default config file at path.
// If force is true, overwrites existing file.
func Init(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(defaultConfig), 0o600)
}
