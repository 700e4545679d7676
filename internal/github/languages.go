package github

import (
	"cmp"
	"context"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Languages maps language name to bytes of code, as returned by languages_url.
type Languages map[string]int64

// LanguageShare is one entry of a language breakdown.
type LanguageShare struct {
	Name    string  `json:"name" yaml:"name"`
	Bytes   int64   `json:"bytes" yaml:"bytes"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// Breakdown returns the languages ordered by size, largest first.
// Ties are ordered by name.
func (l Languages) Breakdown() []LanguageShare {
	var total int64
	for _, b := range l {
		total += b
	}

	shares := make([]LanguageShare, 0, len(l))
	for name, b := range l {
		share := LanguageShare{Name: name, Bytes: b}
		if total > 0 {
			share.Percent = float64(b) * 100 / float64(total)
		}
		shares = append(shares, share)
	}
	slices.SortFunc(shares, func(a, b LanguageShare) int {
		if c := cmp.Compare(b.Bytes, a.Bytes); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return shares
}

// LanguageFetcher fetches a repository language breakdown.
type LanguageFetcher interface {
	GetLanguages(ctx context.Context, languagesURL string) (Languages, error)
}

// DefaultLanguageCacheSize bounds the number of cached breakdowns.
const DefaultLanguageCacheSize = 256

// LanguageCache memoizes GetLanguages per URL in a bounded LRU.
// Failures are not cached. Safe for concurrent use.
type LanguageCache struct {
	fetcher LanguageFetcher
	cache   *lru.Cache[string, Languages]
}

// NewLanguageCache wraps fetcher with an LRU of the given size.
func NewLanguageCache(fetcher LanguageFetcher, size int) (*LanguageCache, error) {
	if size <= 0 {
		size = DefaultLanguageCacheSize
	}
	cache, err := lru.New[string, Languages](size)
	if err != nil {
		return nil, err
	}
	return &LanguageCache{fetcher: fetcher, cache: cache}, nil
}

// GetLanguages returns the cached breakdown for languagesURL, fetching it on a miss.
func (lc *LanguageCache) GetLanguages(ctx context.Context, languagesURL string) (Languages, error) {
	if langs, ok := lc.cache.Get(languagesURL); ok {
		return langs, nil
	}
	langs, err := lc.fetcher.GetLanguages(ctx, languagesURL)
	if err != nil {
		return nil, err
	}
	lc.cache.Add(languagesURL, langs)
	return langs, nil
}

// Len returns the number of cached breakdowns.
func (lc *LanguageCache) Len() int {
	return lc.cache.Len()
}
