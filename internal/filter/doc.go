// Package filter projects in-memory lists through a text query and a
// repository category.
//
// All functions are pure: they never modify their input and always return
// a fresh slice that keeps the input order. Text and category predicates
// are independent, so applying them in either order gives the same result.
//
// # Text Matching
//
// ByText matches a case-insensitive substring of the item key. An empty
// query matches every item. ByTextWith accepts a Matcher to switch to
// fuzzy matching (github.com/sahilm/fuzzy); fuzzy results are returned in
// input order, not by score.
//
// # Categories
//
//   - All: every repository
//   - Public: not private (archived public repositories included)
//   - Forks: forked repositories
//   - Archived: archived repositories
package filter
