// Package format turns API records into the short strings shown in tables
// and the interactive browser.
//
// # Repository Rows
//
//   - Language: the primary language, "Unknown" when GitHub reports none
//   - LanguageColor: hex color from a fixed palette, "#FFFFFF" for others
//   - Stars, Issues, Watchers: the count, or "" when zero (hidden)
//   - Visibility: "Public", "Public Archived", or the capitalized visibility
//
// # Labels
//
// CountLabel renders "N repositories" and CategoryTitle renders headings
// such as "Forks repositories".
package format
