// Package styles provides shared lipgloss styles for UI components.
//
// Colors come from the active Theme (see Init). The package-level styles
// are rebuilt whenever the theme changes, so render code should reference
// them at render time rather than caching copies.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette of the active theme
var (
	Primary color.Color = DefaultTheme.Primary
	Accent  color.Color = DefaultTheme.Accent
	Success color.Color = DefaultTheme.Success
	Error   color.Color = DefaultTheme.Error
	Muted   color.Color = DefaultTheme.Muted
	Normal  color.Color = DefaultTheme.Normal
	Info    color.Color = DefaultTheme.Info
	Warning color.Color = DefaultTheme.Warning
)

// Common styles
var (
	Bold   = lipgloss.NewStyle().Bold(true)
	Italic = lipgloss.NewStyle().Italic(true)

	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)
	AccentStyle  = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	NormalStyle  = lipgloss.NewStyle().Foreground(Normal)
	InfoStyle    = lipgloss.NewStyle().Foreground(Info).Italic(true)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	// TitleStyle renders screen headings
	TitleStyle = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	// SelectedStyle renders the row under the cursor
	SelectedStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)

	// HighlightStyle for matched query characters
	HighlightStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true).Underline(true)

	// BadgeStyle frames visibility badges
	BadgeStyle = lipgloss.NewStyle().Foreground(Normal).Padding(0, 1).
			Border(lipgloss.RoundedBorder(), false, true).BorderForeground(Muted)

	// ArchivedBadgeStyle frames badges of archived repositories
	ArchivedBadgeStyle = lipgloss.NewStyle().Foreground(Warning).Padding(0, 1).
				Border(lipgloss.RoundedBorder(), false, true).BorderForeground(Warning)

	// TabStyle and ActiveTabStyle render category tabs
	TabStyle       = lipgloss.NewStyle().Foreground(Muted).Padding(0, 1)
	ActiveTabStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true).Underline(true).Padding(0, 1)
)

// RoundedBorder frames panels with the primary color
var RoundedBorder = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Primary).
	Padding(0, 1)
