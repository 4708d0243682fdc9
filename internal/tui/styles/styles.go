// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#A78BFA"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}

	// DeleteColor is the background of a revealed delete button
	DeleteColor = lipgloss.Color("#DC2626")

	// CardText is the foreground on colored cards
	CardText = lipgloss.Color("#FFFFFF")
)

// Base styles
var (
	// Title is the style for section titles
	// NOTE: No margins - they break mouse hit-testing row math
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for secondary headings
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)

	// EmptyMessage is shown when there are no events
	EmptyMessage = lipgloss.NewStyle().
			Foreground(Subtle).
			Italic(true).
			PaddingLeft(1)

	// ScrollIndicator shows there are more cards above or below
	ScrollIndicator = lipgloss.NewStyle().
			Foreground(Subtle).
			Italic(true).
			PaddingLeft(2)
)

// Card styles
var (
	// Card is the base style of a countdown card; the background is the
	// event color
	Card = lipgloss.NewStyle().
		Foreground(CardText).
		Padding(0, 1)

	// CardPast dims cards whose target has passed
	CardPast = lipgloss.NewStyle().
			Faint(true).
			Italic(true)

	// CardValue is the day count
	CardValue = lipgloss.NewStyle().
			Bold(true)

	// CardCursor is the gutter marker of the selected card
	CardCursor = lipgloss.NewStyle().
			Foreground(Highlight)

	// DeleteButton is the button revealed by swiping a card left
	DeleteButton = lipgloss.NewStyle().
			Background(DeleteColor).
			Foreground(CardText).
			Bold(true).
			Align(lipgloss.Center)
)

// Full-screen countdown styles
var (
	// FullScreenBox is the dialog around the full-screen countdown
	FullScreenBox = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(1, 4)

	FullScreenIcon = lipgloss.NewStyle()

	FullScreenTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight)

	FullScreenDate = lipgloss.NewStyle().
			Foreground(Subtle)

	FullScreenUnit = lipgloss.NewStyle().
			Padding(0, 2)

	FullScreenValue = lipgloss.NewStyle().
			Bold(true)

	FullScreenLabel = lipgloss.NewStyle().
			Foreground(Subtle).
			MarginTop(1)
)

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Padding(0, 1)

	// StatusBarKey is for keyboard shortcut hints
	StatusBarKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"})

	// StatusBarText is for status bar descriptions
	StatusBarText = lipgloss.NewStyle().
			Foreground(Subtle).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"})

	// StatusBarError is for error messages
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Bold(true)

	// StatusBarSuccess is for success messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
				Bold(true)
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Input styles
var (
	// InputLabel is for input labels
	InputLabel = lipgloss.NewStyle().
			Bold(true)

	// InputLabelFocused is the label of the focused field
	InputLabelFocused = lipgloss.NewStyle().
				Bold(true).
				Foreground(Highlight)

	// InputError is for inline validation errors
	InputError = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// IconOption is an unselected icon in the picker
	IconOption = lipgloss.NewStyle().
			Padding(0, 1)

	// IconSelected is the selected icon in the picker
	IconSelected = lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.AdaptiveColor{Light: "#DDD6FE", Dark: "#4C1D95"})

	// Button is the submit button
	Button = lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(Subtle).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Subtle)

	// ButtonFocused is the focused submit button
	ButtonFocused = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(Highlight).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Highlight)
)

// Dialog styles
var (
	// Dialog is the base style for dialog boxes
	Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(1, 2)
)

// Section header style
var (
	SectionHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(Subtle).
		Underline(true)
)
