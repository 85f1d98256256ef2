package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorResult  = lipgloss.Color("#10B981")
)

// Styles
var (
	BannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	ResultStyle = lipgloss.NewStyle().
			Foreground(colorResult)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	MutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)
)

// Helper functions

func RenderBanner(text string) string {
	return BannerStyle.Render(text)
}

func RenderPrompt(prompt string) string {
	return PromptStyle.Render(prompt)
}

func RenderResult(text string) string {
	return ResultStyle.Render(text)
}

func RenderError(text string) string {
	return ErrorStyle.Render("error: " + text)
}

func RenderMuted(text string) string {
	return MutedStyle.Render(text)
}
