package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/kaspa-aio/kaspactl/internal/catalog"
)

var (
	accent  = lipgloss.Color("#70c7ba")
	subtle  = lipgloss.Color("#666666")
	warning = lipgloss.Color("#eab308")
	danger  = lipgloss.Color("#ef4444")
	info    = lipgloss.Color("#06b6d4")

	titleStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			MarginBottom(1)

	successStyle = lipgloss.NewStyle().
			Foreground(accent)

	errorStyle = lipgloss.NewStyle().
			Foreground(danger)

	mutedStyle = lipgloss.NewStyle().
			Foreground(subtle)

	greenStyle  = lipgloss.NewStyle().Foreground(accent)
	yellowStyle = lipgloss.NewStyle().Foreground(warning)
	redStyle    = lipgloss.NewStyle().Foreground(danger)
	cyanStyle   = lipgloss.NewStyle().Foreground(info)
)

func Green(text string) string {
	return greenStyle.Render(text)
}

func Yellow(text string) string {
	return yellowStyle.Render(text)
}

func Red(text string) string {
	return redStyle.Render(text)
}

func Cyan(text string) string {
	return cyanStyle.Render(text)
}

func Header(text string) {
	fmt.Println(titleStyle.Render("=== " + text + " ==="))
}

func Success(text string) {
	fmt.Println(successStyle.Render("✓ " + text))
}

func Error(text string) {
	fmt.Println(errorStyle.Render("✗ " + text))
}

func Info(text string) {
	fmt.Println("  " + text)
}

func Muted(text string) {
	fmt.Println(mutedStyle.Render(text))
}

func Warn(text string) {
	fmt.Println(yellowStyle.Render("⚠ " + text))
}

// SelectTemplate asks the user to pick an installation template.
func SelectTemplate() (string, error) {
	var templateID string

	options := make([]huh.Option[string], 0)
	for _, t := range catalog.AllTemplates() {
		label := fmt.Sprintf("%s - %s", t.Name, t.Description)
		options = append(options, huh.NewOption(label, t.ID))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose your setup").
				Options(options...).
				Value(&templateID),
		),
	)

	err := form.Run()
	return templateID, err
}

// Choice is one entry for SelectChoice, decoupled from any domain type.
type Choice struct {
	Key         string
	Label       string
	Detail      string
	Recommended bool
}

// SelectChoice asks the user to pick one choice by key. Recommended choices
// are listed first and labeled.
func SelectChoice(title string, choices []Choice) (string, error) {
	var chosen string

	ordered := append([]Choice{}, choices...)
	for i, c := range ordered {
		if c.Recommended && i > 0 {
			ordered[0], ordered[i] = ordered[i], ordered[0]
			break
		}
	}

	options := make([]huh.Option[string], 0, len(ordered))
	for _, c := range ordered {
		label := c.Label
		if c.Recommended {
			label += " (recommended)"
		}
		if c.Detail != "" {
			label += " - " + c.Detail
		}
		options = append(options, huh.NewOption(label, c.Key))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Value(&chosen),
		),
	)

	err := form.Run()
	return chosen, err
}

func Confirm(question string, defaultVal bool) (bool, error) {
	var result bool = defaultVal

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Yes").
				Negative("No").
				Value(&result),
		),
	)

	err := form.Run()
	return result, err
}

func Input(title, placeholder string) (string, error) {
	var value string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder(placeholder).
				Value(&value),
		),
	)

	err := form.Run()
	return value, err
}
