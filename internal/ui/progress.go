package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const defaultBarWidth = 40

var (
	progressBarStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#70c7ba"))

	progressBgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#333"))

	progressTextStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888"))
)

// ProgressTracker renders a single-line bar for multi-step operations like
// tiered container starts. It degrades to plain prints without a TTY.
type ProgressTracker struct {
	total     int
	completed int
	isTTY     bool
	barWidth  int
}

func NewProgressTracker(total int) *ProgressTracker {
	p := &ProgressTracker{total: total, barWidth: defaultBarWidth}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		p.isTTY = true
		if w > 0 && w-30 < p.barWidth {
			p.barWidth = w - 30
		}
		if p.barWidth < 10 {
			p.barWidth = 10
		}
	}
	return p
}

// Step marks one step done and redraws the bar with its label.
func (p *ProgressTracker) Step(label string) {
	p.completed++
	if !p.isTTY {
		fmt.Printf("[%d/%d] %s\n", p.completed, p.total, label)
		return
	}

	filled := p.barWidth * p.completed / p.total
	bar := progressBarStyle.Render(strings.Repeat("█", filled)) +
		progressBgStyle.Render(strings.Repeat("░", p.barWidth-filled))
	fmt.Printf("\r%s %s", bar, progressTextStyle.Render(fmt.Sprintf("%d/%d %s", p.completed, p.total, label)))
	if p.completed == p.total {
		fmt.Println()
	}
}
