// Package console styles the command line output.
package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pomodoro/internal/core/model"
)

const (
	IconBlossom = "🌸"
	IconDone    = "✅"
	IconError   = "🧨"
)

var (
	cBlossom = lipgloss.Color("205") // pink
	cPrimary = lipgloss.Color("63")  // blue
	cGood    = lipgloss.Color("42")  // green
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cBlossom)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Status is what `pomodoro status` prints.
type Status struct {
	Durations model.Durations
	Theme     model.Theme
	Cycles    int
	Source    string
}

// RenderStatus formats status as a block of labelled lines.
func RenderStatus(status Status) string {
	lines := []string{Heading(IconBlossom, "Pomodoro")}
	for _, mode := range model.Modes() {
		lines = append(lines, LabelValue(mode.Label(), fmt.Sprintf("%d min", status.Durations.Minutes(mode))))
	}
	lines = append(lines,
		LabelValue("Theme", string(status.Theme)),
		LabelValue("Completed pomodoros", status.Cycles),
	)
	if status.Source != "" {
		lines = append(lines, Muted.Render(status.Source))
	}
	return strings.Join(lines, "\n")
}
