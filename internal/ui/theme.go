package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RPG-task theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconTask    = "📝"
	IconDaily   = "🔁"
	IconQuest   = "🗺️"
	IconGoal    = "🎯"
	IconBoss    = "💀"
	IconDone    = "✅"
	IconSparkle = "✨"
	IconGold    = "🪙"
	IconChest   = "📦"
	IconShop    = "🏪"
	IconGuild   = "🏰"
	IconSkill   = "⚡"
	IconRank    = "🏆"
	IconWarn    = "⚠️"
	IconError   = "🧨"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeRankUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("RANK UP")
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

// GoldAmount renders a two-decimal gold figure in the gold style.
func GoldAmount(amount float64) string {
	return Gold.Render(fmt.Sprintf("%.2f", amount))
}

// ProgressBar renders a fixed-width bar like [#####-----] for value/max.
// A zero max renders as empty.
func ProgressBar(value, max float64, width int) string {
	if width <= 0 {
		width = 10
	}
	filled := 0
	if max > 0 {
		filled = int(value / max * float64(width))
	}
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
	return Good.Render("[") + Gold.Render(bar[:filled]) + Muted.Render(bar[filled:]) + Good.Render("]")
}

// GoalIcon distinguishes plain goals from boss fights in quest listings.
func GoalIcon(boss bool) string {
	if boss {
		return IconBoss
	}
	return IconGoal
}
